package work

import "context"

// Repository defines data access for the Work collection.
type Repository interface {
	Insert(ctx context.Context, w *Work) error

	// FindByID returns ErrWorkNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*Work, error)

	FindAll(ctx context.Context, filter Filter) ([]Work, error)

	// Search runs the cross-field substring search used by global search.
	Search(ctx context.Context, query string, limit int) ([]Work, error)

	// UpdateFields merges the partial document into the record and returns
	// the number of records affected (0 when the id is unknown).
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)

	// Delete returns ErrWorkNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error

	// DistinctGenres returns each non-empty genre once.
	DistinctGenres(ctx context.Context) ([]string, error)
}
