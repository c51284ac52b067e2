package person

import "context"

// Repository defines data access for the Person collection.
// The abstraction allows swapping document store backends and mocking in tests.
type Repository interface {
	// Insert persists a fully populated entity.
	Insert(ctx context.Context, p *Person) error

	// FindByID returns ErrPersonNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*Person, error)

	// FindAll applies the filter; result size is bounded by filter.Limit.
	FindAll(ctx context.Context, filter Filter) ([]Person, error)

	// Search runs the cross-field substring search used by global search.
	Search(ctx context.Context, query string, limit int) ([]Person, error)

	// UpdateFields merges the partial document into the record and returns
	// the number of records affected (0 when the id is unknown).
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)

	// Delete returns ErrPersonNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error

	// DistinctNationalities returns each non-empty nationality once.
	DistinctNationalities(ctx context.Context) ([]string, error)
}
