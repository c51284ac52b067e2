package work

import "context"

// Service defines business logic for the Work domain.
type Service interface {
	// Create assigns id and creation timestamp, persists and returns the
	// full record. Errors: ErrNameRequired, ErrInvalidPayload.
	Create(ctx context.Context, req *Payload) (*Work, error)

	// Get returns ErrWorkNotFound for unknown ids.
	Get(ctx context.Context, id string) (*Work, error)

	// List applies the filters. Limit defaults to 50 and is clamped to 100.
	List(ctx context.Context, filter Filter) ([]Work, error)

	// Update merges the present non-null payload fields into the stored
	// record and returns the refreshed record. Errors: ErrWorkNotFound,
	// ErrInvalidPayload.
	Update(ctx context.Context, id string, req *Payload) (*Work, error)

	// Delete removes the record. Errors: ErrWorkNotFound.
	Delete(ctx context.Context, id string) error

	// AttachCover stores the binary in the blob store and points cover_url
	// at it. A nonexistent id fails before anything is stored. Returns the
	// public cover URL. Errors: ErrWorkNotFound,
	// storage.ErrUnsupportedMediaType.
	AttachCover(ctx context.Context, id string, data []byte, contentType, originalFilename string) (string, error)

	// Search runs the case-insensitive substring search over name, genre
	// and description.
	Search(ctx context.Context, query string, limit int) ([]Work, error)

	// Genres lists distinct non-empty genres.
	Genres(ctx context.Context) ([]string, error)
}
