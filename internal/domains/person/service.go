package person

import "context"

// Service defines business logic for the Person domain.
type Service interface {
	// Create assigns id and creation timestamp, persists and returns the
	// full record. Errors: ErrNameRequired, ErrInvalidPayload.
	Create(ctx context.Context, req *Payload) (*Person, error)

	// Get returns ErrPersonNotFound for unknown ids.
	Get(ctx context.Context, id string) (*Person, error)

	// List applies the filters. Limit defaults to 50 and is clamped to 100
	// regardless of the requested value.
	List(ctx context.Context, filter Filter) ([]Person, error)

	// Update merges the present non-null payload fields into the stored
	// record and returns the refreshed record. Errors: ErrPersonNotFound,
	// ErrInvalidPayload.
	Update(ctx context.Context, id string, req *Payload) (*Person, error)

	// Delete removes the record. Errors: ErrPersonNotFound.
	Delete(ctx context.Context, id string) error

	// AttachPhoto stores the binary in the blob store and points photo_url
	// at it. A nonexistent id fails before anything is stored; a record is
	// never created as a side effect. Returns the public photo URL.
	// Errors: ErrPersonNotFound, storage.ErrUnsupportedMediaType.
	AttachPhoto(ctx context.Context, id string, data []byte, contentType, originalFilename string) (string, error)

	// Search runs the case-insensitive substring search over name,
	// nationality and biography.
	Search(ctx context.Context, query string, limit int) ([]Person, error)

	// Nationalities lists distinct non-empty nationalities.
	Nationalities(ctx context.Context) ([]string, error)
}
