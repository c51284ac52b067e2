package docstore

import (
	"context"
	"errors"
)

// Document là một record dạng flat field map, serialized thành JSON.
type Document = map[string]interface{}

// ErrNoDocuments is returned by FindOne when nothing matches.
var ErrNoDocuments = errors.New("no documents in result")

// Store is a collection-oriented persistence layer addressed by structural
// field predicates. It has no knowledge of entity semantics.
//
// Implementations: Postgres (JSONB) and in-memory (development/tests).
type Store interface {
	// EnsureCollection prepares a named collection for use.
	// Must be called once per collection at startup.
	EnsureCollection(ctx context.Context, collection string) error

	// Insert persists one document.
	Insert(ctx context.Context, collection string, doc Document) error

	// Find returns documents matching p, at most limit (limit <= 0 means no cap).
	// Order is unspecified.
	Find(ctx context.Context, collection string, p Predicate, limit int) ([]Document, error)

	// FindOne returns one matching document or ErrNoDocuments.
	FindOne(ctx context.Context, collection string, p Predicate) (Document, error)

	// UpdateFields merges the partial field map into every matching document
	// and returns the number of documents affected.
	UpdateFields(ctx context.Context, collection string, p Predicate, fields Document) (int64, error)

	// Delete removes matching documents and returns the number affected.
	Delete(ctx context.Context, collection string, p Predicate) (int64, error)

	// Distinct returns the distinct non-null, non-empty string values of a field.
	Distinct(ctx context.Context, collection, field string) ([]string, error)

	// HealthCheck verifies the underlying connection.
	HealthCheck(ctx context.Context) error
}
