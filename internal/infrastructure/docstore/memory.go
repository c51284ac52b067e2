package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// memoryStore giữ collections trong process memory.
// Dùng cho development (DOCSTORE_DRIVER=memory) và tests.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		collections: make(map[string][]Document),
	}
}

func (s *memoryStore) EnsureCollection(_ context.Context, collection string) error {
	if !collectionNameRe.MatchString(collection) {
		return fmt.Errorf("invalid collection name: %q", collection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection]; !ok {
		s.collections[collection] = nil
	}
	return nil
}

func (s *memoryStore) docs(collection string) ([]Document, error) {
	docs, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection: %q", collection)
	}
	return docs, nil
}

func (s *memoryStore) Insert(_ context.Context, collection string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection]; !ok {
		return fmt.Errorf("unknown collection: %q", collection)
	}

	copied, err := copyDocument(doc)
	if err != nil {
		return err
	}
	s.collections[collection] = append(s.collections[collection], copied)
	return nil
}

func (s *memoryStore) Find(_ context.Context, collection string, p Predicate, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs, err := s.docs(collection)
	if err != nil {
		return nil, err
	}

	var out []Document
	for _, doc := range docs {
		if !matches(p, doc) {
			continue
		}
		copied, err := copyDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *memoryStore) FindOne(ctx context.Context, collection string, p Predicate) (Document, error) {
	docs, err := s.Find(ctx, collection, p, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs[0], nil
}

func (s *memoryStore) UpdateFields(_ context.Context, collection string, p Predicate, fields Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.docs(collection)
	if err != nil {
		return 0, err
	}

	// Round-trip the partial fields so stored values have the same shapes
	// (float64 numbers, []interface{} lists) as inserted documents.
	normalized, err := copyDocument(fields)
	if err != nil {
		return 0, err
	}

	var affected int64
	for _, doc := range docs {
		if !matches(p, doc) {
			continue
		}
		for k, v := range normalized {
			doc[k] = v
		}
		affected++
	}
	return affected, nil
}

func (s *memoryStore) Delete(_ context.Context, collection string, p Predicate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.docs(collection)
	if err != nil {
		return 0, err
	}

	var kept []Document
	var affected int64
	for _, doc := range docs {
		if matches(p, doc) {
			affected++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return affected, nil
}

func (s *memoryStore) Distinct(_ context.Context, collection, field string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs, err := s.docs(collection)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var values []string
	for _, doc := range docs {
		v, ok := doc[field].(string)
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

func (s *memoryStore) HealthCheck(context.Context) error {
	return nil
}

// copyDocument detaches a document via a JSON round-trip.
func copyDocument(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to copy document: %w", err)
	}
	var copied Document
	if err := json.Unmarshal(raw, &copied); err != nil {
		return nil, fmt.Errorf("failed to copy document: %w", err)
	}
	return copied, nil
}

// ──────────────────────────────────────────────
// Predicate evaluation
// ──────────────────────────────────────────────

func matches(p Predicate, doc Document) bool {
	switch pred := p.(type) {
	case eqPredicate:
		if isNumeric(pred.value) {
			want, _ := toFloat(pred.value)
			got, ok := toFloat(doc[pred.field])
			return ok && got == want
		}
		return doc[pred.field] == pred.value

	case containsPredicate:
		v, ok := doc[pred.field].(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(v), strings.ToLower(pred.value))

	case rangePredicate:
		if pred.min == nil && pred.max == nil {
			return true
		}
		v, ok := toFloat(doc[pred.field])
		if !ok {
			return false
		}
		if pred.min != nil && v < float64(*pred.min) {
			return false
		}
		if pred.max != nil && v > float64(*pred.max) {
			return false
		}
		return true

	case orPredicate:
		for _, sub := range pred.preds {
			if matches(sub, doc) {
				return true
			}
		}
		return false

	case andPredicate:
		for _, sub := range pred.preds {
			if !matches(sub, doc) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
