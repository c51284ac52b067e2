package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/infrastructure/docstore"
	"catalog-backend/pkg/cache"
)

const (
	collection = "people"

	nationalitiesCacheKey = "people:nationalities"
	cacheTTL              = 15 * time.Minute
)

// docstoreRepository implements person.Repository on top of the document
// store, with a read-through cache for the distinct-nationalities listing.
type docstoreRepository struct {
	store docstore.Store
	cache cache.Cache
}

// NewDocstoreRepository creates the Person repository.
// cache may be nil, in which case the distinct listing always hits the store.
func NewDocstoreRepository(store docstore.Store, cache cache.Cache) person.Repository {
	return &docstoreRepository{
		store: store,
		cache: cache,
	}
}

func (r *docstoreRepository) Insert(ctx context.Context, p *person.Person) error {
	doc, err := toDocument(p)
	if err != nil {
		return err
	}

	if err := r.store.Insert(ctx, collection, doc); err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	r.invalidateListings(ctx)
	return nil
}

func (r *docstoreRepository) FindByID(ctx context.Context, id string) (*person.Person, error) {
	doc, err := r.store.FindOne(ctx, collection, docstore.Eq("id", id))
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocuments) {
			return nil, person.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}

	return fromDocument(doc)
}

func (r *docstoreRepository) FindAll(ctx context.Context, filter person.Filter) ([]person.Person, error) {
	docs, err := r.store.Find(ctx, collection, buildPredicate(filter), filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return fromDocuments(docs)
}

func (r *docstoreRepository) Search(ctx context.Context, query string, limit int) ([]person.Person, error) {
	docs, err := r.store.Find(ctx, collection, searchPredicate(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search people: %w", err)
	}
	return fromDocuments(docs)
}

func (r *docstoreRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	affected, err := r.store.UpdateFields(ctx, collection, docstore.Eq("id", id), fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update person: %w", err)
	}

	if affected > 0 {
		r.invalidateListings(ctx)
	}
	return affected, nil
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.store.Delete(ctx, collection, docstore.Eq("id", id))
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if affected == 0 {
		return person.ErrPersonNotFound
	}

	r.invalidateListings(ctx)
	return nil
}

func (r *docstoreRepository) DistinctNationalities(ctx context.Context) ([]string, error) {
	// Try cache first
	if r.cache != nil {
		var cached []string
		if found, err := r.cache.Get(ctx, nationalitiesCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	values, err := r.store.Distinct(ctx, collection, "nationality")
	if err != nil {
		return nil, fmt.Errorf("failed to list nationalities: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	sort.Strings(values)

	if r.cache != nil {
		// Best effort; a down cache only costs the next read a store query.
		_ = r.cache.Set(ctx, nationalitiesCacheKey, values, cacheTTL)
	}
	return values, nil
}

func (r *docstoreRepository) invalidateListings(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, nationalitiesCacheKey)
	}
}

// Document mapping: entities round-trip through their JSON form, so the
// stored field names are exactly the API field names.

func toDocument(p *person.Person) (docstore.Document, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal person: %w", err)
	}
	var doc docstore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to map person document: %w", err)
	}
	return doc, nil
}

func fromDocument(doc docstore.Document) (*person.Person, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to map person document: %w", err)
	}
	var p person.Person
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person: %w", err)
	}
	return &p, nil
}

func fromDocuments(docs []docstore.Document) ([]person.Person, error) {
	people := make([]person.Person, 0, len(docs))
	for _, doc := range docs {
		p, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		people = append(people, *p)
	}
	return people, nil
}
