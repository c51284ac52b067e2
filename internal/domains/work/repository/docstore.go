package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"catalog-backend/internal/domains/work"
	"catalog-backend/internal/infrastructure/docstore"
	"catalog-backend/pkg/cache"
)

const (
	collection = "works"

	genresCacheKey = "works:genres"
	cacheTTL       = 15 * time.Minute
)

type docstoreRepository struct {
	store docstore.Store
	cache cache.Cache
}

// NewDocstoreRepository creates the Work repository.
// cache may be nil, in which case the distinct listing always hits the store.
func NewDocstoreRepository(store docstore.Store, cache cache.Cache) work.Repository {
	return &docstoreRepository{
		store: store,
		cache: cache,
	}
}

func (r *docstoreRepository) Insert(ctx context.Context, w *work.Work) error {
	doc, err := toDocument(w)
	if err != nil {
		return err
	}

	if err := r.store.Insert(ctx, collection, doc); err != nil {
		return fmt.Errorf("failed to insert work: %w", err)
	}

	r.invalidateListings(ctx)
	return nil
}

func (r *docstoreRepository) FindByID(ctx context.Context, id string) (*work.Work, error) {
	doc, err := r.store.FindOne(ctx, collection, docstore.Eq("id", id))
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocuments) {
			return nil, work.ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	return fromDocument(doc)
}

func (r *docstoreRepository) FindAll(ctx context.Context, filter work.Filter) ([]work.Work, error) {
	docs, err := r.store.Find(ctx, collection, buildPredicate(filter), filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return fromDocuments(docs)
}

func (r *docstoreRepository) Search(ctx context.Context, query string, limit int) ([]work.Work, error) {
	docs, err := r.store.Find(ctx, collection, searchPredicate(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search works: %w", err)
	}
	return fromDocuments(docs)
}

func (r *docstoreRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	affected, err := r.store.UpdateFields(ctx, collection, docstore.Eq("id", id), fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update work: %w", err)
	}

	if affected > 0 {
		r.invalidateListings(ctx)
	}
	return affected, nil
}

func (r *docstoreRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.store.Delete(ctx, collection, docstore.Eq("id", id))
	if err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}
	if affected == 0 {
		return work.ErrWorkNotFound
	}

	r.invalidateListings(ctx)
	return nil
}

func (r *docstoreRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	if r.cache != nil {
		var cached []string
		if found, err := r.cache.Get(ctx, genresCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	values, err := r.store.Distinct(ctx, collection, "genre")
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	sort.Strings(values)

	if r.cache != nil {
		_ = r.cache.Set(ctx, genresCacheKey, values, cacheTTL)
	}
	return values, nil
}

func (r *docstoreRepository) invalidateListings(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, genresCacheKey)
	}
}

func toDocument(w *work.Work) (docstore.Document, error) {
	raw, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal work: %w", err)
	}
	var doc docstore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to map work document: %w", err)
	}
	return doc, nil
}

func fromDocument(doc docstore.Document) (*work.Work, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to map work document: %w", err)
	}
	var w work.Work
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal work: %w", err)
	}
	return &w, nil
}

func fromDocuments(docs []docstore.Document) ([]work.Work, error) {
	works := make([]work.Work, 0, len(docs))
	for _, doc := range docs {
		w, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		works = append(works, *w)
	}
	return works, nil
}
