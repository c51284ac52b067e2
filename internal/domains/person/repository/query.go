package repository

import (
	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/infrastructure/docstore"
)

// searchFields are the person fields matched by free-text search.
var searchFields = []string{"name", "nationality", "biography"}

func searchPredicate(query string) docstore.Predicate {
	preds := make([]docstore.Predicate, 0, len(searchFields))
	for _, field := range searchFields {
		preds = append(preds, docstore.Contains(field, query))
	}
	return docstore.Or(preds...)
}

// buildPredicate translates the listing filter into a document predicate.
// All provided conditions must hold; an empty filter matches everything.
func buildPredicate(f person.Filter) docstore.Predicate {
	var preds []docstore.Predicate

	if f.Search != "" {
		preds = append(preds, searchPredicate(f.Search))
	}
	if f.Name != "" {
		preds = append(preds, docstore.Contains("name", f.Name))
	}
	if f.Nationality != "" {
		preds = append(preds, docstore.Contains("nationality", f.Nationality))
	}
	if f.AgeMin != nil || f.AgeMax != nil {
		preds = append(preds, docstore.NumRange("age", f.AgeMin, f.AgeMax))
	}

	return docstore.And(preds...)
}
