package repository

import (
	"catalog-backend/internal/domains/work"
	"catalog-backend/internal/infrastructure/docstore"
)

// searchFields are the work fields matched by free-text search.
var searchFields = []string{"name", "genre", "description"}

func searchPredicate(query string) docstore.Predicate {
	preds := make([]docstore.Predicate, 0, len(searchFields))
	for _, field := range searchFields {
		preds = append(preds, docstore.Contains(field, query))
	}
	return docstore.Or(preds...)
}

// buildPredicate translates the listing filter into a document predicate.
// Year is an exact numeric match; the text conditions are substrings.
func buildPredicate(f work.Filter) docstore.Predicate {
	var preds []docstore.Predicate

	if f.Search != "" {
		preds = append(preds, searchPredicate(f.Search))
	}
	if f.Name != "" {
		preds = append(preds, docstore.Contains("name", f.Name))
	}
	if f.Genre != "" {
		preds = append(preds, docstore.Contains("genre", f.Genre))
	}
	if f.Year != nil {
		preds = append(preds, docstore.Eq("year", *f.Year))
	}

	return docstore.And(preds...)
}
