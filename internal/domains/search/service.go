package search

import (
	"context"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/domains/work"
)

// globalSearchLimit bounds each side of the combined search result.
const globalSearchLimit = 10

// Result groups the two halves of a global search.
type Result struct {
	People []person.Person `json:"people"`
	Works  []work.Work     `json:"works"`
}

// Service runs queries that span both catalog collections.
type Service interface {
	// GlobalSearch matches the query against both collections, capped at
	// 10 records per side.
	GlobalSearch(ctx context.Context, query string) (*Result, error)
}

type searchService struct {
	people person.Service
	works  work.Service
}

func NewSearchService(people person.Service, works work.Service) Service {
	return &searchService{
		people: people,
		works:  works,
	}
}

func (s *searchService) GlobalSearch(ctx context.Context, query string) (*Result, error) {
	people, err := s.people.Search(ctx, query, globalSearchLimit)
	if err != nil {
		return nil, err
	}

	works, err := s.works.Search(ctx, query, globalSearchLimit)
	if err != nil {
		return nil, err
	}

	return &Result{People: people, Works: works}, nil
}
