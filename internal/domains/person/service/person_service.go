package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/infrastructure/storage"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type personService struct {
	repo person.Repository
	blob storage.BlobStore
}

// NewPersonService creates the Person service.
func NewPersonService(repo person.Repository, blob storage.BlobStore) person.Service {
	return &personService{
		repo: repo,
		blob: blob,
	}
}

func (s *personService) Create(ctx context.Context, req *person.Payload) (*person.Person, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, person.ErrNameRequired
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", person.ErrInvalidPayload, err)
	}

	p := req.ToEntity()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *personService) Get(ctx context.Context, id string) (*person.Person, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *personService) List(ctx context.Context, filter person.Filter) ([]person.Person, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.repo.FindAll(ctx, filter)
}

func (s *personService) Update(ctx context.Context, id string, req *person.Payload) (*person.Person, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", person.ErrInvalidPayload, err)
	}

	fields := req.Fields()
	if len(fields) > 0 {
		affected, err := s.repo.UpdateFields(ctx, id, fields)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, person.ErrPersonNotFound
		}
	}

	return s.repo.FindByID(ctx, id)
}

func (s *personService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *personService) AttachPhoto(ctx context.Context, id string, data []byte, contentType, originalFilename string) (string, error) {
	if !storage.IsImageType(contentType) {
		return "", storage.ErrUnsupportedMediaType
	}

	// Existence check before touching the blob store, so a bad id never
	// leaves a stored file behind.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return "", err
	}

	url, err := s.blob.Save(ctx, "person_"+id, data, contentType, originalFilename)
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	if _, err := s.repo.UpdateFields(ctx, id, map[string]interface{}{"photo_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *personService) Search(ctx context.Context, query string, limit int) ([]person.Person, error) {
	return s.repo.Search(ctx, query, clampLimit(limit))
}

func (s *personService) Nationalities(ctx context.Context) ([]string, error) {
	return s.repo.DistinctNationalities(ctx)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
