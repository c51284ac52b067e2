package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/work"
	"catalog-backend/internal/infrastructure/storage"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type workService struct {
	repo work.Repository
	blob storage.BlobStore
}

// NewWorkService creates the Work service.
func NewWorkService(repo work.Repository, blob storage.BlobStore) work.Service {
	return &workService{
		repo: repo,
		blob: blob,
	}
}

func (s *workService) Create(ctx context.Context, req *work.Payload) (*work.Work, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, work.ErrNameRequired
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", work.ErrInvalidPayload, err)
	}

	w := req.ToEntity()
	w.ID = uuid.NewString()
	w.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workService) Get(ctx context.Context, id string) (*work.Work, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *workService) List(ctx context.Context, filter work.Filter) ([]work.Work, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.repo.FindAll(ctx, filter)
}

func (s *workService) Update(ctx context.Context, id string, req *work.Payload) (*work.Work, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", work.ErrInvalidPayload, err)
	}

	fields := req.Fields()
	if len(fields) > 0 {
		affected, err := s.repo.UpdateFields(ctx, id, fields)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, work.ErrWorkNotFound
		}
	}

	return s.repo.FindByID(ctx, id)
}

func (s *workService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *workService) AttachCover(ctx context.Context, id string, data []byte, contentType, originalFilename string) (string, error) {
	if !storage.IsImageType(contentType) {
		return "", storage.ErrUnsupportedMediaType
	}

	// Existence check before touching the blob store, so a bad id never
	// leaves a stored file behind.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return "", err
	}

	url, err := s.blob.Save(ctx, "work_"+id, data, contentType, originalFilename)
	if err != nil {
		return "", fmt.Errorf("failed to store cover: %w", err)
	}

	if _, err := s.repo.UpdateFields(ctx, id, map[string]interface{}{"cover_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *workService) Search(ctx context.Context, query string, limit int) ([]work.Work, error) {
	return s.repo.Search(ctx, query, clampLimit(limit))
}

func (s *workService) Genres(ctx context.Context) ([]string, error) {
	return s.repo.DistinctGenres(ctx)
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
