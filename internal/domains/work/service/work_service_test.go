package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/work"
	"catalog-backend/internal/domains/work/repository"
	"catalog-backend/internal/infrastructure/docstore"
	"catalog-backend/internal/infrastructure/storage"
)

type stubBlobStore struct {
	saves int
}

func (s *stubBlobStore) Save(_ context.Context, prefix string, _ []byte, contentType, _ string) (string, error) {
	if !storage.IsImageType(contentType) {
		return "", storage.ErrUnsupportedMediaType
	}
	s.saves++
	return "/uploads/" + prefix + "_stub.jpg", nil
}

func newTestService(t *testing.T) (work.Service, *stubBlobStore) {
	t.Helper()
	store := docstore.NewMemoryStore()
	require.NoError(t, store.EnsureCollection(context.Background(), "works"))
	blob := &stubBlobStore{}
	return NewWorkService(repository.NewDocstoreRepository(store, nil), blob), blob
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedWork(t *testing.T, svc work.Service, name string, year int, genre string) *work.Work {
	t.Helper()
	w, err := svc.Create(context.Background(), &work.Payload{
		Name:  strPtr(name),
		Year:  intPtr(year),
		Genre: strPtr(genre),
	})
	require.NoError(t, err)
	return w
}

func TestWorkService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	link := "https://example.com/ratatouille"
	created, err := svc.Create(ctx, &work.Payload{
		Name:         strPtr("Ratatouille"),
		Year:         intPtr(2007),
		Genre:        strPtr("Animation"),
		ExternalLink: &link,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ratatouille", created.Name)
	assert.Equal(t, []string{}, created.PersonIDs)
	assert.Nil(t, created.CoverURL)
	require.NotNil(t, created.ExternalLink)
	assert.Equal(t, link, *created.ExternalLink)
}

func TestWorkService_Create_NameRequired(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &work.Payload{Year: intPtr(2007)})
	assert.ErrorIs(t, err, work.ErrNameRequired)
}

func TestWorkService_List_YearIsExactMatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seedWork(t, svc, "Ratatouille", 2007, "Animation")
	seedWork(t, svc, "No Country for Old Men", 2007, "Thriller")
	seedWork(t, svc, "Amelie", 2001, "Comedy")

	works, err := svc.List(ctx, work.Filter{Year: intPtr(2007)})
	require.NoError(t, err)
	assert.Len(t, works, 2)

	works, err = svc.List(ctx, work.Filter{Year: intPtr(1990)})
	require.NoError(t, err)
	assert.Empty(t, works)
}

func TestWorkService_List_GenreSubstring(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seedWork(t, svc, "Ratatouille", 2007, "Animation")
	seedWork(t, svc, "Amelie", 2001, "Comedy")

	works, err := svc.List(ctx, work.Filter{Genre: "anim"})
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "Ratatouille", works[0].Name)
}

func TestWorkService_Search_MatchesDescription(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	desc := "A rat dreams of becoming a chef, released in 2007"
	_, err := svc.Create(ctx, &work.Payload{
		Name:        strPtr("Ratatouille"),
		Description: &desc,
	})
	require.NoError(t, err)

	// Digit query matches inside the description text
	works, err := svc.Search(ctx, "2007", 10)
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "Ratatouille", works[0].Name)
}

func TestWorkService_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created := seedWork(t, svc, "Ratatouille", 2007, "Animation")

	updated, err := svc.Update(ctx, created.ID, &work.Payload{Genre: strPtr("Family")})
	require.NoError(t, err)

	require.NotNil(t, updated.Genre)
	assert.Equal(t, "Family", *updated.Genre)
	assert.Equal(t, "Ratatouille", updated.Name)
	require.NotNil(t, updated.Year)
	assert.Equal(t, 2007, *updated.Year)
}

func TestWorkService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), "missing", &work.Payload{Genre: strPtr("Drama")})
	assert.ErrorIs(t, err, work.ErrWorkNotFound)
}

func TestWorkService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created := seedWork(t, svc, "Ratatouille", 2007, "Animation")

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), work.ErrWorkNotFound)
}

func TestWorkService_AttachCover(t *testing.T) {
	ctx := context.Background()
	svc, blob := newTestService(t)

	created := seedWork(t, svc, "Ratatouille", 2007, "Animation")

	url, err := svc.AttachCover(ctx, created.ID, []byte("jpg"), "image/jpeg", "cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, blob.saves)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CoverURL)
	assert.Equal(t, url, *got.CoverURL)
}

func TestWorkService_AttachCover_UnknownID(t *testing.T) {
	svc, blob := newTestService(t)

	_, err := svc.AttachCover(context.Background(), "missing", []byte("jpg"), "image/jpeg", "cover.jpg")
	assert.ErrorIs(t, err, work.ErrWorkNotFound)
	assert.Zero(t, blob.saves)
}

func TestWorkService_Genres(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seedWork(t, svc, "A", 2000, "Drama")
	seedWork(t, svc, "B", 2001, "Drama")
	seedWork(t, svc, "C", 2002, "Animation")

	genres, err := svc.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Animation", "Drama"}, genres)
}
