package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/infrastructure/docstore"
)

func newTestRepo(t *testing.T) person.Repository {
	t.Helper()
	store := docstore.NewMemoryStore()
	require.NoError(t, store.EnsureCollection(context.Background(), collection))
	return NewDocstoreRepository(store, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedPerson(t *testing.T, repo person.Repository, id, name string, age int, nationality string) {
	t.Helper()
	p := &person.Person{
		ID:          id,
		Name:        name,
		Age:         intPtr(age),
		Nationality: strPtr(nationality),
		WorkIDs:     []string{},
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(context.Background(), p))
}

func TestPersonRepository_InsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	bio := "French actor"
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := &person.Person{
		ID:          "p1",
		Name:        "Jean Reno",
		Age:         intPtr(76),
		Nationality: strPtr("French"),
		Biography:   &bio,
		WorkIDs:     []string{"w1", "w2"},
		CreatedAt:   created,
	}
	require.NoError(t, repo.Insert(ctx, in))

	got, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestPersonRepository_FindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestPersonRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seedPerson(t, repo, "p1", "Marion Cotillard", 48, "French")
	seedPerson(t, repo, "p2", "Tom Hanks", 67, "American")
	seedPerson(t, repo, "p3", "Audrey Tautou", 47, "French")

	t.Run("no filter returns all", func(t *testing.T) {
		people, err := repo.FindAll(ctx, person.Filter{})
		require.NoError(t, err)
		assert.Len(t, people, 3)
	})

	t.Run("nationality substring", func(t *testing.T) {
		people, err := repo.FindAll(ctx, person.Filter{Nationality: "fren"})
		require.NoError(t, err)
		assert.Len(t, people, 2)
	})

	t.Run("age range", func(t *testing.T) {
		people, err := repo.FindAll(ctx, person.Filter{AgeMin: intPtr(48), AgeMax: intPtr(70)})
		require.NoError(t, err)
		require.Len(t, people, 2)
	})

	t.Run("combined filters narrow", func(t *testing.T) {
		people, err := repo.FindAll(ctx, person.Filter{Nationality: "French", AgeMax: intPtr(47)})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Audrey Tautou", people[0].Name)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		people, err := repo.FindAll(ctx, person.Filter{Name: "nobody"})
		require.NoError(t, err)
		assert.NotNil(t, people)
		assert.Empty(t, people)
	})
}

func TestPersonRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seedPerson(t, repo, "p1", "Jean Reno", 76, "French")
	p := &person.Person{
		ID:        "p2",
		Name:      "Somebody Else",
		Biography: strPtr("Best known for playing Jean in a drama"),
		WorkIDs:   []string{},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, p))

	// Matches name on one record and biography on the other
	people, err := repo.Search(ctx, "jean", 10)
	require.NoError(t, err)
	assert.Len(t, people, 2)

	people, err = repo.Search(ctx, "jean", 1)
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestPersonRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seedPerson(t, repo, "p1", "Jean Reno", 76, "French")

	affected, err := repo.UpdateFields(ctx, "p1", map[string]interface{}{"age": 77})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.Age)
	assert.Equal(t, 77, *got.Age)
	assert.Equal(t, "Jean Reno", got.Name)

	affected, err = repo.UpdateFields(ctx, "missing", map[string]interface{}{"age": 1})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestPersonRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seedPerson(t, repo, "p1", "Jean Reno", 76, "French")

	require.NoError(t, repo.Delete(ctx, "p1"))
	assert.ErrorIs(t, repo.Delete(ctx, "p1"), person.ErrPersonNotFound)
}

func TestPersonRepository_DistinctNationalities(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seedPerson(t, repo, "p1", "A", 30, "French")
	seedPerson(t, repo, "p2", "B", 40, "French")
	seedPerson(t, repo, "p3", "C", 50, "American")

	values, err := repo.DistinctNationalities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"American", "French"}, values)
}
