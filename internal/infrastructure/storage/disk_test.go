package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_Save(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStorage(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	data := []byte("fake-png-bytes")
	url, err := store.Save(ctx, "person_abc", data, "image/png", "portrait.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/person_abc_"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	// Stored bytes round-trip
	name := strings.TrimPrefix(url, "/uploads/")
	stored, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestDiskStorage_RejectsNonImage(t *testing.T) {
	store, err := NewDiskStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "person_abc", []byte("plain"), "text/plain", "notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not leave a file behind")
}

func TestDiskStorage_UniqueNames(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := store.Save(ctx, "work_1", []byte("a"), "image/jpeg", "cover.jpg")
	require.NoError(t, err)
	second, err := store.Save(ctx, "work_1", []byte("b"), "image/jpeg", "cover.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestObjectName(t *testing.T) {
	t.Run("extension from filename", func(t *testing.T) {
		name := objectName("person_1", "image/png", "Photo.JPG")
		assert.True(t, strings.HasPrefix(name, "person_1_"))
		assert.True(t, strings.HasSuffix(name, ".jpg"), name)
	})

	t.Run("extension falls back to content type", func(t *testing.T) {
		name := objectName("person_1", "image/png", "noextension")
		assert.True(t, strings.HasSuffix(name, ".png"), name)
	})
}

func TestIsImageType(t *testing.T) {
	assert.True(t, IsImageType("image/png"))
	assert.True(t, IsImageType("image/jpeg"))
	assert.False(t, IsImageType("text/plain"))
	assert.False(t, IsImageType("application/octet-stream"))
	assert.False(t, IsImageType(""))
}
