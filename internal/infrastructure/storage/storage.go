package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
)

// ErrUnsupportedMediaType is returned when the declared content type is not an
// image type.
var ErrUnsupportedMediaType = errors.New("file must be an image")

// BlobStore persists uploaded binaries under generated names and returns a
// public URL for each stored blob. Previously stored blobs are never deleted
// or overwritten when a new one is attached; orphans are accepted.
type BlobStore interface {
	// Save stores data under a generated collision-resistant name and returns
	// its public URL. The prefix carries entity kind and id (e.g. "person_<id>")
	// and ends up in the generated name; the client filename only contributes
	// its extension. Returns ErrUnsupportedMediaType for non-image content.
	Save(ctx context.Context, prefix string, data []byte, contentType, originalFilename string) (string, error)
}

// IsImageType reports whether the declared media type is an image type.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// objectName generates a unique blob name: <prefix>_<xid><ext>.
// The xid segment guarantees two concurrent uploads never collide; the client
// filename is never reused as-is.
func objectName(prefix, contentType, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return fmt.Sprintf("%s_%s%s", prefix, xid.New().String(), ext)
}
