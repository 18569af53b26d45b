package domain

import "context"

// FileStore persists binary attachments and derives a public URL for
// each stored object.
type FileStore interface {
	// Upload stores data under key with the given content type and
	// returns the public URL of the object.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
