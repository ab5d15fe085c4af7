package store

import "context"

// File is the transport payload the store returns for the document path.
type File struct {
	// Content is the file bytes in the store's transport encoding
	// (base64 for the GitHub contents API).
	Content string
	// Encoding names the transport encoding of Content.
	Encoding string
	// Tag is the opaque version tag gating the next conditional write.
	Tag string
}

// Store is the two-operation contract against the remote document store.
// Implementations must reject a PutFile whose tag does not match the tag
// they currently hold for the path.
type Store interface {
	// GetFile reads the document file and its current version tag.
	GetFile(ctx context.Context) (File, error)

	// PutFile replaces the document file. content is transport-encoded,
	// tag must match the store's current tag, and message is a
	// human-readable change description.
	PutFile(ctx context.Context, content, tag, message string) error
}
