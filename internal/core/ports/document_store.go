package ports

import "context"

// DocumentStore persists whole JSON documents by name. Every write replaces
// the previous document entirely.
type DocumentStore interface {
	// Load returns domain.ErrDocumentNotFound (wrapped) when name was never saved.
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
