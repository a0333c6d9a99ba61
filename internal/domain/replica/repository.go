package replica

import (
	"context"
)

// Repository is the persistence contract for per-user document
// collections.
type Repository interface {
	// ListByUser returns every document of the user, deleted ones
	// included — the soft-delete flag has to reach other replicas.
	ListByUser(ctx context.Context, userID int) ([]Document, error)

	// Insert stores a new document under the user.
	Insert(ctx context.Context, userID int, doc Document) error

	// Update overwrites the document docID of the user.
	// Returns ErrNotFound when the document does not exist.
	Update(ctx context.Context, userID int, docID string, doc Document) error

	// Delete removes the document physically. Clients normally propagate
	// soft deletes through Update; this is for explicit purging.
	Delete(ctx context.Context, userID int, docID string) error
}
