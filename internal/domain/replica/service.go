package replica

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/exp/slog"
)

// Servicer is the document-collection service consumed by the HTTP layer.
type Servicer interface {
	List(ctx context.Context, userID int) ([]Document, error)
	Create(ctx context.Context, userID int, doc Document) (string, error)
	Update(ctx context.Context, userID int, docID string, doc Document) error
	Delete(ctx context.Context, userID int, docID string) error
}

// Service keeps the replica deliberately dumb: it stores and returns
// documents verbatim. Merging is the client's job.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "replica_service"),
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]Document, error) {
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to list documents", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *Service) Create(ctx context.Context, userID int, doc Document) (string, error) {
	if err := validate(doc); err != nil {
		return "", err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generate document id: %w", err)
	}
	doc.ID = id.String()

	if err := s.repo.Insert(ctx, userID, doc); err != nil {
		s.log.Error("failed to insert document", "user_id", userID, "local_id", doc.LocalID, "error", err)
		return "", fmt.Errorf("insert document: %w", err)
	}
	return doc.ID, nil
}

func (s *Service) Update(ctx context.Context, userID int, docID string, doc Document) error {
	if err := validate(doc); err != nil {
		return err
	}
	doc.ID = docID

	if err := s.repo.Update(ctx, userID, docID, doc); err != nil {
		return fmt.Errorf("update document %s: %w", docID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID int, docID string) error {
	if err := s.repo.Delete(ctx, userID, docID); err != nil {
		return fmt.Errorf("delete document %s: %w", docID, err)
	}
	return nil
}

func validate(doc Document) error {
	if doc.LocalID == "" {
		return fmt.Errorf("%w: missing local_id", ErrInvalidDocument)
	}
	if doc.UpdatedAt == 0 {
		return fmt.Errorf("%w: missing updated_at", ErrInvalidDocument)
	}
	return nil
}
