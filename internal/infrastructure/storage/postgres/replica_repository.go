package postgres

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"notemaster/internal/domain/replica"
)

// ReplicaRepository persists per-device document collections.
type ReplicaRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewReplicaRepository(db *Storage, log *slog.Logger) *ReplicaRepository {
	return &ReplicaRepository{
		db:  db,
		log: log.With("component", "replica_repository"),
	}
}

func (r *ReplicaRepository) ListByUser(ctx context.Context, userID int) ([]replica.Document, error) {
	const query = `
		SELECT id, local_id, title, content, tags, is_favorite, is_archived,
		       is_deleted, created_at, updated_at
		FROM documents
		WHERE device_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.db.Pool().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []replica.Document
	for rows.Next() {
		var doc replica.Document
		if err := rows.Scan(&doc.ID, &doc.LocalID, &doc.Title, &doc.Content,
			&doc.Tags, &doc.Favorite, &doc.Archived, &doc.Deleted,
			&doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func (r *ReplicaRepository) Insert(ctx context.Context, userID int, doc replica.Document) error {
	const query = `
		INSERT INTO documents (id, device_id, local_id, title, content, tags,
		                       is_favorite, is_archived, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Pool().Exec(ctx, query,
		doc.ID, userID, doc.LocalID, doc.Title, doc.Content, doc.Tags,
		doc.Favorite, doc.Archived, doc.Deleted, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *ReplicaRepository) Update(ctx context.Context, userID int, docID string, doc replica.Document) error {
	const query = `
		UPDATE documents
		SET local_id = $3, title = $4, content = $5, tags = $6,
		    is_favorite = $7, is_archived = $8, is_deleted = $9, updated_at = $10
		WHERE id = $1 AND device_id = $2`

	tag, err := r.db.Pool().Exec(ctx, query,
		docID, userID, doc.LocalID, doc.Title, doc.Content, doc.Tags,
		doc.Favorite, doc.Archived, doc.Deleted, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return replica.ErrNotFound
	}
	return nil
}

func (r *ReplicaRepository) Delete(ctx context.Context, userID int, docID string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND device_id = $2`,
		docID, userID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return replica.ErrNotFound
	}
	return nil
}
