package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

// HistoryRepository manages persistence for lesson history entries.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository constructs a HistoryRepository.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append inserts one lesson history entry.
func (r *HistoryRepository) Append(ctx context.Context, entry *models.HistoryEntry) error {
	const query = `INSERT INTO lesson_history (id, folder_key, lesson_date, teacher, warm_up_topic,
        unit_pages, homework, comments, student_requests, advice, created_at)
        VALUES (:id, :folder_key, :lesson_date, :teacher, :warm_up_topic,
        :unit_pages, :homework, :comments, :student_requests, :advice, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("append lesson history: %w", err)
	}
	return nil
}

// ListByFolder returns the history of one lesson folder, newest first.
func (r *HistoryRepository) ListByFolder(ctx context.Context, folderKey string) ([]models.HistoryEntry, error) {
	const query = `SELECT id, folder_key, lesson_date, teacher, warm_up_topic, unit_pages, homework,
        comments, student_requests, advice, created_at
        FROM lesson_history WHERE folder_key = $1 ORDER BY created_at DESC`
	var entries []models.HistoryEntry
	if err := r.db.SelectContext(ctx, &entries, query, folderKey); err != nil {
		return nil, fmt.Errorf("list lesson history: %w", err)
	}
	return entries, nil
}
