package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

// StudentRepository manages persistence for the student roster.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListEntries returns the full roster ordered by name.
func (r *StudentRepository) ListEntries(ctx context.Context) ([]models.StudentEntry, error) {
	const query = `SELECT id, name, folder_key, note_url, history_url, created_at, updated_at
        FROM students ORDER BY name ASC`
	var entries []models.StudentEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return entries, nil
}

// FindByName fetches one roster entry by exact name. Returns sql.ErrNoRows
// when the student is unknown.
func (r *StudentRepository) FindByName(ctx context.Context, name string) (*models.StudentEntry, error) {
	const query = `SELECT id, name, folder_key, note_url, history_url, created_at, updated_at
        FROM students WHERE name = $1`
	var entry models.StudentEntry
	if err := r.db.GetContext(ctx, &entry, query, name); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByFolder returns the roster entries that share a lesson folder.
func (r *StudentRepository) ListByFolder(ctx context.Context, folderKey string) ([]models.StudentEntry, error) {
	const query = `SELECT id, name, folder_key, note_url, history_url, created_at, updated_at
        FROM students WHERE folder_key = $1 ORDER BY name ASC`
	var entries []models.StudentEntry
	if err := r.db.SelectContext(ctx, &entries, query, folderKey); err != nil {
		return nil, fmt.Errorf("list students by folder: %w", err)
	}
	return entries, nil
}

// ListFolderKeys returns the distinct lesson folder keys in use.
func (r *StudentRepository) ListFolderKeys(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT folder_key FROM students WHERE folder_key <> '' ORDER BY folder_key ASC`
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, query); err != nil {
		return nil, fmt.Errorf("list folder keys: %w", err)
	}
	return keys, nil
}
