package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

func newHistoryRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestHistoryRepositoryAppend(t *testing.T) {
	db, mock, cleanup := newHistoryRepoMock(t)
	defer cleanup()
	repo := NewHistoryRepository(db)

	mock.ExpectExec("INSERT INTO lesson_history").
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.HistoryEntry{
		ID:         "h1",
		FolderKey:  "001 Yamada",
		LessonDate: "2026-03-02",
		Teacher:    "Kacey",
		Homework:   "Unit 4 review",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Append(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepositoryListByFolder(t *testing.T) {
	db, mock, cleanup := newHistoryRepoMock(t)
	defer cleanup()
	repo := NewHistoryRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "folder_key", "lesson_date", "teacher", "warm_up_topic", "unit_pages",
		"homework", "comments", "student_requests", "advice", "created_at",
	}).
		AddRow("h2", "001 Yamada", "2026-03-02", "Kacey", "", "", "", "", "", "", time.Now()).
		AddRow("h1", "001 Yamada", "2026-02-23", "Kacey", "", "", "", "", "", "", time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT .+ FROM lesson_history WHERE folder_key = \\$1 ORDER BY created_at DESC").
		WithArgs("001 Yamada").
		WillReturnRows(rows)

	entries, err := repo.ListByFolder(context.Background(), "001 Yamada")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "h2", entries[0].ID)
}
