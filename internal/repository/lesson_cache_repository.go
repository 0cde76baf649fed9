package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

const studentNameSeparator = ", "

// LessonCacheRepository persists the day's lesson snapshot in the
// lessons_today table. The snapshot is always replaced wholesale; rows keep
// an explicit position so reads come back in grouping order.
type LessonCacheRepository struct {
	db *sqlx.DB
}

// NewLessonCacheRepository constructs a LessonCacheRepository.
func NewLessonCacheRepository(db *sqlx.DB) *LessonCacheRepository {
	return &LessonCacheRepository{db: db}
}

type lessonRow struct {
	EventID         string    `db:"event_id"`
	EventName       string    `db:"event_name"`
	StartTime       string    `db:"start_time"`
	EndTime         string    `db:"end_time"`
	FolderKey       string    `db:"folder_key"`
	StudentNames    string    `db:"student_names"`
	PDFUploaded     bool      `db:"pdf_uploaded"`
	HistoryRecorded bool      `db:"history_recorded"`
	EvaluationReady bool      `db:"evaluation_ready"`
	EvaluationDue   bool      `db:"evaluation_due"`
	IsOnline        bool      `db:"is_online"`
	Teacher         string    `db:"teacher"`
	Position        int       `db:"position"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (row lessonRow) toRecord() models.LessonRecord {
	var names []string
	if row.StudentNames != "" {
		names = strings.Split(row.StudentNames, studentNameSeparator)
	}
	return models.LessonRecord{
		EventID:         row.EventID,
		EventName:       row.EventName,
		Start:           row.StartTime,
		End:             row.EndTime,
		FolderKey:       row.FolderKey,
		StudentNames:    names,
		PDFUploaded:     row.PDFUploaded,
		HistoryRecorded: row.HistoryRecorded,
		EvaluationReady: row.EvaluationReady,
		EvaluationDue:   row.EvaluationDue,
		IsOnline:        row.IsOnline,
		Teacher:         row.Teacher,
	}
}

// ReadSnapshot returns the cached lessons in their stored order.
func (r *LessonCacheRepository) ReadSnapshot(ctx context.Context) ([]models.LessonRecord, error) {
	const query = `SELECT event_id, event_name, start_time, end_time, folder_key, student_names,
        pdf_uploaded, history_recorded, evaluation_ready, evaluation_due, is_online, teacher, position, updated_at
        FROM lessons_today ORDER BY position ASC`
	var rows []lessonRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("read lesson snapshot: %w", err)
	}
	records := make([]models.LessonRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

// ListStatuses returns the operator-owned flags of every cached lesson.
func (r *LessonCacheRepository) ListStatuses(ctx context.Context) ([]models.LessonStatus, error) {
	const query = `SELECT event_id, pdf_uploaded, history_recorded FROM lessons_today ORDER BY position ASC`
	var statuses []models.LessonStatus
	if err := r.db.SelectContext(ctx, &statuses, query); err != nil {
		return nil, fmt.Errorf("list lesson statuses: %w", err)
	}
	return statuses, nil
}

// ReplaceSnapshot swaps the entire snapshot for the provided records inside
// one transaction. The headers describe the record layout and must match the
// table's column layout.
func (r *LessonCacheRepository) ReplaceSnapshot(ctx context.Context, headers []string, records []models.LessonRecord) error {
	if len(headers) != len(models.SnapshotHeaders) {
		return fmt.Errorf("unexpected snapshot header count: %d", len(headers))
	}
	for i, header := range headers {
		if header != models.SnapshotHeaders[i] {
			return fmt.Errorf("unexpected snapshot header at %d: %s", i, header)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM lessons_today"); err != nil {
		return fmt.Errorf("clear lesson snapshot: %w", err)
	}

	const insert = `INSERT INTO lessons_today (event_id, event_name, start_time, end_time, folder_key, student_names,
        pdf_uploaded, history_recorded, evaluation_ready, evaluation_due, is_online, teacher, position, updated_at)
        VALUES (:event_id, :event_name, :start_time, :end_time, :folder_key, :student_names,
        :pdf_uploaded, :history_recorded, :evaluation_ready, :evaluation_due, :is_online, :teacher, :position, :updated_at)`

	now := time.Now().UTC()
	for i, record := range records {
		row := lessonRow{
			EventID:         record.EventID,
			EventName:       record.EventName,
			StartTime:       record.Start,
			EndTime:         record.End,
			FolderKey:       record.FolderKey,
			StudentNames:    strings.Join(record.StudentNames, studentNameSeparator),
			PDFUploaded:     record.PDFUploaded,
			HistoryRecorded: record.HistoryRecorded,
			EvaluationReady: record.EvaluationReady,
			EvaluationDue:   record.EvaluationDue,
			IsOnline:        record.IsOnline,
			Teacher:         record.Teacher,
			Position:        i,
			UpdatedAt:       now,
		}
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("insert lesson %s: %w", record.EventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot replace: %w", err)
	}
	return nil
}

// SetStatus updates a single operator flag on the identified lesson.
func (r *LessonCacheRepository) SetStatus(ctx context.Context, eventID, field string, value bool) error {
	var column string
	switch field {
	case models.StatusFieldPDFUploaded:
		column = "pdf_uploaded"
	case models.StatusFieldHistoryRecorded:
		column = "history_recorded"
	default:
		return fmt.Errorf("unknown status field: %s", field)
	}

	query := fmt.Sprintf("UPDATE lessons_today SET %s = $1, updated_at = $2 WHERE event_id = $3", column)
	result, err := r.db.ExecContext(ctx, query, value, time.Now().UTC(), eventID)
	if err != nil {
		return fmt.Errorf("update lesson status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update lesson status: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}
