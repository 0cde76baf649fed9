package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

// EvaluationRepository manages persistence for student evaluation scores.
type EvaluationRepository struct {
	db *sqlx.DB
}

// NewEvaluationRepository constructs an EvaluationRepository.
func NewEvaluationRepository(db *sqlx.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// ListByStudent returns a student's evaluations in recording order.
func (r *EvaluationRepository) ListByStudent(ctx context.Context, studentName string) ([]models.Evaluation, error) {
	const query = `SELECT id, student_name, number, date_label, grammar, vocabulary, speaking,
        listening, reading, writing, fluency, self_study
        FROM evaluations WHERE student_name = $1 ORDER BY number ASC`
	var evaluations []models.Evaluation
	if err := r.db.SelectContext(ctx, &evaluations, query, studentName); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return evaluations, nil
}
