package repository

import (
	"database/sql"
	"fmt"

	"auditplay/internal/models"
)

// EvaluationRepository handles auditor evaluations of user responses
type EvaluationRepository struct {
	db *sql.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create records one evaluation. Append-only: repeat evaluations by the
// same auditor against the same response produce new rows. The response
// id is not checked against user_responses.
func (r *EvaluationRepository) Create(eval *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (user_response_id, auditor_id, verdict, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	// An empty comment is stored as NULL, same as an absent one
	var comment sql.NullString
	if eval.Comment != nil {
		comment = nullIfEmpty(*eval.Comment)
	}

	err := r.db.QueryRow(
		query,
		eval.UserResponseID,
		eval.AuditorID,
		eval.Verdict,
		comment,
	).Scan(&eval.ID, &eval.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}

	return nil
}

// ListByUserAndCategory returns every evaluation, by any auditor, against
// one user's responses in a category, joined with the question key.
// Evaluations whose response id matches nothing are filtered out by the
// join.
func (r *EvaluationRepository) ListByUserAndCategory(userID uint, category string) ([]models.EvaluationWithKey, error) {
	query := `
		SELECT ev.id, ev.user_response_id, ev.auditor_id, ev.verdict, ev.comment, ev.created_at, ur.key
		FROM evaluations ev
		JOIN user_responses ur ON ur.id = ev.user_response_id
		WHERE ur.user_id = $1 AND ur.category = $2
		ORDER BY ev.id
	`

	rows, err := r.db.Query(query, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer closeRows(rows)

	var evaluations []models.EvaluationWithKey
	for rows.Next() {
		var eval models.EvaluationWithKey
		var comment sql.NullString
		if err := rows.Scan(
			&eval.ID,
			&eval.UserResponseID,
			&eval.AuditorID,
			&eval.Verdict,
			&comment,
			&eval.CreatedAt,
			&eval.Key,
		); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if comment.Valid {
			c := comment.String
			eval.Comment = &c
		}
		evaluations = append(evaluations, eval)
	}

	return evaluations, rows.Err()
}

// ListPendingForAuditor returns users with responses in a category that
// the given auditor has not evaluated yet. Pending is tracked at category
// granularity: one evaluation by the auditor against any of a user's
// responses in the category removes that user from the list.
func (r *EvaluationRepository) ListPendingForAuditor(auditorID uint, category string) ([]models.PendingUser, error) {
	query := `
		SELECT DISTINCT ur.user_id, u.name, u.email
		FROM user_responses ur
		JOIN users u ON u.id = ur.user_id
		WHERE ur.category = $1
		  AND NOT EXISTS (
			SELECT 1 FROM evaluations ev
			JOIN user_responses ur2 ON ev.user_response_id = ur2.id
			WHERE ev.auditor_id = $2
			  AND ur2.user_id = ur.user_id
			  AND ur2.category = ur.category
		  )
		ORDER BY ur.user_id
	`

	rows, err := r.db.Query(query, category, auditorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	defer closeRows(rows)

	var pending []models.PendingUser
	for rows.Next() {
		var user models.PendingUser
		if err := rows.Scan(&user.UserID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("failed to scan pending user: %w", err)
		}
		pending = append(pending, user)
	}

	return pending, rows.Err()
}
