package repository

import (
	"database/sql"
	"fmt"

	"auditplay/internal/models"
)

// UserResponseRepository handles per-user audit responses
type UserResponseRepository struct {
	db *sql.DB
}

// NewUserResponseRepository creates a new user response repository
func NewUserResponseRepository(db *sql.DB) *UserResponseRepository {
	return &UserResponseRepository{db: db}
}

// Upsert inserts or updates one user's answer for a key in a category.
// The row id is preserved across updates so evaluations keep pointing at
// the same response.
func (r *UserResponseRepository) Upsert(exec Executor, userID uint, category, key, answer, justification string) error {
	query := `
		INSERT INTO user_responses (user_id, category, key, answer, justification, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, category, key)
		DO UPDATE SET answer = EXCLUDED.answer,
		              justification = EXCLUDED.justification,
		              updated_at = CURRENT_TIMESTAMP
	`

	_, err := exec.Exec(query, userID, category, key, nullIfEmpty(answer), nullIfEmpty(justification))
	if err != nil {
		return fmt.Errorf("failed to upsert user response: %w", err)
	}
	return nil
}

// ListByUserAndCategory returns one user's responses in a category
func (r *UserResponseRepository) ListByUserAndCategory(userID uint, category string) ([]models.UserResponse, error) {
	query := `
		SELECT id, user_id, category, key, COALESCE(answer, ''), COALESCE(justification, ''), updated_at
		FROM user_responses
		WHERE user_id = $1 AND category = $2
		ORDER BY id
	`

	rows, err := r.db.Query(query, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list user responses: %w", err)
	}
	defer closeRows(rows)

	var responses []models.UserResponse
	for rows.Next() {
		var response models.UserResponse
		if err := rows.Scan(
			&response.ID,
			&response.UserID,
			&response.Category,
			&response.Key,
			&response.Answer,
			&response.Justification,
			&response.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user response: %w", err)
		}
		responses = append(responses, response)
	}

	return responses, rows.Err()
}

// ListRespondents returns the distinct users who have at least one
// response in a category
func (r *UserResponseRepository) ListRespondents(category string) ([]models.Respondent, error) {
	query := `
		SELECT DISTINCT ur.user_id, u.name, u.email, u.company
		FROM user_responses ur
		JOIN users u ON u.id = ur.user_id
		WHERE ur.category = $1
		ORDER BY ur.user_id
	`

	rows, err := r.db.Query(query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list respondents: %w", err)
	}
	defer closeRows(rows)

	var respondents []models.Respondent
	for rows.Next() {
		var respondent models.Respondent
		if err := rows.Scan(
			&respondent.UserID,
			&respondent.Name,
			&respondent.Email,
			&respondent.Company,
		); err != nil {
			return nil, fmt.Errorf("failed to scan respondent: %w", err)
		}
		respondents = append(respondents, respondent)
	}

	return respondents, rows.Err()
}
