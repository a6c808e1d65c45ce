package repository

import (
	"database/sql"
	"fmt"
	"log/slog"

	"auditplay/internal/models"
)

// ResponseRepository handles the shared (non user-scoped) audit responses
type ResponseRepository struct {
	db *sql.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Upsert inserts or updates the answer for one key in a category. The row
// id is preserved across updates. Empty answer and justification values
// are stored as NULL.
func (r *ResponseRepository) Upsert(exec Executor, category, key, answer, justification string) error {
	query := `
		INSERT INTO responses (category, key, answer, justification, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (category, key)
		DO UPDATE SET answer = EXCLUDED.answer,
		              justification = EXCLUDED.justification,
		              updated_at = CURRENT_TIMESTAMP
	`

	_, err := exec.Exec(query, category, key, nullIfEmpty(answer), nullIfEmpty(justification))
	if err != nil {
		return fmt.Errorf("failed to upsert response: %w", err)
	}
	return nil
}

// ListByCategory returns all responses stored for a category
func (r *ResponseRepository) ListByCategory(category string) ([]models.Response, error) {
	query := `
		SELECT id, category, key, COALESCE(answer, ''), COALESCE(justification, ''), updated_at
		FROM responses
		WHERE category = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer closeRows(rows)

	var responses []models.Response
	for rows.Next() {
		var response models.Response
		if err := rows.Scan(
			&response.ID,
			&response.Category,
			&response.Key,
			&response.Answer,
			&response.Justification,
			&response.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, response)
	}

	return responses, rows.Err()
}

// nullIfEmpty maps empty strings to NULL for storage
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("Failed to close rows", "error", err)
	}
}
