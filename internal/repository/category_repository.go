package repository

import (
	"database/sql"
	"fmt"

	"auditplay/internal/models"
)

// CategoryRepository handles global and per-user category status tracking
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// SetStatus sets the global status of one category
func (r *CategoryRepository) SetStatus(exec Executor, category, status string) error {
	query := `
		INSERT INTO categories (category, status, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (category)
		DO UPDATE SET status = EXCLUDED.status, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := exec.Exec(query, category, status); err != nil {
		return fmt.Errorf("failed to set category status: %w", err)
	}
	return nil
}

// ResetAll sets every category back to pending
func (r *CategoryRepository) ResetAll() error {
	query := `UPDATE categories SET status = $1, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.Exec(query, models.StatusPending); err != nil {
		return fmt.Errorf("failed to reset categories: %w", err)
	}
	return nil
}

// Reset sets one category back to pending. Stored answers are untouched.
func (r *CategoryRepository) Reset(category string) error {
	query := `UPDATE categories SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE category = $2`
	if _, err := r.db.Exec(query, models.StatusPending, category); err != nil {
		return fmt.Errorf("failed to reset category: %w", err)
	}
	return nil
}

// ListStatuses returns the global status of every known category
func (r *CategoryRepository) ListStatuses() ([]models.CategoryStatus, error) {
	query := `SELECT category, status, updated_at FROM categories ORDER BY category`
	return r.queryStatuses(query)
}

// SetUserStatus sets one user's status for a category
func (r *CategoryRepository) SetUserStatus(exec Executor, userID uint, category, status string) error {
	query := `
		INSERT INTO user_categories (user_id, category, status, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, category)
		DO UPDATE SET status = EXCLUDED.status, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := exec.Exec(query, userID, category, status); err != nil {
		return fmt.Errorf("failed to set user category status: %w", err)
	}
	return nil
}

// ListUserStatuses returns one user's per-category statuses. Categories
// the user never touched are absent; callers fill defaults.
func (r *CategoryRepository) ListUserStatuses(userID uint) ([]models.CategoryStatus, error) {
	query := `SELECT category, status, updated_at FROM user_categories WHERE user_id = $1 ORDER BY category`
	return r.queryStatuses(query, userID)
}

func (r *CategoryRepository) queryStatuses(query string, args ...any) ([]models.CategoryStatus, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list category statuses: %w", err)
	}
	defer closeRows(rows)

	var statuses []models.CategoryStatus
	for rows.Next() {
		var status models.CategoryStatus
		var updatedAt sql.NullTime
		if err := rows.Scan(&status.Category, &status.Status, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category status: %w", err)
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			status.UpdatedAt = &t
		}
		statuses = append(statuses, status)
	}

	return statuses, rows.Err()
}
