package service

import (
	"database/sql"
	"fmt"
	"log/slog"

	"auditplay/internal/models"
	"auditplay/internal/repository"
)

// AuditService handles shared and per-user audit responses plus the
// category status bookkeeping that goes with them
type AuditService struct {
	db               *sql.DB
	responseRepo     *repository.ResponseRepository
	userResponseRepo *repository.UserResponseRepository
	categoryRepo     *repository.CategoryRepository
}

// NewAuditService creates a new audit service
func NewAuditService(
	db *sql.DB,
	responseRepo *repository.ResponseRepository,
	userResponseRepo *repository.UserResponseRepository,
	categoryRepo *repository.CategoryRepository,
) *AuditService {
	return &AuditService{
		db:               db,
		responseRepo:     responseRepo,
		userResponseRepo: userResponseRepo,
		categoryRepo:     categoryRepo,
	}
}

// GetResponses returns the shared responses of a category keyed by
// question key
func (s *AuditService) GetResponses(category string) (map[string]models.ResponseValue, error) {
	responses, err := s.responseRepo.ListByCategory(category)
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.ResponseValue, len(responses))
	for _, r := range responses {
		out[r.Key] = models.ResponseValue{
			Answer:        r.Answer,
			Justification: r.Justification,
			UpdatedAt:     r.UpdatedAt,
		}
	}
	return out, nil
}

// SaveResponses upserts the shared answers of a category and marks the
// category answered. The whole save runs in one transaction. Returns
// the number of keys saved.
func (s *AuditService) SaveResponses(category string, data map[string]models.ResponseInput) (int, error) {
	if data == nil {
		return 0, fmt.Errorf("%w: expected { data: { ... } }", ErrInvalidPayload)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	for key, input := range data {
		if err := s.responseRepo.Upsert(tx, category, key, input.Answer, input.Justification); err != nil {
			return 0, err
		}
	}

	if err := s.categoryRepo.SetStatus(tx, category, models.StatusAnswered); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Saved responses", "category", category, "count", len(data))
	return len(data), nil
}

// GetUserResponses returns one user's responses in a category
func (s *AuditService) GetUserResponses(userID uint, category string) ([]models.UserResponse, error) {
	return s.userResponseRepo.ListByUserAndCategory(userID, category)
}

// SaveUserResponses upserts one user's answers in a category and marks
// the user's category answered, in one transaction. Returns the number
// of keys saved.
func (s *AuditService) SaveUserResponses(userID uint, category string, data map[string]models.ResponseInput) (int, error) {
	if userID == 0 {
		return 0, fmt.Errorf("%w: userId is required", ErrMissingField)
	}
	if data == nil {
		return 0, fmt.Errorf("%w: expected { userId, data: { ... } }", ErrInvalidPayload)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	for key, input := range data {
		if err := s.userResponseRepo.Upsert(tx, userID, category, key, input.Answer, input.Justification); err != nil {
			return 0, err
		}
	}

	if err := s.categoryRepo.SetUserStatus(tx, userID, category, models.StatusAnswered); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Saved user responses", "user_id", userID, "category", category, "count", len(data))
	return len(data), nil
}

// ListRespondents returns the users who have answered in a category
func (s *AuditService) ListRespondents(category string) ([]models.Respondent, error) {
	return s.userResponseRepo.ListRespondents(category)
}

// CategoryStatuses returns the global category status map, always
// containing every default category (pending when untouched)
func (s *AuditService) CategoryStatuses() (map[string]models.CategoryStatus, error) {
	statuses, err := s.categoryRepo.ListStatuses()
	if err != nil {
		return nil, err
	}
	return fillDefaults(statuses), nil
}

// UserCategoryStatuses returns one user's category status map, always
// containing every default category (pending when untouched)
func (s *AuditService) UserCategoryStatuses(userID uint) (map[string]models.CategoryStatus, error) {
	statuses, err := s.categoryRepo.ListUserStatuses(userID)
	if err != nil {
		return nil, err
	}
	return fillDefaults(statuses), nil
}

// ResetCategory sets a category's global status back to pending without
// touching stored answers
func (s *AuditService) ResetCategory(category string) error {
	return s.categoryRepo.Reset(category)
}

// ResetAllCategories sets every category's global status back to pending
func (s *AuditService) ResetAllCategories() error {
	return s.categoryRepo.ResetAll()
}

// fillDefaults overlays stored statuses on the fixed default set
func fillDefaults(statuses []models.CategoryStatus) map[string]models.CategoryStatus {
	out := make(map[string]models.CategoryStatus, len(models.DefaultCategories))
	for _, category := range models.DefaultCategories {
		out[category] = models.CategoryStatus{Category: category, Status: models.StatusPending}
	}
	for _, status := range statuses {
		out[status.Category] = status
	}
	return out
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		slog.Error("Failed to rollback transaction", "error", err)
	}
}
