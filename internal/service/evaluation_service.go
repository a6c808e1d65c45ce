package service

import (
	"fmt"

	"auditplay/internal/models"
	"auditplay/internal/repository"
)

// EvaluationInput is the payload for recording an evaluation
type EvaluationInput struct {
	AuditorID      uint    `json:"auditorId"`
	UserResponseID uint    `json:"userResponseId"`
	Verdict        string  `json:"verdict"`
	Comment        *string `json:"comment"`
}

// EvaluationService handles auditor evaluations and pending queries
type EvaluationService struct {
	evaluationRepo *repository.EvaluationRepository
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(evaluationRepo *repository.EvaluationRepository) *EvaluationService {
	return &EvaluationService{evaluationRepo: evaluationRepo}
}

// Record stores one evaluation. Auditor, response id, and verdict are
// required; response ids are not checked for existence.
func (s *EvaluationService) Record(input EvaluationInput) (*models.Evaluation, error) {
	if input.AuditorID == 0 || input.UserResponseID == 0 || input.Verdict == "" {
		return nil, fmt.Errorf("%w: auditorId, userResponseId and verdict are required", ErrMissingField)
	}

	eval := &models.Evaluation{
		UserResponseID: input.UserResponseID,
		AuditorID:      input.AuditorID,
		Verdict:        input.Verdict,
		Comment:        input.Comment,
	}

	if err := s.evaluationRepo.Create(eval); err != nil {
		return nil, err
	}

	return eval, nil
}

// ListForUser returns every evaluation against one user's responses in a
// category, by any auditor
func (s *EvaluationService) ListForUser(userID uint, category string) ([]models.EvaluationWithKey, error) {
	return s.evaluationRepo.ListByUserAndCategory(userID, category)
}

// ListPending returns the users an auditor still has to evaluate in a
// category
func (s *EvaluationService) ListPending(auditorID uint, category string) ([]models.PendingUser, error) {
	return s.evaluationRepo.ListPendingForAuditor(auditorID, category)
}
