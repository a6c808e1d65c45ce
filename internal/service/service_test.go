package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"auditplay/internal/models"
)

// Validation has to short-circuit before any repository is touched, so
// these constructors get nil dependencies on purpose.

func TestSignupRequiresNameEmailPassword(t *testing.T) {
	svc := NewAuthService(nil, nil)

	cases := []SignupInput{
		{Email: "a@b.com", Password: "secret"},
		{Name: "A", Password: "secret"},
		{Name: "A", Email: "a@b.com"},
		{},
	}

	for _, input := range cases {
		_, _, err := svc.Signup(input)
		assert.ErrorIs(t, err, ErrMissingField)
	}
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	svc := NewAuthService(nil, nil)

	_, _, err := svc.Login("", "secret")
	assert.ErrorIs(t, err, ErrMissingField)

	_, _, err = svc.Login("a@b.com", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSaveUserResponsesRequiresUserID(t *testing.T) {
	svc := NewAuditService(nil, nil, nil, nil)

	_, err := svc.SaveUserResponses(0, "pessoas", map[string]models.ResponseInput{
		"q1": {Answer: "yes"},
	})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSaveResponsesRejectsNilPayload(t *testing.T) {
	svc := NewAuditService(nil, nil, nil, nil)

	_, err := svc.SaveResponses("pessoas", nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = svc.SaveUserResponses(7, "pessoas", nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestRecordEvaluationRequiresFields(t *testing.T) {
	svc := NewEvaluationService(nil)

	cases := []EvaluationInput{
		{UserResponseID: 1, Verdict: models.VerdictCompliant},
		{AuditorID: 1, Verdict: models.VerdictCompliant},
		{AuditorID: 1, UserResponseID: 1},
	}

	for _, input := range cases {
		_, err := svc.Record(input)
		assert.ErrorIs(t, err, ErrMissingField)
	}
}

func TestFillDefaultsCoversEveryCategory(t *testing.T) {
	out := fillDefaults(nil)

	assert.Len(t, out, len(models.DefaultCategories))
	for _, category := range models.DefaultCategories {
		status, ok := out[category]
		assert.True(t, ok)
		assert.Equal(t, models.StatusPending, status.Status)
		assert.Nil(t, status.UpdatedAt)
	}
}

func TestFillDefaultsOverlaysStoredStatuses(t *testing.T) {
	stored := []models.CategoryStatus{
		{Category: "pessoas", Status: models.StatusAnswered},
	}

	out := fillDefaults(stored)

	assert.Equal(t, models.StatusAnswered, out["pessoas"].Status)
	assert.Equal(t, models.StatusPending, out["organizacional"].Status)
}

func TestMissingFieldErrorsNameTheFields(t *testing.T) {
	svc := NewEvaluationService(nil)

	_, err := svc.Record(EvaluationInput{})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "auditorId")
		assert.True(t, errors.Is(err, ErrMissingField))
	}
}
