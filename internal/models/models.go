package models

import (
	"time"
)

// Profile values for User.Profile
const (
	ProfileAudited = "audited"
	ProfileAuditor = "auditor"
)

// Category status values
const (
	StatusPending  = "pending"
	StatusAnswered = "answered"
)

// Verdict values recorded by auditors. Stored as given; only absence is
// rejected, the set below is what clients are expected to send.
const (
	VerdictCompliant          = "compliant"
	VerdictPartiallyCompliant = "partially_compliant"
	VerdictNonCompliant       = "non_compliant"
)

// DefaultCategories is the fixed category set every status listing is
// filled with. Categories are not user-defined.
var DefaultCategories = []string{"organizacional", "pessoas", "fisicos", "tecnologicos"}

// User represents a user in the system
type User struct {
	ID           uint      `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Company      string    `json:"company" db:"company"`
	Role         string    `json:"role" db:"role"`
	Profile      string    `json:"profile" db:"profile"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is the public view of a user returned by auth endpoints
type UserSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

// Summary returns the public view of a user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Profile: u.Profile,
	}
}

// CategoryStatus tracks the answered/pending state of one category,
// either globally or scoped to a user. The category itself is the map
// key in every serialized view, so it is not repeated in the value.
type CategoryStatus struct {
	Category  string     `json:"-" db:"category"`
	Status    string     `json:"status" db:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Response is one shared (non user-scoped) answer for a question key
type Response struct {
	ID            uint      `json:"id" db:"id"`
	Category      string    `json:"category" db:"category"`
	Key           string    `json:"key" db:"key"`
	Answer        string    `json:"answer" db:"answer"`
	Justification string    `json:"justification" db:"justification"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserResponse is one user's answer for a question key in a category
type UserResponse struct {
	ID            uint      `json:"response_id" db:"id"`
	UserID        uint      `json:"-" db:"user_id"`
	Category      string    `json:"-" db:"category"`
	Key           string    `json:"key" db:"key"`
	Answer        string    `json:"answer" db:"answer"`
	Justification string    `json:"justification" db:"justification"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ResponseInput is the answer+justification pair submitted for one key
type ResponseInput struct {
	Answer        string `json:"answer"`
	Justification string `json:"justification"`
}

// ResponseValue is the stored answer for one key as returned by reads
type ResponseValue struct {
	Answer        string    `json:"answer"`
	Justification string    `json:"justification"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Evaluation is an auditor's verdict against a single user response.
// Append-only: the same auditor may record several evaluations for the
// same response over time.
type Evaluation struct {
	ID             uint      `json:"id" db:"id"`
	UserResponseID uint      `json:"user_response_id" db:"user_response_id"`
	AuditorID      uint      `json:"auditor_id" db:"auditor_id"`
	Verdict        string    `json:"verdict" db:"verdict"`
	Comment        *string   `json:"comment" db:"comment"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// EvaluationWithKey joins an evaluation with the question key of the
// response it targets
type EvaluationWithKey struct {
	ID             uint      `json:"evaluation_id"`
	UserResponseID uint      `json:"user_response_id"`
	AuditorID      uint      `json:"auditor_id"`
	Verdict        string    `json:"verdict"`
	Comment        *string   `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
	Key            string    `json:"key"`
}

// Respondent is a user who has at least one response in a category
type Respondent struct {
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// PendingUser is a user whose responses in a category still lack an
// evaluation from a specific auditor
type PendingUser struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
