package testutil

import (
	"database/sql"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"auditplay/internal/models"
)

// Fixtures holds test data
type Fixtures struct {
	DB          *sql.DB
	AuditedUser *models.User
	Auditor     *models.User
}

// SetupFixtures creates one audited user and one auditor
func SetupFixtures(t *testing.T, db *sql.DB) *Fixtures {
	t.Helper()

	return &Fixtures{
		DB:          db,
		AuditedUser: CreateUser(t, db, "audited@test.com", "Audited User", models.ProfileAudited),
		Auditor:     CreateUser(t, db, "auditor@test.com", "Auditor User", models.ProfileAuditor),
	}
}

// CreateUser inserts a user with the password "password123"
func CreateUser(t *testing.T, db *sql.DB, email, name, profile string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Company:      "Test Co",
		Role:         "Analyst",
		Profile:      profile,
		PasswordHash: string(hash),
	}

	err = db.QueryRow(
		`INSERT INTO users (name, email, company, role, profile, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.Company, user.Role, user.Profile, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	return user
}

// CreateUserResponse inserts one user response and returns its id
func CreateUserResponse(t *testing.T, db *sql.DB, userID uint, category, key, answer string) uint {
	t.Helper()

	var id uint
	err := db.QueryRow(
		`INSERT INTO user_responses (user_id, category, key, answer)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, category, key, answer,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create user response: %v", err)
	}

	return id
}

// CreateEvaluation inserts one evaluation and returns its id
func CreateEvaluation(t *testing.T, db *sql.DB, userResponseID, auditorID uint, verdict string) uint {
	t.Helper()

	var id uint
	err := db.QueryRow(
		`INSERT INTO evaluations (user_response_id, auditor_id, verdict)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userResponseID, auditorID, verdict,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}

	return id
}
