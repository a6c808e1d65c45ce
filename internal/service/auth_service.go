package service

import (
	"errors"
	"fmt"

	"auditplay/internal/auth"
	"auditplay/internal/models"
	"auditplay/internal/repository"
)

// SignupInput is the payload for registering a new user
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
}

// AuthService handles signup and login
type AuthService struct {
	userRepo *repository.UserRepository
	auth     *auth.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, authService *auth.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		auth:     authService,
	}
}

// Signup registers a new user. Name, email, and password are required;
// profile defaults to audited. Returns the created user and an access
// token.
func (s *AuthService) Signup(input SignupInput) (*models.User, string, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", ErrMissingField)
	}

	profile := input.Profile
	if profile == "" {
		profile = models.ProfileAudited
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Company:      input.Company,
		Role:         input.Role,
		Profile:      profile,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, _, err := s.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser loads one user by id
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// Login verifies credentials and returns the user and an access token.
// Unknown email and wrong password both map to ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrMissingField)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
