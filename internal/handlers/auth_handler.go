package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"auditplay/internal/middleware"
	"auditplay/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new user account. Profile defaults to audited.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body service.SignupInput true "Registration details"
// @Success 200 {object} map[string]interface{} "Created user with access token"
// @Failure 400 {object} map[string]string "Missing required field"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	user, token, err := h.authService.Signup(input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	slog.Info("User signed up", "user_id", user.ID, "email", user.Email, "ip", getIP(r))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"token": token,
		"user":  user.Summary(),
	})
}

// Login handles user login
// @Summary Log in
// @Description Verify credentials and return the user with an access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "User with access token"
// @Failure 400 {object} map[string]string "Missing required field"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	slog.Info("User logged in", "user_id", user.ID, "ip", getIP(r))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"token": token,
		"user":  user.Summary(),
	})
}

// Me returns the user behind the presented access token
// @Summary Current user
// @Description Return the account of the authenticated caller
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Authenticated user"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing authorization header")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		// The token outlived the account
		respondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if email, ok := middleware.GetUserEmail(r); ok {
		slog.Debug("Current user looked up", "user_id", userID, "email", email)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"user": user.Summary(),
	})
}
