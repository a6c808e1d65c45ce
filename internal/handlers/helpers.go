package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"auditplay/internal/repository"
	"auditplay/internal/service"
)

// Helper functions

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Content-Type has to be set before the status line goes out
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := JSONResponse(w, payload); err != nil {
		w.Write([]byte(`{"error":"Internal server error"}`))
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps service and repository errors to HTTP
// status codes: missing/invalid input 400, bad credentials 401,
// duplicate email 409, anything else 500 with the message passed through
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField), errors.Is(err, service.ErrInvalidPayload):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrDuplicateEmail):
		respondWithError(w, http.StatusConflict, ErrMsgEmailRegistered)
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// parseUintPath parses a numeric path value, returning 0 when absent or
// malformed
func parseUintPath(r *http.Request, name string) uint {
	value, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

func getIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return forwarded
	}
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
