package handlers

// Common error message constants shared across handlers
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInvalidUserID      = "Invalid user ID"
	ErrMsgInvalidAuditorID   = "Invalid auditor ID"
	ErrMsgEmailRegistered    = "Email already registered"
)
