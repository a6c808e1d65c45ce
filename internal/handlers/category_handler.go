package handlers

import (
	"net/http"
	"strconv"

	"auditplay/internal/service"
)

// CategoryHandler handles category status requests
type CategoryHandler struct {
	auditService *service.AuditService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(auditService *service.AuditService) *CategoryHandler {
	return &CategoryHandler{auditService: auditService}
}

// GetCategories returns category statuses, globally or for one user
// @Summary List category statuses
// @Description Return the status of every category, globally or scoped to a user via ?userId. Untouched categories report pending.
// @Tags Categories
// @Produce json
// @Param userId query int false "Scope statuses to this user"
// @Success 200 {object} map[string]interface{} "Status map keyed by category"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
			return
		}

		statuses, err := h.auditService.UserCategoryStatuses(uint(userID))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"data": statuses})
		return
	}

	statuses, err := h.auditService.CategoryStatuses()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"data": statuses})
}

// ResetCategory sets one category back to pending
// @Summary Reset a category
// @Description Set a category's global status back to pending. Stored answers are kept.
// @Tags Categories
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{category}/reset [post]
func (h *CategoryHandler) ResetCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	if err := h.auditService.ResetCategory(category); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"category": category,
	})
}

// ResetAll sets every category back to pending
// @Summary Reset all categories
// @Description Set every category's global status back to pending. Stored answers are kept.
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories/resetAll [post]
func (h *CategoryHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.auditService.ResetAllCategories(); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
