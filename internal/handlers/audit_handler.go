package handlers

import (
	"encoding/json"
	"net/http"

	"auditplay/internal/models"
	"auditplay/internal/service"
)

// AuditHandler handles the shared (non user-scoped) audit responses
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// SaveResponsesRequest is the bulk save body for shared responses
type SaveResponsesRequest struct {
	Data map[string]models.ResponseInput `json:"data"`
}

// GetResponses returns the shared responses of a category
// @Summary Get shared responses
// @Description Return the stored answers of a category keyed by question key
// @Tags Audits
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Router /audits/{category} [get]
func (h *AuditHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	data, err := h.auditService.GetResponses(category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"data":     data,
	})
}

// SaveResponses bulk-saves the shared responses of a category
// @Summary Save shared responses
// @Description Upsert the given answers and mark the category answered, atomically
// @Tags Audits
// @Accept json
// @Produce json
// @Param category path string true "Category"
// @Param request body SaveResponsesRequest true "Answers keyed by question key"
// @Success 200 {object} map[string]interface{} "Number of keys saved"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /audits/{category} [post]
func (h *AuditHandler) SaveResponses(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	var req SaveResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	saved, err := h.auditService.SaveResponses(category, req.Data)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"saved": saved,
	})
}
