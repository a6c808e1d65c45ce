package handlers

import (
	"encoding/json"
	"net/http"

	"auditplay/internal/models"
	"auditplay/internal/service"
)

// UserAuditHandler handles per-user audit responses and the pending
// evaluation query
type UserAuditHandler struct {
	auditService      *service.AuditService
	evaluationService *service.EvaluationService
}

// NewUserAuditHandler creates a new user audit handler
func NewUserAuditHandler(auditService *service.AuditService, evaluationService *service.EvaluationService) *UserAuditHandler {
	return &UserAuditHandler{
		auditService:      auditService,
		evaluationService: evaluationService,
	}
}

// SaveUserResponsesRequest is the bulk save body for one user's answers
type SaveUserResponsesRequest struct {
	UserID uint                            `json:"userId"`
	Data   map[string]models.ResponseInput `json:"data"`
}

// ListRespondents returns the users who have answered in a category
// @Summary List respondents
// @Description Return the distinct users with at least one response in the category
// @Tags User audits
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Router /userAudits/{category}/list [get]
func (h *UserAuditHandler) ListRespondents(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	respondents, err := h.auditService.ListRespondents(category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"data": respondents})
}

// GetUserResponses returns one user's responses in a category
// @Summary Get a user's responses
// @Description Return one user's stored answers in a category
// @Tags User audits
// @Produce json
// @Param category path string true "Category"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Router /userAudits/{category}/{userId} [get]
func (h *UserAuditHandler) GetUserResponses(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	userID := parseUintPath(r, "userId")
	if userID == 0 {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return
	}

	responses, err := h.auditService.GetUserResponses(userID, category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"userId":   userID,
		"data":     responses,
	})
}

// SaveUserResponses bulk-saves one user's answers in a category
// @Summary Save a user's responses
// @Description Upsert the given answers for the user and mark the user's category answered, atomically
// @Tags User audits
// @Accept json
// @Produce json
// @Param category path string true "Category"
// @Param request body SaveUserResponsesRequest true "User id and answers keyed by question key"
// @Success 200 {object} map[string]interface{} "Number of keys saved"
// @Failure 400 {object} map[string]string "Missing userId or invalid payload"
// @Router /userAudits/{category} [post]
func (h *UserAuditHandler) SaveUserResponses(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	var req SaveUserResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	saved, err := h.auditService.SaveUserResponses(req.UserID, category, req.Data)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"saved": saved,
	})
}

// PendingForAuditor returns users an auditor still has to evaluate
// @Summary List pending users for an auditor
// @Description Return users with responses in the category that the auditor has not evaluated yet. One evaluation against any of a user's responses clears the user from this list.
// @Tags User audits
// @Produce json
// @Param auditorId path int true "Auditor ID"
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid auditor ID"
// @Router /userAudits/pendingForAuditor/{auditorId}/{category} [get]
func (h *UserAuditHandler) PendingForAuditor(w http.ResponseWriter, r *http.Request) {
	auditorID := parseUintPath(r, "auditorId")
	if auditorID == 0 {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidAuditorID)
		return
	}
	category := r.PathValue("category")

	pending, err := h.evaluationService.ListPending(auditorID, category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"data": pending})
}
