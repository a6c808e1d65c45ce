package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"auditplay/internal/service"
)

// EvaluationHandler handles auditor evaluations
type EvaluationHandler struct {
	evaluationService *service.EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluationService *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// Record stores an auditor's evaluation of one user response
// @Summary Record an evaluation
// @Description Store one verdict by an auditor against a user response. Append-only.
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param request body service.EvaluationInput true "Evaluation"
// @Success 200 {object} map[string]interface{} "Id of the stored evaluation"
// @Failure 400 {object} map[string]string "Missing required field"
// @Router /evaluations [post]
func (h *EvaluationHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input service.EvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	eval, err := h.evaluationService.Record(input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	slog.Info("Evaluation recorded",
		"evaluation_id", eval.ID,
		"auditor_id", eval.AuditorID,
		"user_response_id", eval.UserResponseID,
	)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"id": eval.ID,
	})
}

// ListForUser returns the evaluations against one user's responses
// @Summary List evaluations for a user
// @Description Return every evaluation, by any auditor, against one user's responses in a category, joined with the question key
// @Tags Evaluations
// @Produce json
// @Param userId path int true "User ID"
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Router /evaluations/user/{userId}/{category} [get]
func (h *EvaluationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := parseUintPath(r, "userId")
	if userID == 0 {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return
	}
	category := r.PathValue("category")

	evaluations, err := h.evaluationService.ListForUser(userID, category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"data": evaluations})
}
