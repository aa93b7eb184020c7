package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/chirp-backend/internal/http/response"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	"github.com/yungbote/chirp-backend/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// Latest serves the last persisted result; it never triggers a recompute.
func (h *AssessmentHandler) Latest(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	res, err := h.assessments.Latest(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		respondServiceError(c, "assessment_get_failed", err)
		return
	}
	response.RespondOK(c, res)
}

func (h *AssessmentHandler) Recompute(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	res, err := h.assessments.Recompute(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		respondServiceError(c, "assessment_recompute_failed", err)
		return
	}
	response.RespondOK(c, res)
}

func (h *AssessmentHandler) History(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}
	results, err := h.assessments.History(dbctx.Context{Ctx: c.Request.Context()}, id, limit)
	if err != nil {
		respondServiceError(c, "assessment_history_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"results": results})
}
