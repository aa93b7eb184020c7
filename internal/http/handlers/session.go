package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/chirp-backend/internal/http/response"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/chirp-backend/internal/pkg/errors"
	"github.com/yungbote/chirp-backend/internal/services"
)

type SessionHandler struct {
	sessions services.SessionService
}

func NewSessionHandler(sessions services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type createSessionRequest struct {
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	sess, err := h.sessions.Create(dbctx.Context{Ctx: c.Request.Context()}, req.SubjectID)
	if err != nil {
		respondServiceError(c, "session_create_failed", err)
		return
	}
	response.RespondCreated(c, sess)
}

func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	sess, err := h.sessions.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		respondServiceError(c, "session_get_failed", err)
		return
	}
	response.RespondOK(c, sess)
}

func (h *SessionHandler) Complete(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	if err := h.sessions.Complete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		respondServiceError(c, "session_complete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"status": "complete"})
}

type appendTurnsRequest struct {
	Turns []services.TurnInput `json:"turns" binding:"required"`
}

func (h *SessionHandler) AppendTurns(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req appendTurnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	n, err := h.sessions.AppendTurns(dbctx.Context{Ctx: c.Request.Context()}, id, req.Turns)
	if err != nil {
		respondServiceError(c, "turn_append_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"appended": n})
}

type appendSamplesRequest struct {
	Samples []services.SampleInput `json:"samples" binding:"required"`
}

func (h *SessionHandler) AppendSamples(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req appendSamplesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	n, err := h.sessions.AppendSamples(dbctx.Context{Ctx: c.Request.Context()}, id, req.Samples)
	if err != nil {
		respondServiceError(c, "sample_append_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"appended": n})
}

type appendAdaptationsRequest struct {
	Events []services.AdaptationInput `json:"events" binding:"required"`
}

func (h *SessionHandler) AppendAdaptations(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req appendAdaptationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	n, err := h.sessions.AppendAdaptations(dbctx.Context{Ctx: c.Request.Context()}, id, req.Events)
	if err != nil {
		respondServiceError(c, "adaptation_append_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"appended": n})
}

func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return uuid.Nil, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, code string, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		response.RespondError(c, http.StatusBadRequest, "invalid_input", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, code, err)
	}
}
