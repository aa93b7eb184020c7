package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chirp-backend/internal/http/response"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
	"github.com/yungbote/chirp-backend/internal/services"
)

type GameConfigHandler struct {
	configs services.GameConfigService
}

func NewGameConfigHandler(configs services.GameConfigService) *GameConfigHandler {
	return &GameConfigHandler{configs: configs}
}

func (h *GameConfigHandler) Get(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	cfg, err := h.configs.Configuration(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		respondServiceError(c, "game_config_failed", err)
		return
	}
	response.RespondOK(c, cfg)
}

func (h *GameConfigHandler) Refresh(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	cfg, err := h.configs.Refresh(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		respondServiceError(c, "game_config_refresh_failed", err)
		return
	}
	response.RespondOK(c, cfg)
}
