package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// configHandler handles the system configuration endpoints.
type configHandler struct {
	configService portssvc.ConfigSvcFacade
}

func newConfigHandler(cs portssvc.ConfigSvcFacade) *configHandler {
	return &configHandler{configService: cs}
}

// registerConfigRoutes registers system configuration routes.
func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.ConfigSvcFacade) {
	h := newConfigHandler(configService)

	cfg := rg.Group("/config")
	{
		cfg.GET("", h.getConfig)
		cfg.PUT("", h.updateConfig)
	}
}

func (h *configHandler) getConfig(c *gin.Context) {
	cfg, err := h.configService.GetConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConfigResponse(cfg))
}

func (h *configHandler) updateConfig(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.configService.SetApprovalRequired(c.Request.Context(), *req.ApprovalRequired, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConfigResponse(cfg))
}
