package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
	"github.com/fieldtrax/sales_visit_app/internal/middleware"
)

// sessionHandler handles persona selection and lookup.
type sessionHandler struct {
	userService portssvc.UserSvcFacade
}

func newSessionHandler(us portssvc.UserSvcFacade) *sessionHandler {
	return &sessionHandler{userService: us}
}

// registerSessionRoutes registers all persona-related routes.
func registerSessionRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newSessionHandler(userService)

	session := rg.Group("/session")
	{
		session.POST("", h.selectPersona)
		session.GET("", h.currentPersona)
	}
}

// selectPersona creates or reuses a user and makes it the acting persona.
func (h *sessionHandler) selectPersona(c *gin.Context) {
	var req dto.SelectPersonaRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.SelectPersona(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if logger := middleware.GetLoggerFromCtx(c.Request.Context()); logger != nil {
		logger.Info("Persona selected", slog.String("user_id", user.UserID))
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// currentPersona returns the persisted persona.
func (h *sessionHandler) currentPersona(c *gin.Context) {
	user, err := h.userService.GetCurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
