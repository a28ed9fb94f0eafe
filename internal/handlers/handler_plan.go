package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// planHandler handles HTTP requests related to travel plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanRoutes registers all travel-plan routes.
func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	plans := rg.Group("/plans")
	{
		plans.POST("", h.createPlan)
		plans.GET("", h.listPlans)
		plans.GET("/:planID", h.getPlan)
		plans.POST("/:planID/submit", h.submitPlan)
		plans.POST("/:planID/approve", h.approvePlan)
		plans.POST("/:planID/reject", h.rejectPlan)
		plans.POST("/:planID/comments", h.commentOnPlan)
	}
}

func (h *planHandler) createPlan(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreatePlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan))
}

func (h *planHandler) listPlans(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlansForUser(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPlansResponse(plans))
}

func (h *planHandler) getPlan(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("planID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

func (h *planHandler) submitPlan(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	plan, err := h.planService.SubmitPlan(c.Request.Context(), c.Param("planID"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

func (h *planHandler) approvePlan(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	plan, err := h.planService.ApprovePlan(c.Request.Context(), c.Param("planID"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

func (h *planHandler) rejectPlan(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RejectPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planService.RejectPlan(c.Request.Context(), c.Param("planID"), actorID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

func (h *planHandler) commentOnPlan(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CommentPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planService.CommentOnPlan(c.Request.Context(), c.Param("planID"), actorID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}
