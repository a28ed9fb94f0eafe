package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
	"github.com/fieldtrax/sales_visit_app/internal/utils"
)

// visitHandler handles HTTP requests related to visit reports.
type visitHandler struct {
	visitService portssvc.VisitSvcFacade
}

func newVisitHandler(vs portssvc.VisitSvcFacade) *visitHandler {
	return &visitHandler{visitService: vs}
}

// registerVisitRoutes registers all visit-report routes.
func registerVisitRoutes(rg *gin.RouterGroup, visitService portssvc.VisitSvcFacade) {
	h := newVisitHandler(visitService)

	visits := rg.Group("/visits")
	{
		visits.POST("", h.createVisit)
		visits.GET("", h.listVisits)
		visits.GET("/export", h.exportVisits)
		visits.GET("/:visitID", h.getVisit)
		visits.PUT("/:visitID", h.updateVisit)
		visits.DELETE("/:visitID", h.deleteVisit)
		visits.POST("/:visitID/duplicate", h.duplicateVisit)
		visits.PUT("/:visitID/status", h.setVisitStatus)
	}
}

func (h *visitHandler) createVisit(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SaveVisitRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.CreateVisitEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVisitResponse(visit))
}

func (h *visitHandler) listVisits(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	visits, err := h.visitService.ListVisitEntries(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitsResponse(visits))
}

func (h *visitHandler) getVisit(c *gin.Context) {
	visit, err := h.visitService.GetVisitEntry(c.Request.Context(), c.Param("visitID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

func (h *visitHandler) updateVisit(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SaveVisitRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.UpdateVisitEntry(c.Request.Context(), c.Param("visitID"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

func (h *visitHandler) deleteVisit(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.visitService.DeleteVisitEntry(c.Request.Context(), c.Param("visitID"), actorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *visitHandler) duplicateVisit(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	visit, err := h.visitService.DuplicateVisitEntry(c.Request.Context(), c.Param("visitID"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVisitResponse(visit))
}

func (h *visitHandler) setVisitStatus(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SetVisitStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.SetApprovalStatus(c.Request.Context(), c.Param("visitID"), req.Status, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

// exportVisits streams the acting user's visible reports as CSV (default) or XLSX.
func (h *visitHandler) exportVisits(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	visits, err := h.visitService.ListVisitEntries(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	stamp := time.Now().Format("2006-01-02")
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=visit_reports_%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", []byte(utils.VisitEntriesCSV(visits)))
	case "xlsx":
		data, err := utils.VisitEntriesXLSX(visits)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=visit_reports_%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
	}
}
