package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// planEntryHandler handles HTTP requests for per-day plan entries.
type planEntryHandler struct {
	entryService portssvc.PlanEntrySvcFacade
}

func newPlanEntryHandler(es portssvc.PlanEntrySvcFacade) *planEntryHandler {
	return &planEntryHandler{entryService: es}
}

// registerPlanEntryRoutes registers entry routes, both nested under a plan and
// addressed directly by entry id.
func registerPlanEntryRoutes(rg *gin.RouterGroup, entryService portssvc.PlanEntrySvcFacade) {
	h := newPlanEntryHandler(entryService)

	plans := rg.Group("/plans/:planID/entries")
	{
		plans.POST("", h.addEntry)
		plans.POST("/bulk", h.bulkAddEntries)
		plans.GET("", h.listEntries)
		plans.GET("/stats", h.conversionStats)
	}

	entries := rg.Group("/entries")
	{
		entries.GET("", h.entriesForDate)
		entries.POST("/:entryID/checkin", h.checkIn)
		entries.POST("/:entryID/checkout", h.checkOut)
		entries.POST("/:entryID/convert", h.convertToVisit)
		entries.PUT("/:entryID/status", h.setStatus)
	}
}

func (h *planEntryHandler) addEntry(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SaveEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.entryService.AddEntry(c.Request.Context(), c.Param("planID"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusCreated
	if req.EntryID != "" {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToEntryResponse(entry))
}

func (h *planEntryHandler) bulkAddEntries(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.BulkAddEntriesRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.entryService.BulkAddEntries(c.Request.Context(), c.Param("planID"), req.Entries, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *planEntryHandler) listEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntriesByPlan(c.Request.Context(), c.Param("planID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

func (h *planEntryHandler) conversionStats(c *gin.Context) {
	stats, err := h.entryService.PlanConversionStats(c.Request.Context(), c.Param("planID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// entriesForDate returns the day view across all plans, e.g. for today's visits.
func (h *planEntryHandler) entriesForDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return
	}

	entries, err := h.entryService.EntriesForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

func (h *planEntryHandler) checkIn(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CheckTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.entryService.RecordCheckIn(c.Request.Context(), c.Param("entryID"), req.Time, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *planEntryHandler) checkOut(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CheckTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, warnings, err := h.entryService.RecordCheckOut(c.Request.Context(), c.Param("entryID"), req.Time, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckOutResponse{Entry: dto.ToEntryResponse(entry), Warnings: warnings})
}

func (h *planEntryHandler) setStatus(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SetEntryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.entryService.SetEntryStatus(c.Request.Context(), c.Param("entryID"), req.Status, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// convertToVisit turns an entry into a visit report. Converting an already converted
// entry is not an error: the existing report comes back with a conflict status so
// clients can redirect to it.
func (h *planEntryHandler) convertToVisit(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	visit, err := h.entryService.ConvertEntryToVisit(c.Request.Context(), c.Param("entryID"), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyConverted) && visit != nil {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Entry already converted",
				"visit": dto.ToVisitResponse(visit),
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVisitResponse(visit))
}
