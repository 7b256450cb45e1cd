package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	syncCommands    commands.CalendarSyncCommands
	blockedCommands commands.BlockedDateCommands
	propertyQueries queries.PropertyQueries
}

func NewAdminHandler(
	syncCommands commands.CalendarSyncCommands,
	blockedCommands commands.BlockedDateCommands,
	propertyQueries queries.PropertyQueries,
) *AdminHandler {
	return &AdminHandler{
		syncCommands:    syncCommands,
		blockedCommands: blockedCommands,
		propertyQueries: propertyQueries,
	}
}

// @Summary Import the external calendar
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Property slug"
// @Success 200 {object} resdto.SyncResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/properties/{slug}/calendar/sync [post]
func (h *AdminHandler) SyncCalendar(c *gin.Context) {
	imported, err := h.syncCommands.Sync(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SyncResponse{Imported: imported})
}

// @Summary List blocked dates
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Property slug"
// @Success 200 {array} resdto.BlockedDateResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/properties/{slug}/blocked-dates [get]
func (h *AdminHandler) ListBlockedDates(c *gin.Context) {
	views, err := h.propertyQueries.BlockedDates(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromBlockedIntervalViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Block dates manually
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slug path string true "Property slug"
// @Param request body reqdto.CreateBlockedDatesRequest true "Span to block"
// @Success 201 {object} resdto.BlockedDateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/properties/{slug}/blocked-dates [post]
func (h *AdminHandler) AddBlockedDates(c *gin.Context) {
	var req reqdto.CreateBlockedDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.blockedCommands.Add(c.Request.Context(), c.Param("slug"), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromBlockedIntervalView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Remove manually blocked dates
// @Tags admin
// @Security BearerAuth
// @Param slug path string true "Property slug"
// @Param id path string true "Blocked interval ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/properties/{slug}/blocked-dates/{id} [delete]
func (h *AdminHandler) DeleteBlockedDates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid blocked interval ID format", fieldDetail{Field: "id"})
		return
	}

	if err := h.blockedCommands.Remove(c.Request.Context(), c.Param("slug"), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
