package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyQueries queries.PropertyQueries
}

func NewPropertyHandler(propertyQueries queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{propertyQueries: propertyQueries}
}

// @Summary Property availability
// @Description Blocked spans and disabled dates in [from, to). Defaults to the next year.
// @Tags properties
// @Produce json
// @Param slug path string true "Property slug"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{slug}/availability [get]
func (h *PropertyHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBindError(c, err)
		return
	}
	window, err := q.ToWindow()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.propertyQueries.Availability(c.Request.Context(), c.Param("slug"), window)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromAvailabilityView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Price a stay
// @Tags properties
// @Produce json
// @Param slug path string true "Property slug"
// @Param checkIn query string true "YYYY-MM-DD"
// @Param checkOut query string true "YYYY-MM-DD"
// @Param guests query int false "Guest count"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{slug}/pricing [get]
func (h *PropertyHandler) Pricing(c *gin.Context) {
	var q reqdto.PricingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBindError(c, err)
		return
	}
	req, err := q.ToPriceRequest()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.propertyQueries.Price(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromPriceView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Export the availability calendar
// @Tags properties
// @Produce text/calendar
// @Param slug path string true "Property slug"
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} httperr.Response
// @Router /properties/{slug}/calendar.ics [get]
func (h *PropertyHandler) CalendarExport(c *gin.Context) {
	body, err := h.propertyQueries.ExportCalendar(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}
