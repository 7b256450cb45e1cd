package api

import (
	"net/http"
	"strings"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const idempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

var errIdempotencyKeyFormat = errs.New("idempotency key must be 1-255 characters")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit a booking
// @Description Creates a reservation for instant-book properties with both dates, otherwise an inquiry
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the original result when repeated"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed request"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), fieldDetail{Field: idempotencyKeyHeader})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBindError(c, bindErr)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), in, key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header("Idempotent-Replayed", "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

// @Summary Get a booking by confirmation code
// @Tags bookings
// @Produce json
// @Param code path string true "Confirmation code (RSV-... or INQ-...)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{code} [get]
func (h *BookingHandler) GetByCode(c *gin.Context) {
	view, err := h.bookingQueries.GetByConfirmationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// a missing header means the request is not idempotent
func idempotencyKey(c *gin.Context) (*string, error) {
	raw, present := c.Request.Header[idempotencyKeyHeader]
	if !present {
		return nil, nil
	}
	key := ""
	if len(raw) > 0 {
		key = strings.TrimSpace(raw[0])
	}
	if key == "" || len(key) > maxIdempotencyKeyLength {
		return nil, errIdempotencyKeyFormat
	}
	return &key, nil
}
