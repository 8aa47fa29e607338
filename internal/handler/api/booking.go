package api

import (
	"net/http"

	reqdto "tutor-scheduling/internal/handler/dto/request"
	resdto "tutor-scheduling/internal/handler/dto/response"
	"tutor-scheduling/internal/handler/httperr"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Reserve slot
// @Description Atomically reserve one slot. Repeating the same reservedBy and sessionRef returns the existing booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Window ID"
// @Param ordinal path int true "Slot ordinal"
// @Param request body reqdto.ReserveSlotRequest true "Reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Success 200 {object} resdto.ReserveResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/windows/{id}/slots/{ordinal}/bookings [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	ref, ok := parseSlotRef(c)
	if !ok {
		return
	}
	var req reqdto.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(ref.WindowID, ref.Ordinal))
	if err != nil {
		if errs.Is(err, commands.ErrInvalidReserveInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		abortWithSchedulingError(c, err, "Reservation failed")
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	} else {
		c.Header("Location", "/api/bookings/"+result.Booking.ID.String())
	}
	c.JSON(status, resdto.FromReserveResult(result))
}

// @Summary Cancel booking
// @Description Cancel a booking. Unknown and already cancelled bookings are accepted as well.
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if _, err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancellation failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
