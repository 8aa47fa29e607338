package api

import (
	"net/http"
	"strconv"

	"tutor-scheduling/internal/domain/scheduling"
	reqdto "tutor-scheduling/internal/handler/dto/request"
	resdto "tutor-scheduling/internal/handler/dto/response"
	"tutor-scheduling/internal/handler/httperr"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List available slots
// @Description Free, future slots of active windows grouped by calendar date
// @Tags availability
// @Produce json
// @Param ownerId query []string false "Tutor IDs" collectionFormat(multi)
// @Param windowId query []string false "Window IDs" collectionFormat(multi)
// @Param subject query string false "Subject"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) ListAvailable(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	view, err := h.q.AvailableByDate(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Joint availability
// @Description Availability across several tutors; mode all keeps only shared start times
// @Tags availability
// @Produce json
// @Param ownerId query []string true "Tutor IDs" collectionFormat(multi)
// @Param mode query string false "any or all" Enums(any, all)
// @Param subject query string false "Subject"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {object} resdto.JointAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability/joint [get]
func (h *AvailabilityHandler) Joint(c *gin.Context) {
	var query reqdto.JointAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	view, err := h.q.JointAvailability(c.Request.Context(), filter)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidJointQuery) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJointAvailabilityView(view))
}

// @Summary List window slots
// @Description Every slot of a window with its booking state
// @Tags windows
// @Produce json
// @Param id path string true "Window ID"
// @Success 200 {object} resdto.WindowSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/windows/{id}/slots [get]
func (h *AvailabilityHandler) WindowSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.WindowSlots(c.Request.Context(), id)
	if err != nil {
		if queries.IsNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Window not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slots", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWindowSlotsView(view))
}

// @Summary Consecutive bookable runs
// @Description Runs of back-to-back bookable slots of the requested length
// @Tags windows
// @Produce json
// @Param id path string true "Window ID"
// @Param count query int true "Run length in slots"
// @Success 200 {object} resdto.RunsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/windows/{id}/runs [get]
func (h *AvailabilityHandler) Runs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var query reqdto.RunsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid count", nil)
		return
	}

	view, err := h.q.ConsecutiveRuns(c.Request.Context(), id, query.Count)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidRunLength):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid count", nil)
		case queries.IsNotFound(err):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Window not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to find runs", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRunsView(view))
}

// @Summary Slot status
// @Description Live booking state and bookability of one slot
// @Tags windows
// @Produce json
// @Param id path string true "Window ID"
// @Param ordinal path int true "Slot ordinal"
// @Success 200 {object} resdto.SlotStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/windows/{id}/slots/{ordinal} [get]
func (h *AvailabilityHandler) SlotStatus(c *gin.Context) {
	ref, ok := parseSlotRef(c)
	if !ok {
		return
	}

	view, err := h.q.SlotStatus(c.Request.Context(), ref)
	if err != nil {
		if queries.IsNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check slot", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotStatusView(view))
}

func parseSlotRef(c *gin.Context) (scheduling.SlotRef, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return scheduling.SlotRef{}, false
	}
	ordinal, err := strconv.Atoi(c.Param("ordinal"))
	if err != nil || ordinal < 0 {
		if err == nil {
			err = errs.New("negative ordinal")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ordinal", nil)
		return scheduling.SlotRef{}, false
	}
	return scheduling.SlotRef{WindowID: id, Ordinal: ordinal}, true
}
