//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/handler/api"
	resdto "tutor-scheduling/internal/handler/dto/response"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/commands"
	"tutor-scheduling/internal/usecase/queries"
	"tutor-scheduling/tests/common/builder"
	"tutor-scheduling/tests/common/httptest"
	"tutor-scheduling/tests/common/testutil"
	commandsmock "tutor-scheduling/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/windows/:id/slots/:ordinal/bookings", s.handler.Reserve)
	s.router.DELETE("/bookings/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func reserveResult(windowID uuid.UUID, ordinal int, replayed bool) *commands.ReserveResult {
	w := builder.NewWindowBuilder().With(func(b *builder.WindowBuilder) { b.ID = windowID }).BuildDomain()
	b := builder.NewBookingBuilder().ForSlot(windowID, ordinal).BuildDomain()
	slot, _ := scheduling.ResolveSlot(w, ordinal)
	slot = scheduling.Reconcile([]scheduling.Slot{slot}, []scheduling.Booking{b}).Slots[0]
	return &commands.ReserveResult{Booking: b, Slot: slot, Replayed: replayed}
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *BookingHandlerTestSuite) TestReserve() {
	windowID := uuid.New()
	url := "/windows/" + windowID.String() + "/slots/1/bookings"
	reqBody := builder.NewBookingBuilder().BuildReserveRequestDTO()

	s.Run("success: returns 201 Created with the booking", func() {
		result := reserveResult(windowID, 1, false)
		s.mockCommands.EXPECT().Reserve(gomock.Any(), commands.ReserveInput{
			WindowID:   windowID,
			Ordinal:    1,
			ReservedBy: reqBody.ReservedBy,
			SessionRef: reqBody.SessionRef,
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.Booking.ID.String(), body.Booking.ID)
		s.Equal("reserved", body.Booking.Status)
		s.Equal(windowID.String(), body.Slot.WindowID)
		s.Equal("booked", body.Slot.State)
		s.False(body.Replayed)
		s.Equal("/api/bookings/"+result.Booking.ID.String(), rec.Header().Get("Location"))
	})

	s.Run("success: replay returns 200 without Location", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(reserveResult(windowID, 1, true), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: reservedBy (required)", mutate: testutil.Field("reservedBy", nil)},
			{name: "missing field: sessionRef (required)", mutate: testutil.Field("sessionRef", nil)},
			{name: "empty sessionRef", mutate: testutil.Field("sessionRef", "")},
			{name: "sessionRef too long (201 chars)", mutate: testutil.Field("sessionRef", strings.Repeat("a", 201))},
			{name: "reservedBy not a uuid", mutate: testutil.Field("reservedBy", "student-1")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed path", func() {
		for _, path := range []string{
			"/windows/not-a-uuid/slots/1/bookings",
			"/windows/" + windowID.String() + "/slots/x/bookings",
			"/windows/" + windowID.String() + "/slots/-1/bookings",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody)
			s.Equal(http.StatusBadRequest, rec.Code, path)
		}
	})

	s.Run("error: usecase outcomes map to statuses", func() {
		cases := []struct {
			name        string
			err         error
			expectCode  int
			expectMsg   string
			expectKinds []string
		}{
			{
				name:        "already booked",
				err:         &scheduling.ValidationError{Kinds: []scheduling.ErrorKind{scheduling.KindAlreadyBooked}},
				expectCode:  http.StatusConflict,
				expectMsg:   "Slot already booked",
				expectKinds: []string{"ALREADY_BOOKED"},
			},
			{
				name:        "lead time",
				err:         &scheduling.ValidationError{Kinds: []scheduling.ErrorKind{scheduling.KindInsufficientLeadTime}},
				expectCode:  http.StatusUnprocessableEntity,
				expectMsg:   "Slot is not bookable",
				expectKinds: []string{"INSUFFICIENT_LEAD_TIME"},
			},
			{
				name:        "in the past",
				err:         &scheduling.ValidationError{Kinds: []scheduling.ErrorKind{scheduling.KindSlotInPast, scheduling.KindInsufficientLeadTime}},
				expectCode:  http.StatusUnprocessableEntity,
				expectMsg:   "Slot is not bookable",
				expectKinds: []string{"SLOT_IN_PAST", "INSUFFICIENT_LEAD_TIME"},
			},
			{name: "slot not found", err: scheduling.ErrSlotNotFound, expectCode: http.StatusNotFound, expectMsg: "Slot not found"},
			{name: "window not found", err: errs.Mark(errors.New("no rows"), queries.ErrWindowNotFound), expectCode: http.StatusNotFound},
			{name: "invalid input", err: commands.ErrInvalidReserveInput, expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "store failure", err: errs.Mark(errors.New("connection reset"), commands.ErrReservationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Reservation failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				if tc.expectKinds != nil {
					httptest.AssertErrorKinds(s.T(), rec, tc.expectKinds...)
				}
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204 whether or not anything changed", func() {
		for _, cancelled := range []bool{true, false} {
			id := uuid.New()
			s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
				Return(&commands.CancelResult{BookingID: id, Cancelled: cancelled}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil)

			s.Equal(http.StatusNoContent, rec.Code)
			s.Empty(rec.Body.String())
		}
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(nil, commands.ErrCancellationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+uuid.NewString(), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Cancellation failed")
	})
}
