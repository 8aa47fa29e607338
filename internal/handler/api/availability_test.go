//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/handler/api"
	resdto "tutor-scheduling/internal/handler/dto/response"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/queries"
	"tutor-scheduling/internal/usecase/shared"
	"tutor-scheduling/tests/common/builder"
	"tutor-scheduling/tests/common/httptest"
	queriesmock "tutor-scheduling/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/availability", s.handler.ListAvailable)
	s.router.GET("/availability/joint", s.handler.Joint)
	s.router.GET("/windows/:id/slots", s.handler.WindowSlots)
	s.router.GET("/windows/:id/runs", s.handler.Runs)
	s.router.GET("/windows/:id/slots/:ordinal", s.handler.SlotStatus)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

var errStoreDown = errs.Mark(errors.New("connection reset"), queries.ErrQueryFailed)

// ================================================================================
// TestListAvailable
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestListAvailable() {
	w := builder.NewWindowBuilder().BuildDomain()
	slots := scheduling.Generate(w)
	view := &queries.AvailabilityView{
		Timezone:    "Asia/Tokyo",
		GeneratedAt: builder.BaseTime.Add(-24 * time.Hour),
		MinLeadTime: time.Hour,
		Days:        []queries.DayAvailability{{Date: "2030-01-07", Slots: slots}},
		Total:       len(slots),
	}

	s.Run("success: filter is parsed from the query string", func() {
		owner := uuid.New()
		from := builder.BaseTime
		to := builder.BaseTime.Add(48 * time.Hour)
		subject := "chemistry"
		want := shared.WindowFilter{OwnerIDs: []uuid.UUID{owner}, Subject: &subject, From: &from, To: &to}

		s.mockQueries.EXPECT().AvailableByDate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, got shared.WindowFilter) (*queries.AvailabilityView, error) {
				if diff := cmp.Diff(want, got); diff != "" {
					s.T().Errorf("filter mismatch (-want +got):\n%s", diff)
				}
				return view, nil
			}).Times(1)

		q := url.Values{}
		q.Set("ownerId", owner.String())
		q.Set("subject", subject)
		q.Set("from", from.Format(time.RFC3339))
		q.Set("to", to.Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?"+q.Encode(), nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Asia/Tokyo", body.Timezone)
		s.Equal("1h0m0s", body.MinLeadTime)
		s.Equal(3, body.Total)
		s.Require().Len(body.Days, 1)
		s.Equal("2030-01-07", body.Days[0].Date)
		s.Require().Len(body.Days[0].Slots, 3)
		s.Equal(slots[0].ID.String(), body.Days[0].Slots[0].ID)
		s.InDelta(1.0, body.Days[0].Slots[0].DurationHours, 1e-9)
		s.Equal("free", body.Days[0].Slots[0].State)
		s.Nil(body.Days[0].Slots[0].BookedBy)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		for _, query := range []string{
			"ownerId=nope",
			"windowId=123",
			"from=yesterday",
			"from=2030-01-08T00:00:00Z&to=2030-01-07T00:00:00Z",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?"+query, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().AvailableByDate(gomock.Any(), gomock.Any()).Return(nil, errStoreDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load availability")
	})
}

// ================================================================================
// TestJoint
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestJoint() {
	alice, bob := uuid.New(), uuid.New()

	s.Run("success: mode all returns common slots", func() {
		aw := builder.NewWindowBuilder().OwnedBy(alice).BuildDomain()
		bw := builder.NewWindowBuilder().OwnedBy(bob).BuildDomain()
		common := scheduling.CommonSlots(scheduling.GenerateMany([]scheduling.TimeWindow{aw, bw}), []uuid.UUID{alice, bob})

		s.mockQueries.EXPECT().JointAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.JointFilter) (*queries.JointAvailabilityView, error) {
				s.Equal([]uuid.UUID{alice, bob}, f.OwnerIDs)
				s.Equal(scheduling.JointModeAll, f.Mode)
				return &queries.JointAvailabilityView{
					Mode:     scheduling.JointModeAll,
					Timezone: "UTC",
					OwnerIDs: f.OwnerIDs,
					Common:   common,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability/joint?ownerId="+alice.String()+"&ownerId="+bob.String()+"&mode=all", nil)

		var body resdto.JointAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("all", body.Mode)
		s.Len(body.Common, 3)
		s.Len(body.Common[0].Slots, 2)
		s.Empty(body.Days)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		for _, query := range []string{
			"",
			"ownerId=" + alice.String() + "&mode=some",
			"ownerId=bad",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/joint?"+query, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: 400 when the usecase rejects the combination", func() {
		s.mockQueries.EXPECT().JointAvailability(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(queries.ErrInvalidJointQuery, "mode all needs at least two owners")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/joint?ownerId="+alice.String()+"&mode=all", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestWindowSlots / TestRuns
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestWindowSlots() {
	w := builder.NewWindowBuilder().BuildDomain()

	s.Run("success: slots and conflicts", func() {
		b1 := builder.NewBookingBuilder().ForSlot(w.ID, 0).BuildDomain()
		b2 := builder.NewBookingBuilder().ForSlot(w.ID, 0).BuildDomain()
		res := scheduling.Reconcile(scheduling.Generate(w), []scheduling.Booking{b1, b2})

		s.mockQueries.EXPECT().WindowSlots(gomock.Any(), w.ID).Return(&queries.WindowSlotsView{
			Window:    w,
			Slots:     res.Slots,
			Conflicts: res.Conflicts,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/windows/"+w.ID.String()+"/slots", nil)

		var body resdto.WindowSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(w.ID.String(), body.Window.ID)
		s.Equal("active", body.Window.Status)
		s.Len(body.Slots, 3)
		s.True(body.Slots[0].Conflicted)
		s.Require().Len(body.Conflicts, 1)
		s.ElementsMatch([]string{b1.ID.String(), b2.ID.String()}, body.Conflicts[0].BookingIDs)
	})

	s.Run("error: 404 for unknown window", func() {
		s.mockQueries.EXPECT().WindowSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), queries.ErrWindowNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/windows/"+uuid.NewString()+"/slots", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Window not found")
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/windows/abc/slots", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *AvailabilityHandlerTestSuite) TestRuns() {
	w := builder.NewWindowBuilder().BuildDomain()
	base := "/windows/" + w.ID.String() + "/runs"

	s.Run("success: runs of the requested length", func() {
		runs := scheduling.FindRuns(scheduling.Generate(w), 2)
		s.mockQueries.EXPECT().ConsecutiveRuns(gomock.Any(), w.ID, 2).
			Return(&queries.RunsView{WindowID: w.ID, Count: 2, Runs: runs}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?count=2", nil)

		var body resdto.RunsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
		s.Len(body.Runs, 2)
		s.Len(body.Runs[0], 2)
	})

	s.Run("error: 400 on missing or invalid count", func() {
		for _, q := range []string{"", "?count=0", "?count=-2", "?count=two"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid count")
		}
	})

	s.Run("error: 404 for unknown window", func() {
		s.mockQueries.EXPECT().ConsecutiveRuns(gomock.Any(), gomock.Any(), 3).
			Return(nil, errs.Mark(errors.New("no rows"), queries.ErrWindowNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?count=3", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Window not found")
	})
}

// ================================================================================
// TestSlotStatus
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestSlotStatus() {
	w := builder.NewWindowBuilder().BuildDomain()
	path := "/windows/" + w.ID.String() + "/slots/0"

	s.Run("success: booked slot is not bookable", func() {
		b := builder.NewBookingBuilder().ForSlot(w.ID, 0).BuildDomain()
		slot := scheduling.Reconcile(scheduling.Generate(w)[:1], []scheduling.Booking{b}).Slots[0]
		now := builder.BaseTime.Add(-24 * time.Hour)

		s.mockQueries.EXPECT().SlotStatus(gomock.Any(), scheduling.SlotRef{WindowID: w.ID, Ordinal: 0}).
			Return(&queries.SlotStatusView{
				Slot:       slot,
				Validation: scheduling.Validate(slot, now, time.Hour),
				Report:     scheduling.AvailabilityReport{Available: false, ConflictingBooking: &b},
				CheckedAt:  now,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)

		var body resdto.SlotStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Bookable)
		s.False(body.Available)
		s.Equal([]string{"ALREADY_BOOKED"}, body.Errors)
		s.Require().NotNil(body.ConflictingBooking)
		s.Equal(b.ID.String(), body.ConflictingBooking.ID)
		s.Equal(b.ReservedBy.String(), body.ConflictingBooking.ReservedBy)
		s.Require().NotNil(body.Slot.BookedBy)
		s.Equal(b.ReservedBy.String(), *body.Slot.BookedBy)
	})

	s.Run("error: 404 for a stale ordinal", func() {
		s.mockQueries.EXPECT().SlotStatus(gomock.Any(), gomock.Any()).Return(nil, scheduling.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/windows/"+w.ID.String()+"/slots/9", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})

	s.Run("error: 400 on invalid ordinal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/windows/"+w.ID.String()+"/slots/-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ordinal")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().SlotStatus(gomock.Any(), gomock.Any()).Return(nil, errStoreDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to check slot")
	})
}
