//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/pkg/clock"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/pkg/metrics"
	"tutor-scheduling/internal/usecase/commands"
	"tutor-scheduling/internal/usecase/shared"
	"tutor-scheduling/tests/common/builder"
	"tutor-scheduling/tests/common/memstore"
	sharedmock "tutor-scheduling/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type BookingCommandsSuite struct {
	suite.Suite
	store   *memstore.Store
	clock   *clock.MockClock
	metrics *metrics.Metrics
	cmds    commands.BookingCommands
	window  scheduling.TimeWindow
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsSuite))
}

func (s *BookingCommandsSuite) SetupTest() {
	s.store = memstore.New()
	// the day before the default window
	s.clock = clock.NewMockClock(builder.BaseTime.Add(-24 * time.Hour))
	s.metrics = metrics.New()
	s.window = builder.NewWindowBuilder().BuildDomain()
	s.store.AddWindow(s.window)

	policy := shared.SchedulingPolicy{Location: time.UTC, MinLeadTime: time.Hour}
	s.cmds = commands.NewBookingCommands(s.store, s.store, s.store, s.clock, policy, s.metrics, nil)
}

func (s *BookingCommandsSuite) input(ordinal int) commands.ReserveInput {
	return commands.ReserveInput{
		WindowID:   s.window.ID,
		Ordinal:    ordinal,
		ReservedBy: uuid.New(),
		SessionRef: "session-" + uuid.NewString()[:8],
	}
}

func (s *BookingCommandsSuite) reserved(outcome string) float64 {
	return testutil.ToFloat64(s.metrics.ReservationCounter(outcome))
}

// =============================================================================
// Reserve
// =============================================================================

func (s *BookingCommandsSuite) TestReserve() {
	s.Run("free slot is booked", func() {
		s.SetupTest()
		in := s.input(1)

		res, err := s.cmds.Reserve(context.Background(), in)

		s.Require().NoError(err)
		s.False(res.Replayed)
		s.Equal(in.ReservedBy, res.Booking.ReservedBy)
		s.Equal(scheduling.BookingStatusReserved, res.Booking.Status)
		s.Equal(s.clock.Now(), res.Booking.ReservedAt)
		s.True(res.Slot.IsBooked())
		s.Equal(scheduling.SlotID(s.window.ID, 1), res.Slot.ID)
		s.Require().NotNil(res.Slot.BookingID)
		s.Equal(res.Booking.ID, *res.Slot.BookingID)

		s.Len(s.store.ActiveBookings(s.window.ID, 1), 1)
		s.InDelta(1, s.reserved(metrics.OutcomeReserved), 0)
	})

	s.Run("session ref is trimmed", func() {
		s.SetupTest()
		in := s.input(0)
		in.SessionRef = "  lesson-42  "

		res, err := s.cmds.Reserve(context.Background(), in)

		s.Require().NoError(err)
		s.Equal("lesson-42", res.Booking.SessionRef)
	})

	s.Run("same request twice is a replay", func() {
		s.SetupTest()
		in := s.input(0)

		first, err := s.cmds.Reserve(context.Background(), in)
		s.Require().NoError(err)
		second, err := s.cmds.Reserve(context.Background(), in)
		s.Require().NoError(err)

		s.True(second.Replayed)
		s.Equal(first.Booking.ID, second.Booking.ID)
		s.Len(s.store.ActiveBookings(s.window.ID, 0), 1)
		s.EqualValues(1, s.store.ReserveCalls())
		s.InDelta(1, s.reserved(metrics.OutcomeReplayed), 0)
	})

	s.Run("slot held by someone else", func() {
		s.SetupTest()
		_, err := s.cmds.Reserve(context.Background(), s.input(0))
		s.Require().NoError(err)

		_, err = s.cmds.Reserve(context.Background(), s.input(0))

		s.Require().ErrorIs(err, scheduling.ErrAlreadyBooked)
		var verr *scheduling.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Contains(verr.Kinds, scheduling.KindAlreadyBooked)
		s.InDelta(1, s.reserved(metrics.OutcomeAlreadyBooked), 0)
	})

	s.Run("lead time boundary is rejected", func() {
		s.SetupTest()
		// slot 0 starts exactly one hour from now
		s.clock.Set(s.window.Start.Add(-time.Hour))

		_, err := s.cmds.Reserve(context.Background(), s.input(0))

		s.Require().ErrorIs(err, scheduling.ErrInsufficientLeadTime)
		s.NotErrorIs(err, scheduling.ErrSlotInPast)
		s.Empty(s.store.AllBookings())

		_, err = s.cmds.Reserve(context.Background(), s.input(1))
		s.Require().NoError(err)
	})

	s.Run("past slot carries every failed rule", func() {
		s.SetupTest()
		s.clock.Set(s.window.Start.Add(30 * time.Minute))

		_, err := s.cmds.Reserve(context.Background(), s.input(0))

		var verr *scheduling.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal([]scheduling.ErrorKind{scheduling.KindSlotInPast, scheduling.KindInsufficientLeadTime}, verr.Kinds)
		s.InDelta(1, s.reserved(metrics.OutcomeInvalid), 0)
	})

	s.Run("unknown window or ordinal", func() {
		s.SetupTest()
		in := s.input(0)
		in.WindowID = uuid.New()

		_, err := s.cmds.Reserve(context.Background(), in)
		s.True(errs.Is(err, scheduling.ErrSlotNotFound), "got %v", err)

		_, err = s.cmds.Reserve(context.Background(), s.input(3))
		s.True(errs.Is(err, scheduling.ErrSlotNotFound), "got %v", err)
		s.InDelta(2, s.reserved(metrics.OutcomeNotFound), 0)
	})

	s.Run("cancelled window", func() {
		s.SetupTest()
		cancelled := builder.NewWindowBuilder().AsCancelled().BuildDomain()
		s.store.AddWindow(cancelled)
		in := s.input(0)
		in.WindowID = cancelled.ID

		_, err := s.cmds.Reserve(context.Background(), in)

		s.Require().ErrorIs(err, scheduling.ErrSlotNotFound)
	})

	s.Run("invalid input", func() {
		s.SetupTest()
		cases := map[string]func(*commands.ReserveInput){
			"nil party":        func(in *commands.ReserveInput) { in.ReservedBy = uuid.Nil },
			"blank session":    func(in *commands.ReserveInput) { in.SessionRef = "   " },
			"negative ordinal": func(in *commands.ReserveInput) { in.Ordinal = -1 },
		}
		for name, mutate := range cases {
			in := s.input(0)
			mutate(&in)

			_, err := s.cmds.Reserve(context.Background(), in)
			s.ErrorIs(err, commands.ErrInvalidReserveInput, name)
		}
		s.Zero(s.store.ReserveCalls())
	})
}

// Concurrent reservations of the same slot settle on exactly one booking.
func (s *BookingCommandsSuite) TestReserveConcurrently() {
	const attempts = 32

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		booked    int
		other     []error
	)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := s.input(0)
			in.SessionRef = fmt.Sprintf("race-%d", i)
			_, err := s.cmds.Reserve(context.Background(), in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.Is(err, scheduling.ErrAlreadyBooked):
				booked++
			default:
				other = append(other, err)
			}
		}(i)
	}
	wg.Wait()

	s.Empty(other)
	s.Equal(1, successes)
	s.Equal(attempts-1, booked)
	s.Len(s.store.ActiveBookings(s.window.ID, 0), 1)
}

// =============================================================================
// Cancel
// =============================================================================

func (s *BookingCommandsSuite) TestCancel() {
	s.Run("cancelling frees the slot and is idempotent", func() {
		s.SetupTest()
		res, err := s.cmds.Reserve(context.Background(), s.input(2))
		s.Require().NoError(err)

		first, err := s.cmds.Cancel(context.Background(), res.Booking.ID)
		s.Require().NoError(err)
		s.True(first.Cancelled)
		s.Empty(s.store.ActiveBookings(s.window.ID, 2))

		snapshot := s.store.AllBookings()
		second, err := s.cmds.Cancel(context.Background(), res.Booking.ID)
		s.Require().NoError(err)
		s.False(second.Cancelled)
		s.Equal(snapshot, s.store.AllBookings())

		s.InDelta(1, testutil.ToFloat64(s.metrics.CancellationCounter(metrics.OutcomeCancelled)), 0)
		s.InDelta(1, testutil.ToFloat64(s.metrics.CancellationCounter(metrics.OutcomeNoop)), 0)
	})

	s.Run("freed slot can be booked again", func() {
		s.SetupTest()
		res, err := s.cmds.Reserve(context.Background(), s.input(0))
		s.Require().NoError(err)
		_, err = s.cmds.Cancel(context.Background(), res.Booking.ID)
		s.Require().NoError(err)

		again, err := s.cmds.Reserve(context.Background(), s.input(0))

		s.Require().NoError(err)
		s.NotEqual(res.Booking.ID, again.Booking.ID)
	})

	s.Run("unknown booking is a no-op", func() {
		s.SetupTest()

		res, err := s.cmds.Cancel(context.Background(), uuid.New())

		s.Require().NoError(err)
		s.False(res.Cancelled)
	})
}

// =============================================================================
// Store failures (gomock)
// =============================================================================

type mocks struct {
	windows  *sharedmock.MockWindowSource
	bookings *sharedmock.MockBookingLookup
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	winRepo  *sharedmock.MockWindowTxRepository
	bookRepo *sharedmock.MockBookingRepository
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		windows:  sharedmock.NewMockWindowSource(ctrl),
		bookings: sharedmock.NewMockBookingLookup(ctrl),
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		winRepo:  sharedmock.NewMockWindowTxRepository(ctrl),
		bookRepo: sharedmock.NewMockBookingRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Windows().Return(m.winRepo).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookRepo).AnyTimes()
	return m
}

func TestBookingCommands_StoreFailures(t *testing.T) {
	ctx := context.Background()
	w := builder.NewWindowBuilder().BuildDomain()
	now := builder.BaseTime.Add(-24 * time.Hour)
	policy := shared.SchedulingPolicy{MinLeadTime: time.Hour}

	in := commands.ReserveInput{WindowID: w.ID, Ordinal: 0, ReservedBy: uuid.New(), SessionRef: "s-1"}

	testCases := []struct {
		name      string
		setup     func(*mocks)
		errIs     error
		errIsNot  error
		expectRes bool
	}{
		{
			name: "error: window lookup fails",
			setup: func(m *mocks) {
				m.windows.EXPECT().FindWindow(ctx, w.ID).Return(nil, infra.WrapRepoErr("find window", errDBConnectionLost))
			},
			errIs: commands.ErrReservationFailed,
		},
		{
			name: "error: pre-flight lookup fails",
			setup: func(m *mocks) {
				m.windows.EXPECT().FindWindow(ctx, w.ID).Return(&w, nil)
				m.bookings.EXPECT().FindBooking(ctx, w.ID, 0).Return(nil, errDBConnectionLost)
			},
			errIs: commands.ErrReservationFailed,
		},
		{
			name: "error: insert fails",
			setup: func(m *mocks) {
				m.windows.EXPECT().FindWindow(ctx, w.ID).Return(&w, nil)
				m.bookings.EXPECT().FindBooking(ctx, w.ID, 0).Return(nil, nil)
				m.winRepo.EXPECT().LockByID(gomock.Any(), w.ID).Return(&w, nil)
				m.bookRepo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("reserve", errDBConnectionLost))
			},
			errIs: commands.ErrReservationFailed,
		},
		{
			name: "error: window vanished before the lock",
			setup: func(m *mocks) {
				m.windows.EXPECT().FindWindow(ctx, w.ID).Return(&w, nil)
				m.bookings.EXPECT().FindBooking(ctx, w.ID, 0).Return(nil, nil)
				m.winRepo.EXPECT().LockByID(gomock.Any(), w.ID).Return(nil, infra.WrapRepoErr("lock", errDBConnectionLost, infra.KindNotFound))
			},
			errIs:    scheduling.ErrSlotNotFound,
			errIsNot: commands.ErrReservationFailed,
		},
		{
			name: "error: lost the race to another party",
			setup: func(m *mocks) {
				other := builder.NewBookingBuilder().ForSlot(w.ID, 0).BuildDomain()
				m.windows.EXPECT().FindWindow(ctx, w.ID).Return(&w, nil)
				m.bookings.EXPECT().FindBooking(ctx, w.ID, 0).Return(nil, nil)
				m.winRepo.EXPECT().LockByID(gomock.Any(), w.ID).Return(&w, nil)
				m.bookRepo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("reserve", errDBConnectionLost, infra.KindConflict))
				m.bookRepo.EXPECT().FindActive(gomock.Any(), w.ID, 0).Return(&other, nil)
			},
			errIs:    scheduling.ErrAlreadyBooked,
			errIsNot: commands.ErrReservationFailed,
		},
		{
			name: "success: lost the race to our own retry",
			setup: func(m *mocks) {
				mine := builder.NewBookingBuilder().ForSlot(w.ID, 0).With(func(b *builder.BookingBuilder) {
					b.ReservedBy = in.ReservedBy
					b.SessionRef = in.SessionRef
				}).BuildDomain()
				m.windows.EXPECT().FindWindow(ctx, w.ID).Return(&w, nil)
				m.bookings.EXPECT().FindBooking(ctx, w.ID, 0).Return(nil, nil)
				m.winRepo.EXPECT().LockByID(gomock.Any(), w.ID).Return(&w, nil)
				m.bookRepo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("reserve", errDBConnectionLost, infra.KindConflict))
				m.bookRepo.EXPECT().FindActive(gomock.Any(), w.ID, 0).Return(&mine, nil)
			},
			expectRes: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			tc.setup(m)

			cmds := commands.NewBookingCommands(m.uow, m.windows, m.bookings, clock.NewMockClock(now), policy, metrics.New(), nil)
			res, err := cmds.Reserve(ctx, in)

			if tc.expectRes {
				require.NoError(t, err)
				assert.True(t, res.Replayed)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			if tc.errIsNot != nil {
				assert.False(t, errs.Is(err, tc.errIsNot), "got %v", err)
			}
		})
	}

	t.Run("error: cancel fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMocks(ctrl)
		m.bookRepo.EXPECT().Cancel(gomock.Any(), gomock.Any(), now).Return(false, errDBConnectionLost)

		cmds := commands.NewBookingCommands(m.uow, m.windows, m.bookings, clock.NewMockClock(now), policy, nil, nil)
		_, err := cmds.Cancel(ctx, uuid.New())

		assert.True(t, errs.Is(err, commands.ErrCancellationFailed))
		assert.True(t, errs.Is(err, errDBConnectionLost))
	})
}
