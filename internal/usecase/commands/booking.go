package commands

import (
	"context"
	"log/slog"
	"strings"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/pkg/clock"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/pkg/metrics"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReserveInput = errs.New("invalid reservation input")
	ErrReservationFailed   = errs.New("reservation failed")
	ErrCancellationFailed  = errs.New("cancellation failed")
)

type ReserveInput struct {
	WindowID   uuid.UUID
	Ordinal    int
	ReservedBy uuid.UUID
	SessionRef string
}

type ReserveResult struct {
	Booking scheduling.Booking
	Slot    scheduling.Slot
	// Replayed is set when the same party already holds the slot for the same session.
	Replayed bool
}

type CancelResult struct {
	BookingID uuid.UUID
	Cancelled bool
}

type BookingCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
	// Cancel is idempotent: unknown or already cancelled bookings are a no-op.
	Cancel(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	windows  shared.WindowSource
	bookings shared.BookingLookup
	clock    clock.Clock
	policy   shared.SchedulingPolicy
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	windows shared.WindowSource,
	bookings shared.BookingLookup,
	clk clock.Clock,
	policy shared.SchedulingPolicy,
	m *metrics.Metrics,
	logger *slog.Logger,
) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		uow:      uow,
		windows:  windows,
		bookings: bookings,
		clock:    clk,
		policy:   policy,
		metrics:  m,
		logger:   logger,
	}
}

func (c *bookingCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	in.SessionRef = strings.TrimSpace(in.SessionRef)
	if in.ReservedBy == uuid.Nil || in.SessionRef == "" || in.Ordinal < 0 {
		c.metrics.Reservation(metrics.OutcomeInvalid)
		return nil, ErrInvalidReserveInput
	}

	result, err := c.reserve(ctx, in)
	c.metrics.Reservation(reservationOutcome(result, err))
	if err != nil {
		return nil, err
	}

	if result.Replayed {
		c.logger.InfoContext(ctx, "reservation replayed",
			"booking_id", result.Booking.ID,
			"window_id", in.WindowID,
			"ordinal", in.Ordinal)
	} else {
		c.logger.InfoContext(ctx, "slot reserved",
			"booking_id", result.Booking.ID,
			"window_id", in.WindowID,
			"ordinal", in.Ordinal,
			"reserved_by", in.ReservedBy)
	}
	return result, nil
}

func (c *bookingCommandsImpl) reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	ref := scheduling.SlotRef{WindowID: in.WindowID, Ordinal: in.Ordinal}

	w, err := c.windows.FindWindow(ctx, in.WindowID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, scheduling.ErrSlotNotFound)
		}
		return nil, errs.Mark(err, ErrReservationFailed)
	}

	slot, err := scheduling.ResolveSlot(*w, in.Ordinal)
	if err != nil {
		return nil, err
	}

	// Pre-flight only; the insert below is what enforces exclusivity.
	report, err := scheduling.CheckAndReport(ctx, ref, c.bookings)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationFailed)
	}
	if !report.Available {
		existing := report.ConflictingBooking
		if existing.SameRequest(in.ReservedBy, in.SessionRef) {
			return &ReserveResult{Booking: *existing, Slot: bookedSlot(slot, *existing), Replayed: true}, nil
		}
		slot = bookedSlot(slot, *existing)
	}

	if v := scheduling.Validate(slot, c.clock.Now(), c.policy.MinLeadTime); !v.Valid {
		return nil, v.Err()
	}

	var result *ReserveResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Windows().LockByID(ctx, in.WindowID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, scheduling.ErrSlotNotFound)
			}
			return err
		}
		// the window may have been cancelled or shortened since the pre-flight read
		if _, err := scheduling.ResolveSlot(*locked, in.Ordinal); err != nil {
			return err
		}

		booking, err := tx.Bookings().Reserve(ctx, shared.ReserveParams{
			WindowID:   in.WindowID,
			Ordinal:    in.Ordinal,
			ReservedBy: in.ReservedBy,
			SessionRef: in.SessionRef,
			ReservedAt: c.clock.Now(),
		})
		if err == nil {
			result = &ReserveResult{Booking: *booking, Slot: bookedSlot(slot, *booking)}
			return nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return err
		}

		// lost the race; a retry of our own request is still a success
		existing, findErr := tx.Bookings().FindActive(ctx, in.WindowID, in.Ordinal)
		if findErr == nil && existing != nil && existing.SameRequest(in.ReservedBy, in.SessionRef) {
			result = &ReserveResult{Booking: *existing, Slot: bookedSlot(slot, *existing), Replayed: true}
			return nil
		}
		return &scheduling.ValidationError{Kinds: []scheduling.ErrorKind{scheduling.KindAlreadyBooked}}
	})
	if err != nil {
		if errs.IsAny(err, scheduling.ErrAlreadyBooked, scheduling.ErrSlotNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrReservationFailed)
	}
	return result, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error) {
	var cancelled bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cancelled, err = tx.Bookings().Cancel(ctx, bookingID, c.clock.Now())
		return err
	})
	if err != nil {
		c.metrics.Cancellation(metrics.OutcomeError)
		return nil, errs.Mark(err, ErrCancellationFailed)
	}

	if cancelled {
		c.metrics.Cancellation(metrics.OutcomeCancelled)
		c.logger.InfoContext(ctx, "booking cancelled", "booking_id", bookingID)
	} else {
		c.metrics.Cancellation(metrics.OutcomeNoop)
		c.logger.DebugContext(ctx, "cancel was a no-op", "booking_id", bookingID)
	}
	return &CancelResult{BookingID: bookingID, Cancelled: cancelled}, nil
}

func bookedSlot(slot scheduling.Slot, b scheduling.Booking) scheduling.Slot {
	return scheduling.Reconcile([]scheduling.Slot{slot}, []scheduling.Booking{b}).Slots[0]
}

func reservationOutcome(result *ReserveResult, err error) string {
	switch {
	case err == nil && result.Replayed:
		return metrics.OutcomeReplayed
	case err == nil:
		return metrics.OutcomeReserved
	case errs.Is(err, scheduling.ErrAlreadyBooked):
		return metrics.OutcomeAlreadyBooked
	case errs.Is(err, scheduling.ErrSlotNotFound):
		return metrics.OutcomeNotFound
	case errs.IsAny(err, scheduling.ErrSlotInPast, scheduling.ErrInsufficientLeadTime):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
