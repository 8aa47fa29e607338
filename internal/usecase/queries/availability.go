package queries

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/pkg/clock"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/pkg/metrics"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrWindowNotFound    = errs.New("window not found")
	ErrInvalidRunLength  = errs.New("run length must be at least 1")
	ErrInvalidJointQuery = errs.New("invalid joint availability query")
	ErrQueryFailed       = errs.New("availability query failed")
)

type AvailabilityQueries interface {
	AvailableByDate(ctx context.Context, filter shared.WindowFilter) (*AvailabilityView, error)
	WindowSlots(ctx context.Context, windowID uuid.UUID) (*WindowSlotsView, error)
	ConsecutiveRuns(ctx context.Context, windowID uuid.UUID, count int) (*RunsView, error)
	SlotStatus(ctx context.Context, ref scheduling.SlotRef) (*SlotStatusView, error)
	JointAvailability(ctx context.Context, filter JointFilter) (*JointAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	windows  shared.WindowSource
	bookings shared.BookingLookup
	clock    clock.Clock
	policy   shared.SchedulingPolicy
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewAvailabilityQueries(
	windows shared.WindowSource,
	bookings shared.BookingLookup,
	clk clock.Clock,
	policy shared.SchedulingPolicy,
	m *metrics.Metrics,
	logger *slog.Logger,
) AvailabilityQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &availabilityQueriesImpl{
		windows:  windows,
		bookings: bookings,
		clock:    clk,
		policy:   policy,
		metrics:  m,
		logger:   logger,
	}
}

func (q *availabilityQueriesImpl) AvailableByDate(ctx context.Context, filter shared.WindowFilter) (*AvailabilityView, error) {
	now := q.clock.Now()

	windows, err := q.windows.ListWindows(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	slots, _, err := q.reconciled(ctx, windows)
	if err != nil {
		return nil, err
	}

	available := withinRange(scheduling.AvailableSlots(slots, now), filter.From, filter.To)
	return &AvailabilityView{
		Timezone:    q.policy.Loc().String(),
		GeneratedAt: now,
		MinLeadTime: q.policy.MinLeadTime,
		Days:        q.days(available),
		Total:       len(available),
	}, nil
}

func (q *availabilityQueriesImpl) WindowSlots(ctx context.Context, windowID uuid.UUID) (*WindowSlotsView, error) {
	w, err := q.findWindow(ctx, windowID)
	if err != nil {
		return nil, err
	}

	slots, conflicts, err := q.reconciled(ctx, []scheduling.TimeWindow{*w})
	if err != nil {
		return nil, err
	}

	return &WindowSlotsView{
		Window:    *w,
		Slots:     scheduling.SortByStart(slots),
		Conflicts: conflicts,
	}, nil
}

func (q *availabilityQueriesImpl) ConsecutiveRuns(ctx context.Context, windowID uuid.UUID, count int) (*RunsView, error) {
	if count < 1 {
		return nil, ErrInvalidRunLength
	}

	w, err := q.findWindow(ctx, windowID)
	if err != nil {
		return nil, err
	}

	slots, _, err := q.reconciled(ctx, []scheduling.TimeWindow{*w})
	if err != nil {
		return nil, err
	}

	bookable := scheduling.BookableSlots(slots, q.clock.Now(), q.policy.MinLeadTime)
	runs := scheduling.FindRuns(bookable, count)
	if runs == nil {
		runs = [][]scheduling.Slot{}
	}
	return &RunsView{WindowID: windowID, Count: count, Runs: runs}, nil
}

func (q *availabilityQueriesImpl) SlotStatus(ctx context.Context, ref scheduling.SlotRef) (*SlotStatusView, error) {
	w, err := q.findWindow(ctx, ref.WindowID)
	if err != nil {
		return nil, err
	}

	slot, err := scheduling.ResolveSlot(*w, ref.Ordinal)
	if err != nil {
		q.logger.WarnContext(ctx, "slot reference does not resolve",
			"kind", scheduling.KindSlotNotFound,
			"window_id", ref.WindowID,
			"ordinal", ref.Ordinal)
		return nil, errs.Mark(err, scheduling.ErrSlotNotFound)
	}

	report, err := scheduling.CheckAndReport(ctx, ref, q.bookings)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	var bookings []scheduling.Booking
	if report.ConflictingBooking != nil {
		bookings = append(bookings, *report.ConflictingBooking)
	}
	slot = scheduling.Reconcile([]scheduling.Slot{slot}, bookings).Slots[0]

	now := q.clock.Now()
	return &SlotStatusView{
		Slot:       slot,
		Validation: scheduling.Validate(slot, now, q.policy.MinLeadTime),
		Report:     report,
		CheckedAt:  now,
	}, nil
}

func (q *availabilityQueriesImpl) JointAvailability(ctx context.Context, filter JointFilter) (*JointAvailabilityView, error) {
	owners := uniqueIDs(filter.OwnerIDs)
	mode := filter.Mode
	if mode == "" {
		mode = scheduling.JointModeAny
	}
	switch {
	case !mode.IsValid():
		return nil, errs.Wrap(ErrInvalidJointQuery, "unknown mode "+string(mode))
	case len(owners) == 0:
		return nil, errs.Wrap(ErrInvalidJointQuery, "at least one owner is required")
	case mode == scheduling.JointModeAll && len(owners) < 2:
		return nil, errs.Wrap(ErrInvalidJointQuery, "mode all needs at least two owners")
	}

	windows, err := q.windows.ListWindows(ctx, shared.WindowFilter{
		OwnerIDs: owners,
		Subject:  filter.Subject,
		From:     filter.From,
		To:       filter.To,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	slots, _, err := q.reconciled(ctx, windows)
	if err != nil {
		return nil, err
	}
	available := withinRange(scheduling.AvailableSlots(slots, q.clock.Now()), filter.From, filter.To)

	view := &JointAvailabilityView{
		Mode:     mode,
		Timezone: q.policy.Loc().String(),
		OwnerIDs: owners,
	}
	if mode == scheduling.JointModeAll {
		view.Common = scheduling.CommonSlots(available, owners)
		if view.Common == nil {
			view.Common = []scheduling.JointSlot{}
		}
		return view, nil
	}
	view.Days = q.days(available)
	return view, nil
}

func (q *availabilityQueriesImpl) findWindow(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error) {
	w, err := q.windows.FindWindow(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrWindowNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return w, nil
}

// reconciled generates slots for usable windows and overlays their bookings.
// Cancelled and malformed windows contribute nothing.
func (q *availabilityQueriesImpl) reconciled(ctx context.Context, windows []scheduling.TimeWindow) ([]scheduling.Slot, []scheduling.IntegrityConflict, error) {
	usable := make([]scheduling.TimeWindow, 0, len(windows))
	for _, w := range windows {
		if !w.IsActive() {
			continue
		}
		if err := w.Validate(); err != nil {
			q.logger.WarnContext(ctx, "skipping malformed window",
				"kind", scheduling.KindInvalidWindow,
				"window_id", w.ID,
				"start", w.Start,
				"end", w.End)
			continue
		}
		usable = append(usable, w)
	}
	if len(usable) == 0 {
		return []scheduling.Slot{}, nil, nil
	}

	ids := make([]uuid.UUID, len(usable))
	for i, w := range usable {
		ids[i] = w.ID
	}
	bookings, err := q.bookings.ListBookings(ctx, ids)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrQueryFailed)
	}

	result := scheduling.Reconcile(scheduling.GenerateMany(usable), bookings)
	q.report(ctx, result)
	return result.Slots, result.Conflicts, nil
}

func (q *availabilityQueriesImpl) report(ctx context.Context, result scheduling.ReconcileResult) {
	for _, c := range result.Conflicts {
		bookingIDs := make([]string, len(c.Bookings))
		for i, b := range c.Bookings {
			bookingIDs[i] = b.ID.String()
		}
		q.logger.ErrorContext(ctx, "multiple active bookings for one slot",
			"kind", scheduling.KindDataIntegrityConflict,
			"window_id", c.Ref.WindowID,
			"ordinal", c.Ref.Ordinal,
			"booking_ids", bookingIDs)
	}
	q.metrics.IntegrityConflicts(len(result.Conflicts))

	for _, b := range result.Orphans {
		q.logger.WarnContext(ctx, "booking does not match any slot of its window",
			"kind", scheduling.KindSlotNotFound,
			"booking_id", b.ID,
			"window_id", b.WindowID,
			"ordinal", b.Ordinal)
	}
}

func (q *availabilityQueriesImpl) days(slots []scheduling.Slot) []DayAvailability {
	groups := scheduling.GroupByDate(slots, q.policy.Loc())
	days := make([]DayAvailability, 0, len(groups))
	for _, key := range scheduling.SortedDateKeys(groups) {
		days = append(days, DayAvailability{Date: key, Slots: groups[key]})
	}
	return days
}

func withinRange(slots []scheduling.Slot, from, to *time.Time) []scheduling.Slot {
	if from == nil && to == nil {
		return slots
	}
	return slices.DeleteFunc(slices.Clone(slots), func(s scheduling.Slot) bool {
		if from != nil && s.Start.Before(*from) {
			return true
		}
		return to != nil && !s.Start.Before(*to)
	})
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// IsNotFound reports whether err should surface as a missing resource.
func IsNotFound(err error) bool {
	return errs.IsAny(err, ErrWindowNotFound, scheduling.ErrSlotNotFound)
}
