//go:build unit || e2e

// Package memstore is an in-memory stand-in for the Postgres stores.
// Reserve is serialized by a mutex and enforces one active booking per slot,
// like the partial unique index does.
package memstore

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/infra"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows in result set")

type Store struct {
	mu       sync.Mutex
	windows  map[uuid.UUID]scheduling.TimeWindow
	bookings []scheduling.Booking

	// counts Reserve calls that reached the store
	reserveCalls atomic.Int64
}

func New() *Store {
	return &Store{windows: make(map[uuid.UUID]scheduling.TimeWindow)}
}

func (s *Store) AddWindow(windows ...scheduling.TimeWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range windows {
		s.windows[w.ID] = w
	}
}

// SeedBooking stores b as given, skipping the uniqueness check.
func (s *Store) SeedBooking(bookings ...scheduling.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, bookings...)
}

func (s *Store) AllBookings() []scheduling.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookings)
}

func (s *Store) ActiveBookings(windowID uuid.UUID, ordinal int) []scheduling.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []scheduling.Booking
	for _, b := range s.bookings {
		if b.IsActive() && b.WindowID == windowID && b.Ordinal == ordinal {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) ReserveCalls() int64 {
	return s.reserveCalls.Load()
}

// WindowSource

func (s *Store) ListWindows(_ context.Context, filter shared.WindowFilter) ([]scheduling.TimeWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]scheduling.TimeWindow, 0, len(s.windows))
	for _, w := range s.windows {
		if matches(w, filter) {
			out = append(out, w)
		}
	}
	slices.SortFunc(out, func(a, b scheduling.TimeWindow) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

func (s *Store) FindWindow(_ context.Context, id uuid.UUID) (*scheduling.TimeWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[id]
	if !ok {
		return nil, infra.WrapRepoErr("window not found", errNoRows, infra.KindNotFound)
	}
	return &w, nil
}

func matches(w scheduling.TimeWindow, f shared.WindowFilter) bool {
	if len(f.WindowIDs) > 0 && !slices.Contains(f.WindowIDs, w.ID) {
		return false
	}
	if len(f.OwnerIDs) > 0 && !slices.Contains(f.OwnerIDs, w.OwnerID) {
		return false
	}
	if f.Subject != nil && (w.Subject == nil || *w.Subject != *f.Subject) {
		return false
	}
	if f.From != nil && !w.End.After(*f.From) {
		return false
	}
	if f.To != nil && !w.Start.Before(*f.To) {
		return false
	}
	return f.IncludeCancelled || w.IsActive()
}

// BookingLookup

func (s *Store) ListBookings(_ context.Context, windowIDs []uuid.UUID) ([]scheduling.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []scheduling.Booking{}
	for _, b := range s.bookings {
		if b.IsActive() && slices.Contains(windowIDs, b.WindowID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) FindBooking(_ context.Context, windowID uuid.UUID, ordinal int) (*scheduling.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findActiveLocked(windowID, ordinal), nil
}

func (s *Store) findActiveLocked(windowID uuid.UUID, ordinal int) *scheduling.Booking {
	for _, b := range s.bookings {
		if b.IsActive() && b.WindowID == windowID && b.Ordinal == ordinal {
			return &b
		}
	}
	return nil
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, tx{s: s})
}

type tx struct{ s *Store }

func (t tx) Windows() shared.WindowTxRepository { return windowRepo(t) }
func (t tx) Bookings() shared.BookingRepository { return bookingRepo(t) }

type windowRepo struct{ s *Store }

func (r windowRepo) LockByID(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error) {
	return r.s.FindWindow(ctx, id)
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Reserve(_ context.Context, p shared.ReserveParams) (*scheduling.Booking, error) {
	r.s.reserveCalls.Add(1)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.windows[p.WindowID]; !ok {
		return nil, infra.WrapRepoErr("window does not exist", errNoRows, infra.KindForeignKeyViolated)
	}
	if r.s.findActiveLocked(p.WindowID, p.Ordinal) != nil {
		return nil, infra.WrapRepoErr("slot already reserved", errNoRows, infra.KindConflict)
	}

	b := scheduling.Booking{
		ID:         uuid.New(),
		WindowID:   p.WindowID,
		Ordinal:    p.Ordinal,
		ReservedBy: p.ReservedBy,
		SessionRef: p.SessionRef,
		Status:     scheduling.BookingStatusReserved,
		ReservedAt: p.ReservedAt,
	}
	r.s.bookings = append(r.s.bookings, b)
	return &b, nil
}

func (r bookingRepo) Cancel(_ context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.bookings {
		if b.ID == bookingID && b.IsActive() {
			r.s.bookings[i].Status = scheduling.BookingStatusCancelled
			r.s.bookings[i].CancelledAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (r bookingRepo) FindActive(ctx context.Context, windowID uuid.UUID, ordinal int) (*scheduling.Booking, error) {
	return r.s.FindBooking(ctx, windowID, ordinal)
}
