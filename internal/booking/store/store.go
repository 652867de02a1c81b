package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/metrics"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
)

// ChangeHook receives an insertion-ordered snapshot of the collection after
// every applied mutation.
type ChangeHook func(current []domain.Booking)

// Store holds all bookings for the current session, in creation order.
// Bookings are mutated only through Create, Approve, Cancel and Complete, so
// the transition table in domain is the only way a status ever moves.
type Store struct {
	mu       sync.Mutex
	bookings []domain.Booking
	hooks    []ChangeHook
	logger   *util.Logger
}

func New(logger *util.Logger) *Store {
	return &Store{logger: logger}
}

// OnChange registers a hook invoked after every applied mutation. Hooks run
// outside the store lock and must not mutate the snapshot they receive.
func (s *Store) OnChange(hook ChangeHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Create appends a new pending booking. Field validity is the caller's
// responsibility; Create itself never rejects input.
func (s *Store) Create(input domain.CreateBookingInput) domain.Booking {
	instance := "BookingStore.Create"
	now := time.Now()

	booking := domain.Booking{
		ID:             uuid.NewString(),
		Number:         bookingNumber(now),
		Type:           input.Type,
		Category:       input.Category,
		PickupLocation: input.PickupLocation,
		DropLocation:   input.DropLocation,
		Date:           input.Date,
		Status:         domain.StatusPending,
		VehicleType:    input.VehicleType,
		Passengers:     input.Passengers,
		Luggage:        input.Luggage,
		Terminal:       input.Terminal,
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		FareEstimate:   input.FareEstimate,
		CreatedAt:      now,
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	snapshot := s.snapshotLocked()
	hooks := s.hooks
	s.mu.Unlock()

	metrics.IncBookingCreated(string(booking.Type))
	s.logger.OK(instance, fmt.Sprintf("booking created [number=%s, type=%s, category=%s]",
		booking.Number, booking.Type, booking.Category))

	fireHooks(hooks, snapshot)
	return booking
}

// Approve moves a pending booking to confirmed. It reports false when the
// booking is absent or not pending.
func (s *Store) Approve(id string) bool {
	return s.apply(domain.ActionApprove, id)
}

// Cancel moves a pending or confirmed booking to cancelled. Cancelling an
// already cancelled booking reports false and changes nothing.
func (s *Store) Cancel(id string) bool {
	return s.apply(domain.ActionCancel, id)
}

// Complete moves a confirmed booking to completed once external fulfillment
// is done. Nothing in the booking flows calls this yet; the admin workflow
// exposes it so the completed status is reachable.
func (s *Store) Complete(id string) bool {
	return s.apply(domain.ActionComplete, id)
}

// List returns an insertion-ordered copy of the collection, narrowed by the
// filter. Mutating the returned slice never touches store state.
func (s *Store) List(filter domain.Filter) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if filter.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) apply(action domain.Action, id string) bool {
	instance := fmt.Sprintf("BookingStore.%s", action)

	s.mu.Lock()
	idx := -1
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.logger.Warn(instance, fmt.Sprintf("booking not found, ignoring [id=%s]", id))
		return false
	}

	from := s.bookings[idx].Status
	if !domain.ValidTransition(action, from) {
		s.mu.Unlock()
		s.logger.Warn(instance, fmt.Sprintf("not applicable from status %s, ignoring [number=%s]",
			from, s.bookings[idx].Number))
		return false
	}

	target := domain.Target(action)
	s.bookings[idx].Status = target
	number := s.bookings[idx].Number
	snapshot := s.snapshotLocked()
	hooks := s.hooks
	s.mu.Unlock()

	metrics.IncStatusTransition(string(target))
	s.logger.OK(instance, fmt.Sprintf("booking %s -> %s [number=%s]", from, target, number))

	fireHooks(hooks, snapshot)
	return true
}

func (s *Store) snapshotLocked() []domain.Booking {
	snapshot := make([]domain.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	return snapshot
}

func fireHooks(hooks []ChangeHook, snapshot []domain.Booking) {
	for _, hook := range hooks {
		hook(snapshot)
	}
}

func bookingNumber(now time.Time) string {
	return fmt.Sprintf("BK_%s_%s_%03d",
		now.Format("20060102"),        // YYYYMMDD
		now.Format("150405"),          // HHMMSS
		now.Nanosecond()/1000000%1000, // XXX (0-999)
	)
}
