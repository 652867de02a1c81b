package domain

// BookingStore is the single source of truth for bookings in a session.
// Approve, Cancel and Complete report whether the transition applied; an
// unknown id or a disallowed transition is a no-op, never an error.
type BookingStore interface {
	Create(input CreateBookingInput) Booking
	Approve(id string) bool
	Cancel(id string) bool
	Complete(id string) bool
	List(filter Filter) []Booking
}
