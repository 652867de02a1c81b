package forms

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Form controllers collect user input for one {type}×{category} booking
// combination, validate it, and call the booking store exactly once per valid
// submit. They are the only producers of new bookings.

// ScheduleMode mirrors the "Book Now / Book for Later" toggle.
type ScheduleMode string

const (
	ScheduleNow   ScheduleMode = "now"
	ScheduleLater ScheduleMode = "later"
)

// Errors maps a field name to its first validation failure.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

func (e Errors) add(field string, err error) {
	if err == nil {
		return
	}
	if _, exists := e[field]; exists {
		return
	}
	e[field] = err.Error()
}

// serviceDate resolves the service timestamp for a form. Booking now means
// the trip starts immediately.
func serviceDate(mode ScheduleMode, date time.Time) time.Time {
	if mode == ScheduleNow {
		return time.Now()
	}
	return date
}
