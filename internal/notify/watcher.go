package notify

import (
	"fmt"
	"sync"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/metrics"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
)

// Transition records one booking whose status differs between two snapshots.
type Transition struct {
	BookingID string
	Type      domain.BookingType
	From      domain.Status
	To        domain.Status
}

// Diff compares two insertion-ordered snapshots keyed by booking id and
// returns one transition per booking whose status changed and which exists in
// both. Bookings present only in curr (newly created) yield nothing. Output
// order follows curr.
func Diff(prev, curr []domain.Booking) []Transition {
	if len(prev) == 0 || len(curr) == 0 {
		return nil
	}

	before := make(map[string]domain.Status, len(prev))
	for _, b := range prev {
		before[b.ID] = b.Status
	}

	var out []Transition
	for _, b := range curr {
		old, ok := before[b.ID]
		if !ok || old == b.Status {
			continue
		}
		out = append(out, Transition{
			BookingID: b.ID,
			Type:      b.Type,
			From:      old,
			To:        b.Status,
		})
	}
	return out
}

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Kind      ToastKind
	Title     string
	Message   string
	BookingID string
}

// Toaster receives user-visible booking alerts.
type Toaster interface {
	Toast(toast Toast)
}

// Watcher diffs consecutive snapshots of the booking collection and raises a
// toast when a booking becomes confirmed or cancelled. Other transitions stay
// silent but are still returned to the caller. The previous snapshot is held
// on the watcher itself, scoped to the session that owns it.
type Watcher struct {
	mu      sync.Mutex
	prev    []domain.Booking
	toaster Toaster
	logger  *util.Logger
}

func NewWatcher(toaster Toaster, logger *util.Logger) *Watcher {
	return &Watcher{toaster: toaster, logger: logger}
}

// Observe consumes the current snapshot, emits toasts for transitions since
// the previous one and advances the baseline so the same pair of snapshots is
// never reported twice.
func (w *Watcher) Observe(curr []domain.Booking) []Transition {
	w.mu.Lock()
	transitions := Diff(w.prev, curr)
	w.prev = curr
	w.mu.Unlock()

	for _, t := range transitions {
		switch t.To {
		case domain.StatusConfirmed:
			metrics.IncNotificationEmitted(string(ToastSuccess))
			w.toast(Toast{
				Kind:      ToastSuccess,
				Title:     "Booking Confirmed!",
				Message:   fmt.Sprintf("Your %s booking has been approved by admin.", t.Type),
				BookingID: t.BookingID,
			})
		case domain.StatusCancelled:
			metrics.IncNotificationEmitted(string(ToastError))
			w.toast(Toast{
				Kind:      ToastError,
				Title:     "Booking Cancelled",
				Message:   fmt.Sprintf("Your %s booking has been cancelled.", t.Type),
				BookingID: t.BookingID,
			})
		}
	}
	return transitions
}

func (w *Watcher) toast(toast Toast) {
	if w.toaster == nil {
		return
	}
	w.logger.Info("NotifyWatcher", fmt.Sprintf("%s: %s", toast.Title, toast.Message))
	w.toaster.Toast(toast)
}
