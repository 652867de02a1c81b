package admin

import (
	"fmt"
	"sort"

	"github.com/yadvendra249/olio-cab-connect/internal/auth"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/validation"
)

// Workflow is the admin panel's view of the booking store: list with
// filter/sort/pagination, plus the approve/cancel/complete actions. Every
// entry point checks the manage-bookings capability of the current user.
type Workflow struct {
	store  domain.BookingStore
	auth   *auth.Store
	logger *util.Logger
}

func NewWorkflow(store domain.BookingStore, authStore *auth.Store, logger *util.Logger) *Workflow {
	return &Workflow{store: store, auth: authStore, logger: logger}
}

type Query struct {
	Status   domain.Status
	Type     domain.BookingType
	Page     int
	PageSize int
}

type BookingPage struct {
	Bookings   []domain.Booking `json:"bookings"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Bookings returns one page of the collection, newest service date first.
func (w *Workflow) Bookings(q Query) (*BookingPage, error) {
	if err := w.authorize("Bookings"); err != nil {
		return nil, err
	}

	// Set defaults
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if err := validation.ValidatePaginationParams(q.Page, q.PageSize); err != nil {
		return nil, err
	}

	bookings := w.store.List(domain.Filter{Status: q.Status, Type: q.Type})
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.After(bookings[j].Date)
	})

	totalCount := len(bookings)
	totalPages := (totalCount + q.PageSize - 1) / q.PageSize

	start := (q.Page - 1) * q.PageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + q.PageSize
	if end > totalCount {
		end = totalCount
	}

	return &BookingPage{
		Bookings:   bookings[start:end],
		TotalCount: totalCount,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Approve confirms a pending booking. The applied flag is false when the
// booking was absent or not pending.
func (w *Workflow) Approve(id string) (bool, error) {
	if err := w.authorize("Approve"); err != nil {
		return false, err
	}
	return w.store.Approve(id), nil
}

// Cancel cancels a pending or confirmed booking.
func (w *Workflow) Cancel(id string) (bool, error) {
	if err := w.authorize("Cancel"); err != nil {
		return false, err
	}
	return w.store.Cancel(id), nil
}

// Complete marks a confirmed booking fulfilled.
func (w *Workflow) Complete(id string) (bool, error) {
	if err := w.authorize("Complete"); err != nil {
		return false, err
	}
	return w.store.Complete(id), nil
}

func (w *Workflow) authorize(instance string) error {
	user := w.auth.Current()
	if user.CanManageBookings() {
		return nil
	}
	w.logger.Warn("AdminWorkflow."+instance, fmt.Sprintf("denied: manage-bookings capability required [user=%v]", user))
	return domain.ErrForbidden
}
