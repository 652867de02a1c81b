package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/forms"
	"github.com/yadvendra249/olio-cab-connect/internal/mockapi"
	"github.com/yadvendra249/olio-cab-connect/internal/notify"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/models"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
)

type recordingToaster struct {
	toasts []notify.Toast
}

func (r *recordingToaster) Toast(t notify.Toast) {
	r.toasts = append(r.toasts, t)
}

func testConfig(t *testing.T) *models.Config {
	t.Helper()
	cfg := &models.Config{}
	cfg.API.OTPCode = "123456"
	cfg.API.AdminEmail = "admin@oliocar.com"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 60
	cfg.Auth.TokenFile = filepath.Join(t.TempDir(), "token")
	return cfg
}

func newTestSession(t *testing.T) (*Session, *recordingToaster) {
	t.Helper()
	cfg := testConfig(t)
	toaster := &recordingToaster{}
	log := util.New()
	return New(cfg, mockapi.New(cfg, log), toaster, log), toaster
}

// Full pass over the workflow: create, approve, cancel, with one toast per
// user-visible transition.
func TestSession_BookingLifecycleNotifies(t *testing.T) {
	sess, toaster := newTestSession(t)
	ctx := context.Background()

	if _, err := sess.LoginOTP(ctx, "9876543210", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form := forms.NewCabForm(domain.CategoryLocal, sess.Auth, sess.Bookings)
	form.PickupLocation = "Connaught Place"
	form.DropLocation = "Karol Bagh"
	form.VehicleType = "sedan"
	form.Passengers = 2
	form.Luggage = 0

	booking, err := form.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listing := sess.MyBookings("")
	if len(listing) != 1 || listing[0].Status != domain.StatusPending {
		t.Fatalf("expected one pending booking, got %+v", listing)
	}

	if !sess.Bookings.Approve(booking.ID) {
		t.Fatalf("expected approve to apply")
	}
	if len(toaster.toasts) != 1 {
		t.Fatalf("expected 1 toast after approval, got %d", len(toaster.toasts))
	}
	if toaster.toasts[0].Kind != notify.ToastSuccess {
		t.Fatalf("approval toast must be success, got %s", toaster.toasts[0].Kind)
	}

	// confirmed -> cancelled is a valid transition and fires a second toast.
	if !sess.Bookings.Cancel(booking.ID) {
		t.Fatalf("expected cancel to apply")
	}
	if len(toaster.toasts) != 2 {
		t.Fatalf("expected 2 toasts after cancellation, got %d", len(toaster.toasts))
	}
	if toaster.toasts[1].Kind != notify.ToastError {
		t.Fatalf("cancellation toast must be error, got %s", toaster.toasts[1].Kind)
	}
}

func TestSession_RestoreFromCachedToken(t *testing.T) {
	cfg := testConfig(t)
	log := util.New()
	api := mockapi.New(cfg, log)

	first := New(cfg, api, &recordingToaster{}, log)
	if first.Restore() {
		t.Fatalf("nothing cached yet, restore must fail")
	}
	if _, err := first.LoginPassword(context.Background(), "john@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A new session over the same token file picks the identity back up.
	second := New(cfg, api, &recordingToaster{}, log)
	if !second.Restore() {
		t.Fatalf("expected restore to succeed")
	}
	user := second.Auth.Current()
	if user == nil || user.Email != "john@example.com" {
		t.Fatalf("unexpected restored user: %+v", user)
	}

	// Booking state does not survive the session.
	if got := len(second.Bookings.List(domain.Filter{})); got != 0 {
		t.Fatalf("booking state leaked across sessions: %d", got)
	}
}

func TestSession_LogoutClearsCache(t *testing.T) {
	sess, _ := newTestSession(t)

	if _, err := sess.LoginPassword(context.Background(), "john@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sess.Logout()

	if sess.Auth.IsAuthenticated() {
		t.Fatalf("logout left session authenticated")
	}
	if sess.Restore() {
		t.Fatalf("restore must fail after logout")
	}
}

func TestSession_InvalidOTPLeavesSignedOut(t *testing.T) {
	sess, _ := newTestSession(t)

	if _, err := sess.LoginOTP(context.Background(), "9876543210", "000000"); err == nil {
		t.Fatalf("expected invalid OTP error")
	}
	if sess.Auth.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestSession_DiscardsExpiredToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.TokenTTLMinutes = -1
	log := util.New()
	api := mockapi.New(cfg, log)

	sess := New(cfg, api, &recordingToaster{}, log)
	if _, err := sess.LoginPassword(context.Background(), "john@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	later := New(cfg, api, &recordingToaster{}, log)
	if later.Restore() {
		t.Fatalf("expired token must not restore")
	}
}

func TestSession_MyBookingsFiltersByStatus(t *testing.T) {
	sess, _ := newTestSession(t)
	ctx := context.Background()

	if _, err := sess.LoginOTP(ctx, "9876543210", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		form := forms.NewDriverForm(domain.CategoryLocal, sess.Auth, sess.Bookings)
		form.PickupLocation = "A"
		form.DropLocation = "B"
		form.StartDateTime = time.Now()
		if _, err := form.Submit(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	all := sess.MyBookings("")
	sess.Bookings.Approve(all[1].ID)

	pending := sess.MyBookings(domain.StatusPending)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].ID != all[0].ID || pending[1].ID != all[2].ID {
		t.Fatalf("pending view out of insertion order")
	}
}
