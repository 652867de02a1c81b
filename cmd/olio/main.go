package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yadvendra249/olio-cab-connect/internal/admin"
	"github.com/yadvendra249/olio-cab-connect/internal/admin/analytics"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/forms"
	"github.com/yadvendra249/olio-cab-connect/internal/metrics"
	"github.com/yadvendra249/olio-cab-connect/internal/mockapi"
	"github.com/yadvendra249/olio-cab-connect/internal/notify"
	"github.com/yadvendra249/olio-cab-connect/internal/session"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/config"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/health"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/util"
)

func main() {
	Run()
}

// consoleToaster renders booking alerts on the terminal, success in green and
// errors in red, standing in for the toast popups of the web client.
type consoleToaster struct{}

func (consoleToaster) Toast(t notify.Toast) {
	color := util.Green
	if t.Kind == notify.ToastError {
		color = util.Red
	}
	fmt.Printf("%s[%s]%s %s\n", color, t.Title, util.Reset, t.Message)
}

func Run() {
	log := util.New()

	log.Info("OlioCabConnect", "Starting session initialization...")

	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Config", err)
	}
	log.OK("Config", "Configuration loaded successfully")

	metrics.Register()

	api := mockapi.New(cfg, log)
	sess := session.New(cfg, api, consoleToaster{}, log)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", health.Handler(cfg.App.Name, sess.Bookings))

	server := &http.Server{
		Addr:    cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		log.OK("HTTP", fmt.Sprintf("metrics listener running on %s", cfg.Metrics.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP", err)
		}
	}()

	go runDemo(sess, cfg.API.OTPCode, cfg.API.AdminEmail, cfg.Admin.ExportPath, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("OlioCabConnect", "Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP", err)
	} else {
		log.OK("HTTP", "Metrics listener stopped gracefully")
	}

	log.Info("OlioCabConnect", "Shutdown complete")
}

// runDemo walks the session through the booking flows end to end: OTP login,
// two bookings via the form controllers, then the admin actions that trigger
// the confirmation and cancellation toasts.
func runDemo(sess *session.Session, otpCode, adminEmail, exportPath string, log *util.Logger) {
	ctx := context.Background()
	instance := "Demo"

	if !sess.Restore() {
		if err := sess.RequestOTP(ctx, "9876543210"); err != nil {
			log.Error(instance, err)
			return
		}
		if _, err := sess.LoginOTP(ctx, "9876543210", otpCode); err != nil {
			log.Error(instance, err)
			return
		}
	}

	cab := forms.NewCabForm(domain.CategoryAirport, sess.Auth, sess.Bookings)
	cab.PickupLocation = "Connaught Place"
	cab.DropLocation = "IGI Airport"
	cab.VehicleType = "sedan"
	cab.Passengers = 2
	cab.Luggage = 1
	cab.Terminal = "T3"

	airportCab, err := cab.Submit()
	if err != nil {
		log.Error(instance, err)
		return
	}

	driver := forms.NewDriverForm(domain.CategoryOutstation, sess.Auth, sess.Bookings)
	driver.PickupLocation = "Gurgaon"
	driver.DropLocation = "Jaipur"
	driver.StartDateTime = time.Now().Add(24 * time.Hour)
	driver.EndDateTime = time.Now().Add(72 * time.Hour)

	outstationDriver, err := driver.Submit()
	if err != nil {
		log.Error(instance, err)
		return
	}

	// Admin takes over the same session to act on the queue.
	if _, err := sess.LoginPassword(ctx, adminEmail, "admin123"); err != nil {
		log.Error(instance, err)
		return
	}

	workflow := admin.NewWorkflow(sess.Bookings, sess.Auth, log)

	if _, err := workflow.Approve(airportCab.ID); err != nil {
		log.Error(instance, err)
	}
	if _, err := workflow.Cancel(outstationDriver.ID); err != nil {
		log.Error(instance, err)
	}
	if _, err := workflow.Complete(airportCab.ID); err != nil {
		log.Error(instance, err)
	}

	page, err := workflow.Bookings(admin.Query{})
	if err != nil {
		log.Error(instance, err)
		return
	}
	log.Info(instance, fmt.Sprintf("admin view: %d bookings on page %d/%d",
		len(page.Bookings), page.Page, page.TotalPages))

	stats := analytics.ComputeStats(sess.Bookings.List(domain.Filter{}))
	log.Info(instance, fmt.Sprintf(
		"dashboard: total=%d pending=%d confirmed=%d completed=%d cancelled=%d revenue=%s",
		stats.TotalBookings, stats.PendingBookings, stats.ConfirmedBookings,
		stats.CompletedBookings, stats.CancelledBookings, stats.Revenue.StringFixed(2)))

	if path, err := workflow.ExportXLSX(exportPath, domain.Filter{}); err != nil {
		log.Error(instance, err)
	} else {
		log.OK(instance, fmt.Sprintf("report written to %s", path))
	}
}
