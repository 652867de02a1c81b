package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Handler creates a health check handler for the session process. The store
// is the only stateful dependency; everything else is canned.
func Handler(serviceName string, store domain.BookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := HealthResponse{
			Status:    "healthy",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    make(map[string]string),
		}

		if store != nil {
			bookings := store.List(domain.Filter{})
			health.Checks["booking_store"] = fmt.Sprintf("up (%d bookings)", len(bookings))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(health)
	}
}
