package forms

import (
	"testing"
	"time"

	"github.com/yadvendra249/olio-cab-connect/internal/auth"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
)

// countingStore records Create calls so tests can assert the single-submit
// contract without a real store.
type countingStore struct {
	created []domain.CreateBookingInput
}

func (c *countingStore) Create(input domain.CreateBookingInput) domain.Booking {
	c.created = append(c.created, input)
	return domain.Booking{ID: "test-id", Status: domain.StatusPending, Type: input.Type, Category: input.Category}
}

func (c *countingStore) Approve(id string) bool               { return false }
func (c *countingStore) Cancel(id string) bool                { return false }
func (c *countingStore) Complete(id string) bool              { return false }
func (c *countingStore) List(f domain.Filter) []domain.Booking { return nil }

func signedInStore() *auth.Store {
	s := auth.NewStore()
	s.SetSession(&auth.User{ID: "2", Name: "Mobile User", Mobile: "9876543210", Role: auth.RoleUser}, "token")
	return s
}

func validCabForm(category domain.Category, store domain.BookingStore) *CabForm {
	f := NewCabForm(category, signedInStore(), store)
	f.PickupLocation = "Connaught Place"
	f.DropLocation = "IGI Airport"
	f.VehicleType = "sedan"
	f.Passengers = 2
	f.Luggage = 1
	return f
}

func TestCabForm_PrefillsFromAuthStore(t *testing.T) {
	f := NewCabForm(domain.CategoryLocal, signedInStore(), &countingStore{})
	if f.Name != "Mobile User" || f.Mobile != "9876543210" {
		t.Fatalf("expected prefilled identity, got %q/%q", f.Name, f.Mobile)
	}
}

func TestCabForm_ValidSubmitCreatesOnceAndResets(t *testing.T) {
	store := &countingStore{}
	f := validCabForm(domain.CategoryLocal, store)

	b, err := f.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", b.Status)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected exactly one create call, got %d", len(store.created))
	}
	if store.created[0].Type != domain.BookingTypeCab {
		t.Fatalf("expected cab booking, got %s", store.created[0].Type)
	}
	if store.created[0].FareEstimate.IsZero() {
		t.Fatalf("expected a fare estimate")
	}
	if f.PickupLocation != "" || f.VehicleType != "" || f.Passengers != 0 {
		t.Fatalf("expected fields reset after submit")
	}
}

func TestCabForm_InvalidNeverReachesStore(t *testing.T) {
	store := &countingStore{}
	f := NewCabForm(domain.CategoryLocal, signedInStore(), store)
	f.PickupLocation = "somewhere" // everything else missing

	if _, err := f.Submit(); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(store.created) != 0 {
		t.Fatalf("invalid submit reached the store %d times", len(store.created))
	}
}

func TestCabForm_FieldRules(t *testing.T) {
	f := validCabForm(domain.CategoryLocal, &countingStore{})
	f.Mobile = "12345"
	errs := f.Validate()
	if errs == nil || errs["mobile"] == "" {
		t.Fatalf("expected mobile error, got %v", errs)
	}

	f = validCabForm(domain.CategoryLocal, &countingStore{})
	f.Passengers = 9
	if errs := f.Validate(); errs == nil || errs["passengers"] == "" {
		t.Fatalf("expected passengers error, got %v", errs)
	}

	f = validCabForm(domain.CategoryLocal, &countingStore{})
	f.Luggage = -1
	if errs := f.Validate(); errs == nil || errs["luggage"] == "" {
		t.Fatalf("expected luggage error, got %v", errs)
	}

	f = validCabForm(domain.CategoryLocal, &countingStore{})
	f.VehicleType = "rickshaw"
	if errs := f.Validate(); errs == nil || errs["vehicleType"] == "" {
		t.Fatalf("expected vehicle type error, got %v", errs)
	}
}

func TestCabForm_TerminalRequiredForAirportOnly(t *testing.T) {
	f := validCabForm(domain.CategoryAirport, &countingStore{})
	if errs := f.Validate(); errs == nil || errs["terminal"] == "" {
		t.Fatalf("expected terminal error for airport, got %v", errs)
	}
	f.Terminal = "T3"
	if errs := f.Validate(); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	local := validCabForm(domain.CategoryLocal, &countingStore{})
	if errs := local.Validate(); errs != nil {
		t.Fatalf("terminal must not be required for local: %v", errs)
	}
}

func TestCabForm_DateRequiredForLaterAndOutstation(t *testing.T) {
	f := validCabForm(domain.CategoryLocal, &countingStore{})
	f.Schedule = ScheduleLater
	if errs := f.Validate(); errs == nil || errs["bookingDate"] == "" {
		t.Fatalf("expected booking date error for later schedule, got %v", errs)
	}

	out := validCabForm(domain.CategoryOutstation, &countingStore{})
	if errs := out.Validate(); errs == nil || errs["bookingDate"] == "" {
		t.Fatalf("expected booking date error for outstation, got %v", errs)
	}
	out.BookingDate = time.Now().Add(48 * time.Hour)
	if errs := out.Validate(); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestDriverForm_OutstationDateRange(t *testing.T) {
	store := &countingStore{}
	f := NewDriverForm(domain.CategoryOutstation, signedInStore(), store)
	f.PickupLocation = "Gurgaon"
	f.DropLocation = "Jaipur"

	errs := f.Validate()
	if errs == nil || errs["startDateTime"] == "" || errs["endDateTime"] == "" {
		t.Fatalf("expected start and end errors, got %v", errs)
	}

	f.StartDateTime = time.Now().Add(24 * time.Hour)
	f.EndDateTime = f.StartDateTime.Add(-time.Hour)
	if errs := f.Validate(); errs == nil || errs["endDateTime"] == "" {
		t.Fatalf("expected end-after-start error, got %v", errs)
	}

	f.EndDateTime = f.StartDateTime.Add(48 * time.Hour)
	if errs := f.Validate(); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	b, err := f.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Type != domain.BookingTypeDriver {
		t.Fatalf("expected driver booking, got %s", b.Type)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(store.created))
	}
}

func TestDriverForm_LocalLaterRequiresStart(t *testing.T) {
	f := NewDriverForm(domain.CategoryLocal, signedInStore(), &countingStore{})
	f.PickupLocation = "A"
	f.DropLocation = "B"

	if errs := f.Validate(); errs != nil {
		t.Fatalf("book-now local hire should validate, got %v", errs)
	}

	f.Schedule = ScheduleLater
	if errs := f.Validate(); errs == nil || errs["startDateTime"] == "" {
		t.Fatalf("expected start date error for later schedule, got %v", errs)
	}
}

func TestErrors_ErrorStringIsStable(t *testing.T) {
	errs := Errors{"b": "second", "a": "first"}
	if got := errs.Error(); got != "a: first; b: second" {
		t.Fatalf("unexpected error string: %q", got)
	}
}

func TestEstimateFares(t *testing.T) {
	sedanLocal := EstimateCabFare("sedan", domain.CategoryLocal)
	suvLocal := EstimateCabFare("suv", domain.CategoryLocal)
	if !suvLocal.GreaterThan(sedanLocal) {
		t.Fatalf("suv must cost more than sedan: %s vs %s", suvLocal, sedanLocal)
	}
	if !EstimateCabFare("rickshaw", domain.CategoryLocal).IsZero() {
		t.Fatalf("unknown vehicle type must quote zero")
	}
	if EstimateDriverFare(domain.CategoryOutstation).IsZero() {
		t.Fatalf("driver outstation rate missing")
	}
}
