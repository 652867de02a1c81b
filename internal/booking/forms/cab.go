package forms

import (
	"errors"
	"time"

	"github.com/yadvendra249/olio-cab-connect/internal/auth"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/validation"
)

// CabForm drives the cab booking flow for one category tab.
type CabForm struct {
	store    domain.BookingStore
	category domain.Category

	Name           string
	Mobile         string
	PickupLocation string
	DropLocation   string
	VehicleType    string
	Passengers     int
	Luggage        int
	Terminal       string
	Schedule       ScheduleMode
	BookingDate    time.Time
}

// NewCabForm builds a controller for the given category, prefilling name and
// mobile from the signed-in user the way the web form did.
func NewCabForm(category domain.Category, authStore *auth.Store, store domain.BookingStore) *CabForm {
	f := &CabForm{
		store:    store,
		category: category,
		Schedule: ScheduleNow,
	}
	if user := authStore.Current(); user != nil {
		f.Name = user.Name
		f.Mobile = user.Mobile
	}
	return f
}

func (f *CabForm) Category() domain.Category { return f.category }

// Validate checks every field and accumulates one message per failing field.
// A nil return means the form may be submitted.
func (f *CabForm) Validate() Errors {
	errs := Errors{}

	errs.add("name", validation.ValidateStringNotEmpty(f.Name, "name"))
	errs.add("mobile", validation.ValidateMobile(f.Mobile))
	errs.add("pickupLocation", validation.ValidateStringNotEmpty(f.PickupLocation, "pickup location"))
	errs.add("dropLocation", validation.ValidateStringNotEmpty(f.DropLocation, "drop location"))
	errs.add("vehicleType", validation.ValidateVehicleType(f.VehicleType))
	errs.add("passengers", validation.ValidatePassengers(f.Passengers))
	errs.add("luggage", validation.ValidateLuggage(f.Luggage))

	if f.category == domain.CategoryAirport {
		errs.add("terminal", validation.ValidateStringNotEmpty(f.Terminal, "terminal"))
	}

	// Date is mandatory when scheduling ahead; outstation trips are always
	// scheduled ahead.
	if f.Schedule == ScheduleLater || f.category == domain.CategoryOutstation {
		if f.BookingDate.IsZero() {
			errs.add("bookingDate", errors.New("booking date is required"))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates and, when clean, creates the booking and resets the input
// fields. A failed validation never reaches the store.
func (f *CabForm) Submit() (*domain.Booking, error) {
	if errs := f.Validate(); errs != nil {
		return nil, errs
	}

	mode := f.Schedule
	if f.category == domain.CategoryOutstation {
		mode = ScheduleLater
	}

	booking := f.store.Create(domain.CreateBookingInput{
		Type:           domain.BookingTypeCab,
		Category:       f.category,
		PickupLocation: f.PickupLocation,
		DropLocation:   f.DropLocation,
		Date:           serviceDate(mode, f.BookingDate),
		VehicleType:    f.VehicleType,
		Passengers:     f.Passengers,
		Luggage:        f.Luggage,
		Terminal:       f.Terminal,
		CustomerName:   f.Name,
		CustomerMobile: f.Mobile,
		FareEstimate:   EstimateCabFare(f.VehicleType, f.category),
	})

	f.reset()
	return &booking, nil
}

func (f *CabForm) reset() {
	f.PickupLocation = ""
	f.DropLocation = ""
	f.VehicleType = ""
	f.Passengers = 0
	f.Luggage = 0
	f.Terminal = ""
	f.Schedule = ScheduleNow
	f.BookingDate = time.Time{}
}
