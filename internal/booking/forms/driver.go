package forms

import (
	"errors"
	"time"

	"github.com/yadvendra249/olio-cab-connect/internal/auth"
	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
	"github.com/yadvendra249/olio-cab-connect/internal/shared/validation"
)

// DriverForm drives the hire-a-driver flow for one category tab. Outstation
// hires span a start and end datetime instead of a single date.
type DriverForm struct {
	store    domain.BookingStore
	category domain.Category

	Name           string
	Mobile         string
	PickupLocation string
	DropLocation   string
	Terminal       string
	Schedule       ScheduleMode
	StartDateTime  time.Time
	EndDateTime    time.Time
}

func NewDriverForm(category domain.Category, authStore *auth.Store, store domain.BookingStore) *DriverForm {
	f := &DriverForm{
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

func (f *DriverForm) Category() domain.Category { return f.category }

func (f *DriverForm) Validate() Errors {
	errs := Errors{}

	errs.add("name", validation.ValidateStringNotEmpty(f.Name, "name"))
	errs.add("mobile", validation.ValidateMobile(f.Mobile))
	errs.add("pickupLocation", validation.ValidateStringNotEmpty(f.PickupLocation, "pickup location"))
	errs.add("dropLocation", validation.ValidateStringNotEmpty(f.DropLocation, "drop location"))

	if f.category == domain.CategoryAirport {
		errs.add("terminal", validation.ValidateStringNotEmpty(f.Terminal, "terminal"))
	}

	switch f.category {
	case domain.CategoryOutstation:
		if f.StartDateTime.IsZero() {
			errs.add("startDateTime", errors.New("start date/time is required"))
		}
		if f.EndDateTime.IsZero() {
			errs.add("endDateTime", errors.New("end date/time is required"))
		} else if !f.StartDateTime.IsZero() && !f.EndDateTime.After(f.StartDateTime) {
			errs.add("endDateTime", errors.New("end date/time must be after start"))
		}
	default:
		if f.Schedule == ScheduleLater && f.StartDateTime.IsZero() {
			errs.add("startDateTime", errors.New("start date/time is required"))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f *DriverForm) Submit() (*domain.Booking, error) {
	if errs := f.Validate(); errs != nil {
		return nil, errs
	}

	mode := f.Schedule
	if f.category == domain.CategoryOutstation {
		mode = ScheduleLater
	}

	booking := f.store.Create(domain.CreateBookingInput{
		Type:           domain.BookingTypeDriver,
		Category:       f.category,
		PickupLocation: f.PickupLocation,
		DropLocation:   f.DropLocation,
		Date:           serviceDate(mode, f.StartDateTime),
		Terminal:       f.Terminal,
		CustomerName:   f.Name,
		CustomerMobile: f.Mobile,
		FareEstimate:   EstimateDriverFare(f.category),
	})

	f.reset()
	return &booking, nil
}

func (f *DriverForm) reset() {
	f.PickupLocation = ""
	f.DropLocation = ""
	f.Terminal = ""
	f.Schedule = ScheduleNow
	f.StartDateTime = time.Time{}
	f.EndDateTime = time.Time{}
}
