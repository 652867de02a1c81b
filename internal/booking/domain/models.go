package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingType string

const (
	BookingTypeCab    BookingType = "cab"
	BookingTypeDriver BookingType = "driver"
)

type Category string

const (
	CategoryLocal      Category = "local"
	CategoryAirport    Category = "airport"
	CategoryOutstation Category = "outstation"
)

// Booking is a requested trip with a lifecycle status. ID and Number are
// immutable after creation; Status only moves through the transition table
// in status.go.
type Booking struct {
	ID             string          `json:"id"`
	Number         string          `json:"bookingId"`
	Type           BookingType     `json:"type"`
	Category       Category        `json:"category"`
	PickupLocation string          `json:"pickupLocation"`
	DropLocation   string          `json:"dropLocation"`
	Date           time.Time       `json:"date"`
	Status         Status          `json:"status"`
	VehicleType    string          `json:"vehicleType,omitempty"`
	Passengers     int             `json:"passengers,omitempty"`
	Luggage        int             `json:"luggage,omitempty"`
	Terminal       string          `json:"terminal,omitempty"`
	CustomerName   string          `json:"name"`
	CustomerMobile string          `json:"mobile"`
	FareEstimate   decimal.Decimal `json:"fareEstimate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type CreateBookingInput struct {
	Type           BookingType
	Category       Category
	PickupLocation string
	DropLocation   string
	Date           time.Time
	VehicleType    string
	Passengers     int
	Luggage        int
	Terminal       string
	CustomerName   string
	CustomerMobile string
	FareEstimate   decimal.Decimal
}

// Filter narrows a booking listing. Zero values match everything.
type Filter struct {
	Status Status
	Type   BookingType
}

func (f Filter) Matches(b Booking) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.Type != "" && b.Type != f.Type {
		return false
	}
	return true
}
