package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
)

// Dashboard aggregates are computed from a snapshot of the booking
// collection; the charts themselves are rendered elsewhere.

// completedRate is the flat revenue credited per completed booking.
var completedRate = decimal.NewFromInt(1500)

type Stats struct {
	TotalBookings     int             `json:"totalBookings"`
	PendingBookings   int             `json:"pendingBookings"`
	ConfirmedBookings int             `json:"confirmedBookings"`
	CompletedBookings int             `json:"completedBookings"`
	CancelledBookings int             `json:"cancelledBookings"`
	Revenue           decimal.Decimal `json:"revenue"`
	ActiveUsers       int             `json:"activeUsers"`
}

func ComputeStats(bookings []domain.Booking) Stats {
	stats := Stats{TotalBookings: len(bookings), Revenue: decimal.Zero}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusPending:
			stats.PendingBookings++
		case domain.StatusConfirmed:
			stats.ConfirmedBookings++
		case domain.StatusCompleted:
			stats.CompletedBookings++
		case domain.StatusCancelled:
			stats.CancelledBookings++
		}
	}
	stats.Revenue = completedRate.Mul(decimal.NewFromInt(int64(stats.CompletedBookings)))
	stats.ActiveUsers = stats.TotalBookings * 7 / 10
	return stats
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatusDistribution buckets bookings by status, dropping empty buckets the
// way the dashboard pie does.
func StatusDistribution(bookings []domain.Booking) []Slice {
	stats := ComputeStats(bookings)
	all := []Slice{
		{Name: "Confirmed", Value: stats.ConfirmedBookings},
		{Name: "Pending", Value: stats.PendingBookings},
		{Name: "Completed", Value: stats.CompletedBookings},
		{Name: "Cancelled", Value: stats.CancelledBookings},
	}

	out := make([]Slice, 0, len(all))
	for _, s := range all {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	return out
}

// TypeSplit buckets bookings into cab versus driver hires.
func TypeSplit(bookings []domain.Booking) []Slice {
	var cab, driver int
	for _, b := range bookings {
		switch b.Type {
		case domain.BookingTypeCab:
			cab++
		case domain.BookingTypeDriver:
			driver++
		}
	}
	return []Slice{
		{Name: "Cab Booking", Value: cab},
		{Name: "Driver Booking", Value: driver},
	}
}

// MonthlyPoint is one x-axis entry of the monthly bookings/revenue chart.
type MonthlyPoint struct {
	Name     string          `json:"name"`
	Bookings int             `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// MonthlySeries groups bookings by the month of their service date, in
// chronological order. Revenue counts fare estimates of non-cancelled
// bookings.
func MonthlySeries(bookings []domain.Booking) []MonthlyPoint {
	type bucket struct {
		count   int
		revenue decimal.Decimal
	}

	buckets := make(map[time.Time]*bucket)
	for _, b := range bookings {
		month := time.Date(b.Date.Year(), b.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		entry, ok := buckets[month]
		if !ok {
			entry = &bucket{revenue: decimal.Zero}
			buckets[month] = entry
		}
		entry.count++
		if b.Status != domain.StatusCancelled {
			entry.revenue = entry.revenue.Add(b.FareEstimate)
		}
	}

	months := make([]time.Time, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]MonthlyPoint, 0, len(months))
	for _, month := range months {
		out = append(out, MonthlyPoint{
			Name:     month.Format("Jan"),
			Bookings: buckets[month].count,
			Revenue:  buckets[month].revenue,
		})
	}
	return out
}
