package forms

import (
	"github.com/shopspring/decimal"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
)

var cabRates = map[string]struct {
	Base        decimal.Decimal
	PerCategory map[domain.Category]decimal.Decimal
}{
	"sedan": {
		Base: decimal.NewFromInt(500),
		PerCategory: map[domain.Category]decimal.Decimal{
			domain.CategoryLocal:      decimal.NewFromInt(300),
			domain.CategoryAirport:    decimal.NewFromInt(500),
			domain.CategoryOutstation: decimal.NewFromInt(1500),
		},
	},
	"suv": {
		Base: decimal.NewFromInt(800),
		PerCategory: map[domain.Category]decimal.Decimal{
			domain.CategoryLocal:      decimal.NewFromInt(450),
			domain.CategoryAirport:    decimal.NewFromInt(700),
			domain.CategoryOutstation: decimal.NewFromInt(2200),
		},
	},
	"luxury": {
		Base: decimal.NewFromInt(1500),
		PerCategory: map[domain.Category]decimal.Decimal{
			domain.CategoryLocal:      decimal.NewFromInt(900),
			domain.CategoryAirport:    decimal.NewFromInt(1200),
			domain.CategoryOutstation: decimal.NewFromInt(4000),
		},
	},
}

var driverRates = map[domain.Category]decimal.Decimal{
	domain.CategoryLocal:      decimal.NewFromInt(600),
	domain.CategoryAirport:    decimal.NewFromInt(800),
	domain.CategoryOutstation: decimal.NewFromInt(1800),
}

// EstimateCabFare quotes an upfront fare for a cab booking. Unknown vehicle
// types quote zero; validation rejects them before submit anyway.
func EstimateCabFare(vehicleType string, category domain.Category) decimal.Decimal {
	rate, ok := cabRates[vehicleType]
	if !ok {
		return decimal.Zero
	}
	return rate.Base.Add(rate.PerCategory[category])
}

// EstimateDriverFare quotes the flat driver-hire rate for a category.
func EstimateDriverFare(category domain.Category) decimal.Decimal {
	return driverRates[category]
}
