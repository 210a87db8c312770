// Package pricing composes booking totals from fixed daily rates and
// the selected tour package. Totals are always computed server side;
// client supplied prices are never trusted.
package pricing

import (
	"math"
	"time"
)

var (
	RoomRates = map[string]float64{
		"single": 8000,
		"double": 12000,
		"family": 15000,
	}

	CarRates = map[string]float64{
		"economy": 1000,
		"suv":     1500,
		"luxury":  2000,
	}

	ServiceRates = map[string]float64{
		"insurance": 500,
		"sim":       200,
		"meetgreet": 1500,
	}
)

type Quote struct {
	PackagePrice        float64
	PackageDurationDays int
	GuideRatePerDay     float64
	RoomType            string
	CarType             string
	AdditionalServices  []string
	NumTravelers        int
	TravelDate          time.Time
	EndDate             *time.Time
}

// Days returns the trip length in whole days, never less than one.
// Package bookings carry the package duration and no end date, so the
// package duration takes precedence; custom trips derive the length
// from the date range, rounding partial days up.
func (q Quote) Days() int {
	if q.PackageDurationDays > 0 {
		return q.PackageDurationDays
	}

	if q.EndDate == nil {
		return 1
	}

	days := int(math.Ceil(q.EndDate.Sub(q.TravelDate).Hours() / 24))
	if days < 1 {
		return 1
	}

	return days
}

// Total sums the package price per traveler, the room, car and guide
// rates per day, and the per-traveler add-on services. Unknown room,
// car or service names contribute nothing.
func (q Quote) Total() float64 {
	days := q.Days()
	travelers := q.NumTravelers
	if travelers < 1 {
		travelers = 1
	}

	total := q.PackagePrice * float64(travelers)
	total += RoomRates[q.RoomType] * float64(days)
	total += CarRates[q.CarType] * float64(days)
	total += q.GuideRatePerDay * float64(days)

	for _, svc := range q.AdditionalServices {
		total += ServiceRates[svc] * float64(travelers)
	}

	return total
}
