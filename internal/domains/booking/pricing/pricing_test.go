package pricing_test

import (
	"testing"
	"time"

	"epsec/internal/domains/booking/pricing"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestQuote_Days(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		quote    pricing.Quote
		expected int
	}{
		{
			name:     "no end date defaults to one day",
			quote:    pricing.Quote{TravelDate: start},
			expected: 1,
		},
		{
			name:     "end date before start clamps to one day",
			quote:    pricing.Quote{TravelDate: start, EndDate: datePtr(start.AddDate(0, 0, -3))},
			expected: 1,
		},
		{
			name:     "same day trip counts as one day",
			quote:    pricing.Quote{TravelDate: start, EndDate: datePtr(start)},
			expected: 1,
		},
		{
			name:     "five day trip",
			quote:    pricing.Quote{TravelDate: start, EndDate: datePtr(start.AddDate(0, 0, 5))},
			expected: 5,
		},
		{
			name:     "partial day rounds up",
			quote:    pricing.Quote{TravelDate: start, EndDate: datePtr(start.Add(36 * time.Hour))},
			expected: 2,
		},
		{
			name:     "package duration without end date",
			quote:    pricing.Quote{PackageDurationDays: 3, TravelDate: start},
			expected: 3,
		},
		{
			name:     "package duration wins over date range",
			quote:    pricing.Quote{PackageDurationDays: 7, TravelDate: start, EndDate: datePtr(start.AddDate(0, 0, 2))},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.quote.Days())
		})
	}
}

func TestQuote_Total(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		quote    pricing.Quote
		expected float64
	}{
		{
			name:     "empty quote",
			quote:    pricing.Quote{},
			expected: 0,
		},
		{
			name: "package price multiplies by travelers",
			quote: pricing.Quote{
				PackagePrice: 25000,
				NumTravelers: 3,
			},
			expected: 75000,
		},
		{
			name: "zero travelers counts as one",
			quote: pricing.Quote{
				PackagePrice: 25000,
				NumTravelers: 0,
			},
			expected: 25000,
		},
		{
			name: "room and car rates multiply by days",
			quote: pricing.Quote{
				RoomType:     "double",
				CarType:      "suv",
				NumTravelers: 2,
				TravelDate:   start,
				EndDate:      datePtr(start.AddDate(0, 0, 3)),
			},
			expected: (12000 + 1500) * 3,
		},
		{
			name: "guide rate multiplies by days",
			quote: pricing.Quote{
				GuideRatePerDay: 4000,
				NumTravelers:    2,
				TravelDate:      start,
				EndDate:         datePtr(start.AddDate(0, 0, 2)),
			},
			expected: 8000,
		},
		{
			name: "services multiply by travelers",
			quote: pricing.Quote{
				AdditionalServices: []string{"insurance", "sim", "meetgreet"},
				NumTravelers:       2,
			},
			expected: (500 + 200 + 1500) * 2,
		},
		{
			name: "unknown room car and service names contribute nothing",
			quote: pricing.Quote{
				RoomType:           "penthouse",
				CarType:            "limousine",
				AdditionalServices: []string{"helicopter"},
				NumTravelers:       2,
			},
			expected: 0,
		},
		{
			name: "three day package with single room and insurance",
			quote: pricing.Quote{
				PackagePrice:        10000,
				PackageDurationDays: 3,
				RoomType:            "single",
				AdditionalServices:  []string{"insurance"},
				NumTravelers:        2,
				TravelDate:          start,
			},
			expected: 45000,
		},
		{
			name: "custom trip with double room and suv",
			quote: pricing.Quote{
				RoomType:     "double",
				CarType:      "suv",
				NumTravelers: 1,
				TravelDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      datePtr(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)),
			},
			expected: 40500,
		},
		{
			name: "full quote",
			quote: pricing.Quote{
				PackagePrice:       30000,
				GuideRatePerDay:    4000,
				RoomType:           "single",
				CarType:            "economy",
				AdditionalServices: []string{"insurance"},
				NumTravelers:       2,
				TravelDate:         start,
				EndDate:            datePtr(start.AddDate(0, 0, 4)),
			},
			expected: 30000*2 + (8000+1000+4000)*4 + 500*2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.quote.Total(), 0.001)
		})
	}
}

func TestRates(t *testing.T) {
	assert.Equal(t, float64(8000), pricing.RoomRates["single"])
	assert.Equal(t, float64(12000), pricing.RoomRates["double"])
	assert.Equal(t, float64(15000), pricing.RoomRates["family"])
	assert.Equal(t, float64(1000), pricing.CarRates["economy"])
	assert.Equal(t, float64(1500), pricing.CarRates["suv"])
	assert.Equal(t, float64(2000), pricing.CarRates["luxury"])
	assert.Equal(t, float64(500), pricing.ServiceRates["insurance"])
	assert.Equal(t, float64(200), pricing.ServiceRates["sim"])
	assert.Equal(t, float64(1500), pricing.ServiceRates["meetgreet"])
}
