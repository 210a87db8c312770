package dto_test

import (
	"testing"
	"time"

	"epsec/internal/domains/booking/model"
	"epsec/internal/domains/booking/model/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	destinationID := "dest-1"
	phone := "+251911000000"

	req := dto.CreateBookingRequest{
		DestinationID:      &destinationID,
		FullName:           "Abebe Bikila",
		Email:              "abebe@example.com",
		Phone:              &phone,
		TravelDate:         "2025-10-01",
		NumTravelers:       2,
		AdditionalServices: []string{"insurance"},
		TotalPrice:         99, // ignored; the service passes the computed total
	}

	travelDate := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	userID := "test-user-id"

	booking := req.ToModel(userID, &userID, "ETH-TEST-ABCD", travelDate, nil, 60000)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, "ETH-TEST-ABCD", booking.BookingReference)
	assert.Equal(t, req.FullName, booking.FullName)
	assert.Equal(t, req.Email, booking.Email)
	assert.Equal(t, travelDate, booking.TravelDate)
	assert.Nil(t, booking.EndDate)
	assert.Equal(t, req.NumTravelers, booking.NumTravelers)
	assert.Equal(t, float64(60000), booking.TotalPrice)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	if assert.NotNil(t, booking.UserID) {
		assert.Equal(t, userID, *booking.UserID)
	}
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	booking := model.Booking{
		ID:                 "booking-id",
		BookingReference:   "ETH-TEST-ABCD",
		FullName:           "Abebe Bikila",
		Email:              "abebe@example.com",
		TravelDate:         now,
		NumTravelers:       2,
		AdditionalServices: gModel.StringList{"insurance"},
		TotalPrice:         60000,
		Status:             model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, booking.BookingReference, response.BookingReference)
	assert.Equal(t, booking.FullName, response.FullName)
	assert.Equal(t, []string{"insurance"}, response.AdditionalServices)
	assert.Equal(t, booking.TotalPrice, response.TotalPrice)
	assert.Equal(t, string(model.StatusConfirmed), response.Status)
	assert.Equal(t, booking.CreatedBy, response.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1", Status: model.StatusPending},
		{ID: "booking-2", Status: model.StatusConfirmed},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 12, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
}
