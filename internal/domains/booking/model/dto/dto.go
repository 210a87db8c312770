package dto

import (
	"time"

	"epsec/internal/domains/booking/model"
	"epsec/shared"
	gDto "epsec/shared/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DestinationID      *string  `json:"destination_id" validate:"omitempty,uuid"`
	PackageID          *string  `json:"package_id" validate:"omitempty,uuid"`
	HotelID            *string  `json:"hotel_id" validate:"omitempty,uuid"`
	GuideID            *string  `json:"guide_id" validate:"omitempty,uuid"`
	FullName           string   `json:"full_name" validate:"required,max=255"`
	Email              string   `json:"email" validate:"required,email"`
	Phone              *string  `json:"phone" validate:"omitempty,max=50"`
	TravelDate         string   `json:"travel_date" validate:"required,datetime=2006-01-02"`
	EndDate            *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	NumTravelers       int      `json:"num_travelers" validate:"required,gte=1"`
	RoomType           *string  `json:"room_type" validate:"omitempty,max=50"`
	CarType            *string  `json:"car_type" validate:"omitempty,max=50"`
	AdditionalServices []string `json:"additional_services" validate:"omitempty"`
	Notes              *string  `json:"notes" validate:"omitempty"`

	// TotalPrice is accepted for wire compatibility but never trusted;
	// the stored total is always recomputed server side.
	TotalPrice float64 `json:"total_price"`
}

// ToModel materializes a pending booking. The reference, dates, owner
// and total come from the service, not the raw request.
func (c *CreateBookingRequest) ToModel(user string, userID *string, reference string, travelDate time.Time, endDate *time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:                 uuid.NewString(),
		BookingReference:   reference,
		UserID:             userID,
		DestinationID:      c.DestinationID,
		PackageID:          c.PackageID,
		HotelID:            c.HotelID,
		GuideID:            c.GuideID,
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		TravelDate:         travelDate,
		EndDate:            endDate,
		NumTravelers:       c.NumTravelers,
		RoomType:           c.RoomType,
		CarType:            c.CarType,
		AdditionalServices: gModel.StringList(c.AdditionalServices),
		TotalPrice:         totalPrice,
		Status:             model.StatusPending,
		Notes:              c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

type BookingResponse struct {
	ID                 string     `json:"id"`
	BookingReference   string     `json:"booking_reference"`
	UserID             *string    `json:"user_id"`
	DestinationID      *string    `json:"destination_id"`
	PackageID          *string    `json:"package_id"`
	HotelID            *string    `json:"hotel_id"`
	GuideID            *string    `json:"guide_id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              *string    `json:"phone"`
	TravelDate         time.Time  `json:"travel_date"`
	EndDate            *time.Time `json:"end_date"`
	NumTravelers       int        `json:"num_travelers"`
	RoomType           *string    `json:"room_type"`
	CarType            *string    `json:"car_type"`
	AdditionalServices []string   `json:"additional_services"`
	TotalPrice         float64    `json:"total_price"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.UserID = model.UserID
	r.DestinationID = model.DestinationID
	r.PackageID = model.PackageID
	r.HotelID = model.HotelID
	r.GuideID = model.GuideID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.TravelDate = model.TravelDate
	r.EndDate = model.EndDate
	r.NumTravelers = model.NumTravelers
	r.RoomType = model.RoomType
	r.CarType = model.CarType
	r.AdditionalServices = model.AdditionalServices
	r.TotalPrice = model.TotalPrice
	r.Status = string(model.Status)
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is the payload published to Kafka after a
// booking is stored.
type BookingCreatedEvent struct {
	BookingID        string    `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	TravelDate       time.Time `json:"travel_date"`
	NumTravelers     int       `json:"num_travelers"`
	TotalPrice       float64   `json:"total_price"`
	CreatedAt        time.Time `json:"created_at"`
}
