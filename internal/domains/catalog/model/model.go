package model

import (
	gModel "epsec/shared/model"
)

const (
	DestinationTableName  = "destinations"
	DestinationEntityName = "destination"

	DestinationFieldID            = "id"
	DestinationFieldName          = "name"
	DestinationFieldSlug          = "slug"
	DestinationFieldCategory      = "category"
	DestinationFieldFeatured      = "featured"
	DestinationFieldGalleryImages = "gallery_images"
)

const (
	PackageTableName  = "tour_packages"
	PackageEntityName = "package"

	PackageFieldID            = "id"
	PackageFieldDestinationID = "destination_id"
	PackageFieldName          = "name"
	PackageFieldFeatured      = "featured"
	PackageFieldPrice         = "price"
)

const (
	HotelTableName  = "hotels"
	HotelEntityName = "hotel"

	HotelFieldID            = "id"
	HotelFieldDestinationID = "destination_id"
	HotelFieldName          = "name"
	HotelFieldStarRating    = "star_rating"
)

const (
	GuideTableName  = "guides"
	GuideEntityName = "guide"

	GuideFieldID              = "id"
	GuideFieldName            = "name"
	GuideFieldExperienceYears = "experience_years"
)

type Destination struct {
	ID              string            `db:"id"`
	Name            string            `db:"name"`
	Slug            string            `db:"slug"`
	Tagline         *string           `db:"tagline"`
	Description     *string           `db:"description"`
	Category        *string           `db:"category"`
	ImageURL        *string           `db:"image_url"`
	GalleryImages   gModel.StringList `db:"gallery_images"`
	Highlights      gModel.StringList `db:"highlights"`
	Activities      gModel.StringList `db:"activities"`
	BestTimeToVisit *string           `db:"best_time_to_visit"`
	Featured        bool              `db:"featured"`
	gModel.Metadata
}

type Package struct {
	ID            string            `db:"id"`
	DestinationID *string           `db:"destination_id"`
	Name          string            `db:"name"`
	Description   *string           `db:"description"`
	DurationDays  int               `db:"duration_days"`
	Price         float64           `db:"price"`
	Includes      gModel.StringList `db:"includes"`
	Itinerary     gModel.StringList `db:"itinerary"`
	MaxGroupSize  int               `db:"max_group_size"`
	ImageURL      *string           `db:"image_url"`
	Featured      bool              `db:"featured"`
	gModel.Metadata
}

type Hotel struct {
	ID            string            `db:"id"`
	DestinationID *string           `db:"destination_id"`
	Name          string            `db:"name"`
	Description   *string           `db:"description"`
	StarRating    int               `db:"star_rating"`
	PricePerNight float64           `db:"price_per_night"`
	Amenities     gModel.StringList `db:"amenities"`
	ImageURL      *string           `db:"image_url"`
	RoomTypes     gModel.StringList `db:"room_types"`
	Address       *string           `db:"address"`
	gModel.Metadata
}

type Guide struct {
	ID              string            `db:"id"`
	Name            string            `db:"name"`
	Languages       gModel.StringList `db:"languages"`
	Specializations gModel.StringList `db:"specializations"`
	ExperienceYears int               `db:"experience_years"`
	Bio             *string           `db:"bio"`
	ImageURL        *string           `db:"image_url"`
	PricePerDay     float64           `db:"price_per_day"`
	gModel.Metadata
}
