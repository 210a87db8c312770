package dto

import (
	"epsec/internal/domains/catalog/model"
	"epsec/shared"
	gDto "epsec/shared/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/google/uuid"
)

type CreateDestinationRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Slug            string   `json:"slug" validate:"required,max=255"`
	Tagline         *string  `json:"tagline" validate:"omitempty,max=255"`
	Description     *string  `json:"description" validate:"omitempty"`
	Category        *string  `json:"category" validate:"omitempty,max=100"`
	ImageURL        *string  `json:"image_url" validate:"omitempty,max=1024"`
	GalleryImages   []string `json:"gallery_images" validate:"omitempty"`
	Highlights      []string `json:"highlights" validate:"omitempty"`
	Activities      []string `json:"activities" validate:"omitempty"`
	BestTimeToVisit *string  `json:"best_time_to_visit" validate:"omitempty,max=255"`
	Featured        bool     `json:"featured"`
}

func (c *CreateDestinationRequest) ToModel(user string) model.Destination {
	return model.Destination{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Slug:            c.Slug,
		Tagline:         c.Tagline,
		Description:     c.Description,
		Category:        c.Category,
		ImageURL:        c.ImageURL,
		GalleryImages:   gModel.StringList(c.GalleryImages),
		Highlights:      gModel.StringList(c.Highlights),
		Activities:      gModel.StringList(c.Activities),
		BestTimeToVisit: c.BestTimeToVisit,
		Featured:        c.Featured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDestinationRequest struct {
	Name            string            `db:"name" json:"name" validate:"omitempty,max=255"`
	Slug            string            `db:"slug" json:"slug" validate:"omitempty,max=255"`
	Tagline         string            `db:"tagline" json:"tagline" validate:"omitempty,max=255"`
	Description     string            `db:"description" json:"description" validate:"omitempty"`
	Category        string            `db:"category" json:"category" validate:"omitempty,max=100"`
	ImageURL        string            `db:"image_url" json:"image_url" validate:"omitempty,max=1024"`
	GalleryImages   gModel.StringList `db:"gallery_images" json:"gallery_images" validate:"omitempty"`
	Highlights      gModel.StringList `db:"highlights" json:"highlights" validate:"omitempty"`
	Activities      gModel.StringList `db:"activities" json:"activities" validate:"omitempty"`
	BestTimeToVisit string            `db:"best_time_to_visit" json:"best_time_to_visit" validate:"omitempty,max=255"`
	Featured        *bool             `db:"featured" json:"featured" validate:"omitempty"`
}

type DestinationResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Tagline         *string  `json:"tagline"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	ImageURL        *string  `json:"image_url"`
	GalleryImages   []string `json:"gallery_images"`
	Highlights      []string `json:"highlights"`
	Activities      []string `json:"activities"`
	BestTimeToVisit *string  `json:"best_time_to_visit"`
	Featured        bool     `json:"featured"`
	gDto.Metadata
}

func (r *DestinationResponse) FromModel(model model.Destination) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Tagline = model.Tagline
	r.Description = model.Description
	r.Category = model.Category
	r.ImageURL = model.ImageURL
	r.GalleryImages = model.GalleryImages
	r.Highlights = model.Highlights
	r.Activities = model.Activities
	r.BestTimeToVisit = model.BestTimeToVisit
	r.Featured = model.Featured
	r.Metadata.FromModel(model.Metadata)
}

type GetDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetDestinationsResponse) FromModels(models []model.Destination, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Destinations = make([]DestinationResponse, len(models))
	for i, mod := range models {
		r.Destinations[i].FromModel(mod)
	}
}

// DestinationDetailResponse is the slug lookup payload with the
// destination's hotels and packages embedded.
type DestinationDetailResponse struct {
	DestinationResponse
	Hotels   []HotelResponse   `json:"hotels"`
	Packages []PackageResponse `json:"packages"`
}

type CreatePackageRequest struct {
	DestinationID *string  `json:"destination_id" validate:"omitempty,uuid"`
	Name          string   `json:"name" validate:"required,max=255"`
	Description   *string  `json:"description" validate:"omitempty"`
	DurationDays  int      `json:"duration_days" validate:"omitempty,gte=1"`
	Price         float64  `json:"price" validate:"required,gte=0"`
	Includes      []string `json:"includes" validate:"omitempty"`
	Itinerary     []string `json:"itinerary" validate:"omitempty"`
	MaxGroupSize  int      `json:"max_group_size" validate:"omitempty,gte=1"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,max=1024"`
	Featured      bool     `json:"featured"`
}

func (c *CreatePackageRequest) ToModel(user string) model.Package {
	maxGroupSize := c.MaxGroupSize
	if maxGroupSize == 0 {
		maxGroupSize = 10
	}

	return model.Package{
		ID:            uuid.NewString(),
		DestinationID: c.DestinationID,
		Name:          c.Name,
		Description:   c.Description,
		DurationDays:  c.DurationDays,
		Price:         c.Price,
		Includes:      gModel.StringList(c.Includes),
		Itinerary:     gModel.StringList(c.Itinerary),
		MaxGroupSize:  maxGroupSize,
		ImageURL:      c.ImageURL,
		Featured:      c.Featured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePackageRequest struct {
	DestinationID string            `db:"destination_id" json:"destination_id" validate:"omitempty,uuid"`
	Name          string            `db:"name" json:"name" validate:"omitempty,max=255"`
	Description   string            `db:"description" json:"description" validate:"omitempty"`
	DurationDays  int               `db:"duration_days" json:"duration_days" validate:"omitempty,gte=1"`
	Price         float64           `db:"price" json:"price" validate:"omitempty,gte=0"`
	Includes      gModel.StringList `db:"includes" json:"includes" validate:"omitempty"`
	Itinerary     gModel.StringList `db:"itinerary" json:"itinerary" validate:"omitempty"`
	MaxGroupSize  int               `db:"max_group_size" json:"max_group_size" validate:"omitempty,gte=1"`
	ImageURL      string            `db:"image_url" json:"image_url" validate:"omitempty,max=1024"`
	Featured      *bool             `db:"featured" json:"featured" validate:"omitempty"`
}

type PackageResponse struct {
	ID            string   `json:"id"`
	DestinationID *string  `json:"destination_id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	DurationDays  int      `json:"duration_days"`
	Price         float64  `json:"price"`
	Includes      []string `json:"includes"`
	Itinerary     []string `json:"itinerary"`
	MaxGroupSize  int      `json:"max_group_size"`
	ImageURL      *string  `json:"image_url"`
	Featured      bool     `json:"featured"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.Package) {
	r.ID = model.ID
	r.DestinationID = model.DestinationID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationDays = model.DurationDays
	r.Price = model.Price
	r.Includes = model.Includes
	r.Itinerary = model.Itinerary
	r.MaxGroupSize = model.MaxGroupSize
	r.ImageURL = model.ImageURL
	r.Featured = model.Featured
	r.Metadata.FromModel(model.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}

type CreateHotelRequest struct {
	DestinationID *string  `json:"destination_id" validate:"omitempty,uuid"`
	Name          string   `json:"name" validate:"required,max=255"`
	Description   *string  `json:"description" validate:"omitempty"`
	StarRating    int      `json:"star_rating" validate:"omitempty,gte=1,lte=5"`
	PricePerNight float64  `json:"price_per_night" validate:"omitempty,gte=0"`
	Amenities     []string `json:"amenities" validate:"omitempty"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,max=1024"`
	RoomTypes     []string `json:"room_types" validate:"omitempty"`
	Address       *string  `json:"address" validate:"omitempty,max=512"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:            uuid.NewString(),
		DestinationID: c.DestinationID,
		Name:          c.Name,
		Description:   c.Description,
		StarRating:    c.StarRating,
		PricePerNight: c.PricePerNight,
		Amenities:     gModel.StringList(c.Amenities),
		ImageURL:      c.ImageURL,
		RoomTypes:     gModel.StringList(c.RoomTypes),
		Address:       c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	DestinationID string            `db:"destination_id" json:"destination_id" validate:"omitempty,uuid"`
	Name          string            `db:"name" json:"name" validate:"omitempty,max=255"`
	Description   string            `db:"description" json:"description" validate:"omitempty"`
	StarRating    int               `db:"star_rating" json:"star_rating" validate:"omitempty,gte=1,lte=5"`
	PricePerNight float64           `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Amenities     gModel.StringList `db:"amenities" json:"amenities" validate:"omitempty"`
	ImageURL      string            `db:"image_url" json:"image_url" validate:"omitempty,max=1024"`
	RoomTypes     gModel.StringList `db:"room_types" json:"room_types" validate:"omitempty"`
	Address       string            `db:"address" json:"address" validate:"omitempty,max=512"`
}

type HotelResponse struct {
	ID            string   `json:"id"`
	DestinationID *string  `json:"destination_id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	StarRating    int      `json:"star_rating"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	ImageURL      *string  `json:"image_url"`
	RoomTypes     []string `json:"room_types"`
	Address       *string  `json:"address"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.DestinationID = model.DestinationID
	r.Name = model.Name
	r.Description = model.Description
	r.StarRating = model.StarRating
	r.PricePerNight = model.PricePerNight
	r.Amenities = model.Amenities
	r.ImageURL = model.ImageURL
	r.RoomTypes = model.RoomTypes
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

type CreateGuideRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Languages       []string `json:"languages" validate:"omitempty"`
	Specializations []string `json:"specializations" validate:"omitempty"`
	ExperienceYears int      `json:"experience_years" validate:"omitempty,gte=0"`
	Bio             *string  `json:"bio" validate:"omitempty"`
	ImageURL        *string  `json:"image_url" validate:"omitempty,max=1024"`
	PricePerDay     float64  `json:"price_per_day" validate:"omitempty,gte=0"`
}

func (c *CreateGuideRequest) ToModel(user string) model.Guide {
	return model.Guide{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Languages:       gModel.StringList(c.Languages),
		Specializations: gModel.StringList(c.Specializations),
		ExperienceYears: c.ExperienceYears,
		Bio:             c.Bio,
		ImageURL:        c.ImageURL,
		PricePerDay:     c.PricePerDay,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuideRequest struct {
	Name            string            `db:"name" json:"name" validate:"omitempty,max=255"`
	Languages       gModel.StringList `db:"languages" json:"languages" validate:"omitempty"`
	Specializations gModel.StringList `db:"specializations" json:"specializations" validate:"omitempty"`
	ExperienceYears int               `db:"experience_years" json:"experience_years" validate:"omitempty,gte=0"`
	Bio             string            `db:"bio" json:"bio" validate:"omitempty"`
	ImageURL        string            `db:"image_url" json:"image_url" validate:"omitempty,max=1024"`
	PricePerDay     float64           `db:"price_per_day" json:"price_per_day" validate:"omitempty,gte=0"`
}

type GuideResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Languages       []string `json:"languages"`
	Specializations []string `json:"specializations"`
	ExperienceYears int      `json:"experience_years"`
	Bio             *string  `json:"bio"`
	ImageURL        *string  `json:"image_url"`
	PricePerDay     float64  `json:"price_per_day"`
	gDto.Metadata
}

func (r *GuideResponse) FromModel(model model.Guide) {
	r.ID = model.ID
	r.Name = model.Name
	r.Languages = model.Languages
	r.Specializations = model.Specializations
	r.ExperienceYears = model.ExperienceYears
	r.Bio = model.Bio
	r.ImageURL = model.ImageURL
	r.PricePerDay = model.PricePerDay
	r.Metadata.FromModel(model.Metadata)
}

type GetGuidesResponse struct {
	Guides    []GuideResponse `json:"guides"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuidesResponse) FromModels(models []model.Guide, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guides = make([]GuideResponse, len(models))
	for i, mod := range models {
		r.Guides[i].FromModel(mod)
	}
}

type UploadGalleryImageResponse struct {
	URL string `json:"url"`
}
