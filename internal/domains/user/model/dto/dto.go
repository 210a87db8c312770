package dto

import (
	catalogModel "epsec/internal/domains/catalog/model"
	catalogDto "epsec/internal/domains/catalog/model/dto"
	"epsec/internal/domains/user/model"
	"epsec/shared"
	gDto "epsec/shared/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        *string `json:"phone"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Role = model.Role
	r.ProfileImage = model.ProfileImage
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

type UpdateProfileRequest struct {
	FirstName    string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName     string `db:"last_name" json:"last_name" validate:"omitempty,max=100"`
	Phone        string `db:"phone" json:"phone" validate:"omitempty,max=50"`
	ProfileImage string `db:"profile_image" json:"profile_image" validate:"omitempty,max=1024"`
}

type AddFavoriteRequest struct {
	DestinationID string `json:"destination_id" validate:"required,uuid"`
}

func (c *AddFavoriteRequest) ToModel(userID string) model.Favorite {
	return model.Favorite{
		ID:            uuid.NewString(),
		UserID:        userID,
		DestinationID: c.DestinationID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// GetFavoritesResponse lists the destinations a user has favorited.
type GetFavoritesResponse struct {
	Destinations []catalogDto.DestinationResponse `json:"destinations"`
	TotalData    int                              `json:"total_data"`
}

func (r *GetFavoritesResponse) FromDestinations(models []catalogModel.Destination) {
	r.Destinations = make([]catalogDto.DestinationResponse, len(models))
	for i, mod := range models {
		r.Destinations[i].FromModel(mod)
	}
}
