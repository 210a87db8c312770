package dto

import (
	"epsec/internal/domains/testimonial/model"
	"epsec/shared"
	gDto "epsec/shared/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Role     *string `json:"role" validate:"omitempty,max=255"`
	Message  string  `json:"message" validate:"required"`
	Rating   int     `json:"rating" validate:"omitempty,gte=1,lte=5"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=1024"`
	Featured bool    `json:"featured"`
	Approved bool    `json:"approved"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	rating := c.Rating
	if rating == 0 {
		rating = 5
	}

	return model.Testimonial{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Role:     c.Role,
		Message:  c.Message,
		Rating:   rating,
		ImageURL: c.ImageURL,
		Featured: c.Featured,
		Approved: c.Approved,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	Name     string `db:"name" json:"name" validate:"omitempty,max=255"`
	Role     string `db:"role" json:"role" validate:"omitempty,max=255"`
	Message  string `db:"message" json:"message" validate:"omitempty"`
	Rating   int    `db:"rating" json:"rating" validate:"omitempty,gte=1,lte=5"`
	ImageURL string `db:"image_url" json:"image_url" validate:"omitempty,max=1024"`
	Featured *bool  `db:"featured" json:"featured" validate:"omitempty"`
	Approved *bool  `db:"approved" json:"approved" validate:"omitempty"`
}

type TestimonialResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     *string `json:"role"`
	Message  string  `json:"message"`
	Rating   int     `json:"rating"`
	ImageURL *string `json:"image_url"`
	Featured bool    `json:"featured"`
	Approved bool    `json:"approved"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.Name = model.Name
	r.Role = model.Role
	r.Message = model.Message
	r.Rating = model.Rating
	r.ImageURL = model.ImageURL
	r.Featured = model.Featured
	r.Approved = model.Approved
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
