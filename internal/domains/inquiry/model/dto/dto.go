package dto

import (
	"epsec/internal/domains/inquiry/model"
	"epsec/shared"
	gDto "epsec/shared/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	Subject   *string `json:"subject" validate:"omitempty,max=255"`
	Message   string  `json:"message" validate:"required"`
	Rating    *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func (c *CreateInquiryRequest) ToModel(user string, userID *string) model.Inquiry {
	return model.Inquiry{
		ID:        uuid.NewString(),
		UserID:    userID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		Rating:    c.Rating,
		Status:    model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateInquiryRequest struct {
	Status        string `db:"status" json:"status" validate:"omitempty,oneof=new read resolved"`
	AdminResponse string `db:"admin_response" json:"admin_response" validate:"omitempty"`
}

type InquiryResponse struct {
	ID            string  `json:"id"`
	UserID        *string `json:"user_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Subject       *string `json:"subject"`
	Message       string  `json:"message"`
	Rating        *int    `json:"rating"`
	Status        string  `json:"status"`
	AdminResponse *string `json:"admin_response"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Rating = model.Rating
	r.Status = string(model.Status)
	r.AdminResponse = model.AdminResponse
	r.Metadata.FromModel(model.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
