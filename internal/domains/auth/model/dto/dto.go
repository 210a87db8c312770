package dto

import (
	userModel "epsec/internal/domains/user/model"
	userDto "epsec/internal/domains/user/model/dto"
	gModel "epsec/shared/model"
	"epsec/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
}

func (c *RegisterRequest) ToUserModel(user, role, passwordHash, passwordSalt string) userModel.User {
	return userModel.User{
		ID:           uuid.NewString(),
		Email:        c.Email,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Phone:        c.Phone,
		Role:         role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// AuthResponse carries the opaque session token and the signed-in user.
type AuthResponse struct {
	Token string               `json:"token"`
	User  userDto.UserResponse `json:"user"`
}
