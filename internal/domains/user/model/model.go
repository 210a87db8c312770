package model

import "epsec/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldPasswordSalt = "password_salt"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldPhone        = "phone"
	FieldRole         = "role"
	FieldProfileImage = "profile_image"
)

const (
	FavoriteTableName  = "user_favorites"
	FavoriteEntityName = "favorite"

	FavoriteFieldID            = "id"
	FavoriteFieldUserID        = "user_id"
	FavoriteFieldDestinationID = "destination_id"
)

type User struct {
	ID           string  `db:"id"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	PasswordSalt string  `db:"password_salt"`
	FirstName    string  `db:"first_name"`
	LastName     string  `db:"last_name"`
	Phone        *string `db:"phone"`
	Role         string  `db:"role"`
	ProfileImage *string `db:"profile_image"`
	model.Metadata
}

// FullName joins the user's name parts for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}

	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

type Favorite struct {
	ID            string `db:"id"`
	UserID        string `db:"user_id"`
	DestinationID string `db:"destination_id"`
	model.Metadata
}
