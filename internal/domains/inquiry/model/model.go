package model

import (
	gModel "epsec/shared/model"
)

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldEmail  = "email"
	FieldStatus = "status"
)

type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusResolved Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusResolved:
		return true
	default:
		return false
	}
}

type Inquiry struct {
	ID            string  `db:"id"`
	UserID        *string `db:"user_id"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	Email         string  `db:"email"`
	Phone         *string `db:"phone"`
	Subject       *string `db:"subject"`
	Message       string  `db:"message"`
	Rating        *int    `db:"rating"`
	Status        Status  `db:"status"`
	AdminResponse *string `db:"admin_response"`
	gModel.Metadata
}
