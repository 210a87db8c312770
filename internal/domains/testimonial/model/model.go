package model

import (
	gModel "epsec/shared/model"
)

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID       = "id"
	FieldFeatured = "featured"
	FieldApproved = "approved"
)

type Testimonial struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Role     *string `db:"role"`
	Message  string  `db:"message"`
	Rating   int     `db:"rating"`
	ImageURL *string `db:"image_url"`
	Featured bool    `db:"featured"`
	Approved bool    `db:"approved"`
	gModel.Metadata
}
