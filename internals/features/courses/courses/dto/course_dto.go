package dto

import "gorm.io/datatypes"

type CreateCourseDTO struct {
	Name               string  `json:"name" validate:"required,min=3,max=150"`
	Description        string  `json:"description" validate:"omitempty,max=5000"`
	Type               string  `json:"type" validate:"required,oneof=online in_person hybrid"`
	PassScore          float64 `json:"pass_score" validate:"omitempty,gte=0,lte=100"`
	CertificateEnabled bool    `json:"certificate_enabled"`
}

type UpdateCourseDTO struct {
	Name               *string  `json:"name" validate:"omitempty,min=3,max=150"`
	Description        *string  `json:"description" validate:"omitempty,max=5000"`
	Type               *string  `json:"type" validate:"omitempty,oneof=online in_person hybrid"`
	PassScore          *float64 `json:"pass_score" validate:"omitempty,gte=0,lte=100"`
	CertificateEnabled *bool    `json:"certificate_enabled"`
	IsPublished        *bool    `json:"is_published"`
}

type CreateCourseModuleDTO struct {
	Title      string         `json:"title" validate:"required,min=2,max=150"`
	OrderIndex int            `json:"order_index" validate:"gte=0"`
	Content    datatypes.JSON `json:"content"`
}

type UpdateCourseModuleDTO struct {
	Title      *string        `json:"title" validate:"omitempty,min=2,max=150"`
	OrderIndex *int           `json:"order_index" validate:"omitempty,gte=0"`
	Content    datatypes.JSON `json:"content"`
}
