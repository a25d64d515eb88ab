package dto

import "gorm.io/datatypes"

type CreateSiteDTO struct {
	Subdomain string         `json:"subdomain" validate:"required,min=3,max=63"`
	Title     string         `json:"title" validate:"required,min=2,max=150"`
	Theme     datatypes.JSON `json:"theme"`
}

type UpdateSiteDTO struct {
	Title       *string        `json:"title" validate:"omitempty,min=2,max=150"`
	Theme       datatypes.JSON `json:"theme"`
	IsPublished *bool          `json:"is_published"`
}

type CreatePageDTO struct {
	Slug    string         `json:"slug" validate:"required,min=1,max=120"`
	Title   string         `json:"title" validate:"required,min=2,max=150"`
	Content datatypes.JSON `json:"content"`
}

type UpdatePageDTO struct {
	Title       *string        `json:"title" validate:"omitempty,min=2,max=150"`
	Content     datatypes.JSON `json:"content"`
	IsPublished *bool          `json:"is_published"`
}

type MenuItemDTO struct {
	Label      string  `json:"label" validate:"required,min=1,max=80"`
	OrderIndex int     `json:"order_index" validate:"gte=0"`
	PageID     *string `json:"page_id" validate:"omitempty,uuid4"`
	URL        string  `json:"url" validate:"omitempty,url,max=500"`
}

type CreateFormDTO struct {
	Name   string         `json:"name" validate:"required,min=2,max=100"`
	Fields datatypes.JSON `json:"fields" validate:"required"`
}

type SubmitSiteFormDTO struct {
	Data map[string]interface{} `json:"data" validate:"required"`
}
