package model

import "time"

type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  *string
	Ancestors []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateCategoryParams struct {
	Name     string
	Slug     string
	ParentID *string
}

type CategoryNode struct {
	Category *Category
	Children []*CategoryNode
}
