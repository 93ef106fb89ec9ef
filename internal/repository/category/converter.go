package repository

import "github.com/you-humble/frio-catalog/internal/model"

func EntityToModel(e *CategoryEntity) *model.Category {
	if e == nil {
		return nil
	}

	ancestors := e.Ancestors
	if ancestors == nil {
		ancestors = []string{}
	}

	return &model.Category{
		ID:        e.ID,
		Name:      e.Name,
		Slug:      e.Slug,
		ParentID:  e.Parent,
		Ancestors: ancestors,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func EntityFromModel(c *model.Category) *CategoryEntity {
	if c == nil {
		return nil
	}

	ancestors := c.Ancestors
	if ancestors == nil {
		ancestors = []string{}
	}

	return &CategoryEntity{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Parent:    c.ParentID,
		Ancestors: ancestors,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
