package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/frio-catalog/internal/model"
)

func EntityToModel(e *BannerEntity) *model.Banner {
	if e == nil {
		return nil
	}

	return &model.Banner{
		ID:        e.ID,
		Title:     e.Title,
		Subtitle:  e.Subtitle,
		Image:     e.Image,
		LinkURL:   e.LinkURL,
		Type:      model.BannerType(e.Type),
		Order:     e.Order,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func EntityFromModel(b *model.Banner) *BannerEntity {
	if b == nil {
		return nil
	}

	return &BannerEntity{
		ID:        b.ID,
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		Image:     b.Image,
		LinkURL:   b.LinkURL,
		Type:      string(b.Type),
		Order:     b.Order,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func BuildMongoFilter(f model.BannerFilter) bson.M {
	q := bson.M{}

	if f.Type != nil {
		q["type"] = string(*f.Type)
	}
	if f.ActiveOnly {
		q["active"] = true
	}

	return q
}
