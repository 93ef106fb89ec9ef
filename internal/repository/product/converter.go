package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/frio-catalog/internal/model"
)

const defaultSortField = "createdAt"

// sortFields maps the public sort keys onto stored field names.
var sortFields = map[string]string{
	"createdAt":   "created_at",
	"name":        "name",
	"priceARS":    "price_ars",
	"priceUSD":    "price_usd",
	"views":       "views",
	"soldCount":   "sold_count",
	"productCode": "product_code",
}

func EntityToModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}

	return &model.Product{
		ID:            e.ID,
		ProductCode:   e.ProductCode,
		Name:          e.Name,
		Description:   e.Description,
		Image:         e.Image,
		PriceUSD:      e.PriceUSD,
		PriceARS:      e.PriceARS,
		FixedInARS:    e.FixedInARS,
		Categories:    nonNil(e.Categories),
		Subcategories: nonNil(e.Subcategories),
		Active:        e.Active,
		Views:         e.Views,
		SoldCount:     e.SoldCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func EntityFromModel(p *model.Product) *ProductEntity {
	if p == nil {
		return nil
	}

	return &ProductEntity{
		ID:            p.ID,
		ProductCode:   p.ProductCode,
		Name:          p.Name,
		Description:   p.Description,
		Image:         p.Image,
		PriceUSD:      p.PriceUSD,
		PriceARS:      p.PriceARS,
		FixedInARS:    p.FixedInARS,
		Categories:    nonNil(p.Categories),
		Subcategories: nonNil(p.Subcategories),
		Active:        p.Active,
		Views:         p.Views,
		SoldCount:     p.SoldCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func BuildMongoFilter(f model.ProductFilter) bson.M {
	q := bson.M{}

	if len(f.Categories) > 0 {
		q["categories"] = bson.M{"$all": f.Categories}
	}
	if len(f.Subcategories) > 0 {
		q["subcategories"] = bson.M{"$all": f.Subcategories}
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		rx := bson.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"product_code": rx},
		}
	}
	if f.MinPriceARS != nil || f.MaxPriceARS != nil {
		rng := bson.M{}
		if f.MinPriceARS != nil {
			rng["$gte"] = *f.MinPriceARS
		}
		if f.MaxPriceARS != nil {
			rng["$lte"] = *f.MaxPriceARS
		}
		q["price_ars"] = rng
	}
	if f.ActiveOnly {
		q["active"] = true
	}

	return q
}

// BuildSort resolves a whitelisted sort key. _id breaks ties so that
// pagination is deterministic.
func BuildSort(field string, order model.SortOrder) bson.D {
	stored, ok := sortFields[field]
	if !ok {
		stored = sortFields[defaultSortField]
		order = model.SortDesc
	}
	if order != model.SortAsc {
		order = model.SortDesc
	}

	return bson.D{
		{Key: stored, Value: int(order)},
		{Key: "_id", Value: int(order)},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
