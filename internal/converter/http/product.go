package converter

import (
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
)

func ProductToAPI(p *model.Product) catalogv1.Product {
	return catalogv1.Product{
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

func ProductsToAPI(ps []*model.Product) []catalogv1.Product {
	return lo.Map(ps, func(p *model.Product, _ int) catalogv1.Product { return ProductToAPI(p) })
}

func ProductPageToAPI(page *model.ProductPage) catalogv1.ProductPage {
	return catalogv1.ProductPage{
		Items: ProductsToAPI(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	}
}

func CreateProductToModel(req catalogv1.CreateProductRequest) model.CreateProductParams {
	return model.CreateProductParams{
		ProductCode:   req.ProductCode,
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		PriceUSD:      req.PriceUSD,
		PriceARS:      req.PriceARS,
		FixedInARS:    req.FixedInARS,
		Categories:    req.Categories,
		Subcategories: req.Subcategories,
		Active:        req.Active,
	}
}

func UpdateProductToModel(req catalogv1.UpdateProductRequest) model.UpdateProductParams {
	return model.UpdateProductParams{
		ProductCode:   req.ProductCode,
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		PriceUSD:      req.PriceUSD,
		PriceARS:      req.PriceARS,
		FixedInARS:    req.FixedInARS,
		Categories:    req.Categories,
		Subcategories: req.Subcategories,
		Active:        req.Active,
	}
}

func CategoriesMetaToAPI(meta []model.CategoryMeta) []catalogv1.CategoryMeta {
	return lo.Map(meta, func(m model.CategoryMeta, _ int) catalogv1.CategoryMeta {
		return catalogv1.CategoryMeta{
			Category:      m.Name,
			Slug:          m.Slug,
			Subcategories: nonNil(m.Subcategories),
		}
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
