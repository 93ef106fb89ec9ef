package converter

import (
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
)

func CategoryToAPI(c *model.Category) catalogv1.Category {
	return catalogv1.Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Parent:    c.ParentID,
		Ancestors: nonNil(c.Ancestors),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CategoriesToAPI(cs []*model.Category) []catalogv1.Category {
	return lo.Map(cs, func(c *model.Category, _ int) catalogv1.Category { return CategoryToAPI(c) })
}

func CategoryTreeToAPI(nodes []*model.CategoryNode) []catalogv1.CategoryNode {
	return lo.Map(nodes, func(n *model.CategoryNode, _ int) catalogv1.CategoryNode {
		return catalogv1.CategoryNode{
			Category: CategoryToAPI(n.Category),
			Children: CategoryTreeToAPI(n.Children),
		}
	})
}

func CreateCategoryToModel(req catalogv1.CreateCategoryRequest) model.CreateCategoryParams {
	return model.CreateCategoryParams{Name: req.Name, Slug: req.Slug, ParentID: req.Parent}
}

func BannerToAPI(b *model.Banner) catalogv1.Banner {
	return catalogv1.Banner{
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

func BannersToAPI(bs []*model.Banner) []catalogv1.Banner {
	return lo.Map(bs, func(b *model.Banner, _ int) catalogv1.Banner { return BannerToAPI(b) })
}

func CreateBannerToModel(req catalogv1.CreateBannerRequest) model.CreateBannerParams {
	return model.CreateBannerParams{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
		Type:     model.BannerType(req.Type),
		Order:    req.Order,
		Active:   req.Active,
	}
}

func UpdateBannerToModel(req catalogv1.UpdateBannerRequest) model.UpdateBannerParams {
	var typ *model.BannerType
	if req.Type != nil {
		typ = lo.ToPtr(model.BannerType(*req.Type))
	}
	return model.UpdateBannerParams{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
		Type:     typ,
		Order:    req.Order,
		Active:   req.Active,
	}
}

func DashboardToAPI(d *model.Dashboard) catalogv1.Dashboard {
	return catalogv1.Dashboard{
		TotalProducts:    d.Products.Total,
		ActiveProducts:   d.Products.Active,
		InactiveProducts: d.Products.Inactive,
		ExchangeRate:     d.ExchangeRate,
		PendingOrders:    d.PendingOrders,
	}
}
