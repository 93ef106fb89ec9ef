package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/you-humble/frio-catalog/internal/model"
)

type AuthService interface {
	Login(ctx context.Context, creds model.Credentials) (*model.Token, error)
	Register(ctx context.Context, creds model.Credentials) (*model.Admin, error)
}

type SettingsService interface {
	Settings(ctx context.Context) (*model.Settings, error)
	UpdateExchangeRate(ctx context.Context, rate float64) (*model.UpdateRateResult, error)
}

type KitService interface {
	Meta(ctx context.Context) ([]model.KitItemSpec, error)
	UpdateKit(ctx context.Context, items []model.KitItemSpec) ([]model.KitItemSpec, error)
	Price(ctx context.Context, params model.KitPriceParams) (*model.KitPrice, error)
}

type ProductService interface {
	Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error)
	Update(ctx context.Context, id string, patch model.UpdateProductParams) (*model.Product, error)
	ByCode(ctx context.Context, code string, opts model.ByCodeOptions) (*model.Product, error)
	ByID(ctx context.Context, id string) (*model.Product, error)
	Query(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error)
	ToggleActive(ctx context.Context, id string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	CategoriesMeta(ctx context.Context) ([]model.CategoryMeta, error)
}

type OrderService interface {
	Create(ctx context.Context, params model.CreateOrderParams) (*model.CreateOrderResult, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}

type CategoryService interface {
	Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	Tree(ctx context.Context) ([]*model.CategoryNode, error)
	Delete(ctx context.Context, id string) error
}

type BannerService interface {
	Public(ctx context.Context, typ model.BannerType) ([]*model.Banner, error)
	All(ctx context.Context, typ *model.BannerType) ([]*model.Banner, error)
	Create(ctx context.Context, params model.CreateBannerParams) (*model.Banner, error)
	Update(ctx context.Context, id string, patch model.UpdateBannerParams) (*model.Banner, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*model.Banner, error)
	Reorder(ctx context.Context, ids []string) (int64, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

type Services struct {
	Auth       AuthService
	Settings   SettingsService
	Kit        KitService
	Products   ProductService
	Orders     OrderService
	Categories CategoryService
	Banners    BannerService
	Dashboard  DashboardService
}

type handler struct {
	auth       AuthService
	settings   SettingsService
	kit        KitService
	products   ProductService
	orders     OrderService
	categories CategoryService
	banners    BannerService
	dashboard  DashboardService
}

func NewCatalogHandler(services Services) *handler {
	return &handler{
		auth:       services.Auth,
		settings:   services.Settings,
		kit:        services.Kit,
		products:   services.Products,
		orders:     services.Orders,
		categories: services.Categories,
		banners:    services.Banners,
		dashboard:  services.Dashboard,
	}
}
