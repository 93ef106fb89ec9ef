package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/pricing"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	ProductByID(ctx context.Context, id string) (*model.Product, error)
	ProductByCode(ctx context.Context, code string, incrementViews bool) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]*model.Product, int64, error)
	ToggleActive(ctx context.Context, id string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type RateReader interface {
	ExchangeRate(ctx context.Context) (float64, error)
}

type CategoryLister interface {
	List(ctx context.Context) ([]*model.Category, error)
}

type service struct {
	repo           ProductRepository
	rates          RateReader
	categories     CategoryLister
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewProductService(
	repository ProductRepository,
	rates RateReader,
	categories CategoryLister,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		rates:          rates,
		categories:     categories,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	const op = "product.service.Create"

	p := &model.Product{
		ID:            uuid.NewString(),
		ProductCode:   strings.TrimSpace(params.ProductCode),
		Name:          strings.TrimSpace(params.Name),
		Description:   strings.TrimSpace(params.Description),
		Image:         strings.TrimSpace(params.Image),
		PriceUSD:      params.PriceUSD,
		PriceARS:      params.PriceARS,
		FixedInARS:    params.FixedInARS,
		Categories:    NormalizeTags(params.Categories),
		Subcategories: NormalizeTags(params.Subcategories),
		Active:        lo.FromPtrOr(params.Active, true),
	}
	log := logger.With(logger.String("product_code", p.ProductCode))

	if !p.FixedInARS {
		p.PriceARS = nil
	}
	if err := validateProduct(p); err != nil {
		log.Warn(ctx, "invalid product", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !p.FixedInARS {
		rate, err := svc.rates.ExchangeRate(ctx)
		if err != nil {
			log.Error(ctx, "read exchange rate", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.PriceARS = pricing.ComputeARS(p.PriceUSD, rate, false, nil)
		if !pricing.Finite(p.PriceARS) {
			log.Warn(ctx, "derived ars price out of range", logger.Float64("rate", rate))
			return nil, fmt.Errorf("%s: priceARS out of range: %w", op, model.ErrValidation)
		}
	}

	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Create(ctx, p); err != nil {
		log.Error(ctx, "repository create product", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// Update applies patch over the stored product. A product fixed in ARS
// keeps its stored priceARS unless the patch sets one; any other product
// gets priceARS recomputed from its effective priceUSD at the current rate,
// ignoring a priceARS in the patch.
func (svc *service) Update(ctx context.Context, id string, patch model.UpdateProductParams) (*model.Product, error) {
	const op = "product.service.Update"
	log := logger.With(logger.String("product_id", id))

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	p, err := svc.repo.ProductByID(rctx, id)
	if err != nil {
		log.Error(ctx, "repository product by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	applyPatch(p, patch)
	if p.FixedInARS && patch.PriceARS != nil {
		p.PriceARS = patch.PriceARS
	}

	if err := validateProduct(p); err != nil {
		log.Warn(ctx, "invalid product", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !p.FixedInARS {
		rate, err := svc.rates.ExchangeRate(ctx)
		if err != nil {
			log.Error(ctx, "read exchange rate", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.PriceARS = pricing.ComputeARS(p.PriceUSD, rate, false, p.PriceARS)
		if !pricing.Finite(p.PriceARS) {
			log.Warn(ctx, "derived ars price out of range", logger.Float64("rate", rate))
			return nil, fmt.Errorf("%s: priceARS out of range: %w", op, model.ErrValidation)
		}
	}
	p.UpdatedAt = time.Now()

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.repo.Update(wctx, p); err != nil {
		log.Error(ctx, "repository update product", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) ByCode(ctx context.Context, code string, opts model.ByCodeOptions) (*model.Product, error) {
	const op = "product.service.ByCode"

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%s: empty product code: %w", op, model.ErrValidation)
	}

	timeout := svc.readDBTimeout
	if opts.IncrementViews {
		timeout = svc.writeDBTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p, err := svc.repo.ProductByCode(ctx, code, opts.IncrementViews)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (svc *service) ByID(ctx context.Context, id string) (*model.Product, error) {
	const op = "product.service.ByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (svc *service) Query(ctx context.Context, filter model.ProductFilter) (*model.ProductPage, error) {
	const op = "product.service.Query"

	if filter.Page < 0 || filter.Limit < 0 {
		return nil, fmt.Errorf("%s: negative page or limit: %w", op, model.ErrValidation)
	}
	if filter.SortField != "" && !model.IsProductSortField(filter.SortField) {
		return nil, fmt.Errorf("%s: unknown sort field %q: %w", op, filter.SortField, model.ErrValidation)
	}
	if filter.MinPriceARS != nil && filter.MaxPriceARS != nil && *filter.MinPriceARS > *filter.MaxPriceARS {
		return nil, fmt.Errorf("%s: min price above max price: %w", op, model.ErrValidation)
	}

	filter.Categories = NormalizeTags(filter.Categories)
	filter.Subcategories = NormalizeTags(filter.Subcategories)
	filter.Page = max(filter.Page, 1)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	items, total, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := &model.ProductPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Pages: 1,
	}
	if filter.Limit > 0 {
		page.Pages = (total + filter.Limit - 1) / filter.Limit
	}

	return page, nil
}

func (svc *service) ToggleActive(ctx context.Context, id string) (*model.Product, error) {
	const op = "product.service.ToggleActive"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	p, err := svc.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "product toggled", logger.String("product_id", id), logger.Bool("active", p.Active))
	return p, nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op = "product.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "product deleted", logger.String("product_id", id))
	return nil
}

// CategoriesMeta lists root categories with the names of their direct children.
func (svc *service) CategoriesMeta(ctx context.Context) ([]model.CategoryMeta, error) {
	const op = "product.service.CategoriesMeta"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	all, err := svc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	children := lo.GroupBy(
		lo.Filter(all, func(c *model.Category, _ int) bool { return c.ParentID != nil }),
		func(c *model.Category) string { return *c.ParentID },
	)

	out := make([]model.CategoryMeta, 0)
	for _, c := range all {
		if c.ParentID != nil {
			continue
		}
		out = append(out, model.CategoryMeta{
			Name: c.Name,
			Slug: c.Slug,
			Subcategories: lo.Map(children[c.ID], func(sub *model.Category, _ int) string {
				return sub.Name
			}),
		})
	}

	return out, nil
}

// NormalizeTags trims entries, drops empty ones and removes duplicates
// keeping first occurrence order.
func NormalizeTags(in []string) []string {
	trimmed := lo.Map(in, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Uniq(lo.Compact(trimmed))
}

func applyPatch(p *model.Product, patch model.UpdateProductParams) {
	if patch.ProductCode != nil {
		p.ProductCode = strings.TrimSpace(*patch.ProductCode)
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Image != nil {
		p.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.PriceUSD != nil {
		p.PriceUSD = patch.PriceUSD
	}
	if patch.FixedInARS != nil {
		p.FixedInARS = *patch.FixedInARS
	}
	if patch.Categories != nil {
		p.Categories = NormalizeTags(*patch.Categories)
	}
	if patch.Subcategories != nil {
		p.Subcategories = NormalizeTags(*patch.Subcategories)
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
}

func validateProduct(p *model.Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("name is required: %w", model.ErrValidation)
	case p.Description == "":
		return fmt.Errorf("description is required: %w", model.ErrValidation)
	case p.ProductCode == "":
		return fmt.Errorf("product code is required: %w", model.ErrValidation)
	case !pricing.Finite(p.PriceUSD):
		return fmt.Errorf("priceUSD must be a finite number: %w", model.ErrValidation)
	case !pricing.Finite(p.PriceARS):
		return fmt.Errorf("priceARS must be a finite number: %w", model.ErrValidation)
	case p.PriceUSD != nil && *p.PriceUSD < 0:
		return fmt.Errorf("priceUSD must not be negative: %w", model.ErrValidation)
	case p.PriceARS != nil && *p.PriceARS < 0:
		return fmt.Errorf("priceARS must not be negative: %w", model.ErrValidation)
	}
	return nil
}
