package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/pricing"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type SettingsReader interface {
	Settings(ctx context.Context) (*model.Settings, error)
}

type KitStore interface {
	SetInstallKit(ctx context.Context, items []model.KitItemSpec) (*model.Settings, error)
}

type ProductFinder interface {
	ProductsByCodes(ctx context.Context, codes []string) ([]*model.Product, error)
}

type service struct {
	settings       SettingsReader
	store          KitStore
	products       ProductFinder
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewKitService(
	settings SettingsReader,
	store KitStore,
	products ProductFinder,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		settings:       settings,
		store:          store,
		products:       products,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Meta(ctx context.Context) ([]model.KitItemSpec, error) {
	const op = "kit.service.Meta"

	s, err := svc.settings.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.InstallKit, nil
}

func (svc *service) UpdateKit(ctx context.Context, items []model.KitItemSpec) ([]model.KitItemSpec, error) {
	const op = "kit.service.UpdateKit"

	items = NormalizeKit(items)
	if err := ValidateKit(items); err != nil {
		logger.Warn(ctx, "invalid install kit", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	s, err := svc.store.SetInstallKit(ctx, items)
	if err != nil {
		logger.Error(ctx, "store install kit", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "install kit updated", logger.Int("items", len(s.InstallKit)))
	return s.InstallKit, nil
}

// Price resolves every configured kit line to a product and prices it at
// the current rate. Lines without a resolvable product code, with a
// non-positive quantity or with an unknown product are left out.
// All products are fetched with a single query.
func (svc *service) Price(ctx context.Context, params model.KitPriceParams) (*model.KitPrice, error) {
	const op = "kit.service.Price"

	s, err := svc.settings.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	type resolved struct {
		item     model.KitItemSpec
		code     string
		variant  string
		quantity float64
	}

	lines := make([]resolved, 0, len(s.InstallKit))
	for _, it := range s.InstallKit {
		if it.Source == nil {
			continue
		}

		variant := params.Variants[it.Key]
		code, ok := it.Source.Resolve(variant)
		if !ok {
			continue
		}

		qty, requested := params.Quantities[it.Key]
		if !requested {
			qty = it.DefaultQuantity
		}
		if !(qty > 0) || math.IsInf(qty, 0) {
			continue
		}

		lines = append(lines, resolved{item: it, code: code, variant: variant, quantity: qty})
	}

	out := &model.KitPrice{Lines: make([]model.KitPriceLine, 0, len(lines))}
	if len(lines) == 0 {
		return out, nil
	}

	codes := lo.Uniq(lo.Map(lines, func(r resolved, _ int) string { return r.code }))

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	found, err := svc.products.ProductsByCodes(rctx, codes)
	if err != nil {
		logger.Error(ctx, "read kit products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	byCode := lo.KeyBy(found, func(p *model.Product) string { return p.ProductCode })

	for _, r := range lines {
		p, ok := byCode[r.code]
		if !ok {
			continue
		}

		unit := pricing.UnitPriceARS(p, s.Rate)
		line := model.KitPriceLine{
			Key:          r.item.Key,
			Label:        r.item.Label,
			Unit:         r.item.Unit,
			ProductCode:  r.code,
			ProductName:  p.Name,
			Variant:      r.variant,
			Quantity:     r.quantity,
			UnitPriceARS: unit,
			SubtotalARS:  unit * r.quantity,
		}
		out.Lines = append(out.Lines, line)
		out.Total += line.SubtotalARS
	}

	return out, nil
}

// NormalizeKit trims text fields and fills in the default step per unit.
func NormalizeKit(items []model.KitItemSpec) []model.KitItemSpec {
	out := make([]model.KitItemSpec, 0, len(items))
	for _, it := range items {
		it.Key = strings.TrimSpace(it.Key)
		it.Label = strings.TrimSpace(it.Label)

		if it.Step == 0 {
			switch it.Unit {
			case model.KitUnitLength:
				it.Step = model.DefaultLengthStep
			case model.KitUnitCount:
				it.Step = model.DefaultCountStep
			}
		}

		switch src := it.Source.(type) {
		case model.DirectSource:
			it.Source = model.DirectSource{ProductCode: strings.TrimSpace(src.ProductCode)}
		case model.VariantSource:
			variants := lo.Map(src.Variants, func(v model.KitVariant, _ int) model.KitVariant {
				return model.KitVariant{
					Value:       strings.TrimSpace(v.Value),
					ProductCode: strings.TrimSpace(v.ProductCode),
				}
			})
			it.Source = model.VariantSource{Variants: variants}
		}

		out = append(out, it)
	}
	return out
}

func ValidateKit(items []model.KitItemSpec) error {
	keys := make(map[string]struct{}, len(items))

	for i, it := range items {
		if it.Key == "" {
			return fmt.Errorf("item %d: key is required: %w", i, model.ErrValidation)
		}
		if _, dup := keys[it.Key]; dup {
			return fmt.Errorf("item %q: duplicate key: %w", it.Key, model.ErrValidation)
		}
		keys[it.Key] = struct{}{}

		if it.Label == "" {
			return fmt.Errorf("item %q: label is required: %w", it.Key, model.ErrValidation)
		}
		if it.Unit != model.KitUnitLength && it.Unit != model.KitUnitCount {
			return fmt.Errorf("item %q: unknown unit %q: %w", it.Key, it.Unit, model.ErrValidation)
		}
		if !(it.Step > 0) {
			return fmt.Errorf("item %q: step must be positive: %w", it.Key, model.ErrValidation)
		}
		if !(it.DefaultQuantity >= 0) {
			return fmt.Errorf("item %q: default quantity must not be negative: %w", it.Key, model.ErrValidation)
		}

		if err := validateSource(it.Source); err != nil {
			return fmt.Errorf("item %q: %w", it.Key, err)
		}
	}

	return nil
}

func validateSource(src model.KitSource) error {
	switch s := src.(type) {
	case model.DirectSource:
		if s.ProductCode == "" {
			return fmt.Errorf("product code is required: %w", model.ErrValidation)
		}
	case model.VariantSource:
		if len(s.Variants) == 0 {
			return fmt.Errorf("variants must not be empty: %w", model.ErrValidation)
		}
		values := make(map[string]struct{}, len(s.Variants))
		for _, v := range s.Variants {
			if v.Value == "" || v.ProductCode == "" {
				return fmt.Errorf("variant needs a value and a product code: %w", model.ErrValidation)
			}
			if _, dup := values[v.Value]; dup {
				return fmt.Errorf("duplicate variant %q: %w", v.Value, model.ErrValidation)
			}
			values[v.Value] = struct{}{}
		}
	default:
		return fmt.Errorf("product code or variants required: %w", model.ErrValidation)
	}
	return nil
}
