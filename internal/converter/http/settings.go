package converter

import (
	"fmt"

	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
)

func SettingsToAPI(s *model.Settings) catalogv1.Config {
	cfg := catalogv1.Config{ExchangeRate: s.Rate}
	if !s.UpdatedAt.IsZero() {
		cfg.UpdatedAt = lo.ToPtr(s.UpdatedAt)
	}
	return cfg
}

func UpdateRateResultToAPI(res *model.UpdateRateResult) catalogv1.UpdateConfigResponse {
	return catalogv1.UpdateConfigResponse{
		Config:   SettingsToAPI(res.Settings),
		Repriced: res.Repriced,
	}
}

func KitItemsToAPI(items []model.KitItemSpec) []catalogv1.KitItem {
	return lo.Map(items, func(it model.KitItemSpec, _ int) catalogv1.KitItem {
		out := catalogv1.KitItem{
			Key:        it.Key,
			Label:      it.Label,
			Unit:       string(it.Unit),
			Step:       it.Step,
			DefaultQty: it.DefaultQuantity,
		}
		switch src := it.Source.(type) {
		case model.DirectSource:
			out.ProductCode = src.ProductCode
		case model.VariantSource:
			out.Variants = lo.Map(src.Variants, func(v model.KitVariant, _ int) catalogv1.KitVariant {
				return catalogv1.KitVariant{Value: v.Value, ProductCode: v.ProductCode}
			})
		}
		return out
	})
}

// KitItemsToModel picks a VariantSource when variants are present and
// a DirectSource otherwise. An item carrying both is rejected.
func KitItemsToModel(items []catalogv1.KitItem) ([]model.KitItemSpec, error) {
	out := make([]model.KitItemSpec, 0, len(items))
	for _, it := range items {
		spec := model.KitItemSpec{
			Key:             it.Key,
			Label:           it.Label,
			Unit:            model.KitUnit(it.Unit),
			Step:            it.Step,
			DefaultQuantity: it.DefaultQty,
			Source:          model.DirectSource{ProductCode: it.ProductCode},
		}
		if len(it.Variants) > 0 {
			if it.ProductCode != "" {
				return nil, fmt.Errorf("kit item %q: productCode and variants are mutually exclusive: %w",
					it.Key, model.ErrValidation)
			}
			spec.Source = model.VariantSource{
				Variants: lo.Map(it.Variants, func(v catalogv1.KitVariant, _ int) model.KitVariant {
					return model.KitVariant{Value: v.Value, ProductCode: v.ProductCode}
				}),
			}
		}
		out = append(out, spec)
	}
	return out, nil
}

func KitPriceToModel(req catalogv1.KitPriceRequest) model.KitPriceParams {
	return model.KitPriceParams{Quantities: req.Quantities, Variants: req.Variant}
}

func KitPriceToAPI(p *model.KitPrice) catalogv1.KitPrice {
	return catalogv1.KitPrice{
		Items: lo.Map(p.Lines, func(l model.KitPriceLine, _ int) catalogv1.KitPriceLine {
			return catalogv1.KitPriceLine{
				Key:          l.Key,
				Label:        l.Label,
				Unit:         string(l.Unit),
				Qty:          l.Quantity,
				Variant:      l.Variant,
				ProductCode:  l.ProductCode,
				ProductName:  l.ProductName,
				UnitPriceARS: l.UnitPriceARS,
				Subtotal:     l.SubtotalARS,
			}
		}),
		Total: p.Total,
	}
}

func CredentialsToModel(req catalogv1.Credentials) model.Credentials {
	return model.Credentials{Username: req.Username, Password: req.Password}
}

func TokenToAPI(t *model.Token) catalogv1.Token {
	return catalogv1.Token{Token: t.AccessToken, ExpiresAt: t.ExpiresAt, Username: t.Username}
}

func AdminToAPI(a *model.Admin) catalogv1.Admin {
	return catalogv1.Admin{ID: a.ID, Username: a.Username, CreatedAt: a.CreatedAt}
}
