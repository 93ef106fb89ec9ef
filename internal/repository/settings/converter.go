package repository

import (
	"github.com/you-humble/frio-catalog/internal/model"
)

func EntityToModel(e *SettingsEntity) *model.Settings {
	if e == nil {
		return nil
	}

	kit := make([]model.KitItemSpec, 0, len(e.InstallKit))
	for _, it := range e.InstallKit {
		kit = append(kit, KitItemToModel(it))
	}

	return &model.Settings{
		Rate:       e.Rate,
		InstallKit: kit,
		UpdatedAt:  e.UpdatedAt,
	}
}

func KitItemToModel(e KitItemEntity) model.KitItemSpec {
	out := model.KitItemSpec{
		Key:             e.Key,
		Label:           e.Label,
		Unit:            model.KitUnit(e.Unit),
		Step:            e.Step,
		DefaultQuantity: e.DefaultQuantity,
	}

	if len(e.Variants) > 0 {
		variants := make([]model.KitVariant, 0, len(e.Variants))
		for _, v := range e.Variants {
			variants = append(variants, model.KitVariant{Value: v.Value, ProductCode: v.ProductCode})
		}
		out.Source = model.VariantSource{Variants: variants}
	} else {
		out.Source = model.DirectSource{ProductCode: e.ProductCode}
	}

	return out
}

func KitItemFromModel(m model.KitItemSpec) KitItemEntity {
	out := KitItemEntity{
		Key:             m.Key,
		Label:           m.Label,
		Unit:            string(m.Unit),
		Step:            m.Step,
		DefaultQuantity: m.DefaultQuantity,
	}

	switch src := m.Source.(type) {
	case model.DirectSource:
		out.ProductCode = src.ProductCode
	case model.VariantSource:
		out.Variants = make([]KitVariantEntity, 0, len(src.Variants))
		for _, v := range src.Variants {
			out.Variants = append(out.Variants, KitVariantEntity{Value: v.Value, ProductCode: v.ProductCode})
		}
	}

	return out
}
