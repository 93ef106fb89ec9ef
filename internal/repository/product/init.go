package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/frio-catalog/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, products []*model.Product) error
}

// ProductsBootstrap seeds a handful of demo products priced at rate.
func ProductsBootstrap(ctx context.Context, c BatchCreator, rate float64) error {
	now := time.Now()

	usd := func(v float64) (*float64, *float64) {
		return lo.ToPtr(v), lo.ToPtr(v * rate)
	}

	split3000USD, split3000ARS := usd(420)
	split4500USD, split4500ARS := usd(585)
	pipeUSD, pipeARS := usd(6.5)

	products := []*model.Product{
		{
			ID:            uuid.NewString(),
			ProductCode:   "SPL-3000-FC",
			Name:          "Split inverter 3000 frigorías frío/calor",
			Description:   "Equipo split inverter, gas R410A, clase A++.",
			PriceUSD:      split3000USD,
			PriceARS:      split3000ARS,
			Categories:    []string{"aire-acondicionado"},
			Subcategories: []string{"split"},
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			ProductCode:   "SPL-4500-FC",
			Name:          "Split inverter 4500 frigorías frío/calor",
			Description:   "Equipo split inverter para ambientes de hasta 45 m².",
			PriceUSD:      split4500USD,
			PriceARS:      split4500ARS,
			Categories:    []string{"aire-acondicionado"},
			Subcategories: []string{"split"},
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			ProductCode:   "CU-1438",
			Name:          "Caño de cobre 1/4\" + 3/8\" (metro)",
			Description:   "Par de caños de cobre aislados para instalación de split.",
			PriceUSD:      pipeUSD,
			PriceARS:      pipeARS,
			Categories:    []string{"instalacion"},
			Subcategories: []string{"cañería"},
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			ProductCode:   "MO-INST-STD",
			Name:          "Mano de obra instalación estándar",
			Description:   "Instalación de equipo split hasta 3 metros de cañería.",
			PriceARS:      lo.ToPtr(95000.0),
			FixedInARS:    true,
			Categories:    []string{"servicios"},
			Subcategories: []string{"instalacion"},
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	return c.CreateBatch(ctx, products)
}
