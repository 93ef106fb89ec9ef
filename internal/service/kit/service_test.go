package service

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/mocks"
)

type deps struct {
	settings *mocks.MockSettingsReader
	store    *mocks.MockKitStore
	products *mocks.MockProductFinder
}

func newDeps(t *testing.T) deps {
	return deps{
		settings: mocks.NewMockSettingsReader(t),
		store:    mocks.NewMockKitStore(t),
		products: mocks.NewMockProductFinder(t),
	}
}

func newSvc(d deps) *service {
	return NewKitService(d.settings, d.store, d.products, time.Second, time.Second)
}

func installKit() []model.KitItemSpec {
	return []model.KitItemSpec{
		{
			Key:             "pipe",
			Label:           "Caño de cobre",
			Unit:            model.KitUnitLength,
			Step:            0.5,
			DefaultQuantity: 3,
			Source: model.VariantSource{Variants: []model.KitVariant{
				{Value: "1/4", ProductCode: "CU-14"},
				{Value: "3/8", ProductCode: "CU-38"},
			}},
		},
		{
			Key:             "bracket",
			Label:           "Ménsula",
			Unit:            model.KitUnitCount,
			Step:            1,
			DefaultQuantity: 1,
			Source:          model.DirectSource{ProductCode: "MEN-01"},
		},
		{
			Key:    "tape",
			Label:  "Cinta",
			Unit:   model.KitUnitCount,
			Step:   1,
			Source: model.DirectSource{ProductCode: "CINTA"},
		},
	}
}

func TestServicePrice(t *testing.T) {
	t.Parallel()

	rate := 1000.0
	cu14 := &model.Product{ProductCode: "CU-14", Name: "Caño 1/4", PriceUSD: lo.ToPtr(2.0)}
	cu38 := &model.Product{ProductCode: "CU-38", Name: "Caño 3/8", PriceUSD: lo.ToPtr(3.0)}
	bracket := &model.Product{ProductCode: "MEN-01", Name: "Ménsula", PriceARS: lo.ToPtr(4500.0), FixedInARS: true}
	tape := &model.Product{ProductCode: "CINTA", Name: "Cinta", PriceUSD: lo.ToPtr(1.0)}

	type testCase struct {
		name      string
		params    model.KitPriceParams
		setup     func(d deps)
		wantLines []string
		wantTotal float64
	}

	tests := []testCase{
		{
			name: "defaults: unselected variant skipped, zero default skipped",
			setup: func(d deps) {
				d.products.On("ProductsByCodes", mock.Anything, []string{"MEN-01"}).
					Return([]*model.Product{bracket}, nil).Once()
			},
			wantLines: []string{"bracket"},
			wantTotal: 4500,
		},
		{
			name: "selected variant and requested quantities",
			params: model.KitPriceParams{
				Variants:   map[string]string{"pipe": "3/8"},
				Quantities: map[string]float64{"pipe": 4.5, "tape": 2, "bracket": 2},
			},
			setup: func(d deps) {
				d.products.On("ProductsByCodes", mock.Anything, mock.MatchedBy(func(codes []string) bool {
					return assert.ElementsMatch(t, []string{"CU-38", "MEN-01", "CINTA"}, codes)
				})).Return([]*model.Product{cu38, bracket, tape, cu14}, nil).Once()
			},
			wantLines: []string{"pipe", "bracket", "tape"},
			wantTotal: 4.5*3*rate + 2*4500 + 2*rate,
		},
		{
			name: "requested zero skips a line with a default",
			params: model.KitPriceParams{
				Variants:   map[string]string{"pipe": "1/4"},
				Quantities: map[string]float64{"bracket": 0},
			},
			setup: func(d deps) {
				d.products.On("ProductsByCodes", mock.Anything, []string{"CU-14"}).
					Return([]*model.Product{cu14}, nil).Once()
			},
			wantLines: []string{"pipe"},
			wantTotal: 3 * 2 * rate,
		},
		{
			name: "unknown variant and unknown product skipped",
			params: model.KitPriceParams{
				Variants:   map[string]string{"pipe": "1/2"},
				Quantities: map[string]float64{"tape": 1},
			},
			setup: func(d deps) {
				d.products.On("ProductsByCodes", mock.Anything, mock.Anything).
					Return([]*model.Product{bracket}, nil).Once()
			},
			wantLines: []string{"bracket"},
			wantTotal: 4500,
		},
		{
			name: "nothing to price",
			params: model.KitPriceParams{
				Quantities: map[string]float64{"bracket": -1},
			},
			wantLines: []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.settings.On("Settings", mock.Anything).
				Return(&model.Settings{Rate: rate, InstallKit: installKit()}, nil).Once()
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newSvc(d).Price(context.Background(), tt.params)
			require.NoError(t, err)

			keys := lo.Map(res.Lines, func(l model.KitPriceLine, _ int) string { return l.Key })
			assert.Equal(t, tt.wantLines, keys)
			assert.InDelta(t, tt.wantTotal, res.Total, 1e-9)

			for _, l := range res.Lines {
				assert.InDelta(t, l.UnitPriceARS*l.Quantity, l.SubtotalARS, 1e-9)
			}
		})
	}
}

func TestServicePriceLineDetails(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.settings.On("Settings", mock.Anything).
		Return(&model.Settings{Rate: 1500, InstallKit: installKit()[:1]}, nil).Once()
	d.products.On("ProductsByCodes", mock.Anything, []string{"CU-14"}).
		Return([]*model.Product{{ProductCode: "CU-14", Name: "Caño 1/4", PriceUSD: lo.ToPtr(2.0)}}, nil).Once()

	res, err := newSvc(d).Price(context.Background(), model.KitPriceParams{
		Variants: map[string]string{"pipe": "1/4"},
	})
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)

	assert.Equal(t, model.KitPriceLine{
		Key:          "pipe",
		Label:        "Caño de cobre",
		Unit:         model.KitUnitLength,
		ProductCode:  "CU-14",
		ProductName:  "Caño 1/4",
		Variant:      "1/4",
		Quantity:     3,
		UnitPriceARS: 3000,
		SubtotalARS:  9000,
	}, res.Lines[0])
}

func TestServiceUpdateKit(t *testing.T) {
	t.Parallel()

	valid := model.KitItemSpec{
		Key:    " gas ",
		Label:  "Gas",
		Unit:   model.KitUnitLength,
		Source: model.DirectSource{ProductCode: " GAS "},
	}

	with := func(mut func(it *model.KitItemSpec)) []model.KitItemSpec {
		it := valid
		mut(&it)
		return []model.KitItemSpec{it}
	}

	invalid := map[string][]model.KitItemSpec{
		"empty key":        with(func(it *model.KitItemSpec) { it.Key = " " }),
		"missing label":    with(func(it *model.KitItemSpec) { it.Label = "" }),
		"bad unit":         with(func(it *model.KitItemSpec) { it.Unit = "kg" }),
		"negative step":    with(func(it *model.KitItemSpec) { it.Step = -1 }),
		"negative default": with(func(it *model.KitItemSpec) { it.DefaultQuantity = -2 }),
		"no source":        with(func(it *model.KitItemSpec) { it.Source = nil }),
		"empty code":       with(func(it *model.KitItemSpec) { it.Source = model.DirectSource{} }),
		"empty variants":   with(func(it *model.KitItemSpec) { it.Source = model.VariantSource{} }),
		"duplicate variant": with(func(it *model.KitItemSpec) {
			it.Source = model.VariantSource{Variants: []model.KitVariant{
				{Value: "a", ProductCode: "X"},
				{Value: "a", ProductCode: "Y"},
			}}
		}),
		"duplicate key": append(with(func(*model.KitItemSpec) {}), valid),
	}

	for name, items := range invalid {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := newSvc(newDeps(t)).UpdateKit(context.Background(), items)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}

	t.Run("normalizes and stores", func(t *testing.T) {
		t.Parallel()

		want := model.KitItemSpec{
			Key:    "gas",
			Label:  "Gas",
			Unit:   model.KitUnitLength,
			Step:   model.DefaultLengthStep,
			Source: model.DirectSource{ProductCode: "GAS"},
		}

		d := newDeps(t)
		d.store.On("SetInstallKit", mock.Anything, []model.KitItemSpec{want}).
			Return(&model.Settings{InstallKit: []model.KitItemSpec{want}}, nil).Once()

		items, err := newSvc(d).UpdateKit(context.Background(), []model.KitItemSpec{valid})
		require.NoError(t, err)
		assert.Equal(t, []model.KitItemSpec{want}, items)
	})
}
