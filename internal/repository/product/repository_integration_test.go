//go:build integration

package repository_test

import (
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/repository/mongodb"
	repository "github.com/you-humble/frio-catalog/internal/repository/product"
	settingsrepo "github.com/you-humble/frio-catalog/internal/repository/settings"
	settingssvc "github.com/you-humble/frio-catalog/internal/service/settings"
)

func newProduct(code string, usd *float64, fixedARS *float64, categories ...string) *model.Product {
	now := time.Now()
	p := &model.Product{
		ID:          uuid.NewString(),
		ProductCode: code,
		Name:        "Producto " + code,
		Description: "Descripción " + code,
		PriceUSD:    usd,
		Categories:  categories,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if fixedARS != nil {
		p.FixedInARS = true
		p.PriceARS = fixedARS
	} else {
		p.PriceARS = lo.ToPtr(lo.FromPtr(usd) * 1000)
	}
	return p
}

var _ = Describe("Product repository", func() {
	BeforeEach(func() {
		Expect(repository.NewProductRepository(products).EnsureIndexes(ctx)).To(Succeed())
	})

	Context("Create + ProductByCode", func() {
		It("bumps views only when asked", func() {
			repo := repository.NewProductRepository(products)
			p := newProduct("SPL-3000", lo.ToPtr(420.0), nil, "aire")
			Expect(repo.Create(ctx, p)).To(Succeed())

			got, err := repo.ProductByCode(ctx, "SPL-3000", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Views).To(Equal(int64(0)))

			got, err = repo.ProductByCode(ctx, "SPL-3000", true)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Views).To(Equal(int64(1)))
		})

		It("hides inactive products", func() {
			repo := repository.NewProductRepository(products)
			p := newProduct("OFF-1", lo.ToPtr(1.0), nil)
			p.Active = false
			Expect(repo.Create(ctx, p)).To(Succeed())

			_, err := repo.ProductByCode(ctx, "OFF-1", true)
			Expect(err).To(MatchError(model.ErrNotFound))
		})

		It("rejects a duplicate product code", func() {
			repo := repository.NewProductRepository(products)
			Expect(repo.Create(ctx, newProduct("DUP-1", lo.ToPtr(1.0), nil))).To(Succeed())

			err := repo.Create(ctx, newProduct("DUP-1", lo.ToPtr(2.0), nil))
			Expect(err).To(MatchError(model.ErrConflict))
		})
	})

	Context("List", func() {
		It("filters, counts and paginates", func() {
			repo := repository.NewProductRepository(products)
			Expect(repo.CreateBatch(ctx, []*model.Product{
				newProduct("A-1", lo.ToPtr(10.0), nil, "gas"),
				newProduct("A-2", lo.ToPtr(20.0), nil, "gas", "tools"),
				newProduct("A-3", lo.ToPtr(30.0), nil, "gas"),
				newProduct("B-1", lo.ToPtr(40.0), nil, "tools"),
			})).To(Succeed())

			items, total, err := repo.List(ctx, model.ProductFilter{
				Categories: []string{"gas"},
				SortField:  "priceARS",
				SortOrder:  model.SortAsc,
				Page:       2,
				Limit:      2,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(items).To(HaveLen(1))
			Expect(items[0].ProductCode).To(Equal("A-3"))

			items, total, err = repo.List(ctx, model.ProductFilter{
				MinPriceARS: lo.ToPtr(15000.0),
				MaxPriceARS: lo.ToPtr(35000.0),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(lo.Map(items, func(p *model.Product, _ int) string { return p.ProductCode })).
				To(ConsistOf("A-2", "A-3"))
		})
	})

	Context("ToggleActive + Counts", func() {
		It("flips the flag and keeps counters consistent", func() {
			repo := repository.NewProductRepository(products)
			a := newProduct("T-1", lo.ToPtr(1.0), nil)
			b := newProduct("T-2", lo.ToPtr(1.0), nil)
			Expect(repo.CreateBatch(ctx, []*model.Product{a, b})).To(Succeed())

			got, err := repo.ToggleActive(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Active).To(BeFalse())

			counts, err := repo.Counts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(model.ProductCounts{Total: 2, Active: 1, Inactive: 1}))

			_, err = repo.ToggleActive(ctx, "missing")
			Expect(err).To(MatchError(model.ErrNotFound))
		})
	})

	Context("RepriceAll", func() {
		It("reprices USD products and leaves fixed ones alone", func() {
			repo := repository.NewProductRepository(products)
			usd := newProduct("USD-1", lo.ToPtr(10.0), nil)
			noPrice := newProduct("NONE-1", nil, nil)
			fixed := newProduct("FIX-1", lo.ToPtr(99.0), lo.ToPtr(5000.0))
			Expect(repo.CreateBatch(ctx, []*model.Product{usd, noPrice, fixed})).To(Succeed())

			n, err := repo.RepriceAll(ctx, 1500)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))

			got, err := repo.ProductByID(ctx, usd.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*got.PriceARS).To(Equal(15000.0))

			got, err = repo.ProductByID(ctx, noPrice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*got.PriceARS).To(Equal(0.0))

			got, err = repo.ProductByID(ctx, fixed.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*got.PriceARS).To(Equal(5000.0))
		})
	})

	Context("exchange rate update", func() {
		It("reprices products and stores the rate in one transaction", func() {
			repo := repository.NewProductRepository(products)
			p := newProduct("TX-1", lo.ToPtr(2.0), nil)
			Expect(repo.Create(ctx, p)).To(Succeed())

			svc := settingssvc.NewSettingsService(
				settingsrepo.NewSettingsRepository(settings),
				repo,
				mongodb.NewTransactor(mongoC.Client(), true),
				settingssvc.DefaultRetryPolicy,
				5*time.Second,
				5*time.Second,
			)

			res, err := svc.UpdateExchangeRate(ctx, 1234)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Settings.Rate).To(Equal(1234.0))
			Expect(res.Repriced).To(Equal(int64(1)))

			rate, err := svc.ExchangeRate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rate).To(Equal(1234.0))

			got, err := repo.ProductByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*got.PriceARS).To(Equal(2468.0))
		})

		It("reads the default rate before the first write", func() {
			svc := settingssvc.NewSettingsService(
				settingsrepo.NewSettingsRepository(settings),
				repository.NewProductRepository(products),
				mongodb.NewTransactor(mongoC.Client(), true),
				settingssvc.DefaultRetryPolicy,
				5*time.Second,
				5*time.Second,
			)

			rate, err := svc.ExchangeRate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rate).To(Equal(model.DefaultExchangeRate))
		})
	})
})
