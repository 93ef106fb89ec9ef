package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount registers the catalog routes on r. Routes wrapped by admin
// require a bearer token.
func (h *handler) Mount(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.With(admin).Post("/register", h.Register)
	})

	r.Route("/config", func(r chi.Router) {
		r.Get("/", h.GetConfig)
		r.Get("/install-kit", h.InstallKit)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Put("/", h.UpdateConfig)
			r.Put("/install-kit", h.UpdateInstallKit)
		})
	})

	r.Route("/kits/install", func(r chi.Router) {
		r.Get("/meta", h.InstallKit)
		r.Post("/price", h.PriceInstallKit)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/code/{code}", h.ProductByCode)
		r.Get("/meta/categories", h.CategoriesMeta)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/admin/all", h.ListAllProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/{id}", h.ProductByID)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
			r.Patch("/{id}/toggle", h.ToggleProduct)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.OrderByID)
			r.Patch("/{id}/status", h.UpdateOrderStatus)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/tree", h.CategoryTree)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", h.CreateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})
	})

	r.Route("/banners", func(r chi.Router) {
		r.Get("/", h.PublicBanners)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/admin/all", h.AllBanners)
			r.Post("/", h.CreateBanner)
			r.Patch("/reorder", h.ReorderBanners)
			r.Put("/{id}", h.UpdateBanner)
			r.Delete("/{id}", h.DeleteBanner)
			r.Patch("/{id}/toggle", h.ToggleBanner)
		})
	})

	r.With(admin).Get("/dashboard", h.Dashboard)
}
