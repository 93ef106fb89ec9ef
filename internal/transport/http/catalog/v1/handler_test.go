package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/transport/http/catalog/v1/mocks"
	"github.com/you-humble/frio-catalog/internal/transport/http/middleware"
	mwmocks "github.com/you-humble/frio-catalog/internal/transport/http/middleware/mocks"
)

type deps struct {
	auth     *mocks.MockAuthService
	settings *mocks.MockSettingsService
	kit      *mocks.MockKitService
	products *mocks.MockProductService
	orders   *mocks.MockOrderService
}

func newDeps(t *testing.T) deps {
	return deps{
		auth:     mocks.NewMockAuthService(t),
		settings: mocks.NewMockSettingsService(t),
		kit:      mocks.NewMockKitService(t),
		products: mocks.NewMockProductService(t),
		orders:   mocks.NewMockOrderService(t),
	}
}

func newRouter(d deps) http.Handler {
	h := NewCatalogHandler(Services{
		Auth:     d.auth,
		Settings: d.settings,
		Kit:      d.kit,
		Products: d.products,
		Orders:   d.orders,
	})

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.Mount(r, func(next http.Handler) http.Handler { return next })
	})
	return r
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) catalogv1.Error {
	t.Helper()

	var e catalogv1.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestHandlerCreateOrder(t *testing.T) {
	t.Parallel()

	ordID := uuid.New()
	productID := gofakeit.UUID()
	link := "https://wa.me/5491155550000?text=Hola"

	type testCase struct {
		name   string
		body   string
		setup  func(d deps)
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name: "created with contact link",
			body: `{"products":[{"productId":"` + productID + `","quantity":2}],"customerName":"Ana","customerPhone":"1155"}`,
			setup: func(d deps) {
				d.orders.On("Create", mock.Anything, model.CreateOrderParams{
					CustomerName:  "Ana",
					CustomerPhone: "1155",
					Items:         []model.CartLine{{ProductID: productID, Quantity: 2}},
				}).Return(&model.CreateOrderResult{
					Order: &model.Order{
						ID:       ordID,
						Items:    []model.OrderItem{{ProductID: productID, Name: "Gas", Quantity: 2, PriceUSD: 10, PriceARS: 10000}},
						TotalUSD: 20,
						TotalARS: 20000,
						Status:   model.OrderStatusPending,
					},
					Summary:     "Hola",
					ContactLink: link,
				}, nil).Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, rec.Code)

				var res catalogv1.CreateOrderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, ordID.String(), res.Order.ID)
				assert.Equal(t, link, res.ContactLink)
				assert.Equal(t, link, res.WaLink)
				assert.Equal(t, 20000.0, res.Order.TotalARS)
				require.Len(t, res.Order.Products, 1)
				assert.Equal(t, "pending", res.Order.Status)
			},
		},
		{
			name: "validation error from service",
			body: `{"products":[],"customerName":"Ana","customerPhone":"1155"}`,
			setup: func(d deps) {
				d.orders.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("order.service.Create: empty cart: %w", model.ErrValidation)).Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, decodeError(t, rec).Message, "empty cart")
			},
		},
		{
			name: "malformed body",
			body: `{"products":`,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tc.setup != nil {
				tc.setup(d)
			}

			tc.assert(t, do(t, newRouter(d), http.MethodPost, "/api/orders", tc.body))
		})
	}
}

func TestHandlerOrderByIDRejectsBadID(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	rec := do(t, newRouter(d), http.MethodGet, "/api/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "invalid order id")
	d.orders.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything)
}

func TestHandlerUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	ordID := uuid.New()

	t.Run("unknown status rejected before service", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		rec := do(t, newRouter(d), http.MethodPatch, "/api/orders/"+ordID.String()+"/status", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		d.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("answered", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orders.On("UpdateStatus", mock.Anything, ordID, model.OrderStatusAnswered).
			Return(&model.Order{ID: ordID, Status: model.OrderStatusAnswered}, nil).Once()

		rec := do(t, newRouter(d), http.MethodPatch, "/api/orders/"+ordID.String()+"/status", `{"status":"answered"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var res catalogv1.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "answered", res.Status)
	})
}

func TestHandlerUpdateConfig(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		body     string
		setup    func(d deps)
		wantCode int
	}

	tests := []testCase{
		{
			name:     "missing exchange rate",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero exchange rate",
			body:     `{"exchangeRate":0}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "updated",
			body: `{"exchangeRate":1250.5}`,
			setup: func(d deps) {
				d.settings.On("UpdateExchangeRate", mock.Anything, 1250.5).Return(&model.UpdateRateResult{
					Settings: &model.Settings{Rate: 1250.5, UpdatedAt: time.Now()},
					Repriced: 7,
				}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "storage unavailable",
			body: `{"exchangeRate":1300}`,
			setup: func(d deps) {
				d.settings.On("UpdateExchangeRate", mock.Anything, 1300.0).
					Return(nil, model.ErrUnavailable).Once()
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tc.setup != nil {
				tc.setup(d)
			}

			rec := do(t, newRouter(d), http.MethodPut, "/api/config", tc.body)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestHandlerListProductsScopesActive(t *testing.T) {
	t.Parallel()

	page := &model.ProductPage{Items: []*model.Product{}, Page: 1, Pages: 1}

	t.Run("public lists active only", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.products.On("Query", mock.Anything, mock.MatchedBy(func(f model.ProductFilter) bool {
			return f.ActiveOnly && f.Search == "gas" && lo.FromPtr(f.MinPriceARS) == 100
		})).Return(page, nil).Once()

		rec := do(t, newRouter(d), http.MethodGet, "/api/products?search=gas&minPrice=100", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin lists everything", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.products.On("Query", mock.Anything, mock.MatchedBy(func(f model.ProductFilter) bool {
			return !f.ActiveOnly
		})).Return(page, nil).Once()

		rec := do(t, newRouter(d), http.MethodGet, "/api/products/admin/all", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlerProductByCodeCountsView(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	code := gofakeit.Regex("[A-Z]{3}-[0-9]{4}")
	d.products.On("ByCode", mock.Anything, code, model.ByCodeOptions{IncrementViews: true}).
		Return(&model.Product{ProductCode: code, Views: 3}, nil).Once()

	rec := do(t, newRouter(d), http.MethodGet, "/api/products/code/"+code, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res catalogv1.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, code, res.ProductCode)
	assert.Equal(t, []string{}, res.Categories)
}

func TestHandlerPriceInstallKit(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.kit.On("Price", mock.Anything, model.KitPriceParams{
		Quantities: map[string]float64{"pipe": 3},
		Variants:   map[string]string{"pipe": "1/4"},
	}).Return(&model.KitPrice{
		Lines: []model.KitPriceLine{{
			Key:          "pipe",
			Unit:         model.KitUnitLength,
			ProductCode:  "CU-14",
			Quantity:     3,
			UnitPriceARS: 1000,
			SubtotalARS:  3000,
		}},
		Total: 3000,
	}, nil).Once()

	rec := do(t, newRouter(d), http.MethodPost, "/api/kits/install/price", `{"quantities":{"pipe":3},"variant":{"pipe":"1/4"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var res catalogv1.KitPrice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 3000.0, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "m", res.Items[0].Unit)
	assert.Equal(t, 3000.0, res.Items[0].Subtotal)
}

func TestHandlerLogin(t *testing.T) {
	t.Parallel()

	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 12)

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.auth.On("Login", mock.Anything, model.Credentials{Username: username, Password: password}).
			Return(nil, model.ErrUnauthorized).Once()

		rec := do(t, newRouter(d), http.MethodPost, "/api/auth/login",
			`{"username":"`+username+`","password":"`+password+`"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", decodeError(t, rec).Message)
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		rec := do(t, newRouter(d), http.MethodPost, "/api/auth/login", `{"username":"`+username+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		d.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:     "validation",
			err:      errors.Join(errors.New("bad"), model.ErrValidation),
			wantCode: http.StatusBadRequest,
		},
		{
			name:        "expired token",
			err:         model.ErrTokenExpired,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "session expired",
		},
		{
			name:        "unauthorized",
			err:         model.ErrUnauthorized,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "invalid credentials",
		},
		{
			name:     "not found",
			err:      model.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "conflict",
			err:      model.ErrConflict,
			wantCode: http.StatusConflict,
		},
		{
			name:        "unavailable",
			err:         model.ErrUnavailable,
			wantCode:    http.StatusServiceUnavailable,
			wantMessage: "service temporarily unavailable",
		},
		{
			name:        "unknown",
			err:         context.DeadlineExceeded,
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			code, body := mapError(req, tc.err)

			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantCode, body.Code)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, body.Message)
			}
		})
	}
}

func TestProductFilterFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    model.ProductFilter
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  model.ProductFilter{SortOrder: model.SortDesc},
		},
		{
			name:  "repeated and comma separated tags",
			query: "category=gas,tools&category=pipes&subcategory=r410a&sort=priceARS&order=asc&page=2&limit=20",
			want: model.ProductFilter{
				Categories:    []string{"gas", "tools", "pipes"},
				Subcategories: []string{"r410a"},
				SortField:     "priceARS",
				SortOrder:     model.SortAsc,
				Page:          2,
				Limit:         20,
			},
		},
		{
			name:  "price range",
			query: "minPrice=10.5&maxPrice=99",
			want: model.ProductFilter{
				MinPriceARS: lo.ToPtr(10.5),
				MaxPriceARS: lo.ToPtr(99.0),
				SortOrder:   model.SortDesc,
			},
		},
		{
			name:    "bad price",
			query:   "minPrice=cheap",
			wantErr: true,
		},
		{
			name:    "bad page",
			query:   "page=1.5",
			wantErr: true,
		},
		{
			name:    "bad order",
			query:   "order=sideways",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := productFilterFromQuery(q)
			if tc.wantErr {
				assert.ErrorIs(t, err, model.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandlerUpdateInstallKit(t *testing.T) {
	t.Parallel()

	t.Run("direct and variant items", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		want := []model.KitItemSpec{
			{
				Key:    "gas",
				Label:  "Gas",
				Unit:   model.KitUnitCount,
				Step:   1,
				Source: model.DirectSource{ProductCode: "GAS-1"},
			},
			{
				Key:    "pipe",
				Label:  "Caño",
				Unit:   model.KitUnitLength,
				Step:   0.5,
				Source: model.VariantSource{Variants: []model.KitVariant{{Value: "1/4", ProductCode: "V14"}}},
			},
		}
		d.kit.On("UpdateKit", mock.Anything, want).Return(want, nil).Once()

		rec := do(t, newRouter(d), http.MethodPut, "/api/config/install-kit", `{"items":[`+
			`{"key":"gas","label":"Gas","unit":"u","step":1,"productCode":"GAS-1"},`+
			`{"key":"pipe","label":"Caño","unit":"m","step":0.5,"variants":[{"value":"1/4","productCode":"V14"}]}]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var res catalogv1.InstallKit
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Items, 2)
		assert.Equal(t, "GAS-1", res.Items[0].ProductCode)
		assert.Empty(t, res.Items[1].ProductCode)
	})

	t.Run("item with both product code and variants", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		rec := do(t, newRouter(d), http.MethodPut, "/api/config/install-kit", `{"items":[`+
			`{"key":"pipe","label":"Pipe","unit":"m","productCode":"DIRECT","variants":[{"value":"1/4","productCode":"V14"}]}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "mutually exclusive")
		d.kit.AssertNotCalled(t, "UpdateKit", mock.Anything, mock.Anything)
	})
}

func TestHandlerRegister(t *testing.T) {
	t.Parallel()

	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 12)
	body := `{"username":"` + username + `","password":"` + password + `"}`

	t.Run("signed-in admin registers another", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		parser := mwmocks.NewMockTokenParser(t)
		parser.On("ParseToken", "tok").Return(&model.Claims{AdminID: "a-1", Username: "root"}, nil).Once()
		d.auth.On("Register", mock.Anything, model.Credentials{Username: username, Password: password}).
			Return(&model.Admin{ID: "a-2", Username: username}, nil).Once()

		h := NewCatalogHandler(Services{Auth: d.auth})
		r := chi.NewRouter()
		r.Route("/api", func(r chi.Router) { h.Mount(r, middleware.Auth(parser)) })

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var res catalogv1.Admin
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, username, res.Username)
	})

	t.Run("no admin session in context", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		rec := do(t, newRouter(d), http.MethodPost, "/api/auth/register", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		d.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestHandlerCreateOrderIgnoresClientPrices(t *testing.T) {
	t.Parallel()

	productID := gofakeit.UUID()
	d := newDeps(t)
	d.orders.On("Create", mock.Anything, model.CreateOrderParams{
		CustomerName:  "Ana",
		CustomerPhone: "1155",
		Items: []model.CartLine{
			{ProductID: productID, Quantity: 2},
			{ProductID: "ghost", Quantity: 0},
		},
	}).Return(&model.CreateOrderResult{
		Order: &model.Order{
			ID:       uuid.New(),
			Items:    []model.OrderItem{{ProductID: productID, Name: "Gas", Quantity: 2, PriceUSD: 10, PriceARS: 12000}},
			TotalUSD: 20,
			TotalARS: 24000,
			Status:   model.OrderStatusPending,
		},
		ContactLink: "https://wa.me/5491155550000?text=x",
	}, nil).Once()

	rec := do(t, newRouter(d), http.MethodPost, "/api/orders", `{"products":[`+
		`{"productId":"`+productID+`","quantity":2,"priceARS":1,"priceUSD":0.01,"price":1},`+
		`{"productId":"ghost","quantity":"lots"}],`+
		`"customerName":"Ana","customerPhone":"1155","totalARS":2,"totalUSD":0.02}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var res catalogv1.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 24000.0, res.Order.TotalARS)
	assert.Equal(t, 20.0, res.Order.TotalUSD)
}
