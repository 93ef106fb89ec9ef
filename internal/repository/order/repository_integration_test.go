//go:build integration

package repository_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/frio-catalog/internal/model"
	repository "github.com/you-humble/frio-catalog/internal/repository/order"
)

type orderRepository interface {
	Create(ctx context.Context, ord *model.Order) error
	OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus) (*model.Order, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
}

func newOrder(status model.OrderStatus) *model.Order {
	return &model.Order{
		ID: uuid.New(),
		Items: []model.OrderItem{
			{ProductID: uuid.NewString(), Name: "Split 3000", Quantity: 1, PriceUSD: 420, PriceARS: 420000},
			{ProductID: uuid.NewString(), Name: "Caño de cobre", Quantity: 3, PriceUSD: 6.5, PriceARS: 6500},
		},
		TotalUSD:      439.5,
		TotalARS:      439500,
		ExchangeRate:  1000,
		CustomerName:  "Ana",
		CustomerPhone: "+54 9 11 4444-0000",
		Status:        status,
	}
}

var _ = Describe("Order repository", func() {
	var repo orderRepository

	BeforeEach(func() {
		repo = repository.NewOrderRepository(pgC.Pool())
	})

	Context("Create + OrderByID", func() {
		It("stores the order with its lines in position order", func() {
			ord := newOrder(model.OrderStatusPending)

			By("creating order via repository")
			Expect(repo.Create(ctx, ord)).To(Succeed())
			Expect(ord.CreatedAt).NotTo(BeZero())

			By("checking rows exist in DB via direct SQL")
			var lines int
			err := pgC.Pool().QueryRow(ctx,
				`SELECT count(*) FROM order_items WHERE order_id = $1`,
				ord.ID,
			).Scan(&lines)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal(2))

			By("fetching order via repository OrderByID")
			got, err := repo.OrderByID(ctx, ord.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(ord.ID))
			Expect(got.Status).To(Equal(model.OrderStatusPending))
			Expect(got.TotalARS).To(Equal(439500.0))
			Expect(got.Items).To(HaveLen(2))
			Expect(got.Items[0].Name).To(Equal("Split 3000"))
			Expect(got.Items[1].Quantity).To(Equal(int64(3)))
		})

		It("returns ErrNotFound when missing", func() {
			_, err := repo.OrderByID(ctx, uuid.New())
			Expect(err).To(MatchError(model.ErrNotFound))
		})

		It("returns ErrConflict on duplicate id", func() {
			ord := newOrder(model.OrderStatusPending)
			Expect(repo.Create(ctx, ord)).To(Succeed())

			err := repo.Create(ctx, ord)
			Expect(err).To(MatchError(model.ErrConflict))
		})
	})

	Context("List + CountByStatus", func() {
		It("filters by status and keeps newest first", func() {
			first := newOrder(model.OrderStatusPending)
			second := newOrder(model.OrderStatusPending)
			answered := newOrder(model.OrderStatusAnswered)
			for _, o := range []*model.Order{first, second, answered} {
				Expect(repo.Create(ctx, o)).To(Succeed())
			}

			all, err := repo.List(ctx, model.OrderFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))

			pending := model.OrderStatusPending
			got, err := repo.List(ctx, model.OrderFilter{Status: &pending})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(2))
			Expect(got[0].CreatedAt).To(BeTemporally(">=", got[1].CreatedAt))
			for _, o := range got {
				Expect(o.Items).To(HaveLen(2))
			}

			n, err := repo.CountByStatus(ctx, model.OrderStatusPending)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})
	})

	Context("UpdateStatus", func() {
		It("moves pending to answered", func() {
			ord := newOrder(model.OrderStatusPending)
			Expect(repo.Create(ctx, ord)).To(Succeed())

			got, err := repo.UpdateStatus(ctx, ord.ID, model.OrderStatusPending, model.OrderStatusAnswered)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(model.OrderStatusAnswered))
			Expect(got.Items).To(HaveLen(2))
			Expect(got.UpdatedAt).To(BeTemporally(">=", ord.UpdatedAt))
		})

		It("returns ErrConflict when the stored status differs", func() {
			ord := newOrder(model.OrderStatusAnswered)
			Expect(repo.Create(ctx, ord)).To(Succeed())

			_, err := repo.UpdateStatus(ctx, ord.ID, model.OrderStatusPending, model.OrderStatusAnswered)
			Expect(err).To(MatchError(model.ErrConflict))
		})
	})
})
