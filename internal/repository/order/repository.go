package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/frio-catalog/internal/model"
)

const uniqueViolation = "23505"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create stores the order and its lines in one transaction and fills in
// the database timestamps.
func (r *repository) Create(ctx context.Context, ord *model.Order) error {
	const op = "repository.order.Create"

	if ord.ID == uuid.Nil {
		return fmt.Errorf("%s: empty order id: %w", op, model.ErrValidation)
	}
	if len(ord.Items) == 0 {
		return fmt.Errorf("%s: order has no items: %w", op, model.ErrValidation)
	}

	orderSQL, orderArgs, err := r.sb.
		Insert(ordersTable).
		Columns("id", "customer_name", "customer_phone", "total_usd", "total_ars", "exchange_rate", "status").
		Values(ord.ID, ord.CustomerName, ord.CustomerPhone, ord.TotalUSD, ord.TotalARS, ord.ExchangeRate, string(ord.Status)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build order insert: %w", op, err)
	}

	items := r.sb.Insert(orderItemsTable).Columns(itemColumns...)
	for i, it := range ord.Items {
		items = items.Values(ord.ID, i, it.ProductID, it.Name, it.Quantity, it.PriceUSD, it.PriceARS)
	}
	itemsSQL, itemsArgs, err := items.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build items insert: %w", op, err)
	}

	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, orderSQL, orderArgs...).Scan(&ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, itemsSQL, itemsArgs...)
		return err
	})
	if err != nil {
		return wrapError(op, err)
	}

	return nil
}

func (r *repository) OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	const op = "repository.order.OrderByID"

	sqlStr, args, err := r.sb.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	row, err := scanOrder(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, wrapError(op, err)
	}

	items, err := r.itemsByOrderIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, wrapError(op, err)
	}

	return rowToModel(row, items[id]), nil
}

// List returns orders newest first.
func (r *repository) List(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error) {
	const op = "repository.order.List"

	q := r.sb.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("created_at DESC", "id DESC")
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": string(*filter.Status)})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, wrapError(op, err)
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		row, err := scanOrder(rows)
		if err != nil {
			return nil, wrapError(op, err)
		}
		orderRows = append(orderRows, row)
		ids = append(ids, row.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(op, err)
	}

	items, err := r.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, wrapError(op, err)
	}

	out := make([]*model.Order, 0, len(orderRows))
	for _, row := range orderRows {
		out = append(out, rowToModel(row, items[row.ID]))
	}
	return out, nil
}

// UpdateStatus moves an order from one status to another. It fails with
// ErrConflict when the stored status is no longer from.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus) (*model.Order, error) {
	const op = "repository.order.UpdateStatus"

	sqlStr, args, err := r.sb.
		Update(ordersTable).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(from)}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	row, err := scanOrder(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: status changed concurrently: %w", op, model.ErrConflict)
		}
		return nil, wrapError(op, err)
	}

	items, err := r.itemsByOrderIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, wrapError(op, err)
	}

	return rowToModel(row, items[id]), nil
}

func (r *repository) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	const op = "repository.order.CountByStatus"

	sqlStr, args, err := r.sb.
		Select("count(*)").
		From(ordersTable).
		Where(sq.Eq{"status": string(status)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var n int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, wrapError(op, err)
	}
	return n, nil
}

func (r *repository) itemsByOrderIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]itemRow, error) {
	out := make(map[uuid.UUID][]itemRow, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	sqlStr, args, err := r.sb.
		Select(itemColumns...).
		From(orderItemsTable).
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it itemRow
		if err := rows.Scan(&it.OrderID, &it.Position, &it.ProductID, &it.Name, &it.Quantity, &it.PriceUSD, &it.PriceARS); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}

	return out, rows.Err()
}

func scanOrder(row pgx.Row) (orderRow, error) {
	var o orderRow
	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.TotalUSD,
		&o.TotalARS,
		&o.ExchangeRate,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%s: %w: %w", op, model.ErrConflict, err)
	case pgconn.Timeout(err), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, model.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
