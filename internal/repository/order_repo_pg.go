package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkhan0192/sapienscare/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatusIfPending(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	MarkExported(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

const orderColumns = `id, name, email, address, contact_number, pin, product_name, quantity, total_price, status, exported, created_at, updated_at`

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.Status = domain.OrderStatusPending
	order.Exported = false
	if err := r.db.QueryRow(ctx, `INSERT INTO orders (id, name, email, address, contact_number, pin, product_name, quantity, total_price, status, exported)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		order.ID, order.Name, order.Email, order.Address, order.ContactNumber, order.Pin,
		order.ProductName, order.Quantity, order.TotalPrice, order.Status, order.Exported).
		Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return nil
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *PGOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateStatusIfPending performs the pending-to-terminal transition as a
// single conditional update. Two racing requests for the same order cannot
// both match the WHERE clause, so at most one transition commits.
func (r *PGOrderRepository) UpdateStatusIfPending(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `UPDATE orders SET status=$1, updated_at=now() WHERE id=$2 AND status=$3 RETURNING `+orderColumns,
		status, id, domain.OrderStatusPending)
	o, err := scanOrder(row)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	// No row matched: either the order does not exist or it is already in
	// a terminal status.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrInvalidTransition
}

func (r *PGOrderRepository) MarkExported(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE orders SET exported=TRUE, updated_at=now() WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PGOrderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Address, &o.ContactNumber, &o.Pin,
		&o.ProductName, &o.Quantity, &o.TotalPrice, &o.Status, &o.Exported, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

var _ OrderRepository = (*PGOrderRepository)(nil)
