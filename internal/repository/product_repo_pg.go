package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkhan0192/sapienscare/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type PGProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &PGProductRepository{db: db}
}

func (r *PGProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO products (id, name, description, price_cents, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		product.ID, product.Name, product.Description, product.PriceCents, product.ImageURL).
		Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return nil
}

func (r *PGProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, description, price_cents, image_url, created_at, updated_at FROM products WHERE id=$1`, id)
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, price_cents, image_url, created_at, updated_at FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ ProductRepository = (*PGProductRepository)(nil)
