package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/shoply/internal/models"
)

type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
}

type SQLProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *SQLProductStore {
	return &SQLProductStore{db: db}
}

func (s *SQLProductStore) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, category, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return s.db.QueryRowxContext(ctx, query, p.Name, p.Description, p.Price, p.Category, p.Image).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (s *SQLProductStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product

	err := s.db.GetContext(ctx, &p, `SELECT * FROM products WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *SQLProductStore) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}

	err := s.db.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (s *SQLProductStore) Update(ctx context.Context, p *models.Product) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, price=$3, category=$4, image=$5, updated_at=NOW()
		WHERE id=$6
	`, p.Name, p.Description, p.Price, p.Category, p.Image, p.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLProductStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
