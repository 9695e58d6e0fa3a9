package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shoe-store/models"
)

var (
	ErrNotFound  = errors.New("shoe not found")
	ErrDuplicate = errors.New("shoe slug already exists")
)

// ShoeStore is the persistence surface the shoe service depends on.
type ShoeStore interface {
	List(ctx context.Context, page, limit int) ([]models.Shoe, int, error)
	GetBySlug(ctx context.Context, slug string) (*models.Shoe, error)
	Create(ctx context.Context, shoe *models.Shoe) error
	Update(ctx context.Context, shoe *models.Shoe) error
	Delete(ctx context.Context, slug string) error
}

const shoeColumns = `id, slug, name, image_src, price, sale_price, release_date, num_of_colors, is_active, created_at, updated_at`

type ShoeRepository struct {
	db *pgxpool.Pool
}

func NewShoeRepository(db *pgxpool.Pool) *ShoeRepository {
	return &ShoeRepository{db: db}
}

func scanShoe(row pgx.Row) (*models.Shoe, error) {
	var s models.Shoe
	err := row.Scan(
		&s.ID, &s.Slug, &s.Name, &s.ImageSrc, &s.Price, &s.SalePrice,
		&s.ReleaseDate, &s.NumOfColors, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShoeRepository) List(ctx context.Context, page, limit int) ([]models.Shoe, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shoes WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shoes: %w", err)
	}

	query := `SELECT ` + shoeColumns + `
	          FROM shoes WHERE is_active = true
	          ORDER BY release_date DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shoes: %w", err)
	}
	defer rows.Close()

	shoes := []models.Shoe{}
	for rows.Next() {
		s, err := scanShoe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shoe: %w", err)
		}
		shoes = append(shoes, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list shoes: %w", err)
	}
	return shoes, total, nil
}

func (r *ShoeRepository) GetBySlug(ctx context.Context, slug string) (*models.Shoe, error) {
	query := `SELECT ` + shoeColumns + ` FROM shoes WHERE slug = $1 AND is_active = true`

	s, err := scanShoe(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shoe: %w", err)
	}
	return s, nil
}

func (r *ShoeRepository) Create(ctx context.Context, shoe *models.Shoe) error {
	query := `
		INSERT INTO shoes (slug, name, image_src, price, sale_price, release_date, num_of_colors, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		RETURNING id, is_active, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		shoe.Slug, shoe.Name, shoe.ImageSrc, shoe.Price, shoe.SalePrice, shoe.ReleaseDate, shoe.NumOfColors,
	).Scan(&shoe.ID, &shoe.IsActive, &shoe.CreatedAt, &shoe.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert shoe: %w", err)
	}
	return nil
}

func (r *ShoeRepository) Update(ctx context.Context, shoe *models.Shoe) error {
	query := `
		UPDATE shoes SET name = $1, image_src = $2, price = $3, sale_price = $4,
		       release_date = $5, num_of_colors = $6, is_active = $7, updated_at = NOW()
		WHERE slug = $8
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		shoe.Name, shoe.ImageSrc, shoe.Price, shoe.SalePrice,
		shoe.ReleaseDate, shoe.NumOfColors, shoe.IsActive, shoe.Slug,
	).Scan(&shoe.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update shoe: %w", err)
	}
	return nil
}

// Delete hides the shoe from the catalog; the row is kept.
func (r *ShoeRepository) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `UPDATE shoes SET is_active = false, updated_at = NOW() WHERE slug = $1 AND is_active = true`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete shoe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
