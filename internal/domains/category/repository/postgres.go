package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/category"
	"library-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, cat *category.Category) (uuid.UUID, error) {
	sql := `
		INSERT INTO categories (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, sql, cat.Name, cat.CreatedAt, cat.UpdatedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert category: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	sql := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`

	var cat category.Category
	err := r.pool.QueryRow(ctx, sql, id).Scan(&cat.ID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}

	return &cat, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *category.ListFilter) ([]category.Category, int, error) {
	b := query.NewBuilder()

	if filter.Name != "" {
		b.Contains("name", filter.Name)
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		b.Between("created_at", *filter.CreatedFrom, *filter.CreatedTo)
	}

	whereClause := b.WhereClause()

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM categories %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	listSQL := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at FROM categories
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		whereClause, filter.Sort.Clause(),
		b.NextPlaceholder(), b.NextPlaceholder()+1,
	)
	args := append(b.Args(), filter.Page.Limit(), filter.Page.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0, filter.Page.Limit())
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, cat *category.Category) error {
	sql := `UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, sql, cat.ID, cat.Name, cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// books.category_id is ON DELETE SET NULL: deleting a category
	// detaches its books rather than removing them.
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
