package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/query"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

const bookCacheTTL = 10 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func bookCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("book:%s", id.String())
}

const bookSelect = `
	SELECT b.id, b.title, b.author, b.category_id, b.created_at, b.updated_at,
	       c.name AS category_name
	FROM books b
	LEFT JOIN categories c ON b.category_id = c.id`

func scanBook(row pgx.Row, b *book.BookWithCategory) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.CategoryID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.CategoryName,
	)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (uuid.UUID, error) {
	sql := `
		INSERT INTO books (title, author, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, sql,
		b.Title,
		b.Author,
		b.CategoryID,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&id)

	if err != nil {
		// FK violation means the category vanished between the
		// advisory pre-check and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.Nil, book.ErrCategoryNotFound
		}
		return uuid.Nil, fmt.Errorf("insert book: %w", err)
	}

	return id, nil
}

// FindByID is cache-aside: point reads are the hottest path in the
// catalog, so they are served from Redis when possible.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.BookWithCategory, error) {
	var cached book.BookWithCategory
	if found, err := r.cache.Get(ctx, bookCacheKey(id), &cached); err == nil && found {
		return &cached, nil
	}

	sql := bookSelect + ` WHERE b.id = $1`

	var b book.BookWithCategory
	err := scanBook(r.pool.QueryRow(ctx, sql, id), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	if err := r.cache.Set(ctx, bookCacheKey(id), &b, bookCacheTTL); err != nil {
		logger.Error("failed to cache book", err)
	}

	return &b, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check book exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *book.ListFilter) ([]book.BookWithCategory, int, error) {
	b := query.NewBuilder()

	if filter.Search != "" {
		// Search mode: one term against title OR author.
		b.ContainsAny([]string{"b.title", "b.author"}, filter.Search)
	} else {
		if filter.Title != "" {
			b.Contains("b.title", filter.Title)
		}
		if filter.Author != "" {
			b.Contains("b.author", filter.Author)
		}
		if filter.CategoryID != nil {
			b.Equals("b.category_id", *filter.CategoryID)
		}
		if filter.CreatedFrom != nil && filter.CreatedTo != nil {
			b.Between("b.created_at", *filter.CreatedFrom, *filter.CreatedTo)
		}
	}

	whereClause := b.WhereClause()

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM books b %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	sort := query.Sort{Column: "b." + filter.Sort.Column, Order: filter.Sort.Order}
	listSQL := fmt.Sprintf(`%s
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		bookSelect, whereClause, sort.Clause(),
		b.NextPlaceholder(), b.NextPlaceholder()+1,
	)
	args := append(b.Args(), filter.Page.Limit(), filter.Page.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books, err := collectBooks(rows, filter.Page.Limit())
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *postgresRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]book.BookWithCategory, error) {
	sql := bookSelect + ` WHERE b.category_id = $1 ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, sql, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find books by category: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows, 0)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	sql := `
		UPDATE books SET title = $2, author = $3, category_id = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, sql, b.ID, b.Title, b.Author, b.CategoryID, b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return book.ErrCategoryNotFound
		}
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx, b.ID)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, bookCacheKey(id)); err != nil {
		logger.Error("failed to invalidate book cache", err)
	}
}

func collectBooks(rows pgx.Rows, capacity int) ([]book.BookWithCategory, error) {
	books := make([]book.BookWithCategory, 0, capacity)
	for rows.Next() {
		var b book.BookWithCategory
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}
	return books, nil
}
