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

	"library-backend/internal/domains/wishlist"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) wishlist.Repository {
	return &postgresRepository{pool: pool}
}

const entrySelect = `
	SELECT w.id, w.user_id, w.book_id, w.notes, w.created_at, w.updated_at,
	       b.id, b.title, b.author, b.category_id, b.created_at, b.updated_at,
	       c.name AS category_name
	FROM wishlist_entries w
	JOIN books b ON w.book_id = b.id
	LEFT JOIN categories c ON b.category_id = c.id`

func scanEntry(row pgx.Row, e *wishlist.EntryWithBook) error {
	return row.Scan(
		&e.ID,
		&e.UserID,
		&e.BookID,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.Book.ID,
		&e.Book.Title,
		&e.Book.Author,
		&e.Book.CategoryID,
		&e.Book.CreatedAt,
		&e.Book.UpdatedAt,
		&e.Book.CategoryName,
	)
}

func (r *postgresRepository) Create(ctx context.Context, entry *wishlist.Entry) error {
	sql := `
		INSERT INTO wishlist_entries (user_id, book_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, sql,
		entry.UserID,
		entry.BookID,
		entry.Notes,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				// unique (user_id, book_id)
				return wishlist.ErrDuplicateEntry
			case "23503":
				return wishlist.ErrBookNotFound
			}
		}
		return fmt.Errorf("insert wishlist entry: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*wishlist.EntryWithBook, error) {
	sql := entrySelect + ` WHERE w.id = $1 AND w.user_id = $2`

	var e wishlist.EntryWithBook
	err := scanEntry(r.pool.QueryRow(ctx, sql, id, userID), &e)
	if err != nil {
		// Another user's entry is indistinguishable from a missing one.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wishlist.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find wishlist entry by id: %w", err)
	}

	return &e, nil
}

func (r *postgresRepository) FindByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*wishlist.EntryWithBook, error) {
	sql := entrySelect + ` WHERE w.user_id = $1 AND w.book_id = $2`

	var e wishlist.EntryWithBook
	err := scanEntry(r.pool.QueryRow(ctx, sql, userID, bookID), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wishlist.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find wishlist entry by book: %w", err)
	}

	return &e, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter wishlist.ListFilter) ([]wishlist.EntryWithBook, int, error) {
	countSQL := `SELECT COUNT(*) FROM wishlist_entries w WHERE w.user_id = $1`

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wishlist entries: %w", err)
	}

	sql := fmt.Sprintf(
		"%s WHERE w.user_id = $1 ORDER BY w.%s %s LIMIT $2 OFFSET $3",
		entrySelect, filter.Sort.Column, filter.Sort.Order,
	)

	rows, err := r.pool.Query(ctx, sql, userID, filter.Page.Limit(), filter.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list wishlist entries: %w", err)
	}
	defer rows.Close()

	entries := make([]wishlist.EntryWithBook, 0)
	for rows.Next() {
		var e wishlist.EntryWithBook
		if err := scanEntry(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("scan wishlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wishlist entries: %w", err)
	}

	return entries, total, nil
}

func (r *postgresRepository) UpdateNotes(ctx context.Context, id, userID uuid.UUID, notes *string) (*wishlist.EntryWithBook, error) {
	sql := `
		UPDATE wishlist_entries
		SET notes = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`

	tag, err := r.pool.Exec(ctx, sql, notes, time.Now(), id, userID)
	if err != nil {
		return nil, fmt.Errorf("update wishlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, wishlist.ErrEntryNotFound
	}

	return r.FindByIDForUser(ctx, id, userID)
}

func (r *postgresRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	sql := `DELETE FROM wishlist_entries WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, sql, id, userID)
	if err != nil {
		return fmt.Errorf("delete wishlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return wishlist.ErrEntryNotFound
	}

	return nil
}

// StatusFor reports whether the book sits on the user's wishlist and
// the note attached to it. Used to decorate book detail reads.
func (r *postgresRepository) StatusFor(ctx context.Context, userID, bookID uuid.UUID) (bool, *string, error) {
	sql := `SELECT notes FROM wishlist_entries WHERE user_id = $1 AND book_id = $2`

	var notes *string
	err := r.pool.QueryRow(ctx, sql, userID, bookID).Scan(&notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("wishlist status: %w", err)
	}

	return true, notes, nil
}
