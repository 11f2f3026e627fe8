package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/query"
)

// postgresRepository implements user.Repository against pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `
	id, name, email, password_hash, phone, address, role,
	is_active, membership_expires_at, created_at, updated_at`

func scanUser(row pgx.Row, u *user.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.Address,
		&u.Role,
		&u.IsActive,
		&u.MembershipExpiresAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	sql := `
		INSERT INTO users (
			name, email, password_hash, phone, address, role,
			is_active, membership_expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var userID uuid.UUID
	err := r.pool.QueryRow(ctx, sql,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Phone,
		u.Address,
		u.Role,
		u.IsActive,
		u.MembershipExpiresAt,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&userID)

	if err != nil {
		// The unique constraint is authoritative; the service-level
		// pre-check only narrows the window.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, user.ErrEmailAlreadyExists
		}
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	return userID, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	sql := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var u user.User
	err := scanUser(r.pool.QueryRow(ctx, sql, id), &u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	sql := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(email) = LOWER($1)`, userColumns)

	var u user.User
	err := scanUser(r.pool.QueryRow(ctx, sql, email), &u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *user.ListFilter) ([]user.User, int, error) {
	b := query.NewBuilder()

	if filter.Search != "" {
		b.ContainsAny([]string{"name", "email"}, filter.Search)
	}
	if filter.Role != nil {
		b.Equals("role", *filter.Role)
	}
	if filter.IsActive != nil {
		b.Equals("is_active", *filter.IsActive)
	}

	whereClause := b.WhereClause()

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	listSQL := fmt.Sprintf(`
		SELECT %s FROM users
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		userColumns, whereClause, filter.Sort.Clause(),
		b.NextPlaceholder(), b.NextPlaceholder()+1,
	)
	args := append(b.Args(), filter.Page.Limit(), filter.Page.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0, filter.Page.Limit())
	for rows.Next() {
		var u user.User
		if err := scanUser(rows, &u); err != nil {
			return nil, 0, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	sql := `
		UPDATE users SET
			name = $2, email = $3, password_hash = $4, phone = $5,
			address = $6, role = $7, is_active = $8,
			membership_expires_at = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, sql,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Phone,
		u.Address,
		u.Role,
		u.IsActive,
		u.MembershipExpiresAt,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
