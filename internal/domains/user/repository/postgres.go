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

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

// userCacheTTL bounds staleness of the auth-path lookup; writes invalidate.
const userCacheTTL = 15 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the pgx-backed user repository.
// The cache is used cache-aside for FindByID only: that lookup runs on
// every authenticated request through the auth middleware.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, profile_picture, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.ProfilePicture,
		u.CreatedAt,
	)

	if err != nil {
		// 23505 = unique_violation on the email index
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	cacheKey := userCacheKey(id)

	var u user.User
	if r.cache != nil {
		found, err := r.cache.Get(ctx, cacheKey, &u)
		if err == nil && found {
			return &u, nil
		}
	}

	query := `
		SELECT id, email, password_hash, name, profile_picture, created_at
		FROM users
		WHERE id = $1
	`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.ProfilePicture,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	if r.cache != nil {
		// Cache unavailability never fails the request
		_ = r.cache.Set(ctx, cacheKey, &u, userCacheTTL)
	}

	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, name, profile_picture, created_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.ProfilePicture,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET name = $2, profile_picture = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, u.ID, u.Name, u.ProfilePicture)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, userCacheKey(u.ID))
	}

	return nil
}

// Delete cascades User -> Posts -> Comments as explicit ordered deletes in
// a single transaction: comments first (authored anywhere, plus comments
// other users left on this user's posts), then posts, then the user row.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM comments WHERE author_id = $1`, id); err != nil {
			return fmt.Errorf("delete authored comments: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE author_id = $1)`, id); err != nil {
			return fmt.Errorf("delete comments on authored posts: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM posts WHERE author_id = $1`, id); err != nil {
			return fmt.Errorf("delete authored posts: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return user.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, userCacheKey(id))
	}

	return nil
}
