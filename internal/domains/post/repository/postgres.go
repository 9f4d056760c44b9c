package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post/model"
	"blog-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const selectWithAuthor = `
	SELECT p.id, p.title, p.content, p.excerpt, p.category, p.author_id,
	       p.created_at, p.updated_at,
	       u.name, u.profile_picture
	FROM posts p
	JOIN users u ON u.id = p.author_id
`

func scanWithAuthor(row pgx.Row) (*model.WithAuthor, error) {
	var p model.WithAuthor
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Excerpt,
		&p.Category,
		&p.AuthorID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.AuthorName,
		&p.AuthorProfilePicture,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (id, title, content, excerpt, category, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Content,
		p.Excerpt,
		p.Category,
		p.AuthorID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WithAuthor, error) {
	p, err := scanWithAuthor(r.pool.QueryRow(ctx, selectWithAuthor+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.WithAuthor, error) {
	rows, err := r.pool.Query(ctx, selectWithAuthor+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.WithAuthor, error) {
	rows, err := r.pool.Query(ctx,
		selectWithAuthor+` WHERE p.author_id = $1 ORDER BY p.created_at DESC`, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows pgx.Rows) ([]model.WithAuthor, error) {
	posts := make([]model.WithAuthor, 0)
	for rows.Next() {
		p, err := scanWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, excerpt = $4, category = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Content,
		p.Excerpt,
		p.Category,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

// Delete removes the post's comments then the post itself, atomically, so
// no orphan comment referencing a deleted post remains queryable.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
			return fmt.Errorf("delete post comments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrPostNotFound
		}

		return nil
	})
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("post exists: %w", err)
	}
	return exists, nil
}
