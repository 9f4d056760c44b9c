package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const selectWithAuthor = `
	SELECT c.id, c.content, c.post_id, c.author_id, c.created_at, c.updated_at,
	       u.name, u.profile_picture
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

func scanWithAuthor(row pgx.Row) (*model.WithAuthor, error) {
	var c model.WithAuthor
	err := row.Scan(
		&c.ID,
		&c.Content,
		&c.PostID,
		&c.AuthorID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.AuthorName,
		&c.AuthorProfilePicture,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (id, content, post_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Content,
		c.PostID,
		c.AuthorID,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WithAuthor, error) {
	c, err := scanWithAuthor(r.pool.QueryRow(ctx, selectWithAuthor+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.WithAuthor, error) {
	rows, err := r.pool.Query(ctx,
		selectWithAuthor+` WHERE c.post_id = $1 ORDER BY c.created_at DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments by post: %w", err)
	}
	defer rows.Close()

	comments := make([]model.WithAuthor, 0)
	for rows.Next() {
		c, err := scanWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Content, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}
