package database

import (
	"context"
	"fmt"
	"strings"
)

// schemaStatements is the idempotent startup DDL. Column sets must stay in
// lockstep with the repositories' INSERT/SELECT lists.
var schemaStatements = []string{
	strings.Join([]string{
		"CREATE TABLE IF NOT EXISTS users (",
		"    id UUID PRIMARY KEY,",
		"    email VARCHAR(255) NOT NULL UNIQUE,",
		"    password_hash VARCHAR(255) NOT NULL,",
		"    name VARCHAR(100) NOT NULL,",
		"    profile_picture TEXT,",
		"    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()",
		")",
	}, "\n"),
	strings.Join([]string{
		"CREATE TABLE IF NOT EXISTS posts (",
		"    id UUID PRIMARY KEY,",
		"    author_id UUID NOT NULL REFERENCES users(id),",
		"    title VARCHAR(255) NOT NULL,",
		"    content TEXT NOT NULL,",
		"    excerpt TEXT,",
		"    category VARCHAR(100),",
		"    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),",
		"    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()",
		")",
	}, "\n"),
	strings.Join([]string{
		"CREATE TABLE IF NOT EXISTS comments (",
		"    id UUID PRIMARY KEY,",
		"    post_id UUID NOT NULL REFERENCES posts(id),",
		"    author_id UUID NOT NULL REFERENCES users(id),",
		"    content TEXT NOT NULL,",
		"    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),",
		"    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()",
		")",
	}, "\n"),
	"CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id)",
	"CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id)",
	"CREATE INDEX IF NOT EXISTS idx_comments_author_id ON comments(author_id)",
}

// EnsureSchema creates the tables and indexes on startup if they do not
// exist yet. Referential actions are deliberately NO ACTION: deletes are
// ordered explicitly inside application transactions.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database: pool not initialised")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("database: ensure schema: %w", err)
		}
	}

	return nil
}
