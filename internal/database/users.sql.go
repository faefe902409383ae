package database

import (
	"context"
)

const getOrCreateUser = `-- name: GetOrCreateUser :one
INSERT INTO users (email)
VALUES ($1)
ON CONFLICT (email)
DO UPDATE SET email = EXCLUDED.email
RETURNING id, email, created_at
`

// GetOrCreateUser is an idempotent find-or-create keyed by the unique
// email constraint, so concurrent callers cannot race a read-then-write.
func (q *Queries) GetOrCreateUser(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getOrCreateUser, email)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.CreatedAt)
	return i, err
}
