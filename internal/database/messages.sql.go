package database

import (
	"context"

	"github.com/google/uuid"
)

const createMessage = `-- name: CreateMessage :one
INSERT INTO messages (
session_id, text, is_user)
VALUES ($1, $2, $3)
RETURNING id, session_id, text, is_user, seq, created_at
`

type CreateMessageParams struct {
	SessionID uuid.UUID
	Text      string
	IsUser    bool
}

func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	row := q.db.QueryRowContext(ctx, createMessage, arg.SessionID, arg.Text, arg.IsUser)
	var i Message
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.Text,
		&i.IsUser,
		&i.Seq,
		&i.CreatedAt,
	)
	return i, err
}

const listMessagesBySession = `-- name: ListMessagesBySession :many
SELECT id, session_id, text, is_user, seq, created_at FROM messages WHERE session_id=$1 ORDER BY seq ASC
`

func (q *Queries) ListMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]Message, error) {
	rows, err := q.db.QueryContext(ctx, listMessagesBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Message
	for rows.Next() {
		var i Message
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.Text,
			&i.IsUser,
			&i.Seq,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
