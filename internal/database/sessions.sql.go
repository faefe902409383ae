package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createSession = `-- name: CreateSession :one
INSERT INTO sessions (
user_id, job_description_text, resume_text, vector_store)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, job_description_text, resume_text, vector_store, created_at
`

type CreateSessionParams struct {
	UserID             uuid.UUID
	JobDescriptionText string
	ResumeText         string
	VectorStore        json.RawMessage
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) (Session, error) {
	row := q.db.QueryRowContext(ctx, createSession,
		arg.UserID,
		arg.JobDescriptionText,
		arg.ResumeText,
		arg.VectorStore,
	)
	var i Session
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.JobDescriptionText,
		&i.ResumeText,
		&i.VectorStore,
		&i.CreatedAt,
	)
	return i, err
}

const getSession = `-- name: GetSession :one
SELECT id, user_id, job_description_text, resume_text, vector_store, created_at FROM sessions WHERE id=$1
`

func (q *Queries) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	row := q.db.QueryRowContext(ctx, getSession, id)
	var i Session
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.JobDescriptionText,
		&i.ResumeText,
		&i.VectorStore,
		&i.CreatedAt,
	)
	return i, err
}
