package database

import (
	"context"

	"github.com/google/uuid"
)

const createAnalysisReport = `-- name: CreateAnalysisReport :exec
INSERT INTO analysis_reports (
session_id, pace, clarity_score, sentiment, qualitative_feedback)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (session_id)
DO NOTHING
`

type CreateAnalysisReportParams struct {
	SessionID           uuid.UUID
	Pace                int32
	ClarityScore        int32
	Sentiment           string
	QualitativeFeedback string
}

// CreateAnalysisReport writes at most one report per session; a
// concurrent duplicate analysis run becomes a no-op on conflict.
func (q *Queries) CreateAnalysisReport(ctx context.Context, arg CreateAnalysisReportParams) error {
	_, err := q.db.ExecContext(ctx, createAnalysisReport,
		arg.SessionID,
		arg.Pace,
		arg.ClarityScore,
		arg.Sentiment,
		arg.QualitativeFeedback,
	)
	return err
}

const getAnalysisReportBySession = `-- name: GetAnalysisReportBySession :one
SELECT id, session_id, pace, clarity_score, sentiment, qualitative_feedback, created_at FROM analysis_reports WHERE session_id=$1
`

func (q *Queries) GetAnalysisReportBySession(ctx context.Context, sessionID uuid.UUID) (AnalysisReport, error) {
	row := q.db.QueryRowContext(ctx, getAnalysisReportBySession, sessionID)
	var i AnalysisReport
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.Pace,
		&i.ClarityScore,
		&i.Sentiment,
		&i.QualitativeFeedback,
		&i.CreatedAt,
	)
	return i, err
}
