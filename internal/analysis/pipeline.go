package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepmate/interviewd/internal/database"
)

// Store is the storage collaborator the pipeline needs.
type Store interface {
	ListMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]database.Message, error)
	CreateAnalysisReport(ctx context.Context, arg database.CreateAnalysisReportParams) error
}

// Generator produces the qualitative half of the report from a single
// prompt.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Pipeline computes and persists one analysis report per session.
type Pipeline struct {
	store     Store
	generator Generator
}

func NewPipeline(store Store, generator Generator) *Pipeline {
	return &Pipeline{store: store, generator: generator}
}

// Run analyzes a finished session and writes its report. A session with
// no messages produces no report. Report creation is idempotent in
// effect: the storage layer keeps at most one row per session, so a
// duplicate run is a no-op.
func (p *Pipeline) Run(ctx context.Context, sessionID uuid.UUID) error {
	messages, err := p.store.ListMessagesBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("analysis: load messages: %w", err)
	}
	if len(messages) == 0 {
		return fmt.Errorf("analysis: no messages in session %s to analyze", sessionID)
	}

	metrics := ComputeMetrics(messages)

	sentiment, feedback := DefaultSentiment, NoResponsesFeedback
	if hasUserMessages(messages) {
		raw, err := p.generator.GenerateText(ctx, FeedbackPrompt(messages))
		if err != nil {
			return fmt.Errorf("analysis: feedback generation: %w", err)
		}
		sentiment, feedback = ParseFeedback(raw)
	}

	err = p.store.CreateAnalysisReport(ctx, database.CreateAnalysisReportParams{
		SessionID:           sessionID,
		Pace:                int32(metrics.Pace),
		ClarityScore:        int32(metrics.ClarityScore),
		Sentiment:           sentiment,
		QualitativeFeedback: feedback,
	})
	if err != nil {
		return fmt.Errorf("analysis: persist report: %w", err)
	}
	return nil
}

func hasUserMessages(messages []database.Message) bool {
	for _, m := range messages {
		if m.IsUser {
			return true
		}
	}
	return false
}
