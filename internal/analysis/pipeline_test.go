package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/interviewd/internal/database"
)

type fakeStore struct {
	mu       sync.Mutex
	messages map[uuid.UUID][]database.Message
	reports  map[uuid.UUID]database.AnalysisReport
	listErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		messages: make(map[uuid.UUID][]database.Message),
		reports:  make(map[uuid.UUID]database.AnalysisReport),
	}
}

func (f *fakeStore) ListMessagesBySession(_ context.Context, sessionID uuid.UUID) ([]database.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.messages[sessionID], nil
}

func (f *fakeStore) CreateAnalysisReport(_ context.Context, arg database.CreateAnalysisReportParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// First write wins, like the unique constraint in the schema.
	if _, ok := f.reports[arg.SessionID]; ok {
		return nil
	}
	f.reports[arg.SessionID] = database.AnalysisReport{
		ID:                  uuid.New(),
		SessionID:           arg.SessionID,
		Pace:                arg.Pace,
		ClarityScore:        arg.ClarityScore,
		Sentiment:           arg.Sentiment,
		QualitativeFeedback: arg.QualitativeFeedback,
	}
	return nil
}

func (f *fakeStore) report(sessionID uuid.UUID) (database.AnalysisReport, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[sessionID]
	return r, ok
}

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateText(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	statuses []string
}

func (r *recordingNotifier) Publish(_, status, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *recordingNotifier) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statuses...)
}

func TestPipelineRun_WritesReport(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New()
	store.messages[sessionID] = []database.Message{
		assistantMsg("How did the migration go?"),
		userMsg("um so I think uh went well"),
	}

	gen := &fakeGenerator{response: "Confident###Strong systems background."}
	pipeline := NewPipeline(store, gen)

	require.NoError(t, pipeline.Run(context.Background(), sessionID))

	report, ok := store.report(sessionID)
	require.True(t, ok)
	assert.Equal(t, int32(9), report.Pace)
	assert.Equal(t, int32(0), report.ClarityScore)
	assert.Equal(t, "Confident", report.Sentiment)
	assert.Equal(t, "Strong systems background.", report.QualitativeFeedback)
}

func TestPipelineRun_EmptySession(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New()

	pipeline := NewPipeline(store, &fakeGenerator{response: "x###y"})

	err := pipeline.Run(context.Background(), sessionID)
	require.Error(t, err)
	_, ok := store.report(sessionID)
	assert.False(t, ok, "no report for an empty session")
}

func TestPipelineRun_NoUserMessagesSkipsLLM(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New()
	store.messages[sessionID] = []database.Message{assistantMsg("First question?")}

	gen := &fakeGenerator{response: "never used"}
	pipeline := NewPipeline(store, gen)

	require.NoError(t, pipeline.Run(context.Background(), sessionID))
	assert.Zero(t, gen.calls)

	report, ok := store.report(sessionID)
	require.True(t, ok)
	assert.Equal(t, int32(0), report.Pace)
	assert.Equal(t, int32(100), report.ClarityScore)
	assert.Equal(t, DefaultSentiment, report.Sentiment)
	assert.Equal(t, NoResponsesFeedback, report.QualitativeFeedback)
}

func TestPipelineRun_GenerationFailure(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New()
	store.messages[sessionID] = []database.Message{userMsg("an answer")}

	pipeline := NewPipeline(store, &fakeGenerator{err: errors.New("provider down")})

	err := pipeline.Run(context.Background(), sessionID)
	require.Error(t, err)
	_, ok := store.report(sessionID)
	assert.False(t, ok, "failed run must not write a report")
}

func TestPool_FireAndForget(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New()
	store.messages[sessionID] = []database.Message{userMsg("it went okay I believe")}

	notifier := &recordingNotifier{}
	pool := NewPool(2, NewPipeline(store, &fakeGenerator{response: "Professional###Solid answers."}), notifier)
	defer pool.Close()

	done := pool.Submit(sessionID)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("analysis job did not complete")
	}

	_, ok := store.report(sessionID)
	assert.True(t, ok)
	assert.Equal(t, []string{"processing", "completed"}, notifier.got())
}

func TestPool_FailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New() // no messages: the run fails internally

	notifier := &recordingNotifier{}
	pool := NewPool(1, NewPipeline(store, &fakeGenerator{response: "x###y"}), notifier)
	defer pool.Close()

	done := pool.Submit(sessionID)

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("analysis job did not complete")
	}

	_, ok := store.report(sessionID)
	assert.False(t, ok)
	assert.Equal(t, []string{"processing", "failed"}, notifier.got())
}

func TestPool_SaturatedQueueDoesNotBlock(t *testing.T) {
	store := newFakeStore()
	// No workers, so nothing drains the queue.
	pool := NewPool(0, NewPipeline(store, &fakeGenerator{response: "x###y"}), nil)
	defer pool.Close()

	for i := 0; i < 64; i++ {
		pool.Submit(uuid.New())
	}

	result := make(chan error, 1)
	go func() {
		result <- <-pool.Submit(uuid.New())
	}()

	select {
	case err := <-result:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "queue full")
	case <-time.After(2 * time.Second):
		t.Fatal("submit blocked on a full queue")
	}
}

func TestPool_DuplicateSubmitKeepsFirstReport(t *testing.T) {
	store := newFakeStore()
	sessionID := uuid.New()
	store.messages[sessionID] = []database.Message{userMsg("answer one two three")}

	pool := NewPool(2, NewPipeline(store, &fakeGenerator{response: "Calm###Fine."}), nil)
	defer pool.Close()

	first := pool.Submit(sessionID)
	second := pool.Submit(sessionID)
	require.NoError(t, <-first)
	require.NoError(t, <-second)

	report, ok := store.report(sessionID)
	require.True(t, ok)
	assert.Equal(t, "Calm", report.Sentiment)
}
