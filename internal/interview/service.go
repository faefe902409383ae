// Package interview builds interview sessions and drives the
// retrieval-augmented question loop over them.
package interview

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/prepmate/interviewd/internal/chunker"
	"github.com/prepmate/interviewd/internal/database"
	"github.com/prepmate/interviewd/internal/gemini"
	"github.com/prepmate/interviewd/internal/vectorstore"
)

// DefaultUserEmail identifies the shared demo user sessions are created
// under.
const DefaultUserEmail = "testuser@example.com"

const (
	defaultTopK = 3
	// conversationWindow bounds how many persisted turns are replayed
	// into the live prompt. Older turns stay in storage only.
	conversationWindow = 4
)

// Store is the storage collaborator the service needs.
type Store interface {
	GetOrCreateUser(ctx context.Context, email string) (database.User, error)
	CreateSession(ctx context.Context, arg database.CreateSessionParams) (database.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (database.Session, error)
	CreateMessage(ctx context.Context, arg database.CreateMessageParams) (database.Message, error)
	ListMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]database.Message, error)
}

// Embedder turns text into similarity vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// Generator produces one text continuation for role-tagged turns under
// a system instruction.
type Generator interface {
	Generate(ctx context.Context, system string, turns []gemini.Turn) (string, error)
}

// Service owns session creation and the per-turn dialogue loop.
type Service struct {
	store     Store
	embedder  Embedder
	generator Generator

	chunkSize int
	overlap   int
	topK      int
}

// NewService wires the service with default chunking and retrieval
// parameters.
func NewService(store Store, embedder Embedder, generator Generator) *Service {
	return &Service{
		store:     store,
		embedder:  embedder,
		generator: generator,
		chunkSize: chunker.DefaultChunkSize,
		overlap:   chunker.DefaultOverlap,
		topK:      defaultTopK,
	}
}

// WithChunking overrides the chunk window parameters.
func (s *Service) WithChunking(size, overlap int) *Service {
	s.chunkSize = size
	s.overlap = overlap
	return s
}

// CreateSession chunks and embeds both source documents, builds the
// session's vector store, and persists the session under the shared
// default user. The session id is only returned once the index is
// complete; no partial session is ever written.
func (s *Service) CreateSession(ctx context.Context, jobDescriptionText, resumeText string) (database.Session, error) {
	jobDescriptionText = strings.TrimSpace(jobDescriptionText)
	resumeText = strings.TrimSpace(resumeText)
	if jobDescriptionText == "" || resumeText == "" {
		return database.Session{}, fmt.Errorf("%w: job description and resume are both required", ErrMissingInput)
	}

	jobChunks, err := chunker.Split(jobDescriptionText, s.chunkSize, s.overlap)
	if err != nil {
		return database.Session{}, err
	}
	resumeChunks, err := chunker.Split(resumeText, s.chunkSize, s.overlap)
	if err != nil {
		return database.Session{}, err
	}
	texts := append(chunker.Texts(jobChunks), chunker.Texts(resumeChunks)...)

	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return database.Session{}, err
	}

	store, err := vectorstore.New(texts, embeddings)
	if err != nil {
		return database.Session{}, err
	}
	storeJSON, err := json.Marshal(store)
	if err != nil {
		return database.Session{}, fmt.Errorf("interview: encode vector store: %w", err)
	}

	user, err := s.store.GetOrCreateUser(ctx, DefaultUserEmail)
	if err != nil {
		return database.Session{}, fmt.Errorf("interview: storage: %w", err)
	}

	session, err := s.store.CreateSession(ctx, database.CreateSessionParams{
		UserID:             user.ID,
		JobDescriptionText: jobDescriptionText,
		ResumeText:         resumeText,
		VectorStore:        storeJSON,
	})
	if err != nil {
		return database.Session{}, fmt.Errorf("interview: storage: %w", err)
	}
	return session, nil
}

// GetSession loads a session with its full message history.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (database.Session, []database.Message, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return database.Session{}, nil, ErrSessionNotFound
	}
	if err != nil {
		return database.Session{}, nil, fmt.Errorf("interview: storage: %w", err)
	}
	messages, err := s.store.ListMessagesBySession(ctx, sessionID)
	if err != nil {
		return database.Session{}, nil, fmt.Errorf("interview: storage: %w", err)
	}
	return session, messages, nil
}

// NextQuestion advances the dialogue one turn: the candidate's latest
// utterance drives context retrieval, the generator produces the next
// question, and the pair is persisted user-first. On generation failure
// nothing is persisted; the turn is simply lost and may be resent.
func (s *Service) NextQuestion(ctx context.Context, sessionID uuid.UUID, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: empty query", ErrMissingInput)
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("interview: storage: %w", err)
	}

	contexts, err := s.retrieve(ctx, session, query)
	if err != nil {
		return "", err
	}

	history, err := s.store.ListMessagesBySession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("interview: storage: %w", err)
	}

	turns := historyTurns(history, conversationWindow)
	turns = append(turns, gemini.Turn{Role: gemini.RoleUser, Text: contextTurn(contexts)})

	question, err := s.generator.Generate(ctx, systemPrompt, turns)
	if err != nil {
		return "", err
	}

	if _, err := s.store.CreateMessage(ctx, database.CreateMessageParams{
		SessionID: sessionID,
		Text:      query,
		IsUser:    true,
	}); err != nil {
		return "", fmt.Errorf("interview: storage: %w", err)
	}
	if _, err := s.store.CreateMessage(ctx, database.CreateMessageParams{
		SessionID: sessionID,
		Text:      question,
		IsUser:    false,
	}); err != nil {
		return "", fmt.Errorf("interview: storage: %w", err)
	}

	return question, nil
}

// retrieve returns the top-K chunks for the query. An empty index
// yields no context and skips the embedding call entirely, degrading to
// an unconditioned generation request.
func (s *Service) retrieve(ctx context.Context, session database.Session, query string) ([]string, error) {
	store, err := vectorstore.FromJSON(session.VectorStore)
	if err != nil {
		return nil, err
	}
	if store.Len() == 0 {
		return nil, nil
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return store.TopK(queryVec, s.topK), nil
}

// historyTurns maps the most recent window of persisted messages onto
// generation turns.
func historyTurns(messages []database.Message, window int) []gemini.Turn {
	if len(messages) > window {
		messages = messages[len(messages)-window:]
	}
	turns := make([]gemini.Turn, 0, len(messages))
	for _, m := range messages {
		role := gemini.RoleModel
		if m.IsUser {
			role = gemini.RoleUser
		}
		turns = append(turns, gemini.Turn{Role: role, Text: m.Text})
	}
	return turns
}
