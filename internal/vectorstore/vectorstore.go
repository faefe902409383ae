// Package vectorstore holds the per-session embedding index: an ordered,
// immutable collection of (text, vector) pairs searched by cosine
// similarity.
package vectorstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrLengthMismatch is returned when texts and vectors do not pair up.
	ErrLengthMismatch = errors.New("vectorstore: texts and embeddings length mismatch")
	// ErrDimMismatch is returned when embeddings have uneven dimensionality.
	ErrDimMismatch = errors.New("vectorstore: embedding dimension mismatch")
)

// EmbeddedChunk is one indexed entry. The JSON field names match the
// rows persisted in the session's vector_store column.
type EmbeddedChunk struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// Store is a brute-force vector index. It is built once at session
// creation and never mutated afterwards, so concurrent reads need no
// locking.
type Store struct {
	chunks []EmbeddedChunk
}

// New builds a store from parallel text and embedding slices. All
// embeddings must share one dimensionality.
func New(texts []string, embeddings [][]float64) (*Store, error) {
	if len(texts) != len(embeddings) {
		return nil, fmt.Errorf("%w (%d texts, %d embeddings)", ErrLengthMismatch, len(texts), len(embeddings))
	}
	chunks := make([]EmbeddedChunk, len(texts))
	for i := range texts {
		if len(embeddings[i]) != len(embeddings[0]) {
			return nil, fmt.Errorf("%w (index %d: %d != %d)", ErrDimMismatch, i, len(embeddings[i]), len(embeddings[0]))
		}
		chunks[i] = EmbeddedChunk{Text: texts[i], Embedding: embeddings[i]}
	}
	return &Store{chunks: chunks}, nil
}

// Len reports the number of indexed chunks.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.chunks)
}

// TopK returns the texts of the k chunks most similar to the query
// vector, most similar first. Ties keep insertion order. A nil or empty
// store, or k <= 0, yields an empty result.
func (s *Store) TopK(query []float64, k int) []string {
	if s.Len() == 0 || k <= 0 {
		return nil
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(s.chunks))
	for i, c := range s.chunks {
		scores[i] = scored{idx: i, score: Cosine(query, c.Embedding)}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if k > len(scores) {
		k = len(scores)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = s.chunks[scores[i].idx].Text
	}
	return out
}

// MarshalJSON serializes the store as the flat chunk array stored in
// the database.
func (s *Store) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.chunks)
}

// FromJSON rebuilds a store from its persisted form. Absent or null
// data yields an empty store rather than an error, so retrieval
// degrades to an unconditioned prompt.
func FromJSON(data []byte) (*Store, error) {
	if len(data) == 0 {
		return &Store{}, nil
	}
	var chunks []EmbeddedChunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("vectorstore: decode: %w", err)
	}
	return &Store{chunks: chunks}, nil
}
