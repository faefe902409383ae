// Package gemini wraps the google.golang.org/genai client behind typed
// embedding and generation operations. Failures surface as
// *EmbeddingError / *GenerationError with the provider detail attached;
// nothing in this package retries.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// DefaultGenerationModel is used for interview questions and
	// transcript feedback.
	DefaultGenerationModel = "gemini-2.5-flash"
	// DefaultEmbeddingModel produces the session index vectors.
	DefaultEmbeddingModel = "gemini-embedding-001"
)

// Roles for conversation turns, matching the Gemini content API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one role-tagged utterance in a generation request.
type Turn struct {
	Role string
	Text string
}

// Client calls the Gemini API for embeddings and text generation.
type Client struct {
	client          *genai.Client
	generationModel string
	embeddingModel  string
}

// NewClient creates a Gemini-backed client using the given API key and
// the default model names.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{
		client:          gc,
		generationModel: DefaultGenerationModel,
		embeddingModel:  DefaultEmbeddingModel,
	}, nil
}

// WithModels overrides the generation and embedding model names. Empty
// values keep the current ones.
func (c *Client) WithModels(generation, embedding string) *Client {
	if generation != "" {
		c.generationModel = generation
	}
	if embedding != "" {
		c.embeddingModel = embedding
	}
	return c
}

// Embed returns one embedding vector per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{{Text: t}},
		}
	}

	result, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, contents, &genai.EmbedContentConfig{})
	if err != nil {
		return nil, &EmbeddingError{Err: err}
	}
	if len(result.Embeddings) != len(texts) {
		return nil, &EmbeddingError{Err: fmt.Errorf("expected %d embeddings, got %d", len(texts), len(result.Embeddings))}
	}

	vectors := make([][]float64, len(result.Embeddings))
	for i, e := range result.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, &EmbeddingError{Err: fmt.Errorf("empty embedding at index %d", i)}
		}
		vec := make([]float64, len(e.Values))
		for j, v := range e.Values {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// EmbedQuery embeds a single ad-hoc query string.
func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// Generate produces one text continuation for an ordered list of
// role-tagged turns under a system instruction.
func (c *Client) Generate(ctx context.Context, system string, turns []Turn) (string, error) {
	contents := make([]*genai.Content, len(turns))
	for i, turn := range turns {
		contents[i] = &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Text}},
		}
	}

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.generationModel, contents, config)
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return firstCandidateText(resp)
}

// GenerateText runs a single-prompt generation with no system
// instruction, used by the transcript analysis pass.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.Generate(ctx, "", []Turn{{Role: RoleUser, Text: prompt}})
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &GenerationError{Err: fmt.Errorf("no candidates returned")}
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", &GenerationError{Err: fmt.Errorf("no parts in response")}
	}
	text := cand.Content.Parts[0].Text
	if text == "" {
		return "", &GenerationError{Err: fmt.Errorf("empty response text")}
	}
	return text, nil
}
