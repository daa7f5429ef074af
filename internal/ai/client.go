package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
)

// groqBaseURL is the OpenAI-compatible endpoint Groq exposes.
const groqBaseURL = "https://api.groq.com/openai/v1"

// Message is one chat turn, in the role/content shape the HTTP surface relays.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries a completion call's messages and optional sampling knobs.
type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// CompletionClient is what the services depend on; tests swap in a stub.
type CompletionClient interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// GroqClient calls Groq's chat completion API.
type GroqClient struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewGroqClient builds the client. An empty key is tolerated here; each
// Complete call reports the missing credential so the caller can surface it
// per request instead of the process refusing to start.
func NewGroqClient(apiKey, model string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL

	return &GroqClient{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Complete submits the messages and returns the first choice's content verbatim.
func (c *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", appErrors.NewMissingCredential("GROQ_API_KEY")
	}

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ CompletionClient = (*GroqClient)(nil)
