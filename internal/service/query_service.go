// internal/service/query_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samar-703/Vyapaar/internal/ai"
	"github.com/samar-703/Vyapaar/internal/repository"
)

const querySystemPrompt = "You are a helpful assistant that answers questions about customer data."

// QueryService answers free-form questions grounded on the customer table.
type QueryService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	AI           ai.CompletionClient
}

// Answer serializes the entire record set into the prompt and relays the
// model's reply verbatim. The whole-dataset-in-context behavior is a known
// ceiling on record count and is kept on purpose.
func (s *QueryService) Answer(ctx context.Context, question string) (string, error) {
	customers, err := s.CustomerRepo.ListAll()
	if err != nil {
		return "", fmt.Errorf("failed to load customer data: %w", err)
	}

	data, err := json.MarshalIndent(customers, "", "  ")
	if err != nil {
		return "", err
	}

	return s.AI.Complete(ctx, ai.Request{
		Messages: []ai.Message{
			{Role: "system", Content: querySystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Here is the customer data:\n\n%s\n\nQuestion: %s", data, question)},
		},
	})
}
