package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/service"
)

func TestAnswerEmbedsDatasetAndQuestion(t *testing.T) {
	repo := NewMockCustomerRepo()
	repo.Upsert(model.Customer{Name: "Asha", Email: "asha@example.com", State: "Gujarat", BusinessExpenses: 182000})

	stub := &StubAI{Reply: "Asha has the highest expenses."}
	svc := &service.QueryService{CustomerRepo: repo, AI: stub}

	reply, err := svc.Answer(context.Background(), "Who spends the most?")

	require.NoError(t, err)
	assert.Equal(t, "Asha has the highest expenses.", reply)

	require.Len(t, stub.Requests, 1)
	messages := stub.Requests[0].Messages
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "customer data")
	assert.Equal(t, "user", messages[1].Role)
	assert.Contains(t, messages[1].Content, "asha@example.com")
	assert.Contains(t, messages[1].Content, "Question: Who spends the most?")
}

func TestAnswerWithEmptyStoreStillQueries(t *testing.T) {
	repo := NewMockCustomerRepo()
	stub := &StubAI{Reply: "There are no customers yet."}
	svc := &service.QueryService{CustomerRepo: repo, AI: stub}

	reply, err := svc.Answer(context.Background(), "How many customers?")

	require.NoError(t, err)
	assert.Equal(t, "There are no customers yet.", reply)

	// the call proceeds with an empty dataset instead of short-circuiting
	require.Len(t, stub.Requests, 1)
	assert.Contains(t, stub.Requests[0].Messages[1].Content, "[]")
}
