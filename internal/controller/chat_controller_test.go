package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/ai"
	"github.com/samar-703/Vyapaar/internal/controller"
	appErrors "github.com/samar-703/Vyapaar/internal/errors"
)

func postChat(t *testing.T, c *controller.ChatController, messages []ai.Message) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"messages": messages})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	c.Chat(rr, req)
	return rr
}

func TestChatRelaysReply(t *testing.T) {
	c := &controller.ChatController{AI: &StubAI{Reply: "Hello there"}, Log: zap.NewNop().Sugar()}

	rr := postChat(t, c, []ai.Message{{Role: "user", Content: "Hi"}})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Hello there", resp["reply"])
}

func TestChatMissingCredentialReturns500(t *testing.T) {
	stub := &StubAI{Err: appErrors.NewMissingCredential("GROQ_API_KEY")}
	c := &controller.ChatController{AI: stub, Log: zap.NewNop().Sugar()}

	rr := postChat(t, c, []ai.Message{{Role: "user", Content: "Hi"}})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "GROQ_API_KEY is not set", resp["error"])
}
