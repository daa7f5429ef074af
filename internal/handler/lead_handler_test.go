package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/ai"
	"github.com/samar-703/Vyapaar/internal/handler"
	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/service"
)

type StubAI struct {
	Reply string
}

func (s *StubAI) Complete(ctx context.Context, req ai.Request) (string, error) {
	return s.Reply, nil
}

type MockLeadRepo struct {
	leads []model.Lead
}

func (m *MockLeadRepo) Create(l *model.Lead) error {
	m.leads = append(m.leads, *l)
	return nil
}

func (m *MockLeadRepo) ListAll() ([]model.Lead, error) {
	return m.leads, nil
}

func (m *MockLeadRepo) UpdateStatus(id, status, notes string) error { return nil }

func newLeadHandler(stub *StubAI) *handler.LeadHandler {
	return &handler.LeadHandler{
		LeadRepo: &MockLeadRepo{leads: []model.Lead{{ID: "1", Username: "ravi_builds", Tweet: "need a crm"}}},
		Outreach: &service.OutreachService{AI: stub},
		Log:      zap.NewNop().Sugar(),
	}
}

func TestGenerateMessageEndpoint(t *testing.T) {
	h := newLeadHandler(&StubAI{Reply: "Hi Ravi!"})

	payload := map[string]any{
		"lead": map[string]any{
			"name":          "Ravi Sharma",
			"username":      "ravi_builds",
			"tweet":         "need a crm",
			"followerCount": 1200,
		},
		"matchedTopics": []string{"crm"},
		"template":      "casual",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-message", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GenerateMessage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Hi Ravi!", resp["message"])
	assert.Equal(t, "success", resp["status"])
}

func TestTwitterMonitorRequiresCredentials(t *testing.T) {
	h := newLeadHandler(&StubAI{})

	req := httptest.NewRequest(http.MethodPost, "/api/twitter-monitor", nil)
	rr := httptest.NewRecorder()
	h.TwitterMonitor(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTwitterMonitorIsNotImplemented(t *testing.T) {
	h := newLeadHandler(&StubAI{})

	req := httptest.NewRequest(http.MethodPost, "/api/twitter-monitor", nil)
	req.Header.Set("X-API-Key", "key")
	req.Header.Set("X-Bearer-Token", "token")
	rr := httptest.NewRecorder()
	h.TwitterMonitor(rr, req)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestListLeads(t *testing.T) {
	h := newLeadHandler(&StubAI{})

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rr := httptest.NewRecorder()
	h.ListLeads(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Leads []model.Lead `json:"leads"`
		Count int          `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "ravi_builds", resp.Leads[0].Username)
}
