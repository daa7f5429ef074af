package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/handler"
	"github.com/samar-703/Vyapaar/internal/model"
)

// MockWaitlistRepo keeps signups in memory.
type MockWaitlistRepo struct {
	entries map[string]*model.WaitlistUser
}

func NewMockWaitlistRepo() *MockWaitlistRepo {
	return &MockWaitlistRepo{entries: map[string]*model.WaitlistUser{}}
}

func (m *MockWaitlistRepo) GetByEmail(email string) (*model.WaitlistUser, error) {
	return m.entries[email], nil
}

func (m *MockWaitlistRepo) Create(email string) (*model.WaitlistUser, error) {
	if _, ok := m.entries[email]; ok {
		return nil, appErrors.NewDuplicateEmail(email)
	}
	u := &model.WaitlistUser{ID: "1", Email: email}
	m.entries[email] = u
	return u, nil
}

func postWaitlist(t *testing.T, h *handler.WaitlistHandler, email string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email})
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Join(rr, req)
	return rr
}

func newWaitlistHandler(repo *MockWaitlistRepo) *handler.WaitlistHandler {
	return &handler.WaitlistHandler{Repo: repo, Log: zap.NewNop().Sugar()}
}

func TestWaitlistAcceptsValidEmail(t *testing.T) {
	h := newWaitlistHandler(NewMockWaitlistRepo())

	rr := postWaitlist(t, h, "a@b.co")

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Email added to waitlist successfully", resp["message"])
}

func TestWaitlistRejectsMalformedEmail(t *testing.T) {
	h := newWaitlistHandler(NewMockWaitlistRepo())

	for _, email := range []string{"not-an-email", "missing@tld", "@nouser.com", "spaces in@mail.com"} {
		rr := postWaitlist(t, h, email)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "email %q should be rejected", email)
	}
}

func TestWaitlistRejectsDuplicate(t *testing.T) {
	h := newWaitlistHandler(NewMockWaitlistRepo())

	first := postWaitlist(t, h, "asha@example.com")
	require.Equal(t, http.StatusCreated, first.Code)

	second := postWaitlist(t, h, "asha@example.com")
	assert.Equal(t, http.StatusBadRequest, second.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "Email already on the waitlist", resp["error"])
}
