package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/controller"
	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/service"
)

type StubMailer struct {
	Sent    []string
	FailAll bool
}

func (m *StubMailer) Send(ctx context.Context, to, subject, html string) error {
	if m.FailAll {
		return fmt.Errorf("mock sending failed")
	}
	m.Sent = append(m.Sent, to)
	return nil
}

func newCampaignController(repo *MockCustomerRepo, stub *StubAI, mail *StubMailer) *controller.CampaignController {
	log := zap.NewNop().Sugar()
	return &controller.CampaignController{
		CampaignService: &service.CampaignService{
			CustomerRepo: repo,
			AI:           stub,
			Mailer:       mail,
			Log:          log,
		},
		Log: log,
	}
}

func craftEmail(t *testing.T, c *controller.CampaignController, product, region string, previewOnly bool) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]any{
		"product":     product,
		"region":      region,
		"previewOnly": previewOnly,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/craft-email", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	c.CraftEmail(rr, req)
	return rr
}

func gujaratCustomers() *MockCustomerRepo {
	repo := NewMockCustomerRepo()
	repo.Upsert(model.Customer{Name: "Asha", Email: "asha@example.com", State: "Gujarat", BusinessExpenses: 1})
	return repo
}

func TestCraftEmailNoRecipientsReturns404(t *testing.T) {
	c := newCampaignController(gujaratCustomers(), &StubAI{Reply: "copy"}, &StubMailer{})

	rr := craftEmail(t, c, "Widgets", "Punjab", true)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "No customers found in Punjab", resp["error"])
}

func TestCraftEmailPreview(t *testing.T) {
	mail := &StubMailer{}
	c := newCampaignController(gujaratCustomers(), &StubAI{Reply: "Generated copy"}, mail)

	rr := craftEmail(t, c, "Widgets", "gujarat", true)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Generated copy", resp["emailContent"])
	assert.Equal(t, float64(1), resp["recipientCount"])
	assert.Empty(t, mail.Sent)
}

func TestCraftEmailDispatch(t *testing.T) {
	mail := &StubMailer{}
	c := newCampaignController(gujaratCustomers(), &StubAI{Reply: "copy"}, mail)

	rr := craftEmail(t, c, "Widgets", "Gujarat", false)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Emails sent successfully", resp["message"])
	assert.Equal(t, float64(1), resp["recipientCount"])
	assert.Equal(t, float64(0), resp["failedCount"])
	assert.Equal(t, float64(1), resp["totalAttempted"])
	assert.Equal(t, []string{"asha@example.com"}, mail.Sent)
}

func TestCraftEmailAllFailedReturns500(t *testing.T) {
	c := newCampaignController(gujaratCustomers(), &StubAI{Reply: "copy"}, &StubMailer{FailAll: true})

	rr := craftEmail(t, c, "Widgets", "Gujarat", false)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send any emails", resp["error"])
}

func TestCraftEmailMissingCredential(t *testing.T) {
	stub := &StubAI{Err: appErrors.NewMissingCredential("GROQ_API_KEY")}
	c := newCampaignController(gujaratCustomers(), stub, &StubMailer{})

	rr := craftEmail(t, c, "Widgets", "Gujarat", true)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "GROQ_API_KEY is not set", resp["error"])
}
