// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/samar-703/Vyapaar/internal/ai"
	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/mailer"
	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/queue"
	"github.com/samar-703/Vyapaar/internal/repository"
)

const campaignSystemPrompt = "You are a marketing expert that crafts compelling, personalized email content. Keep the tone professional but friendly."

type CampaignService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	OutboundRepo repository.OutboundEmailRepositoryInterface
	AI           ai.CompletionClient
	Mailer       mailer.Mailer
	Queue        queue.Queue   // optional; failed sends are requeued when set
	Limiter      *rate.Limiter // paces sends to respect the provider's limits
	Log          *zap.SugaredLogger
}

// SendOutcome records one recipient's delivery attempt.
type SendOutcome struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CampaignResult is either a preview (content + matched count) or the
// aggregate of an actual dispatch.
type CampaignResult struct {
	EmailContent   string
	RecipientCount int
	FailedCount    int
	TotalAttempted int
	Results        []SendOutcome
	PreviewOnly    bool
}

// DraftOrSend generates marketing copy for the region's customers and, unless
// previewOnly, dispatches one email per recipient. Sends run sequentially,
// one per second; an individual failure is recorded and the loop continues.
// Only a fully failed dispatch fails the operation.
func (s *CampaignService) DraftOrSend(ctx context.Context, product, region string, previewOnly bool) (*CampaignResult, error) {
	customers, err := s.CustomerRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	recipients := []model.Customer{}
	for _, c := range customers {
		if strings.EqualFold(c.State, region) {
			recipients = append(recipients, c)
		}
	}
	s.Log.Infow("campaign recipients resolved", "region", region, "matched", len(recipients), "total", len(customers))

	if len(recipients) == 0 {
		return nil, appErrors.NewNoRecipients(region)
	}

	content, err := s.AI.Complete(ctx, ai.Request{
		Messages: []ai.Message{
			{Role: "system", Content: campaignSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Create a marketing email for %s targeting customers in %s. Include a compelling subject line and a clear call to action.", product, region)},
		},
	})
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, fmt.Errorf("failed to generate email content")
	}

	if previewOnly {
		return &CampaignResult{
			EmailContent:   content,
			RecipientCount: len(recipients),
			PreviewOnly:    true,
		}, nil
	}

	subject := fmt.Sprintf("Special Offer on %s for %s Customers", product, region)
	results := make([]SendOutcome, 0, len(recipients))
	sent := 0

	for _, c := range recipients {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		html := mailer.RenderCampaignEmail(c.Name, content)
		sendErr := s.Mailer.Send(ctx, c.Email, subject, html)

		outcome := SendOutcome{Email: c.Email, Success: sendErr == nil}
		if sendErr != nil {
			outcome.Error = sendErr.Error()
			s.Log.Warnw("failed to send campaign email", "to", c.Email, "error", sendErr)
		} else {
			sent++
		}
		results = append(results, outcome)

		s.journal(c.Email, subject, html, sendErr)
	}

	if sent == 0 {
		return nil, appErrors.NewAllSendsFailed(len(recipients))
	}

	return &CampaignResult{
		EmailContent:   content,
		RecipientCount: sent,
		FailedCount:    len(recipients) - sent,
		TotalAttempted: len(recipients),
		Results:        results,
	}, nil
}

// journal records the attempt and hands failures to the retry queue. Both
// are best effort; they never change what the request reports.
func (s *CampaignService) journal(recipient, subject, body string, sendErr error) {
	if s.OutboundRepo == nil {
		return
	}

	entry := &model.OutboundEmail{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Status:    "sent",
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.LastError = sendErr.Error()
	}

	if err := s.OutboundRepo.Create(entry); err != nil {
		s.Log.Warnw("failed to journal outbound email", "to", recipient, "error", err)
		return
	}

	if sendErr != nil && s.Queue != nil {
		if err := s.Queue.Publish(queue.EmailRetryQueue, queue.RetryJob{OutboundEmailID: entry.ID}); err != nil {
			s.Log.Warnw("failed to enqueue retry", "outbound_email_id", entry.ID, "error", err)
		}
	}
}
