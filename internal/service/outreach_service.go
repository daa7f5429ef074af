// internal/service/outreach_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samar-703/Vyapaar/internal/ai"
)

const outreachSystemPrompt = "You are an expert at writing personalized, engaging outreach messages that start meaningful business conversations."

// LeadProfile is the lead detail the caller supplies for message generation.
type LeadProfile struct {
	Name          string `json:"name"`
	Username      string `json:"username"`
	Bio           string `json:"bio"`
	Tweet         string `json:"tweet"`
	FollowerCount int    `json:"followerCount"`
}

// templateStyles maps the requested template to the tone the prompt asks for.
var templateStyles = map[string]string{
	"casual":       "friendly and conversational",
	"professional": "formal and business-focused",
	"direct":       "concise and straightforward",
}

// OutreachService generates a single outreach message for a lead.
type OutreachService struct {
	AI ai.CompletionClient
}

// GenerateMessage builds the outreach prompt and returns the trimmed reply.
// An unknown template falls back to the casual style.
func (s *OutreachService) GenerateMessage(ctx context.Context, lead LeadProfile, matchedTopics []string, template string) (string, error) {
	style, ok := templateStyles[template]
	if !ok {
		style = templateStyles["casual"]
	}

	bio := lead.Bio
	if bio == "" {
		bio = "No bio available"
	}
	topics := strings.Join(matchedTopics, ", ")

	prompt := fmt.Sprintf(`As a business development expert, create a %s outreach message for a potential lead with the following details:

Name: %s
Twitter Username: @%s
Bio: %s
Recent Tweet: "%s"
Topics of Interest: %s
Follower Count: %d

Requirements for the message:
1. Keep it brief and conversational (2-3 sentences)
2. Reference their recent tweet or bio naturally
3. Mention our shared interest in: %s
4. Include a soft call to action (like asking for a quick chat)
5. Match the %s style
6. Don't be overly sales-focused

Generate only the message without any additional formatting or context.`,
		style, lead.Name, lead.Username, bio, lead.Tweet, topics, lead.FollowerCount, topics, style)

	reply, err := s.AI.Complete(ctx, ai.Request{
		Messages: []ai.Message{
			{Role: "system", Content: outreachSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil {
		return "", err
	}

	message := strings.TrimSpace(reply)
	if message == "" {
		return "", fmt.Errorf("no message generated")
	}
	return message, nil
}
