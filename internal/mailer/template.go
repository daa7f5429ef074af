package mailer

import "strings"

// emailTemplate mirrors the fixed campaign email layout: greeting, generated
// body, thank-you footer.
const emailTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333;">Hello, {first_name}!</h1>
  <div style="margin-top: 20px; line-height: 1.6; color: #444;">{content}</div>
  <div style="margin-top: 30px; padding: 20px; background-color: #f5f5f5; border-radius: 5px; text-align: center;">
    <p style="margin: 0; color: #666;">Thank you for being our valued customer!</p>
  </div>
</div>`

// RenderTemplate substitutes each {key} placeholder with its value.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

// RenderCampaignEmail personalizes the fixed template for one recipient.
// An empty name falls back to a generic greeting.
func RenderCampaignEmail(firstName, content string) string {
	if firstName == "" {
		firstName = "Valued Customer"
	}
	return RenderTemplate(emailTemplate, map[string]string{
		"first_name": firstName,
		"content":    content,
	})
}
