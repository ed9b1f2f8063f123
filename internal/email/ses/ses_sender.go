package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"shgportal/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(ctx context.Context, region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendReportLink(ctx context.Context, toEmail, toName, reportName, downloadURL string) error {
	subject := fmt.Sprintf("Your report is ready: %s", reportName)
	htmlBody := buildReportHTML(toName, reportName, downloadURL)
	textBody := buildReportText(toName, reportName, downloadURL)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReportText(name, reportName, downloadURL string) string {
	return fmt.Sprintf("Hi %s,\n\nYour report %q is ready. Download it here:\n%s\n\nThe link expires after a limited time.\n\nSHG Portal", name, reportName, downloadURL)
}

func buildReportHTML(name, reportName, downloadURL string) string {
	name, reportName, downloadURL = html.EscapeString(name), html.EscapeString(reportName), html.EscapeString(downloadURL)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your report is ready</h2>
  <p>Hi %s,</p>
  <p>The report <strong>%s</strong> has been generated.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #2F5597; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download Report</a>
  </p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">The link expires after a limited time.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">SHG Portal</p>
</body>
</html>`, name, reportName, downloadURL, downloadURL)
}
