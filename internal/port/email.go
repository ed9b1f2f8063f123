package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendReportLink(ctx context.Context, toEmail, toName, reportName, downloadURL string) error
}
