package noop

import (
	"context"

	"go.uber.org/zap"

	"shgportal/internal/port"
)

type noopSender struct {
	log *zap.Logger
}

// NewNoopSender creates an EmailSender that only logs the report link.
func NewNoopSender(log *zap.Logger) port.EmailSender {
	return &noopSender{log: log}
}

func (s *noopSender) SendReportLink(_ context.Context, toEmail, toName, reportName, downloadURL string) error {
	s.log.Info("noop email: report link",
		zap.String("to", toEmail),
		zap.String("name", toName),
		zap.String("report", reportName),
		zap.String("url", downloadURL),
	)
	return nil
}
