package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shgportal/internal/config"
	"shgportal/internal/domain"
	"shgportal/internal/location"
	"shgportal/internal/port"
	"shgportal/internal/reportexport"
)

// ReportFile is a rendered report ready to stream.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PublishedReport describes a report uploaded to object storage.
type PublishedReport struct {
	Key         string    `json:"key"`
	Filename    string    `json:"filename"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	Emailed     bool      `json:"emailed"`
}

// ReportService renders member and summary reports.
type ReportService interface {
	MemberReport(ctx context.Context, actor Actor, path location.Path, format domain.ReportFormat) (*ReportFile, error)
	SummaryReport(ctx context.Context, actor Actor, format domain.ReportFormat) (*ReportFile, error)
	PublishMemberReport(ctx context.Context, actor Actor, path location.Path, recipientName string) (*PublishedReport, error)
}

type reportService struct {
	tree      *location.Tree
	dashboard DashboardService
	storage   port.ObjectStorage
	email     port.EmailSender
	s3Cfg     config.S3Config
	log       *zap.Logger
	now       func() time.Time
}

// NewReportService creates a new ReportService implementation. storage and
// email may be nil, in which case publishing is unavailable.
func NewReportService(
	tree *location.Tree,
	dashboard DashboardService,
	storage port.ObjectStorage,
	email port.EmailSender,
	s3Cfg config.S3Config,
	log *zap.Logger,
) ReportService {
	return &reportService{
		tree:      tree,
		dashboard: dashboard,
		storage:   storage,
		email:     email,
		s3Cfg:     s3Cfg,
		log:       log,
		now:       time.Now,
	}
}

// scopedPath fills the actor's district and block into an open path and
// rejects a path outside the actor's jurisdiction.
func scopedPath(actor Actor, p location.Path) (location.Path, error) {
	if p.District == "" {
		p.District = actor.Scope.District
	}
	if p.Block == "" && p.District == actor.Scope.District {
		p.Block = actor.Scope.Block
	}
	if hasGap(p) {
		return p, domain.ErrSelectionOrder
	}
	if err := actor.authorize(p.District, p.Block); err != nil {
		return p, err
	}
	return p, nil
}

// hasGap reports whether p names a level below one it leaves empty.
func hasGap(p location.Path) bool {
	levels := []string{p.District, p.Block, p.GramPanchayat, p.Village, p.SHG}
	for i := 1; i < len(levels); i++ {
		if levels[i] != "" && levels[i-1] == "" {
			return true
		}
	}
	return false
}

func (s *reportService) render(format domain.ReportFormat, name string, table reportexport.Table, extra ...reportexport.Table) (*ReportFile, error) {
	contentType, ok := domain.ReportContentTypes[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	var buf bytes.Buffer
	if err := reportexport.Write(&buf, format, table, extra...); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return &ReportFile{
		Filename:    reportexport.BuildFilename(name, format, s.now()),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *reportService) MemberReport(_ context.Context, actor Actor, path location.Path, format domain.ReportFormat) (*ReportFile, error) {
	p, err := scopedPath(actor, path)
	if err != nil {
		return nil, err
	}
	return s.render(format, "shg_members",
		reportexport.MemberTable(reportexport.MemberRows(s.tree, p)),
		reportexport.ProductTable(reportexport.ProductRows(s.tree, p)))
}

func (s *reportService) SummaryReport(_ context.Context, actor Actor, format domain.ReportFormat) (*ReportFile, error) {
	title := "District Summary"
	switch {
	case actor.Scope.Block != "":
		title = "Gram Panchayat Summary"
	case actor.Scope.District != "":
		title = "Block Summary"
	}
	return s.render(format, title, reportexport.SummaryTable(title, s.dashboard.Breakdown(actor.Scope)))
}

func (s *reportService) PublishMemberReport(ctx context.Context, actor Actor, path location.Path, recipientName string) (*PublishedReport, error) {
	if s.storage == nil {
		return nil, domain.ErrUploadFailed
	}
	file, err := s.MemberReport(ctx, actor, path, domain.ReportFormatXLSX)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/%s/%d_%s", actor.UserID, s.now().Unix(), file.Filename)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(file.Data),
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	}); err != nil {
		s.log.Error("report upload failed", zap.String("key", key), zap.Error(err))
		return nil, errors.Join(domain.ErrUploadFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, key, s.s3Cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("report.Publish presign: %w", err)
	}

	out := &PublishedReport{
		Key:         key,
		Filename:    file.Filename,
		DownloadURL: url,
		ExpiresAt:   s.now().Add(time.Duration(s.s3Cfg.PresignExpiry) * time.Second),
	}

	// The download link is still returned when email delivery fails.
	if s.email != nil && actor.Email != "" {
		if err := s.email.SendReportLink(ctx, actor.Email, recipientName, file.Filename, url); err != nil {
			s.log.Warn("report email failed", zap.String("to", actor.Email), zap.Error(err))
		} else {
			out.Emailed = true
		}
	}
	return out, nil
}
