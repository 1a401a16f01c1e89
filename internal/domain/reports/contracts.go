package reports

import (
	"context"
	"time"
)

// Export is a rendered report file
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ReportService defines the reporting use cases
type ReportService interface {
	OwnerReport(ctx context.Context, ownerID string, from, to time.Time) (*OwnerReport, error)
	// Export renders the report in a pdf, xlsx or csv format
	Export(ctx context.Context, report *OwnerReport, format string) (*Export, error)
	// SendToOwner emails the PDF report to the owner
	SendToOwner(ctx context.Context, ownerID string, from, to time.Time) error
}

// StatisticsService defines the dashboard use cases
type StatisticsService interface {
	// Statistics returns the cached dashboard summary of the window
	Statistics(ctx context.Context, from, to time.Time) (*Statistics, error)
	// Invalidate drops every cached summary
	Invalidate(ctx context.Context)
}

// Renderer renders owner reports to files
type Renderer interface {
	RenderPDF(report *OwnerReport) ([]byte, error)
	RenderXLSX(report *OwnerReport) ([]byte, error)
	RenderCSV(report *OwnerReport) ([]byte, error)
}
