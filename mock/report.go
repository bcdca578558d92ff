package mock

import (
	"context"

	"github.com/fwojciec/phytocure"
)

var _ phytocure.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of phytocure.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, r *phytocure.Report, format, content string) (string, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, r *phytocure.Report, format, content string) (string, error) {
	return w.WriteReportFn(ctx, r, format, content)
}
