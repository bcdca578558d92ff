package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/phytocure"
)

// Ensure LoggingSearcher implements phytocure.Searcher.
var _ phytocure.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   phytocure.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next phytocure.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the lookup.
func (s *LoggingSearcher) Search(ctx context.Context, plantName string) (report *phytocure.Report, err error) {
	defer func(begin time.Time) {
		var compounds, diseases int
		if report != nil {
			compounds = len(report.Compounds)
			diseases = len(report.Diseases)
		}
		s.logger.Info("search",
			"plant", plantName,
			"compounds", compounds,
			"diseases", diseases,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, plantName)
}
