package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/phytocure"
)

// Ensure LoggingCompoundSource implements phytocure.CompoundSource.
var _ phytocure.CompoundSource = (*LoggingCompoundSource)(nil)

// LoggingCompoundSource wraps a CompoundSource with logging.
type LoggingCompoundSource struct {
	next   phytocure.CompoundSource
	logger *slog.Logger
}

// NewLoggingCompoundSource creates a new LoggingCompoundSource.
func NewLoggingCompoundSource(next phytocure.CompoundSource, logger *slog.Logger) *LoggingCompoundSource {
	return &LoggingCompoundSource{next: next, logger: logger}
}

// FetchCompounds delegates to the wrapped source and logs the lookup.
// Failures are logged at warn level.
func (s *LoggingCompoundSource) FetchCompounds(ctx context.Context, plantName string) (compounds []*phytocure.Compound, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "fetch compounds",
			"plant", plantName,
			"count", len(compounds),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchCompounds(ctx, plantName)
}

// Ensure LoggingUsageSource implements phytocure.UsageSource.
var _ phytocure.UsageSource = (*LoggingUsageSource)(nil)

// LoggingUsageSource wraps a UsageSource with logging. Usage failures are
// discarded downstream, so this is the only place they are recorded.
type LoggingUsageSource struct {
	next   phytocure.UsageSource
	logger *slog.Logger
}

// NewLoggingUsageSource creates a new LoggingUsageSource.
func NewLoggingUsageSource(next phytocure.UsageSource, logger *slog.Logger) *LoggingUsageSource {
	return &LoggingUsageSource{next: next, logger: logger}
}

// FetchUsage delegates to the wrapped source and logs the lookup.
// Failures are logged at debug level.
func (s *LoggingUsageSource) FetchUsage(ctx context.Context, plantName string) (usage *phytocure.Usage, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "fetch usage",
			"plant", plantName,
			"fields", len(usage.Fields()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchUsage(ctx, plantName)
}
