package report

import (
	"context"
	"log/slog"

	"github.com/jmgilman/go/safecall"
)

// Slog is a Reporter that logs unexpected failures through a structured logger.
// Failures that carry a status code are logged with it so operators can group
// alerts by code.
type Slog struct {
	logger *slog.Logger
}

// Compile-time guarantee that *Slog implements safecall.Reporter.
var _ safecall.Reporter = (*Slog)(nil)

// NewSlog creates a logging sink. A nil logger falls back to slog.Default().
//
// Example:
//
//	logger := slog.New(tint.NewHandler(os.Stderr, nil))
//	sink := report.NewSlog(logger)
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}

	return &Slog{logger: logger}
}

// Report logs the failure at error level.
func (s *Slog) Report(ctx context.Context, err error) {
	attrs := []slog.Attr{
		slog.Any("error", err),
	}
	if code, ok := safecall.StatusFromError(err); ok {
		attrs = append(attrs, slog.Int("status", code))
	}

	s.logger.LogAttrs(ctx, slog.LevelError, "unexpected failure", attrs...)
}
