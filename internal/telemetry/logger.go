package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger opens the diagnostic log at path in append mode. The terminal
// belongs to the game screen, so diagnostics never go to stdout.
// An empty path yields a logger that discards everything.
func NewLogger(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(f).With().
		Timestamp().
		Str("service", serviceName).
		Str("version", serviceVersion).
		Logger()
	return logger, f, nil
}
