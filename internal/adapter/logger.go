package adapter

import (
	"go.uber.org/zap"

	"github.com/ology/basswalk/internal/domain"
)

// NewLogger builds the engine's logger. Verbose mode gets a development
// zap logger at debug level; otherwise everything is discarded.
func NewLogger(verbose bool) domain.Logger {
	if !verbose {
		return domain.NopLogger()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	logger, err := cfg.Build()
	if err != nil {
		return domain.NopLogger()
	}

	return logger.Sugar()
}
