package commands

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// ZapLogger implements ads.Logger on top of a zap logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewLogger returns a development logger writing to stderr when verbose is
// set, and a no-op logger otherwise.
func NewLogger(verbose bool) (*ZapLogger, error) {
	if !verbose {
		return &ZapLogger{logger: zap.NewNop()}, nil
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &ZapLogger{logger: logger}, nil
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

var _ ads.Logger = (*ZapLogger)(nil)

// Debug implements ads.Logger.
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

// Info implements ads.Logger.
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

// Warn implements ads.Logger.
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

// Error implements ads.Logger.
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}

	return zapFields
}
