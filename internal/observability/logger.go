package observability

import (
	"go.uber.org/zap"
)

// NewLogger builds the application logger: JSON in production, human
// readable console output otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// WithRequestID returns a child logger tagged with the request id.
func WithRequestID(log *zap.Logger, requestID string) *zap.Logger {
	if requestID == "" {
		return log
	}
	return log.With(zap.String("request_id", requestID))
}
