package logging

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger returns a JSON production logger, or a console development
// logger when env is "dev" or "development".
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}
	return cfg.Build()
}
