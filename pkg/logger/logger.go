package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide logger. GIN_MODE=release implies production
// encoding; anything else gets the development console encoder.
func New(release bool) (*zap.Logger, error) {
	if release {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
