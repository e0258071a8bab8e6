package exec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zoobzio/relq/config"
)

// NewLogger builds a zap logger for a config log level: a development
// logger for "dev" and a production logger for "prod".
func NewLogger(level string) (*zap.Logger, error) {
	switch level {
	case config.LogLevelDev:
		return zap.NewDevelopmentConfig().Build()
	case config.LogLevelProd:
		return zap.NewProductionConfig().Build()
	default:
		return nil, fmt.Errorf("log level should be either %q or %q", config.LogLevelDev, config.LogLevelProd)
	}
}
