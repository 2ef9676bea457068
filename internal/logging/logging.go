// Package logging builds the process logger from configuration.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifeboard/internal/config"
)

// New returns a JSON production logger for format "json" and a colored
// console logger otherwise. Unknown levels fall back to info.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	zapCfg := buildConfig(cfg)
	return zapCfg.Build()
}

func buildConfig(cfg config.LoggingConfig) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg
}

// ToFiles returns a logger that writes to the given paths only, for hosts
// that own the terminal. An empty list disables logging.
func ToFiles(cfg config.LoggingConfig, paths ...string) (*zap.Logger, error) {
	if len(paths) == 0 {
		return zap.NewNop(), nil
	}
	zapCfg := buildConfig(cfg)
	zapCfg.OutputPaths = paths
	zapCfg.ErrorOutputPaths = paths
	return zapCfg.Build()
}
