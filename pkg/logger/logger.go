package logger

import (
	"fmt"

	"github.com/helapesa/helapesa/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process-wide zap logger from the configured level
// and installs it via zap.ReplaceGlobals, so packages log through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	zapConf := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05 02-01-2006"),
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapConf.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	zap.ReplaceGlobals(logger)

	return nil
}
