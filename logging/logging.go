package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"rowkit/config"
)

var Logger *zap.SugaredLogger

func init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	Logger = logger.Sugar()
}

// Init replaces Logger according to config.C. Call it after config.Init.
func Init() error {
	level, err := zapcore.ParseLevel(config.C.Logging.Level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	if config.C.IsProduction() || config.C.IsStaging() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = logger.Sugar()
	return nil
}
