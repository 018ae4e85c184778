package core

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"package-tracker-service/config"
)

// NewLogger writes to a per-run rotated file under cfg.LogsDirectory, or to
// stderr when no directory is configured.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	var writeSyncer zapcore.WriteSyncer
	if cfg.LogsDirectory == "" {
		writeSyncer = zapcore.Lock(os.Stderr)
	} else {
		runTimestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
		logFile := fmt.Sprintf("%v/package-tracker-service-%s.log", cfg.LogsDirectory, runTimestamp)

		writeSyncer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // MB
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	core := zapcore.NewCore(encoder, writeSyncer, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return logger, nil
}
