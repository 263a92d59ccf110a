package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger writes human readable logs to w and, when a log file is
// configured, JSON logs to a rotating file. cleanup flushes the logger and
// releases the file.
func newLogger(opts *cliOptions, w io.Writer) (logger *zap.Logger, cleanup func()) {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(w), opts.level)
	if opts.LogFile == "" {
		logger = zap.New(consoleCore)
		return logger, func() { _ = logger.Sync() }
	}

	rotationLog := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    opts.LogFileMaxSize,
		MaxBackups: opts.LogFileMaxBackups,
		MaxAge:     opts.LogFileMaxAge,
	}
	rotationCore := zapcore.NewCore(zapcore.NewJSONEncoder(config), zapcore.AddSync(rotationLog), opts.level)

	logger = zap.New(zapcore.NewTee(consoleCore, rotationCore))
	return logger, func() {
		_ = logger.Sync()
		_ = rotationLog.Close()
	}
}
