package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level   string
	Service string
	Version string
}

// ParseLevel maps a configured level name onto zap, falling back to info.
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// New builds the service logger. Records go as JSON to file and stderr; the returned
// AtomicLevel lets the caller change verbosity at runtime.
func New(opts Options, file zapcore.WriteSyncer) (*zap.Logger, zap.AtomicLevel) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level := zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.NewMultiWriteSyncer(
		file, zapcore.Lock(os.Stderr)), level)

	fields := []zap.Field{zap.String("service.name", opts.Service)}
	if opts.Version != "" {
		fields = append(fields, zap.String("service.version", opts.Version))
	}
	return zap.New(core, zap.AddCaller()).With(fields...), level
}

// ReopenOnSignal reopens file every time a value arrives on signals, until ctx is done.
func ReopenOnSignal(ctx context.Context, file *ReopenableFile, signals <-chan os.Signal, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			logger.Info("receive logrotate SIGHUP, reloading log file")
			if err := file.Reopen(); err != nil {
				logger.Error("failed to reload log file", zap.Error(err))
			} else {
				logger.Info("successfully reloaded log file")
			}
		}
	}
}
