package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger defines the interface for logging in the verifier.
type Logger interface {
	// Debug logs a message at Debug level.
	Debug(msg string, fields ...zap.Field)
	// Info logs a message at Info level.
	Info(msg string, fields ...zap.Field)
	// Warn logs a message at Warn level.
	Warn(msg string, fields ...zap.Field)
	// Error logs a message at Error level.
	Error(msg string, fields ...zap.Field)
	// Sync flushes any buffered log entries.
	Sync() error
}

type loggerImpl struct {
	zapLogger *zap.Logger
}

var _ Logger = &loggerImpl{}

// NewLogger creates a new logger.
// If fileName is non-empty, it pipes the logs to the given file
// with rotation. Otherwise, logs go to stdout.
func NewLogger(isProduction bool, fileName string, logLevel string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if fileName != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   fileName,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		})

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(config.EncoderConfig),
			fileWriter,
			config.Level,
		)

		return &loggerImpl{zapLogger: zap.New(core)}, nil
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &loggerImpl{zapLogger: zapLogger}, nil
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

func (l *loggerImpl) Sync() error {
	return l.zapLogger.Sync()
}

// NoOpLogger is a logger that does nothing. Useful for tests.
type NoOpLogger struct{}

var _ Logger = &NoOpLogger{}

func (l *NoOpLogger) Debug(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Info(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Warn(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Error(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Sync() error { return nil }
