package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rafabene/docgestor-backend/internal/domain/ports"
)

// ZapLogger implementa ports.Logger usando zap
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger cria um novo logger JSON no nível informado
func NewZapLogger(level string) (*ZapLogger, error) {
	logLevel := zapcore.InfoLevel
	if err := logLevel.Set(strings.ToLower(level)); err != nil {
		logLevel = zapcore.InfoLevel
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "time",
			CallerKey:      "caller",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: logger.Sugar()}, nil
}

// NewNopLogger descarta todas as mensagens (útil em testes)
func NewNopLogger() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}

func (l *ZapLogger) With(args ...any) ports.Logger {
	return &ZapLogger{
		logger: l.logger.With(args...),
	}
}

// Sync descarrega buffers pendentes
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
