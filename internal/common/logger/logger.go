// internal/common/logger/logger.go
package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the minimal structured logging surface the workers use.
// Field maps keep handler code free of zap types.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger
}

// New builds the process-wide zap logger. Unknown levels fall back to
// info rather than failing startup.
func New(levelStr, format string) *zap.Logger {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, _ := cfg.Build()
	return l
}

// sugared implements Logger on zap's sugared API, which takes the
// alternating key/value form the field maps flatten into.
type sugared struct {
	s *zap.SugaredLogger
}

// NewZapAdapter exposes an existing zap logger through the Logger interface.
func NewZapAdapter(l *zap.Logger) Logger {
	return &sugared{s: l.Sugar()}
}

// NewTestLogger routes log output through the test's t.Log.
func NewTestLogger(t testing.TB) Logger {
	return &sugared{s: zaptest.NewLogger(t).Sugar()}
}

func (l *sugared) Debug(msg string, fields map[string]interface{}) {
	l.s.Debugw(msg, flatten(fields)...)
}

func (l *sugared) Info(msg string, fields map[string]interface{}) {
	l.s.Infow(msg, flatten(fields)...)
}

func (l *sugared) Warn(msg string, fields map[string]interface{}) {
	l.s.Warnw(msg, flatten(fields)...)
}

func (l *sugared) Error(msg string, fields map[string]interface{}) {
	l.s.Errorw(msg, flatten(fields)...)
}

func (l *sugared) WithFields(fields map[string]interface{}) Logger {
	return &sugared{s: l.s.With(flatten(fields)...)}
}

func (l *sugared) WithError(err error) Logger {
	return &sugared{s: l.s.With("error", err)}
}

func flatten(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	out := make([]interface{}, 0, 2*len(fields))
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
