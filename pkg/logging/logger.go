package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnvVar overrides the configured level when set.
const LevelEnvVar = "FACET_LOG_LEVEL"

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	// LevelOff disables output entirely.
	LevelOff Level = "off"
)

// Component names used for scoped loggers.
const (
	ComponentImageCache = "imagecache"
	ComponentIcons      = "icons"
	ComponentRender     = "render"
	ComponentGraphical  = "graphical"
	ComponentConfig     = "config"
	ComponentCLI        = "cli"
)

// Config controls logger construction.
type Config struct {
	Level       Level    `yaml:"level"`
	Encoding    string   `yaml:"encoding"` // console or json
	OutputPaths []string `yaml:"output_paths"`
}

// Logger is a structured logger scoped to a facet component.
type Logger struct {
	*zap.Logger
}

// New builds a logger from cfg. An empty or "off" level yields a no-op
// logger so library users and the CLI stay silent by default.
func New(cfg Config) (*Logger, error) {
	level := cfg.Level
	if env := os.Getenv(LevelEnvVar); env != "" {
		level = Level(strings.ToLower(env))
	}
	if level == "" || level == LevelOff {
		return Nop(), nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if encoding == "console" {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	base, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{Logger: base.With(zap.String("system", "facet"))}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Wrap adopts an existing zap logger, e.g. zaptest.NewLogger in tests.
func Wrap(l *zap.Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{Logger: l}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil || l.Logger == nil {
		return Nop()
	}
	return l
}

// With returns a logger tagged with the component name.
func (l *Logger) With(component string) *Logger {
	return &Logger{Logger: l.Logger.With(zap.String("component", component))}
}

// WithSession returns a logger carrying the render session id.
func (l *Logger) WithSession(sessionID string) *Logger {
	if sessionID == "" {
		return l
	}
	return &Logger{Logger: l.Logger.With(zap.String("session_id", sessionID))}
}

// WithBackend returns a logger carrying the active backend name.
func (l *Logger) WithBackend(name string) *Logger {
	return &Logger{Logger: l.Logger.With(zap.String("backend", name))}
}

func parseLevel(level Level) (zapcore.Level, error) {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel, nil
	case LevelInfo:
		return zapcore.InfoLevel, nil
	case LevelWarn:
		return zapcore.WarnLevel, nil
	case LevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// ValidLevel reports whether level is accepted by New.
func ValidLevel(level Level) bool {
	if level == "" || level == LevelOff {
		return true
	}
	_, err := parseLevel(level)
	return err == nil
}
