package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log lines go. With no File and no Stderr, logging
// is discarded: the terminal UI owns stdout and stderr.
type Options struct {
	File       string
	Level      string
	Debug      bool
	Stderr     bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	sugar     atomic.Pointer[zap.SugaredLogger]
	debugMode atomic.Bool
)

func init() {
	sugar.Store(zap.NewNop().Sugar())
}

// SetupLogging configures logging.
// If neither a file nor stderr is requested, logging is disabled.
// If a file is set, logs go to that file with rotation, and the std log
// package is redirected into it too.
func SetupLogging(opts Options) (cleanup func(), err error) {
	debugMode.Store(opts.Debug)

	var sinks []zapcore.WriteSyncer
	var closers []io.Closer
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		sinks = append(sinks, zapcore.AddSync(lj))
		closers = append(closers, lj)
	}
	if opts.Stderr {
		sinks = append(sinks, zapcore.Lock(os.Stderr))
	}
	if len(sinks) == 0 {
		sugar.Store(zap.NewNop().Sugar())
		return func() {}, nil
	}

	level := parseLevel(opts.Level)
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.NewAtomicLevelAt(level),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	restore := zap.RedirectStdLog(logger)
	sugar.Store(logger.Sugar())

	cleanup = func() {
		_ = logger.Sync()
		restore()
		sugar.Store(zap.NewNop().Sugar())
		for _, c := range closers {
			_ = c.Close()
		}
	}
	return cleanup, nil
}

func parseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func IsDebugMode() bool { return debugMode.Load() }

// Logger exposes the underlying logger for callers that want fields.
func Logger() *zap.SugaredLogger { return sugar.Load() }

func Debug(args ...any)                 { sugar.Load().Debug(args...) }
func Debugf(format string, args ...any) { sugar.Load().Debugf(format, args...) }
func Info(args ...any)                  { sugar.Load().Info(args...) }
func Infof(format string, args ...any)  { sugar.Load().Infof(format, args...) }
func Warnf(format string, args ...any)  { sugar.Load().Warnf(format, args...) }
func Errorf(format string, args ...any) { sugar.Load().Errorf(format, args...) }
