// Package logger provides a structured, levelled logger built on log/slog.
//
// The Logger middleware stores a per-request logger tagged with request_id
// in the context; WithCtx hands it back so every line from a handler is
// correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("product created", "id", p.ID)
//	// → time=... level=INFO msg="product created" request_id=9f1c... id=3
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the base logger. Setup replaces it.
var L = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

// Options selects the handler and level for Setup.
type Options struct {
	// Production switches to JSON output at info level.
	Production bool
	// Level overrides the environment default: debug, info, warn or error.
	Level string
	// Extra handlers receive every record alongside stdout (e.g. a MongoSink).
	Extra []slog.Handler
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Setup builds the base logger from opts and installs it as slog's default.
func Setup(opts Options) *slog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	level := slog.LevelDebug
	if opts.Production {
		level = slog.LevelInfo
	}
	if l, ok := parseLevel(opts.Level); ok {
		level = l
	}

	hopts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.Production {
		handler = slog.NewJSONHandler(out, hopts)
	} else {
		handler = slog.NewTextHandler(out, hopts)
	}

	if len(opts.Extra) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{handler}, opts.Extra...)...)
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return L
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

type ctxKey struct{}

// WithCtx returns the request logger stored in ctx, or L when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log in ctx. Called by the Logger middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
