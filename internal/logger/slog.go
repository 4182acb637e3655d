package logger

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewSlog wraps a zerolog logger in a *slog.Logger. Context request id and
// component tags set via WithRequestID/WithComponent show up as fields on
// every line.
func NewSlog(zl *zerolog.Logger) *slog.Logger {
	return slog.New(slogBridge{zl: *zl})
}

type slogBridge struct {
	zl zerolog.Logger
}

func (b slogBridge) Enabled(_ context.Context, level slog.Level) bool {
	return bridgeLevel(level) >= zerolog.GlobalLevel()
}

func (b slogBridge) Handle(ctx context.Context, rec slog.Record) error {
	zl := b.zl
	if id := RequestID(ctx); id != "" {
		zl = zl.With().Str("request_id", id).Logger()
	}
	if name := Component(ctx); name != "" {
		zl = zl.With().Str("component", name).Logger()
	}

	ev := zl.WithLevel(bridgeLevel(rec.Level))
	rec.Attrs(func(a slog.Attr) bool {
		ev = putAttr(ev, a)
		return true
	})
	ev.Msg(rec.Message)
	return nil
}

func (b slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	zc := b.zl.With()
	for _, a := range attrs {
		zc = zc.Interface(a.Key, a.Value.Resolve().Any())
	}
	return slogBridge{zl: zc.Logger()}
}

// WithGroup flattens groups; nested field names are not worth the
// indirection for this service's log volume.
func (b slogBridge) WithGroup(string) slog.Handler { return b }

// bridgeLevel bands slog levels onto zerolog's four, so in-between custom
// levels round down rather than vanish.
func bridgeLevel(l slog.Level) zerolog.Level {
	switch {
	case l < slog.LevelInfo:
		return zerolog.DebugLevel
	case l < slog.LevelWarn:
		return zerolog.InfoLevel
	case l < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func putAttr(ev *zerolog.Event, a slog.Attr) *zerolog.Event {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return ev.Str(a.Key, v.String())
	case slog.KindInt64:
		return ev.Int64(a.Key, v.Int64())
	case slog.KindUint64:
		return ev.Uint64(a.Key, v.Uint64())
	case slog.KindFloat64:
		return ev.Float64(a.Key, v.Float64())
	case slog.KindBool:
		return ev.Bool(a.Key, v.Bool())
	case slog.KindDuration:
		return ev.Dur(a.Key, v.Duration())
	default:
		return ev.Interface(a.Key, v.Any())
	}
}
