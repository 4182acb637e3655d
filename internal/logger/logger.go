// Package logger builds the service's zerolog root logger and bridges it to
// log/slog for packages that take the standard handler interface.
package logger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level     string
	Console   bool
	Component string
}

type requestIDKey struct{}
type componentKey struct{}

// WithRequestID stamps a request id onto the context. Every log line emitted
// under the returned context carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewID()
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stamped onto ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithComponent tags the context with the subsystem emitting under it.
func WithComponent(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, componentKey{}, name)
}

// Component returns the component tag on ctx, or "".
func Component(ctx context.Context) string {
	name, _ := ctx.Value(componentKey{}).(string)
	return name
}

// NewID returns a short random hex id, used for requests and stored
// documents alike.
func NewID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Build constructs the root logger and sets the process-wide level. An
// unparseable level falls back to info.
func Build(cfg Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	zc := zerolog.New(out).With().Timestamp()
	if cfg.Component != "" {
		zc = zc.Str("component", cfg.Component)
	}
	return zc.Logger()
}
