// Package log holds the slog sink shared by every haentity package. Nothing is logged until To is called with a
// handler.
package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
	TopicKey     = "topic"
	EntityKey    = "entity"
)

// Error returns a slog.Attr for the provided error. The key will be ErrorKey.
func Error(e error) slog.Attr {
	return slog.Any(ErrorKey, e)
}

// Topic returns a slog.Attr for an MQTT topic. The key will be TopicKey.
func Topic(t string) slog.Attr {
	return slog.String(TopicKey, t)
}

// indirectHandler forwards records to whatever handler was last passed to To. Loggers derived from it with With or
// WithGroup keep forwarding, so a handler installed after construction still receives their records.
type indirectHandler struct {
	h *atomic.Pointer[slog.Handler]

	// derive replays With and WithGroup calls, in order, against the current handler.
	derive []func(slog.Handler) slog.Handler
}

func (i *indirectHandler) current() slog.Handler {
	h := i.h.Load()
	if h == nil {
		return nil
	}

	out := *h
	for _, d := range i.derive {
		out = d(out)
	}

	return out
}

func (i *indirectHandler) with(d func(slog.Handler) slog.Handler) *indirectHandler {
	derive := make([]func(slog.Handler) slog.Handler, 0, len(i.derive)+1)
	derive = append(derive, i.derive...)

	return &indirectHandler{h: i.h, derive: append(derive, d)}
}

func (i *indirectHandler) Enabled(ctx context.Context, level slog.Level) bool {
	h := i.h.Load()
	if h == nil {
		return false
	}

	return (*h).Enabled(ctx, level)
}

func (i *indirectHandler) Handle(ctx context.Context, record slog.Record) error {
	h := i.current()
	if h == nil {
		return nil
	}

	return h.Handle(ctx, record)
}

func (i *indirectHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return i
	}

	return i.with(func(h slog.Handler) slog.Handler {
		return h.WithAttrs(attrs)
	})
}

func (i *indirectHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return i
	}

	return i.with(func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

var _ slog.Handler = &indirectHandler{}

var sink = &indirectHandler{h: &atomic.Pointer[slog.Handler]{}}

// To updates all slog.Logger objects used internally by haentity to write logs to the provided slog.Handler. By
// default, log values will be discarded unless To is called at least once with a non-discarding slog.Handler.
func To(h slog.Handler) {
	sink.h.Store(&h)
}

// ForComponent constructs a slog.Logger for the specified component (which is stored in an attribute with the key
// ComponentKey).
func ForComponent(component string) *slog.Logger {
	return slog.New(sink).With(slog.String(ComponentKey, component))
}

// ForEntity is ForComponent with an additional EntityKey attribute naming a single entity, usually its unique id.
func ForEntity(component, uniqueID string) *slog.Logger {
	return ForComponent(component).With(slog.String(EntityKey, uniqueID))
}
