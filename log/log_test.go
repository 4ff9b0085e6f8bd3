package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForComponent(t *testing.T) {
	// Loggers are usually constructed at package init, before the application picks a handler.
	sut := ForComponent("sut").With(slog.String("early", "yes"))

	t.Run("Discards without a handler", func(t *testing.T) {
		sink.h.Store(nil)

		require.False(t, sut.Enabled(t.Context(), slog.LevelError))
		sut.Error("nobody is listening")
	})

	t.Run("Forwards to the installed handler", func(t *testing.T) {
		var buf bytes.Buffer
		To(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		t.Cleanup(func() { sink.h.Store(nil) })

		sut.WithGroup("g").With(Error(errors.New("boom")), Topic("a/b")).Info("hello")

		out := buf.String()
		assert.Contains(t, out, `"component":"sut"`)
		assert.Contains(t, out, `"early":"yes"`)
		assert.Contains(t, out, `"g":{"error":"boom","topic":"a/b"}`)
	})
}

func TestForEntity(t *testing.T) {
	var buf bytes.Buffer
	To(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { sink.h.Store(nil) })

	ForEntity("sensor", "livingroom_temperature").Info("published")

	assert.Contains(t, buf.String(), `"entity":"livingroom_temperature"`)
}
