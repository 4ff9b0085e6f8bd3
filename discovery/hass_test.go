package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/haentity/hass"
)

func TestHomeAssistantAvailability(t *testing.T) {
	for _, tt := range []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "Default Prefix", prefix: DefaultPrefix, want: "homeassistant/status"},
		{name: "Custom Prefix", prefix: "custom/", want: "custom/status"},
		{name: "Nested Prefix", prefix: "site/ha", want: "site/ha/status"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HomeAssistantAvailability(tt.prefix).Topic())
		})
	}

	t.Run("Watch", func(t *testing.T) {
		sut := HomeAssistantAvailability(DefaultPrefix)

		_, ok := sut.Get()
		assert.False(t, ok, "should not have a value before first msg")

		var seen []hass.Availability
		sut.Watch(func(a hass.Availability) { seen = append(seen, a) })

		sut.ServeMQTT(nil, "homeassistant/status", []byte("offline"))
		sut.ServeMQTT(nil, "homeassistant/status", []byte("restarting"))
		sut.ServeMQTT(nil, "other/status", []byte("online"))
		sut.ServeMQTT(nil, "homeassistant/status", []byte("online"))

		v, ok := sut.Get()
		require.True(t, ok, "should have a value after first msg")
		assert.Equal(t, hass.Available, v)
		assert.Equal(t, []hass.Availability{hass.Unavailable, hass.Available}, seen)
	})
}
