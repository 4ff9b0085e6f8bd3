package haentity

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/mqtt"
	"github.com/nlowe/haentity/mqtt/mqtttest"
)

func testBridge(t *testing.T, opts ...BridgeOption) (*Bridge, *mqtttest.Recorder) {
	t.Helper()

	rec := mqtttest.New()
	b, err := NewBridge("livingroom", rec, rec, opts...)
	require.NoError(t, err)

	return b, rec
}

func TestNewBridge(t *testing.T) {
	rec := mqtttest.New()

	t.Run("Empty Node ID", func(t *testing.T) {
		_, err := NewBridge("  ", rec, rec)
		require.ErrorIs(t, err, ErrEmptyNodeID)
	})

	t.Run("No Writer", func(t *testing.T) {
		_, err := NewBridge("node", nil, rec)
		require.ErrorIs(t, err, ErrNoWriter)
	})

	t.Run("Nested Device Metadata", func(t *testing.T) {
		_, err := NewBridge("node", rec, rec, WithDevice(DeviceMetadata{
			"name":  "Living Room",
			"extra": map[string]any{"nested": true},
		}))
		require.ErrorIs(t, err, ErrNestedDeviceMetadata)
		require.ErrorIs(t, err, discovery.ErrNestedValue)
	})

	for name, nested := range map[string]any{
		"Device Metadata": DeviceMetadata{"name": "hub"},
		"Typed Map":       map[string]int{"a": 1},
		"Struct":          struct{ A string }{},
		"Attributes":      discovery.Attributes{"a": "b"},
	} {
		t.Run("Nested "+name, func(t *testing.T) {
			_, err := NewBridge("node", rec, nil, WithDevice(DeviceMetadata{"via": nested}))
			require.ErrorIs(t, err, ErrNestedDeviceMetadata)
		})
	}

	t.Run("Device With Connections", func(t *testing.T) {
		_, err := NewBridge("node", rec, nil, WithDevice(Device{
			Name:        "Hub",
			Connections: []DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}},
		}.Metadata()))
		require.NoError(t, err)
	})

	t.Run("Sanitizes Node ID", func(t *testing.T) {
		b, err := NewBridge("living room.1", rec, nil)
		require.NoError(t, err)
		assert.Equal(t, "living_room_1", b.NodeID())
		assert.Equal(t, discovery.DefaultPrefix, b.DiscoveryPrefix())
	})
}

func TestBridge_Topic(t *testing.T) {
	b, _ := testBridge(t)
	segment := regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)

	for _, tt := range []struct {
		name      string
		kind      TopicType
		component string
		objectID  string
		child     string
		want      string
	}{
		{name: "state", kind: TopicState, component: "sensor", objectID: "temperature", want: "livingroom/sensor/temperature/state"},
		{name: "command", kind: TopicCommand, component: "switch", objectID: "switch", child: "party", want: "livingroom/switch/switch/party/command"},
		{name: "attributes", kind: TopicAttributes, component: "sensor", objectID: "humidity", child: "inside", want: "livingroom/sensor/humidity/inside/attributes"},
		{name: "blank child", kind: TopicState, component: "sensor", objectID: "temperature", child: "   ", want: "livingroom/sensor/temperature/state"},
		{name: "padded child", kind: TopicState, component: "sensor", objectID: "temperature", child: " outside ", want: "livingroom/sensor/temperature/outside/state"},
		{name: "sanitized", kind: TopicState, component: "sensor", objectID: "pm2.5", child: "a/b+#", want: "livingroom/sensor/pm2_5/a_b__/state"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Topic(tt.kind, tt.component, tt.objectID, tt.child)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "//")

			for _, level := range regexp.MustCompile(`/`).Split(got, -1) {
				assert.Regexp(t, segment, level)
			}
		})
	}
}

func TestBridge_ConfigTopic(t *testing.T) {
	b, _ := testBridge(t)

	assert.Equal(t, "homeassistant/binary_sensor/livingroom/lock_upper/config", b.ConfigTopic("binary_sensor", "lock", "upper"))
	assert.Equal(t, "homeassistant/sensor/livingroom/temperature/config", b.ConfigTopic("sensor", "temperature", " "))

	custom, _ := testBridge(t, WithDiscoveryPrefix("/custom/"))
	assert.Equal(t, "custom/sensor/livingroom/temperature/config", custom.ConfigTopic("sensor", "temperature", ""))
}

func TestBridge_UniqueID(t *testing.T) {
	b, _ := testBridge(t)

	assert.Equal(t, "livingroom_temperature", b.UniqueID("temperature", ""))
	assert.Equal(t, "livingroom_upper_lock", b.UniqueID("lock", " upper "))
}

func TestBridge_PublishConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("Envelope", func(t *testing.T) {
		b, rec := testBridge(t,
			WithDevice(Device{Name: "Living Room", Identifiers: []string{"abc"}}.Metadata()),
			WithOrigin(Origin{Name: "test", SoftwareVersion: "1.0"}),
		)

		require.NoError(t, b.PublishConfiguration(ctx, "sensor", "temperature", "", discovery.Document{
			discovery.FieldName: "Temperature",
		}))

		msg, ok := rec.Last("homeassistant/sensor/livingroom/temperature/config")
		require.True(t, ok)
		assert.True(t, msg.Options.Retain)
		assert.JSONEq(t, `{
			"availability_topic": "livingroom/status",
			"unique_id": "livingroom_temperature",
			"device": {"name": "Living Room", "identifiers": ["abc"]},
			"origin": {"name": "test", "sw_version": "1.0"},
			"name": "Temperature"
		}`, string(msg.Payload))
	})

	t.Run("No Device", func(t *testing.T) {
		b, rec := testBridge(t)

		require.NoError(t, b.PublishConfiguration(ctx, "sensor", "temperature", "", nil))

		msg, ok := rec.Last("homeassistant/sensor/livingroom/temperature/config")
		require.True(t, ok)
		assert.JSONEq(t, `{"availability_topic":"livingroom/status","unique_id":"livingroom_temperature"}`, string(msg.Payload))
	})

	t.Run("Entity Fields Win", func(t *testing.T) {
		b, rec := testBridge(t)

		require.NoError(t, b.PublishConfiguration(ctx, "sensor", "temperature", "", discovery.Document{
			discovery.FieldUniqueID: "custom",
		}))

		msg, ok := rec.Last("homeassistant/sensor/livingroom/temperature/config")
		require.True(t, ok)
		assert.Contains(t, string(msg.Payload), `"unique_id":"custom"`)
	})

	t.Run("Strict", func(t *testing.T) {
		b, rec := testBridge(t, WithStrictReservedFields())

		err := b.PublishConfiguration(ctx, "sensor", "temperature", "", discovery.Document{
			discovery.FieldAvailabilityTopic: "elsewhere",
		})
		require.ErrorIs(t, err, ErrReservedField)
		assert.Contains(t, err.Error(), discovery.FieldAvailabilityTopic)
		assert.Empty(t, rec.Messages())
	})

	t.Run("Idempotent", func(t *testing.T) {
		b, rec := testBridge(t, WithDevice(DeviceMetadata{"name": "x", "model": "y", "manufacturer": "z"}))
		doc := discovery.Document{"b": 1, "a": "two", "c": []string{"x"}}

		require.NoError(t, b.PublishConfiguration(ctx, "sensor", "temperature", "", doc))
		require.NoError(t, b.PublishConfiguration(ctx, "sensor", "temperature", "", doc))

		msgs := rec.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, msgs[0].Payload, msgs[1].Payload)
		assert.Equal(t, discovery.Document{"b": 1, "a": "two", "c": []string{"x"}}, doc)
	})

	t.Run("Transport Failure", func(t *testing.T) {
		b, rec := testBridge(t)
		boom := errors.New("boom")
		rec.FailWrites(boom)

		require.ErrorIs(t, b.PublishConfiguration(ctx, "sensor", "temperature", "", nil), boom)
	})
}

func TestBridge_RemoveConfiguration(t *testing.T) {
	b, rec := testBridge(t)

	require.NoError(t, b.RemoveConfiguration(context.Background(), "binary_sensor", "lock", "upper"))

	msg, ok := rec.Last("homeassistant/binary_sensor/livingroom/lock_upper/config")
	require.True(t, ok)
	assert.Empty(t, msg.Payload)
	assert.True(t, msg.Options.Retain)
}

func TestBridge_PublishAvailability(t *testing.T) {
	b, rec := testBridge(t)

	require.NoError(t, b.PublishAvailability(context.Background(), hass.Available))

	msg, ok := rec.Last("livingroom/status")
	require.True(t, ok)
	assert.Equal(t, "online", string(msg.Payload))
	assert.True(t, msg.Options.Retain)

	t.Run("Before The Bridge Exists", func(t *testing.T) {
		assert.Equal(t, b.AvailabilityTopic(), AvailabilityTopic(" livingroom "))
		assert.Equal(t, "living_room/status", AvailabilityTopic("living room"))
	})
}

func TestBridge_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Pass Through", func(t *testing.T) {
		b, rec := testBridge(t)

		var got []string
		h := mqtt.HandlerFunc(func(_ mqtt.Writer, _ string, payload []byte) {
			got = append(got, string(payload))
		})

		require.NoError(t, b.Subscribe(ctx, h, mqtt.Subscription{Topic: "livingroom/switch/switch/command"}))
		assert.Equal(t, 1, rec.Deliver("livingroom/switch/switch/command", []byte("ON")))
		assert.Equal(t, []string{"ON"}, got)

		require.NoError(t, b.Unsubscribe(ctx, "livingroom/switch/switch/command"))
		assert.False(t, rec.Subscribed("livingroom/switch/switch/command"))
	})

	t.Run("No Subscriber", func(t *testing.T) {
		b, err := NewBridge("livingroom", mqtttest.New(), nil)
		require.NoError(t, err)

		require.ErrorIs(t, b.Subscribe(ctx, mqtt.HandlerFunc(func(mqtt.Writer, string, []byte) {})), ErrNoSubscriber)
		require.ErrorIs(t, b.Unsubscribe(ctx, "a"), ErrNoSubscriber)
		assert.Nil(t, b.Subscriber())
	})
}

func TestSanitizePath(t *testing.T) {
	for in, want := range map[string]string{
		"temperature": "temperature",
		"Node-1_a":    "Node-1_a",
		"a b":         "a_b",
		"a/b":         "a_b",
		"pm2.5":       "pm2_5",
		"café":        "caf_",
		"":            "",
	} {
		assert.Equal(t, want, SanitizePath(in), in)
	}
}

type fakeEntity struct {
	err         error
	configured  int
	republished int
}

func (f *fakeEntity) PublishConfiguration(context.Context) error {
	f.configured++
	return f.err
}

func (f *fakeEntity) RepublishState(context.Context) error {
	f.republished++
	return f.err
}

func TestPublishConfigurations(t *testing.T) {
	boom := errors.New("boom")
	a, b, c := &fakeEntity{}, &fakeEntity{err: boom}, &fakeEntity{}

	require.ErrorIs(t, PublishConfigurations(context.Background(), a, b, c), boom)
	require.ErrorIs(t, RepublishStates(context.Background(), a, b, c), boom)

	for _, e := range []*fakeEntity{a, b, c} {
		assert.Equal(t, 1, e.configured)
		assert.Equal(t, 1, e.republished)
	}

	require.NoError(t, PublishConfigurations(context.Background()))
}
