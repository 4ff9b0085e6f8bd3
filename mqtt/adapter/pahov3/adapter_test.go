package pahov3

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/haentity/mqtt"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func doneToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)

	return t
}

func pendingToken() *fakeToken {
	return &fakeToken{done: make(chan struct{})}
}

func (t *fakeToken) Wait() bool {
	<-t.done
	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} {
	return t.done
}

func (t *fakeToken) Error() error {
	return t.err
}

type fakeMessage struct {
	pahomqtt.Message

	topic   string
	payload []byte
}

func (m fakeMessage) Topic() string   { return m.topic }
func (m fakeMessage) Payload() []byte { return m.payload }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient implements the parts of pahomqtt.Client the adapter uses. Anything else panics.
type fakeClient struct {
	pahomqtt.Client

	mu           sync.Mutex
	published    []published
	filters      map[string]byte
	handlers     map[string]pahomqtt.MessageHandler
	unsubscribed []string
	token        pahomqtt.Token
	quiesce      uint
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		filters:  map[string]byte{},
		handlers: map[string]pahomqtt.MessageHandler{},
	}
}

func (c *fakeClient) next() pahomqtt.Token {
	if c.token != nil {
		return c.token
	}

	return doneToken(nil)
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload any) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.published = append(c.published, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	return c.next()
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback pahomqtt.MessageHandler) pahomqtt.Token {
	return c.SubscribeMultiple(map[string]byte{topic: qos}, callback)
}

func (c *fakeClient) SubscribeMultiple(filters map[string]byte, callback pahomqtt.MessageHandler) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	for topic, qos := range filters {
		c.filters[topic] = qos
		c.handlers[topic] = callback
	}

	return c.next()
}

func (c *fakeClient) Unsubscribe(topics ...string) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, topic := range topics {
		delete(c.filters, topic)
		delete(c.handlers, topic)
	}
	c.unsubscribed = append(c.unsubscribed, topics...)

	return c.next()
}

func (c *fakeClient) Disconnect(quiesce uint) {
	c.quiesce = quiesce
}

func (c *fakeClient) deliver(topic string, payload []byte) {
	c.mu.Lock()
	h := c.handlers[topic]
	c.mu.Unlock()

	h(c, fakeMessage{topic: topic, payload: payload})
}

func TestOptions(t *testing.T) {
	opts := Options("tcp://broker:1883", "haentity-test", "livingroom/status")

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "broker:1883", opts.Servers[0].Host)
	assert.Equal(t, "haentity-test", opts.ClientID)
	assert.True(t, opts.AutoReconnect)
	assert.True(t, opts.WillEnabled)
	assert.Equal(t, "livingroom/status", opts.WillTopic)
	assert.Equal(t, []byte("offline"), opts.WillPayload)
	assert.Equal(t, byte(1), opts.WillQos)
	assert.True(t, opts.WillRetained)
}

func TestAdapter_WriteTopic(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes", func(t *testing.T) {
		c := newFakeClient()
		sut := New(c)

		require.NoError(t, sut.WriteTopic(ctx, "livingroom/switch/switch/state", mqtt.WriteOptions{QoS: mqtt.QOSAtLeastOnce, Retain: true}, []byte("ON")))
		assert.Equal(t, []published{{topic: "livingroom/switch/switch/state", qos: 1, retained: true, payload: []byte("ON")}}, c.published)
	})

	t.Run("Error", func(t *testing.T) {
		c := newFakeClient()
		c.token = doneToken(errors.New("not connected"))
		sut := New(c)

		require.ErrorContains(t, sut.WriteTopic(ctx, "a", mqtt.WriteOptions{}, nil), "not connected")
	})

	t.Run("Context Canceled", func(t *testing.T) {
		c := newFakeClient()
		c.token = pendingToken()
		sut := New(c)

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		require.ErrorIs(t, sut.WriteTopic(ctx, "a", mqtt.WriteOptions{}, nil), context.Canceled)
	})
}

func TestAdapter_Subscriptions(t *testing.T) {
	ctx := context.Background()
	c := newFakeClient()
	sut := New(c)

	var got []string
	handler := mqtt.HandlerFunc(func(w mqtt.Writer, topic string, payload []byte) {
		assert.Same(t, sut, w)
		got = append(got, topic+"="+string(payload))
	})

	require.NoError(t, sut.Subscribe(ctx, handler,
		mqtt.Subscription{Topic: "livingroom/light/light/onoff/command"},
		mqtt.Subscription{Topic: "homeassistant/status", Options: mqtt.ReadOptions{QoS: mqtt.QOSAtLeastOnce}},
	))
	assert.Equal(t, map[string]byte{
		"livingroom/light/light/onoff/command": 0,
		"homeassistant/status":                 1,
	}, c.filters)

	c.deliver("livingroom/light/light/onoff/command", []byte("ON"))
	c.deliver("homeassistant/status", []byte("online"))
	assert.Equal(t, []string{"livingroom/light/light/onoff/command=ON", "homeassistant/status=online"}, got)

	require.NoError(t, sut.Unsubscribe(ctx, "homeassistant/status"))
	assert.Equal(t, []string{"homeassistant/status"}, c.unsubscribed)

	t.Run("Resubscribe", func(t *testing.T) {
		clear(c.filters)
		clear(c.handlers)

		sut.Resubscribe(ctx)
		assert.Equal(t, map[string]byte{"livingroom/light/light/onoff/command": 0}, c.filters)

		got = nil
		c.deliver("livingroom/light/light/onoff/command", []byte("OFF"))
		assert.Equal(t, []string{"livingroom/light/light/onoff/command=OFF"}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, sut.Subscribe(ctx, handler))
		require.NoError(t, sut.Unsubscribe(ctx))
		assert.Equal(t, []string{"homeassistant/status"}, c.unsubscribed)
	})

	t.Run("Disconnect", func(t *testing.T) {
		require.NoError(t, sut.Disconnect(ctx))
		assert.Equal(t, DisconnectQuiesce, c.quiesce)
	})
}
