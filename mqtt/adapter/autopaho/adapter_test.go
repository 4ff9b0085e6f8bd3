package autopaho

import (
	"testing"

	"github.com/eclipse/paho.golang/paho"
	"github.com/stretchr/testify/assert"

	"github.com/nlowe/haentity/mqtt"
)

func TestWill(t *testing.T) {
	will := Will("livingroom/status")

	assert.Equal(t, &paho.WillMessage{
		Topic:   "livingroom/status",
		Payload: []byte("offline"),
		QoS:     1,
		Retain:  true,
	}, will)
}

func TestPublishPacket(t *testing.T) {
	p := publishPacket("livingroom/switch/switch/state", mqtt.WriteOptions{QoS: mqtt.QOSExactlyOnce, Retain: true}, []byte("ON"))

	assert.Equal(t, "livingroom/switch/switch/state", p.Topic)
	assert.Equal(t, byte(2), p.QoS)
	assert.True(t, p.Retain)
	assert.Equal(t, []byte("ON"), p.Payload)
}

func TestSubscribeOptions(t *testing.T) {
	opts := subscribeOptions(mqtt.Subscription{
		Topic: "homeassistant/status",
		Options: mqtt.ReadOptions{
			QoS:               mqtt.QOSAtLeastOnce,
			NoLocal:           true,
			RetainAsPublished: true,
			RetainHandling:    mqtt.RetainHandlingIgnoreRetained,
		},
	})

	assert.Equal(t, paho.SubscribeOptions{
		Topic:             "homeassistant/status",
		QoS:               1,
		RetainHandling:    2,
		NoLocal:           true,
		RetainAsPublished: true,
	}, opts)
}
