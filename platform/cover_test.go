package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/haentity/hass"
)

func TestCover_PublishConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("Controllable", func(t *testing.T) {
		b, rec := testBridge(t)
		closed, open := uint8(10), uint8(90)
		sut := NewCover(b, "Blinds", "blinds", CoverConfig{
			DeviceClass:    " curtain ",
			PositionClosed: &closed,
			PositionOpen:   &open,
		})

		require.NoError(t, sut.PublishConfiguration(ctx))

		assert.JSONEq(t, `{
			"availability_topic": "livingroom/status",
			"unique_id": "livingroom_blinds_curtain",
			"name": "Blinds",
			"platform": "cover",
			"device_class": "curtain",
			"state_topic": "livingroom/cover/blinds/state/state",
			"command_topic": "livingroom/cover/blinds/state/command",
			"position_topic": "livingroom/cover/blinds/position/state",
			"set_position_topic": "livingroom/cover/blinds/position/command",
			"position_closed": 10,
			"position_open": 90
		}`, lastPayload(t, rec, "homeassistant/cover/livingroom/curtain_blinds/config"))
	})

	t.Run("Read Only", func(t *testing.T) {
		b, rec := testBridge(t)
		sut := NewCover(b, "Garage", "", CoverConfig{ReadOnly: true})

		require.NoError(t, sut.PublishConfiguration(ctx))

		payload := lastPayload(t, rec, "homeassistant/cover/livingroom/curtain/config")
		assert.Contains(t, payload, `"state_topic":"livingroom/cover/cover/state/state"`)
		assert.NotContains(t, payload, `"command_topic"`)
		assert.NotContains(t, payload, `"set_position_topic"`)
		assert.NotContains(t, payload, `"device_class"`)

		require.ErrorIs(t, sut.OnAction(ctx, func(hass.CoverAction) {}), ErrReadOnly)
		require.ErrorIs(t, sut.OnPosition(ctx, func(uint8) {}), ErrReadOnly)
		assert.Empty(t, rec.Subscriptions())
	})
}

func TestCover_Publish(t *testing.T) {
	ctx := context.Background()
	b, rec := testBridge(t)
	sut := NewCover(b, "", "", CoverConfig{})

	require.NoError(t, sut.PublishState(ctx, hass.CoverStateUnknown))
	require.NoError(t, sut.PublishState(ctx, hass.CoverState("sideways")))
	assert.Empty(t, rec.Messages())

	require.NoError(t, sut.RepublishState(ctx))
	assert.Empty(t, rec.Messages())

	require.NoError(t, sut.PublishState(ctx, hass.CoverStateOpening))
	require.NoError(t, sut.PublishPosition(ctx, 150))
	assert.Equal(t, "opening", lastPayload(t, rec, "livingroom/cover/cover/state/state"))
	assert.Equal(t, "100", lastPayload(t, rec, "livingroom/cover/cover/position/state"))

	require.NoError(t, sut.UpdateState(ctx, hass.CoverStateOpening))
	require.NoError(t, sut.UpdatePosition(ctx, 101))
	assert.Len(t, rec.Messages(), 2)

	require.NoError(t, sut.UpdateState(ctx, hass.CoverStateOpen))
	require.NoError(t, sut.UpdatePosition(ctx, 42))
	assert.Equal(t, "open", lastPayload(t, rec, "livingroom/cover/cover/state/state"))
	assert.Equal(t, "42", lastPayload(t, rec, "livingroom/cover/cover/position/state"))

	rec.Reset()
	require.NoError(t, sut.RepublishState(ctx))
	assert.Equal(t, "open", lastPayload(t, rec, "livingroom/cover/cover/state/state"))
	assert.Equal(t, "42", lastPayload(t, rec, "livingroom/cover/cover/position/state"))
}

func TestCover_Commands(t *testing.T) {
	ctx := context.Background()
	b, rec := testBridge(t)
	sut := NewCover(b, "", "", CoverConfig{})

	var actions []hass.CoverAction
	var positions []uint8
	require.NoError(t, sut.OnAction(ctx, func(a hass.CoverAction) { actions = append(actions, a) }))
	require.NoError(t, sut.OnPosition(ctx, func(p uint8) { positions = append(positions, p) }))

	for _, payload := range []string{"OPEN", "CLOSE", "STOP", "open", "TILT"} {
		rec.Deliver("livingroom/cover/cover/state/command", []byte(payload))
	}
	rec.Deliver("livingroom/cover/cover/position/command", []byte("55"))
	rec.Deliver("livingroom/cover/cover/position/command", []byte("half"))

	assert.Equal(t, []hass.CoverAction{
		hass.CoverActionOpen,
		hass.CoverActionClose,
		hass.CoverActionStop,
		hass.CoverActionUnknown,
		hass.CoverActionUnknown,
	}, actions)
	assert.Equal(t, []uint8{55}, positions)
}
