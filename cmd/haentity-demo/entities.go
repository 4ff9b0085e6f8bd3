package main

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/log"
	"github.com/nlowe/haentity/platform"
)

// demo is a fake room: a few sensors reporting random readings and actuators that echo every command back as state.
type demo struct {
	log *slog.Logger

	started time.Time

	temperature *platform.Sensor
	humidity    *platform.Sensor
	motion      *platform.Sensor
	startedAt   *platform.Timestamp

	light    *platform.Light
	fan      *platform.Switch
	blinds   *platform.Cover
	target   *platform.Number
	mode     *platform.Select
	message  *platform.Text
	ring     *platform.Button
	doorbell *platform.Event

	// retries counts readings that failed to publish.
	retries  *platform.Retries
	failures uint8
}

func newDemo(b *haentity.Bridge, started time.Time) *demo {
	return &demo{
		log: log.ForComponent("demo"),

		started: started,

		temperature: platform.NewTemperature(b, "Temperature", "", platform.MeasurementConfig{WithAttributes: true}),
		humidity:    platform.NewHumidity(b, "Humidity", "", platform.MeasurementConfig{}),
		motion:      platform.NewMotion(b, "Motion", "", platform.BinaryConfig{OffDelay: 30 * time.Second}),
		startedAt:   platform.NewTimestamp(b, "Started", "started", platform.TextSensorConfig{}),

		light: platform.NewLight(b, "Ceiling", "ceiling", platform.LightConfig{
			WithBrightness: true,
			WithRGBColor:   true,
			Effects:        []string{"rainbow", "blink"},
			Retain:         true,
		}),
		fan:    platform.NewSwitch(b, "Fan", "fan", platform.SwitchConfig{Icon: "mdi:fan", Retain: true}),
		blinds: platform.NewCover(b, "Blinds", "blinds", platform.CoverConfig{DeviceClass: "blind", Retain: true}),
		target: platform.NewNumber(b, "Target Temperature", "target", platform.NumberConfig{
			Min:  15,
			Max:  28,
			Step: 0.5,
			Unit: "°C",
			Mode: hass.NumberModeBox,
		}),
		mode:     platform.NewSelect(b, "Mode", "mode", platform.SelectConfig{Options: []string{"home", "away", "sleep"}}),
		message:  platform.NewText(b, "Message", "message", platform.TextConfig{MaxLength: 64, WithStateTopic: true}),
		ring:     platform.NewButton(b, "Ring Doorbell", "ring", platform.ButtonConfig{Icon: "mdi:bell"}),
		doorbell: platform.NewEvent(b, "Doorbell", "doorbell", platform.EventConfig{EventTypes: []string{"press"}, DeviceClass: hass.EventDeviceClassDoorbell}),

		retries: platform.NewRetries(b),
	}
}

func (d *demo) entities() []haentity.Entity {
	return []haentity.Entity{
		d.temperature, d.humidity, d.motion, d.startedAt,
		d.light, d.fan, d.blinds, d.target, d.mode, d.message, d.ring, d.doorbell,
	}
}

// initialize publishes a starting state for every entity that has one.
func (d *demo) initialize(ctx context.Context) error {
	return errors.Join(
		d.startedAt.PublishTimestamp(ctx, d.started, nil),
		d.light.PublishIsOn(ctx, false),
		d.light.PublishBrightness(ctx, 255),
		d.light.PublishRGB(ctx, hass.RGB{R: 255, G: 255, B: 255}),
		d.light.PublishEffect(ctx, "blink"),
		d.fan.PublishSwitch(ctx, false),
		d.blinds.PublishState(ctx, hass.CoverStateClosed),
		d.blinds.PublishPosition(ctx, 0),
		d.target.PublishNumber(ctx, 21),
		d.mode.PublishSelection(ctx, "home"),
		d.message.PublishText(ctx, "Hello from haentity"),
	)
}

func (d *demo) report(err error, msg string) {
	if err != nil {
		d.log.With(log.Error(err)).Error(msg)
	}
}

// subscribe echoes every command back as state.
func (d *demo) subscribe(ctx context.Context) error {
	return errors.Join(
		d.light.OnOn(ctx, func(on bool) {
			d.report(d.light.PublishIsOn(ctx, on), "Failed to publish light state")
		}),
		d.light.OnBrightness(ctx, func(brightness uint8) {
			d.report(d.light.PublishBrightness(ctx, brightness), "Failed to publish brightness")
		}),
		d.light.OnRGB(ctx, func(rgb hass.RGB) {
			d.report(d.light.PublishRGB(ctx, rgb), "Failed to publish color")
		}),
		d.light.OnEffect(ctx, func(effect string) {
			d.report(d.light.PublishEffect(ctx, effect), "Failed to publish effect")
		}),
		d.fan.OnSwitch(ctx, func(on bool) {
			d.report(d.fan.UpdateSwitch(ctx, on), "Failed to publish fan state")
		}),
		d.blinds.OnAction(ctx, func(action hass.CoverAction) {
			d.report(d.moveBlinds(ctx, action), "Failed to move blinds")
		}),
		d.blinds.OnPosition(ctx, func(position uint8) {
			state := hass.CoverStateOpen
			if position == 0 {
				state = hass.CoverStateClosed
			}

			d.report(errors.Join(d.blinds.UpdatePosition(ctx, position), d.blinds.UpdateState(ctx, state)), "Failed to move blinds")
		}),
		d.target.OnNumber(ctx, func(v float64) {
			d.report(d.target.UpdateNumber(ctx, v), "Failed to publish target temperature")
		}),
		d.mode.OnSelection(ctx, func(option string) {
			d.report(d.mode.UpdateSelection(ctx, option), "Failed to publish mode")
		}),
		d.message.OnText(ctx, func(text string) {
			d.report(d.message.UpdateText(ctx, text), "Failed to publish message")
		}),
		d.ring.OnPress(ctx, func() {
			d.report(d.doorbell.PublishEvent(ctx, "press", discovery.Attributes{"source": "button"}), "Failed to ring doorbell")
		}),
	)
}

func (d *demo) moveBlinds(ctx context.Context, action hass.CoverAction) error {
	switch action {
	case hass.CoverActionOpen:
		return errors.Join(d.blinds.UpdateState(ctx, hass.CoverStateOpen), d.blinds.UpdatePosition(ctx, platform.MaxCoverPosition))
	case hass.CoverActionClose:
		return errors.Join(d.blinds.UpdateState(ctx, hass.CoverStateClosed), d.blinds.UpdatePosition(ctx, 0))
	case hass.CoverActionStop:
		return d.blinds.UpdateState(ctx, hass.CoverStateStopped)
	default:
		d.log.With(slog.Any("action", action)).Warn("Ignoring unknown cover action")
		return nil
	}
}

// tick publishes a new set of readings, skipping unchanged ones, then the number of ticks that failed so far.
func (d *demo) tick(ctx context.Context, r *rand.Rand) error {
	temperature := 18 + r.Float64()*6

	err := errors.Join(
		d.temperature.UpdateNumber(ctx, temperature, discovery.Attributes{"uptime": time.Since(d.started).Round(time.Second).String()}),
		d.humidity.UpdateNumber(ctx, float64(35+r.IntN(20)), nil),
		d.motion.UpdateBool(ctx, r.IntN(4) == 0, nil),
	)
	if err != nil && d.failures < math.MaxUint8 {
		d.failures++
	}

	return errors.Join(err, d.retries.PublishRetries(ctx, d.failures))
}
