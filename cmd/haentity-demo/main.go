// Command haentity-demo publishes a fake room to Home Assistant over MQTT: sensors with random readings and actuators
// that echo every command back as their state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/internal/config"
	"github.com/nlowe/haentity/log"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (default: haentity.yaml in . or /etc/haentity)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log.To(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.Level(),
		TimeFormat: time.Kitchen,
		NoColor:    cfg.Log.NoColor,
	}))
	l := log.ForComponent("main")

	if dump, err := cfg.Redacted(); err == nil {
		l.With(slog.String("config", string(dump))).Debug("Loaded configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w, s, disconnect, err := dial(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		l.Info("Disconnecting from mqtt")
		if err := disconnect(shutdownCtx); err != nil {
			l.With(log.Error(err)).Error("Failed to disconnect from mqtt")
		}
	}()

	started := time.Now()
	b, err := haentity.NewBridge(cfg.NodeID, w, s,
		haentity.WithDiscoveryPrefix(cfg.DiscoveryPrefix),
		haentity.WithOrigin(haentity.DefaultOrigin),
		haentity.WithDevice(haentity.Device{
			Name:         cfg.Name,
			Identifiers:  []string{cfg.NodeID},
			Manufacturer: "haentity",
			Model:        "Demo Room",
		}.Metadata()),
	)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}

	d := newDemo(b, started)
	if err = d.subscribe(ctx); err != nil {
		return fmt.Errorf("subscribe to commands: %w", err)
	}

	r := rand.New(rand.NewPCG(uint64(started.UnixNano()), 0))
	if err = announce(ctx, b, d.entities()...); err != nil {
		return err
	}

	if err = errors.Join(d.initialize(ctx), d.tick(ctx, r)); err != nil {
		return fmt.Errorf("publish initial state: %w", err)
	}

	hassAvailability := b.HomeAssistantAvailability()
	hassAvailability.Watch(func(availability hass.Availability) {
		l.With(slog.Any("availability", availability)).Info("Home Assistant state changed")
		if availability != hass.Available {
			return
		}

		if err := errors.Join(announce(ctx, b, d.entities()...), haentity.RepublishStates(ctx, d.entities()...)); err != nil {
			l.With(log.Error(err)).Error("Failed to republish after Home Assistant came back")
		}
	})

	if err = b.Subscribe(ctx, hassAvailability, hassAvailability.Subscription()); err != nil {
		return fmt.Errorf("subscribe to home assistant status: %w", err)
	}

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		l.Info("Marking node unavailable")
		if err := b.PublishAvailability(shutdownCtx, hass.Unavailable); err != nil {
			l.With(log.Error(err)).Error("Failed to publish availability")
		}
	}()

	l.With(slog.Duration("interval", cfg.Interval)).Info("Publishing readings")
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Info("Goodbye!")
			return nil
		case <-ticker.C:
			if err := d.tick(ctx, r); err != nil {
				l.With(log.Error(err)).Warn("Failed to publish readings")
			}
		}
	}
}

// announce publishes every discovery document, then marks the node available.
func announce(ctx context.Context, b *haentity.Bridge, entities ...haentity.Entity) error {
	if err := haentity.PublishConfigurations(ctx, entities...); err != nil {
		return fmt.Errorf("publish configurations: %w", err)
	}

	if err := b.PublishAvailability(ctx, hass.Available); err != nil {
		return fmt.Errorf("publish availability: %w", err)
	}

	return nil
}
