package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/nlowe/haentity"
	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/log"
	"github.com/nlowe/haentity/mqtt"
)

var (
	// ErrAttributesNotEnabled is the error returned when publishing attributes for an entity configured without them.
	ErrAttributesNotEnabled = errors.New("attributes are not enabled")
	// ErrCapabilityNotEnabled is the error returned when publishing or subscribing to a light capability that was not
	// configured, e.g. brightness on a light without WithBrightness.
	ErrCapabilityNotEnabled = errors.New("capability is not enabled")
	// ErrReadOnly is the error returned when subscribing to commands for a read-only cover.
	ErrReadOnly = errors.New("entity is read-only")
	// ErrStateTopicNotEnabled is the error returned when publishing state for a text entity without a state topic.
	ErrStateTopicNotEnabled = errors.New("state topic is not enabled")
	// ErrAlreadySubscribed is the error returned when a second callback is registered for the same command topic.
	ErrAlreadySubscribed = errors.New("already subscribed")
	// ErrUnknownOption is the error returned when publishing a selection or event type that was not configured.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidUnit is the error returned by PublishConfiguration for a sensor unit its device class does not accept.
	ErrInvalidUnit = errors.New("unit is not valid for device class")
)

// entity holds what every entity kind shares: its Bridge, its id and the command subscriptions it made.
type entity struct {
	b    *haentity.Bridge
	id   haentity.ComponentID
	name string

	log *slog.Logger

	mu            sync.Mutex
	subscriptions map[string]func()
}

func newEntity(b *haentity.Bridge, id haentity.ComponentID, name string) entity {
	return entity{
		b:    b,
		id:   id,
		name: name,

		log: log.ForEntity(id.Component, b.UniqueID(id.ObjectID, id.ChildObjectID)),
	}
}

// ID returns the component, object id and child object id of the entity.
func (e *entity) ID() haentity.ComponentID {
	return e.id
}

// UniqueID returns the unique_id the Bridge publishes for the entity.
func (e *entity) UniqueID() string {
	return e.b.UniqueID(e.id.ObjectID, e.id.ChildObjectID)
}

// topic returns a state, command or attributes topic for the entity.
func (e *entity) topic(kind haentity.TopicType) string {
	return e.b.Topic(kind, e.id.Component, e.id.ObjectID, e.id.ChildObjectID)
}

// document starts a discovery document with the name and platform every entity publishes.
func (e *entity) document() discovery.Document {
	doc := discovery.Document{discovery.FieldPlatform: e.id.Component}
	doc.SetName(e.name)

	return doc
}

func (e *entity) publishConfiguration(ctx context.Context, doc discovery.Document) error {
	return e.b.PublishConfiguration(ctx, e.id.Component, e.id.ObjectID, e.id.ChildObjectID, doc)
}

// RemoveConfiguration deletes the entity from Home Assistant.
func (e *entity) RemoveConfiguration(ctx context.Context) error {
	return e.b.RemoveConfiguration(ctx, e.id.Component, e.id.ObjectID, e.id.ChildObjectID)
}

// Unsubscribe drops every command callback registered with the entity's On methods and unsubscribes their topics.
func (e *entity) Unsubscribe(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.subscriptions) == 0 {
		return nil
	}

	topics := slices.Sorted(maps.Keys(e.subscriptions))
	for _, topic := range topics {
		e.subscriptions[topic]()
	}
	clear(e.subscriptions)

	if err := e.b.Unsubscribe(ctx, topics...); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", e.id, err)
	}

	return nil
}

// subscribe routes messages on v's topic to v and registers callback for every value v parses. One callback per topic.
func subscribe[T any](ctx context.Context, e *entity, v *mqtt.RemoteValue[T], callback func(T)) error {
	topic := v.Topic()

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.subscriptions[topic]; ok {
		return fmt.Errorf("subscribe %s: %w", topic, ErrAlreadySubscribed)
	}

	if err := e.b.Subscribe(ctx, v, v.Subscription()); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}

	id := v.Watch(callback)
	if e.subscriptions == nil {
		e.subscriptions = map[string]func(){}
	}
	e.subscriptions[topic] = func() { v.Unwatch(id) }

	e.log.With(log.Topic(topic)).Debug("Subscribed to commands")
	return nil
}

// republish writes the cached value of v again. A value that was never written is not an error.
func republish[T any](ctx context.Context, w mqtt.Writer, v *mqtt.Value[T]) error {
	if _, err := v.Republish(ctx, w); err != nil && !errors.Is(err, mqtt.ErrNeverWritten) {
		return err
	}

	return nil
}

// stateOptions are the write options for state topics.
func stateOptions(retain bool) mqtt.WriteOptions {
	return mqtt.WriteOptions{Retain: retain}
}

// dedupe returns v without blank or repeated entries, keeping the first occurrence of each.
func dedupe(v []string) []string {
	var out []string
	for _, s := range v {
		if s == "" || slices.Contains(out, s) {
			continue
		}

		out = append(out, s)
	}

	return out
}
