// Package haentity publishes Home Assistant MQTT Discovery entities. A Bridge holds the node id, device metadata and
// MQTT transport shared by every entity of one physical device, and builds the topics and discovery envelope for
// them. Entity kinds live in the platform package.
package haentity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/nlowe/haentity/discovery"
	"github.com/nlowe/haentity/hass"
	"github.com/nlowe/haentity/log"
	"github.com/nlowe/haentity/mqtt"
)

var (
	// ErrEmptyNodeID is the error returned by NewBridge for a blank node id.
	ErrEmptyNodeID = errors.New("node id is required")
	// ErrNoWriter is the error returned by NewBridge without an mqtt.Writer.
	ErrNoWriter = errors.New("mqtt writer is required")
	// ErrNoSubscriber is the error returned by subscription helpers on a Bridge built without an mqtt.Subscriber.
	ErrNoSubscriber = errors.New("bridge has no mqtt subscriber")
	// ErrReservedField is the error returned by Bridge.PublishConfiguration in strict mode when an entity document sets
	// a field the bridge owns.
	ErrReservedField = errors.New("entity document sets a reserved field")
)

// TopicType selects the last level of an entity topic.
type TopicType int

const (
	TopicState TopicType = iota
	TopicCommand
	TopicAttributes
)

func (t TopicType) String() string {
	switch t {
	case TopicState:
		return "state"
	case TopicCommand:
		return "command"
	case TopicAttributes:
		return "attributes"
	default:
		return fmt.Sprintf("unknown (%d)", int(t))
	}
}

// AvailabilitySubject is the last level of a node's availability topic.
const AvailabilitySubject = "status"

// Bridge is shared by every entity of one physical device. It is safe for concurrent use; its configuration is
// fixed by NewBridge.
type Bridge struct {
	nodeID string
	prefix string

	device DeviceMetadata
	origin discovery.Document
	strict bool

	w mqtt.Writer
	s mqtt.Subscriber

	log *slog.Logger
}

var _ mqtt.Writer = &Bridge{}
var _ mqtt.Subscriber = &Bridge{}

// BridgeOption configures optional Bridge behavior.
type BridgeOption func(b *Bridge)

// WithDevice publishes m under the device key of every discovery document. m is copied.
func WithDevice(m DeviceMetadata) BridgeOption {
	return func(b *Bridge) {
		b.device = maps.Clone(m)
	}
}

// WithOrigin publishes o under the origin key of every discovery document.
func WithOrigin(o Origin) BridgeOption {
	return func(b *Bridge) {
		b.origin = o.Document()
	}
}

// WithDiscoveryPrefix overrides discovery.DefaultPrefix.
func WithDiscoveryPrefix(prefix string) BridgeOption {
	return func(b *Bridge) {
		b.prefix = mqtt.TrimTopic(prefix)
	}
}

// WithStrictReservedFields makes PublishConfiguration reject entity documents that set availability_topic, unique_id,
// device or origin instead of letting them win.
func WithStrictReservedFields() BridgeOption {
	return func(b *Bridge) {
		b.strict = true
	}
}

// WithLogger replaces the logger from the log package.
func WithLogger(l *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		b.log = l
	}
}

// NewBridge constructs a Bridge for the node nodeID, which is sanitized with SanitizePath. w is required. s may be nil
// for devices that only publish.
func NewBridge(nodeID string, w mqtt.Writer, s mqtt.Subscriber, opts ...BridgeOption) (*Bridge, error) {
	nodeID = strings.TrimSpace(nodeID)
	if nodeID == "" {
		return nil, ErrEmptyNodeID
	}

	if w == nil {
		return nil, ErrNoWriter
	}

	b := &Bridge{
		nodeID: SanitizePath(nodeID),
		prefix: discovery.DefaultPrefix,
		w:      w,
		s:      s,
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.device.Validate(); err != nil {
		return nil, err
	}

	if b.log == nil {
		b.log = log.ForComponent("bridge")
	}
	b.log = b.log.With(slog.String("node", b.nodeID))

	return b, nil
}

// NodeID returns the sanitized node id.
func (b *Bridge) NodeID() string {
	return b.nodeID
}

// DiscoveryPrefix returns the topic prefix discovery documents are published under.
func (b *Bridge) DiscoveryPrefix() string {
	return b.prefix
}

// Topic returns <node>/<component>/<object>[/<child>]/<kind>. The child is trimmed and its level omitted when empty.
func (b *Bridge) Topic(kind TopicType, component, objectID, childObjectID string) string {
	levels := []string{b.nodeID, SanitizePath(component), SanitizePath(objectID)}
	if child := strings.TrimSpace(childObjectID); child != "" {
		levels = append(levels, SanitizePath(child))
	}

	return mqtt.JoinTopic(append(levels, kind.String())...)
}

// ConfigTopic returns <prefix>/<component>/<node>/<object>[_<child>]/config. Object and child are joined with '_',
// not '/'.
func (b *Bridge) ConfigTopic(component, objectID, childObjectID string) string {
	id := SanitizePath(objectID)
	if child := strings.TrimSpace(childObjectID); child != "" {
		id += "_" + SanitizePath(child)
	}

	return mqtt.JoinTopic(b.prefix, SanitizePath(component), b.nodeID, id, discovery.ConfigTopic)
}

// UniqueID returns <node>_[<child>_]<object>.
func (b *Bridge) UniqueID(objectID, childObjectID string) string {
	parts := []string{b.nodeID}
	if child := strings.TrimSpace(childObjectID); child != "" {
		parts = append(parts, SanitizePath(child))
	}

	return strings.Join(append(parts, SanitizePath(objectID)), "_")
}

// AvailabilityTopic returns <node>/status, the topic every entity reports availability on.
func (b *Bridge) AvailabilityTopic() string {
	return mqtt.JoinTopic(b.nodeID, AvailabilitySubject)
}

// AvailabilityTopic returns the availability topic a Bridge for nodeID uses. Transports need it for their Last Will
// before the Bridge exists.
func AvailabilityTopic(nodeID string) string {
	return mqtt.JoinTopic(SanitizePath(strings.TrimSpace(nodeID)), AvailabilitySubject)
}

// Envelope returns the fields the bridge adds to every discovery document for the entity: availability_topic,
// unique_id, then device when metadata was configured and origin when one was configured.
func (b *Bridge) Envelope(objectID, childObjectID string) discovery.Document {
	doc := discovery.Document{
		discovery.FieldAvailabilityTopic: b.AvailabilityTopic(),
		discovery.FieldUniqueID:          b.UniqueID(objectID, childObjectID),
	}

	if len(b.device) > 0 {
		doc[discovery.FieldDevice] = discovery.Document(b.device)
	}

	if len(b.origin) > 0 {
		doc[discovery.FieldOrigin] = b.origin
	}

	return doc
}

// PublishConfiguration publishes the discovery document for an entity, retained, to ConfigTopic. doc is merged over
// Envelope, so its fields win on collision; the collision is logged. With WithStrictReservedFields a collision returns
// ErrReservedField and publishes nothing. doc is not modified.
func (b *Bridge) PublishConfiguration(ctx context.Context, component, objectID, childObjectID string, doc discovery.Document) error {
	topic := b.ConfigTopic(component, objectID, childObjectID)

	if collisions := doc.Collisions(discovery.ReservedFields...); len(collisions) > 0 {
		if b.strict {
			return fmt.Errorf("publish configuration %s: %w: %s", topic, ErrReservedField, strings.Join(collisions, ", "))
		}

		b.log.With(log.Topic(topic), slog.Any("fields", collisions)).Warn("Entity document overrides reserved fields")
	}

	payload, err := discovery.Merge(b.Envelope(objectID, childObjectID), doc).Marshal()
	if err != nil {
		return fmt.Errorf("publish configuration %s: marshal: %w", topic, err)
	}

	if err = b.PublishMessage(ctx, topic, payload, mqtt.Retained); err != nil {
		return fmt.Errorf("publish configuration: %w", err)
	}

	return nil
}

// RemoveConfiguration publishes an empty retained payload to ConfigTopic, which makes Home Assistant delete the
// entity.
func (b *Bridge) RemoveConfiguration(ctx context.Context, component, objectID, childObjectID string) error {
	if err := b.PublishMessage(ctx, b.ConfigTopic(component, objectID, childObjectID), nil, mqtt.Retained); err != nil {
		return fmt.Errorf("remove configuration: %w", err)
	}

	return nil
}

// PublishMessage writes payload to topic with the transport. Failures are returned, not retried.
func (b *Bridge) PublishMessage(ctx context.Context, topic string, payload []byte, opts mqtt.WriteOptions) error {
	l := b.log.With(log.Topic(topic), slog.Any("options", opts))
	l.With(slog.String("payload", string(payload))).Debug("Publishing")

	if err := b.w.WriteTopic(ctx, topic, opts, payload); err != nil {
		l.With(log.Error(err)).Debug("Publish failed")
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	return nil
}

// WriteTopic implements mqtt.Writer with PublishMessage, so mqtt.Value can write through the Bridge.
func (b *Bridge) WriteTopic(ctx context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	return b.PublishMessage(ctx, topic, value, options)
}

// PublishAvailability publishes a retained availability to AvailabilityTopic.
func (b *Bridge) PublishAvailability(ctx context.Context, a hass.Availability) error {
	payload, err := hass.AvailabilityMarshaler(a)
	if err != nil {
		return fmt.Errorf("publish availability: %w", err)
	}

	return b.PublishMessage(ctx, b.AvailabilityTopic(), payload, mqtt.Retained)
}

// HomeAssistantAvailability returns a remote value tracking Home Assistant's own status under the discovery prefix.
// Subscribe it and watch for hass.Available to republish configurations and states after a Home Assistant restart.
func (b *Bridge) HomeAssistantAvailability() *mqtt.RemoteValue[hass.Availability] {
	return discovery.HomeAssistantAvailability(b.prefix)
}

// Writer returns the transport used for publishing.
func (b *Bridge) Writer() mqtt.Writer {
	return b.w
}

// Subscriber returns the transport used for subscriptions, which may be nil.
func (b *Bridge) Subscriber() mqtt.Subscriber {
	return b.s
}

// Subscribe passes through to the transport. It returns ErrNoSubscriber when the Bridge has none.
func (b *Bridge) Subscribe(ctx context.Context, handler mqtt.Handler, subscriptions ...mqtt.Subscription) error {
	if b.s == nil {
		return ErrNoSubscriber
	}

	b.log.With(slog.Any("subscriptions", subscriptions)).Debug("Subscribing")
	return b.s.Subscribe(ctx, handler, subscriptions...)
}

// Unsubscribe passes through to the transport. It returns ErrNoSubscriber when the Bridge has none.
func (b *Bridge) Unsubscribe(ctx context.Context, topics ...string) error {
	if b.s == nil {
		return ErrNoSubscriber
	}

	b.log.With(slog.Any("topics", topics)).Debug("Unsubscribing")
	return b.s.Unsubscribe(ctx, topics...)
}
