// Package platform contains the entity kinds haentity publishes to Home Assistant. See the Home Assistant docs for the
// MQTT platforms they map to: https://www.home-assistant.io/integrations/mqtt.
//
// Every entity is built on a haentity.Bridge and satisfies haentity.Entity. Configuration is fixed at construction;
// PublishConfiguration announces the entity and the Publish and Update methods send state. Publish always writes, while
// Update skips a value equal to the last one written. Actuators register command callbacks with their On methods,
// which subscribe through the Bridge.
package platform
