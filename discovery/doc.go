// Package discovery builds Home Assistant MQTT Discovery documents. A Document is a flat JSON object assembled with the
// Maybe* setters and merged with Merge; field name constants use the long form Home Assistant documents for each
// platform.
//
// See https://www.home-assistant.io/integrations/mqtt/#mqtt-discovery.
package discovery
