package haentity

import (
	"fmt"
	"log/slog"
	"strings"
)

// Home Assistant integration families an entity can belong to.
const (
	ComponentSensor       = "sensor"
	ComponentBinarySensor = "binary_sensor"
	ComponentLight        = "light"
	ComponentSwitch       = "switch"
	ComponentCover        = "cover"
	ComponentNumber       = "number"
	ComponentSelect       = "select"
	ComponentText         = "text"
	ComponentButton       = "button"
	ComponentEvent        = "event"
)

// ComponentID names one entity under a Bridge. Two entities on the same Bridge must not share a ComponentID.
type ComponentID struct {
	Component string
	ObjectID  string

	// Disambiguates entities with the same Component and ObjectID, e.g. "inside" and "outside". Surrounding whitespace
	// is ignored; an empty child is omitted from topics and ids.
	ChildObjectID string
}

// Child returns the trimmed ChildObjectID.
func (c ComponentID) Child() string {
	return strings.TrimSpace(c.ChildObjectID)
}

func (c ComponentID) String() string {
	if child := c.Child(); child != "" {
		return fmt.Sprintf("%s/%s/%s", c.Component, c.ObjectID, child)
	}

	return fmt.Sprintf("%s/%s", c.Component, c.ObjectID)
}

func (c ComponentID) LogValue() slog.Value {
	return slog.StringValue(c.String())
}
