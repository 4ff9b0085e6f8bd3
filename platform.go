package haentity

import (
	"context"
	"errors"
)

// Entity is implemented by every entity kind in the platform package.
type Entity interface {
	// PublishConfiguration publishes the entity's discovery document.
	PublishConfiguration(ctx context.Context) error

	// RepublishState publishes the last known state again, e.g. after Home Assistant restarts. It publishes nothing if
	// no state was published yet.
	RepublishState(ctx context.Context) error
}

// PublishConfigurations calls PublishConfiguration on every entity, continuing past failures. The failures are joined.
func PublishConfigurations(ctx context.Context, entities ...Entity) error {
	var errs []error
	for _, e := range entities {
		errs = append(errs, e.PublishConfiguration(ctx))
	}

	return errors.Join(errs...)
}

// RepublishStates calls RepublishState on every entity, continuing past failures. The failures are joined.
func RepublishStates(ctx context.Context, entities ...Entity) error {
	var errs []error
	for _, e := range entities {
		errs = append(errs, e.RepublishState(ctx))
	}

	return errors.Join(errs...)
}
