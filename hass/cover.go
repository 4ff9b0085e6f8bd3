package hass

import "github.com/nlowe/haentity/mqtt"

// CoverState is the state a cover reports on its state topic.
type CoverState string

const (
	CoverStateOpen    CoverState = "open"
	CoverStateOpening CoverState = "opening"
	CoverStateClosed  CoverState = "closed"
	CoverStateClosing CoverState = "closing"
	CoverStateStopped CoverState = "stopped"

	// CoverStateUnknown is never published.
	CoverStateUnknown CoverState = ""
)

// Valid reports whether s is one of the published states.
func (s CoverState) Valid() bool {
	switch s {
	case CoverStateOpen, CoverStateOpening, CoverStateClosed, CoverStateClosing, CoverStateStopped:
		return true
	default:
		return false
	}
}

// CoverAction is a command Home Assistant sends to a cover.
type CoverAction string

const (
	CoverActionOpen    CoverAction = "OPEN"
	CoverActionClose   CoverAction = "CLOSE"
	CoverActionStop    CoverAction = "STOP"
	CoverActionUnknown CoverAction = "unknown"
)

var (
	CoverStateMarshaler mqtt.ValueMarshaler[CoverState] = func(v CoverState) ([]byte, error) {
		return mqtt.StringMarshaler(string(v))
	}

	// CoverActionUnmarshaler never fails: unrecognized payloads become CoverActionUnknown.
	CoverActionUnmarshaler mqtt.ValueUnmarshaler[CoverAction] = func(bytes []byte) (CoverAction, error) {
		switch a := CoverAction(bytes); a {
		case CoverActionOpen, CoverActionClose, CoverActionStop:
			return a, nil
		default:
			return CoverActionUnknown, nil
		}
	}
)
