package haentity

import "strings"

// SanitizePath makes segment safe to use as one level of an MQTT topic: every rune outside [a-zA-Z0-9_-] is replaced
// with '_'. It is applied to identifiers, never to payloads.
func SanitizePath(segment string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, segment)
}
