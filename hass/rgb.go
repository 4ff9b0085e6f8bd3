package hass

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/nlowe/haentity/mqtt"
)

// ErrInvalidRGB is the error returned by ParseRGB for payloads that are not three comma separated integers in 0-255.
var ErrInvalidRGB = errors.New("invalid rgb triple")

var rgbPattern = regexp.MustCompile(`^(\d+),(\d+),(\d+)$`)

// RGB holds 8-bit Red, Green, and Blue values for a Light. It implements fmt.Stringer and slog.LogValuer.
type RGB struct {
	R, G, B uint8
}

func (r RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

func (r RGB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("r", uint64(r.R)),
		slog.Uint64("g", uint64(r.G)),
		slog.Uint64("b", uint64(r.B)),
		slog.String("hex", r.String()),
	)
}

// ParseRGB parses the "r,g,b" triple Home Assistant writes to rgb command topics. Components outside 0-255 are
// rejected rather than wrapped.
func ParseRGB(s string) (RGB, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidRGB, s)
	}

	var out [3]uint8
	for i, part := range m[1:] {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidRGB, s, err)
		}

		out[i] = uint8(v)
	}

	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// ExtractColor is ParseRGB for callers that want black instead of an error.
func ExtractColor(s string) RGB {
	rgb, _ := ParseRGB(s)
	return rgb
}

var (
	RGBMarshaler mqtt.ValueMarshaler[RGB] = func(v RGB) ([]byte, error) {
		return fmt.Appendf(nil, "%d,%d,%d", v.R, v.G, v.B), nil
	}
	RGBUnmarshaler mqtt.ValueUnmarshaler[RGB] = func(bytes []byte) (RGB, error) {
		return ParseRGB(string(bytes))
	}
)
