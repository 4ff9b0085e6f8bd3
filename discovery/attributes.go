package discovery

import (
	"bytes"
	"encoding/json/v2"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnsupportedAttribute is the error returned by Attributes.Validate for values that are not a number, boolean,
// string, or string set.
var ErrUnsupportedAttribute = errors.New("unsupported attribute value")

// Attributes are extra state published as a JSON object to an entity's attributes topic. Values must be numbers,
// booleans, strings, or string sets ([]string, written sorted and without duplicates).
type Attributes map[string]any

// Validate returns ErrUnsupportedAttribute for the first (by key) value of an unsupported type.
func (a Attributes) Validate() error {
	for _, k := range slices.Sorted(maps.Keys(a)) {
		switch a[k].(type) {
		case bool, string, []string,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
		default:
			return fmt.Errorf("%s: %w: %T", k, ErrUnsupportedAttribute, a[k])
		}
	}

	return nil
}

// ToDocument writes every attribute whose key is not in forbidden into doc and reports whether anything was written.
// Callers use the result to skip publishing an empty attributes payload.
func (a Attributes) ToDocument(doc Document, forbidden ...string) bool {
	wrote := false
	for k, v := range a {
		if slices.Contains(forbidden, k) {
			continue
		}

		if set, ok := v.([]string); ok {
			v = stringSet(set)
		}

		doc[k] = v
		wrote = true
	}

	return wrote
}

// Document is ToDocument into a new Document.
func (a Attributes) Document(forbidden ...string) (Document, bool) {
	doc := Document{}
	ok := a.ToDocument(doc, forbidden...)

	return doc, ok
}

// Equal reports whether a and b publish the same attributes: every key holds a value with the same JSON encoding, so 1
// and 1.0 are equal. Values that cannot be marshaled are never equal.
func (a Attributes) Equal(b Attributes) bool {
	return maps.EqualFunc(a, b, func(x, y any) bool {
		xb, xerr := attributeJSON(x)
		yb, yerr := attributeJSON(y)

		return xerr == nil && yerr == nil && bytes.Equal(xb, yb)
	})
}

func attributeJSON(v any) ([]byte, error) {
	if set, ok := v.([]string); ok {
		v = stringSet(set)
	}

	return json.Marshal(v, marshalOptions)
}

// Clone returns a copy of a that shares no slices with it.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	out := make(Attributes, len(a))
	for k, v := range a {
		if set, ok := v.([]string); ok {
			v = slices.Clone(set)
		}

		out[k] = v
	}

	return out
}

func stringSet(v []string) []string {
	return slices.Compact(slices.Sorted(slices.Values(v)))
}
