package discovery

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"
)

var (
	// ErrValueRequired is the error returned by SetRequiredSlice for an empty slice.
	ErrValueRequired = errors.New("value is required")
	// ErrNestedValue is the error returned by Document.ValidateFlat when a value is itself an object.
	ErrNestedValue = errors.New("nested objects are not allowed")

	// Marshalers contains json.Marshalers for types from the standard library to make them conform to the Home
	// Assistant MQTT Device Discovery schema (e.g. render URLs as strings).
	Marshalers = json.JoinMarshalers(
		// Marshal URLs as their string representation
		json.MarshalToFunc(func(e *jsontext.Encoder, u *url.URL) error {
			return e.WriteToken(jsontext.String(u.String()))
		}),
		// Marshal durations as integer seconds
		json.MarshalToFunc(func(e *jsontext.Encoder, t time.Duration) error {
			return e.WriteToken(jsontext.Int(int64(t.Seconds())))
		}),
	)

	marshalOptions = json.JoinOptions(
		json.Deterministic(true),
		json.WithMarshalers(Marshalers),
	)
)

// Document is a JSON object under construction. Values are anything encoding/json/v2 can marshal with Marshalers; a
// nil value is written as JSON null.
type Document map[string]any

// SetName stores the trimmed name under FieldName. A blank name is stored as JSON null, which tells Home Assistant to
// use the device name for the entity.
func (d Document) SetName(name string) {
	if name = strings.TrimSpace(name); name == "" {
		d[FieldName] = nil
		return
	}

	d[FieldName] = name
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	return maps.Clone(d)
}

// Keys returns the keys of d, sorted.
func (d Document) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// ValidateFlat returns ErrNestedValue if any value marshals as a JSON object. Arrays are allowed.
func (d Document) ValidateFlat() error {
	for _, k := range d.Keys() {
		b, err := json.Marshal(d[k], marshalOptions)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}

		if jsontext.Value(b).Kind() == '{' {
			return fmt.Errorf("%s: %w", k, ErrNestedValue)
		}
	}

	return nil
}

// Marshal encodes d with Marshalers. Keys are sorted at every level, so equal documents always produce identical bytes.
func (d Document) Marshal() ([]byte, error) {
	if d == nil {
		d = Document{}
	}

	return json.Marshal(map[string]any(d), marshalOptions)
}

// MarshalJSONTo implements json.MarshalerTo so a Document nested in another value encodes the same way.
func (d Document) MarshalJSONTo(e *jsontext.Encoder) error {
	return json.MarshalEncode(e, map[string]any(d), marshalOptions)
}

// Merge returns a new Document holding every entry of docs. Later documents win when keys collide. None of the inputs
// are modified.
func Merge(docs ...Document) Document {
	out := Document{}
	for _, d := range docs {
		maps.Copy(out, d)
	}

	return out
}

// Collisions returns the keys of reserved that are present in d, sorted.
func (d Document) Collisions(reserved ...string) []string {
	var out []string
	for _, k := range reserved {
		if _, ok := d[k]; ok {
			out = append(out, k)
		}
	}

	slices.Sort(out)
	return out
}

// SetRequiredSlice stores a copy of v under k. If v is empty it returns ErrValueRequired and stores nothing.
func SetRequiredSlice[T any](name string, d Document, k string, v []T) error {
	if len(v) == 0 {
		return fmt.Errorf("%s: %w", name, ErrValueRequired)
	}

	d[k] = slices.Clone(v)
	return nil
}

// MaybeSet stores v under k if it is not the zero value for T.
func MaybeSet[T comparable](d Document, k string, v T) {
	var zero T
	if v == zero {
		return
	}

	d[k] = v
}

// MaybeSetPtr stores *v under k if v is not nil.
func MaybeSetPtr[T any](d Document, k string, v *T) {
	if v == nil {
		return
	}

	d[k] = *v
}

// MaybeSetSlice stores a copy of v under k if it is not empty.
func MaybeSetSlice[T any](d Document, k string, v []T) {
	if len(v) == 0 {
		return
	}

	d[k] = slices.Clone(v)
}

// SetIfNot stores v under k unless it equals not or the zero value for T.
func SetIfNot[T comparable](not T, d Document, k string, v T) {
	var zero T
	if v == not || v == zero {
		return
	}

	d[k] = v
}
