package mqtt

import (
	"encoding/json/v2"
	"strconv"
	"strings"
)

// ValueMarshaler is a function that can convert values of type T to a byte slice for writing to an MQTT Topic.
type ValueMarshaler[T any] func(v T) ([]byte, error)

// ValueUnmarshaler is a function that can convert the byte slice payload from an MQTT Message to values of type T.
type ValueUnmarshaler[T any] func([]byte) (T, error)

// FloatPrecision is the number of fractional digits written by FloatMarshaler.
const FloatPrecision = 6

var (
	StringMarshaler ValueMarshaler[string] = func(v string) ([]byte, error) {
		return []byte(v), nil
	}

	StringUnmarshaler ValueUnmarshaler[string] = func(bytes []byte) (string, error) {
		return string(bytes), nil
	}

	Uint8Marshaler ValueMarshaler[uint8] = func(v uint8) ([]byte, error) {
		return strconv.AppendUint(nil, uint64(v), 10), nil
	}
	// Uint8Unmarshaler rejects anything that does not fit in 0-255.
	Uint8Unmarshaler ValueUnmarshaler[uint8] = func(bytes []byte) (uint8, error) {
		v, err := strconv.ParseUint(strings.TrimSpace(string(bytes)), 10, 8)
		return uint8(v), err
	}

	// FloatMarshaler writes fixed-point decimals with FloatPrecision digits, e.g. 22.5 is written as "22.500000".
	FloatMarshaler ValueMarshaler[float64] = func(v float64) ([]byte, error) {
		return strconv.AppendFloat(nil, v, 'f', FloatPrecision, 64), nil
	}
	FloatUnmarshaler ValueUnmarshaler[float64] = func(bytes []byte) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(string(bytes)), 64)
	}
)

// JsonValueMarshaler returns a ValueMarshaler for type T implemented by marshaling the value to Json. Map keys are
// sorted so equal values always produce identical payloads.
func JsonValueMarshaler[T any]() ValueMarshaler[T] {
	return func(v T) ([]byte, error) {
		return json.Marshal(v, json.Deterministic(true))
	}
}

// JsonValueUnmarshaler returns a ValueUnmarshaler for type T implemented by un-marshaling the payload from json.
func JsonValueUnmarshaler[T any]() ValueUnmarshaler[T] {
	return func(bytes []byte) (T, error) {
		var v T

		return v, json.Unmarshal(bytes, &v)
	}
}
