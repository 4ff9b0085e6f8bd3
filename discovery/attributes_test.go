package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_ToDocument(t *testing.T) {
	t.Run("Skips forbidden keys", func(t *testing.T) {
		doc := Document{}

		ok := Attributes{"event_type": "hijack", "battery": 87}.ToDocument(doc, FieldEventType)

		require.True(t, ok)
		assert.Equal(t, Document{"battery": 87}, doc)
	})

	t.Run("All forbidden", func(t *testing.T) {
		doc := Document{}

		ok := Attributes{"event_type": "hijack"}.ToDocument(doc, FieldEventType)

		require.False(t, ok)
		assert.Empty(t, doc)
	})

	t.Run("Empty", func(t *testing.T) {
		doc, ok := Attributes(nil).Document()

		require.False(t, ok)
		assert.Empty(t, doc)
	})

	t.Run("String sets are sorted and unique", func(t *testing.T) {
		doc, ok := Attributes{"tags": []string{"b", "a", "b"}}.Document()

		require.True(t, ok)
		got, err := doc.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"tags":["a","b"]}`, string(got))
	})

	t.Run("Mixed values", func(t *testing.T) {
		doc, ok := Attributes{"rssi": -67, "ok": true, "fw": "1.2.3", "ratio": 0.5}.Document()

		require.True(t, ok)
		got, err := doc.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"fw":"1.2.3","ok":true,"ratio":0.5,"rssi":-67}`, string(got))
	})
}

func TestAttributes_Validate(t *testing.T) {
	require.NoError(t, Attributes{"a": 1, "b": uint8(2), "c": 1.5, "d": true, "e": "x", "f": []string{"y"}}.Validate())
	require.ErrorIs(t, Attributes{"nested": map[string]any{}}.Validate(), ErrUnsupportedAttribute)
	require.ErrorIs(t, Attributes{"ints": []int{1}}.Validate(), ErrUnsupportedAttribute)
}

func TestAttributes_Equal(t *testing.T) {
	assert.True(t, Attributes{"a": 1, "s": []string{"x", "y"}}.Equal(Attributes{"a": 1, "s": []string{"y", "x"}}))
	assert.True(t, Attributes(nil).Equal(Attributes{}))
	assert.False(t, Attributes{"a": 1}.Equal(Attributes{"a": 2}))
	assert.False(t, Attributes{"a": 1}.Equal(Attributes{"b": 1}))
	assert.False(t, Attributes{"a": 1}.Equal(Attributes{"a": "1"}))
	assert.False(t, Attributes{"a": true}.Equal(Attributes{"a": "true"}))

	t.Run("Numbers Compare By Value", func(t *testing.T) {
		assert.True(t, Attributes{"n": 1}.Equal(Attributes{"n": 1.0}))
		assert.True(t, Attributes{"n": uint8(7)}.Equal(Attributes{"n": int64(7)}))
		assert.False(t, Attributes{"n": 1}.Equal(Attributes{"n": 1.5}))
	})
}

func TestAttributes_Clone(t *testing.T) {
	in := Attributes{"s": []string{"x"}}
	out := in.Clone()
	in["s"].([]string)[0] = "changed"

	assert.Equal(t, Attributes{"s": []string{"x"}}, out)
}
