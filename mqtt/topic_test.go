package mqtt

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimTopic(t *testing.T) {
	for _, tt := range []struct {
		topic string
		want  string
	}{
		{topic: "", want: ""},
		{topic: "/", want: ""},
		{topic: "/a", want: "a"},
		{topic: "a/", want: "a"},
		{topic: "/a/", want: "a"},
		{topic: "/a/b", want: "a/b"},
		{topic: "a/b/", want: "a/b"},
		{topic: "a/b", want: "a/b"},
		{topic: "/a/b/", want: "a/b"},
	} {
		t.Run(tt.topic, func(t *testing.T) {
			require.Equal(t, tt.want, TrimTopic(tt.topic))
		})
	}
}

func TestJoinTopic(t *testing.T) {
	for i, tt := range []struct {
		parts []string
		want  string
	}{
		// JoinTopic should trim empty parts
		{parts: []string{""}, want: ""},
		{parts: []string{"", ""}, want: ""},
		{parts: []string{"", "a"}, want: "a"},
		{parts: []string{"", "a", "", "b"}, want: "a/b"},
		{parts: []string{"a", ""}, want: "a"},
		{parts: []string{"a", "b", "/"}, want: "a/b"},

		// JoinTopic should trim each individual part
		{parts: []string{"a", "/", "b"}, want: "a/b"},
		{parts: []string{"/a", "b"}, want: "a/b"},
		{parts: []string{"a/", "b"}, want: "a/b"},
		{parts: []string{"/a/", "b"}, want: "a/b"},
		{parts: []string{"/a/b", "c"}, want: "a/b/c"},
		{parts: []string{"a/b/", "c"}, want: "a/b/c"},
		{parts: []string{"a/b", "c"}, want: "a/b/c"},
		{parts: []string{"/a/b/", "c"}, want: "a/b/c"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, tt.want, JoinTopic(tt.parts...))
		})
	}
}

func TestMatchTopic(t *testing.T) {
	for _, tt := range []struct {
		filter string
		topic  string
		want   bool
	}{
		{filter: "a/b", topic: "a/b", want: true},
		{filter: "a/b", topic: "a/c", want: false},
		{filter: "a/b", topic: "a/b/c", want: false},
		{filter: "a/+/c", topic: "a/b/c", want: true},
		{filter: "a/+/c", topic: "a/b/d", want: false},
		{filter: "a/+", topic: "a", want: false},
		{filter: "a/#", topic: "a", want: true},
		{filter: "a/#", topic: "a/b/c", want: true},
		{filter: "#", topic: "a/b", want: true},
		{filter: "a/#/c", topic: "a/b/c", want: false},
		{filter: "homeassistant/status", topic: "homeassistant/status", want: true},
	} {
		t.Run(tt.filter+" "+tt.topic, func(t *testing.T) {
			require.Equal(t, tt.want, MatchTopic(tt.filter, tt.topic))
		})
	}
}

func TestSubscription_Matches(t *testing.T) {
	sub := Subscription{Topic: "livingroom/+/+/command"}

	assert.True(t, sub.Matches("livingroom/switch/switch/command"))
	assert.False(t, sub.Matches("livingroom/switch/switch/party/command"))
	assert.Equal(t, "livingroom/+/+/command", sub.String())
}
