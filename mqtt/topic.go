package mqtt

import "strings"

const (
	TopicSeparator = "/"

	// SingleLevelWildcard matches exactly one topic level in a subscription filter.
	SingleLevelWildcard = "+"
	// MultiLevelWildcard matches any number of trailing topic levels in a subscription filter.
	MultiLevelWildcard = "#"
)

// TrimTopic trims TopicSeparator from the start and end of the specified topic.
func TrimTopic(topic string) string {
	return strings.Trim(topic, TopicSeparator)
}

// JoinTopic joins non-empty component parts with TopicSeparator, trimming each part as it is appended.
func JoinTopic(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = TrimTopic(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, TopicSeparator)
}

// MatchTopic reports whether topic matches the subscription filter, which may contain SingleLevelWildcard and
// MultiLevelWildcard levels.
func MatchTopic(filter, topic string) bool {
	fl := strings.Split(filter, TopicSeparator)
	tl := strings.Split(topic, TopicSeparator)

	for i, f := range fl {
		if f == MultiLevelWildcard {
			return i == len(fl)-1
		}

		if i >= len(tl) {
			return false
		}

		if f != SingleLevelWildcard && f != tl[i] {
			return false
		}
	}

	return len(fl) == len(tl)
}
