package mqtt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchTopic(t *testing.T) {
	testCases := []struct {
		topic   string
		pattern string
		match   bool
	}{
		{"imu", "imu", true},
		{"imu", "game_status", false},
		{"debug/foo", "debug/+", true},
		{"debug/foo", "debug/#", true},
		{"debug/foo/bar", "debug/#", true},
		{"debug/foo/bar", "debug/+", true},
		{"status/link", "+/link", true},
		{"status", "status/link", false},
		{"cmd/velocity", "#", true},
	}
	for _, tc := range testCases {
		t.Run(tc.topic+" "+tc.pattern, func(t *testing.T) {
			require.Equal(t, tc.match, MatchTopic(tc.topic, tc.pattern))
		})
	}
}
