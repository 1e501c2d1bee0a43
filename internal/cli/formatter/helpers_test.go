package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so assertions are
// terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"exact kib", 1024, "1.0 KiB"},
		{"fractional kib", 1536, "1.5 KiB"},
		{"exact mib", 1 << 20, "1.0 MiB"},
		{"fractional mib", 3 << 19, "1.5 MiB"},
		{"exact gib", 1 << 30, "1.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.n))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"seconds keep tenths", 1500 * time.Millisecond, "1.5s"},
		{"seconds rounded", 2340 * time.Millisecond, "2.3s"},
		{"minutes drop fractions", 90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestFormatTutorials(t *testing.T) {
	assert.Equal(t, "[2, 3, 4]", FormatTutorials([]int{2, 3, 4}))
	assert.Equal(t, "[10]", FormatTutorials([]int{10}))
	assert.Equal(t, "[]", FormatTutorials(nil))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	got := HumanTimestamp(now)
	assert.Equal(t, "Just now", got)

	got = HumanTimestamp(now.Add(-5 * time.Minute))
	assert.Equal(t, "5m ago", got)

	got = HumanTimestamp(now.Add(-3 * time.Hour))
	assert.Equal(t, "3h ago", got)

	past := time.Date(2022, 9, 30, 12, 0, 0, 0, time.UTC)
	got = HumanTimestamp(past)
	assert.Equal(t, "Sep 30, 2022", got)
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)))
}

func TestTruncID(t *testing.T) {
	long := "abcdef12-3456-7890-abcd-ef1234567890"
	assert.Equal(t, "abcdef12", stripANSI(TruncID(long)))
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}
