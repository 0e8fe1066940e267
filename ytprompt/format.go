package ytprompt

import (
	"fmt"
	"strings"
)

const secondsPerDay = 24 * 60 * 60

// FormatTimestamp renders an offset in seconds as [HH:MM:SS]. Hours wrap
// modulo one day, so offsets beyond 24h fold back around.
func FormatTimestamp(seconds int) string {
	s := seconds % secondsPerDay
	return fmt.Sprintf("[%02d:%02d:%02d]", s/3600, (s%3600)/60, s%60)
}

// RenderTimestamped produces one "[HH:MM:SS] text" line per entry, joined by
// newlines in the original order.
func RenderTimestamped(lines []TranscriptLine) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, FormatTimestamp(line.Start)+" "+line.Text)
	}
	return strings.Join(out, "\n")
}

// JoinPlain concatenates entry texts with single spaces, discarding
// timestamps.
func JoinPlain(lines []TranscriptLine) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, line.Text)
	}
	return strings.Join(out, " ")
}
