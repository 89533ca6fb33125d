package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/anomredux/histime/internal/domain"
)

const (
	timeLayout = "2006-01-02T15:04:05"
	// Older logs joined date and time with a colon.
	legacyTimeLayout = "2006-01-02:15:04:05"
)

// ParseLine parses "<directory> <timestamp> <command>". The command is kept
// verbatim and may contain spaces. ok is false for lines that do not match;
// callers skip those.
func ParseLine(line string) (entry domain.LogEntry, ok bool) {
	first := strings.IndexByte(line, ' ')
	if first < 0 {
		return domain.LogEntry{}, false
	}
	rest := line[first+1:]
	second := strings.IndexByte(rest, ' ')
	if second < 0 {
		return domain.LogEntry{}, false
	}

	ts, err := parseTime(rest[:second])
	if err != nil {
		return domain.LogEntry{}, false
	}

	return domain.LogEntry{
		Directory: line[:first],
		StartTime: ts,
		Command:   rest[second+1:],
	}, true
}

func parseTime(text string) (time.Time, error) {
	// time.Parse tolerates fractional seconds the layouts do not name.
	if len(text) != len(timeLayout) {
		return time.Time{}, fmt.Errorf("timestamp %q: want %d characters", text, len(timeLayout))
	}
	if strings.Contains(text, "T") {
		return time.Parse(timeLayout, text)
	}
	return time.Parse(legacyTimeLayout, text)
}
