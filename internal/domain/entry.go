package domain

import "time"

// LogEntry is one parsed line of a history log.
type LogEntry struct {
	Directory string
	StartTime time.Time
	Command   string
}

// Execution is one command invocation reconstructed from three consecutive
// log entries: the gap before the entry is PreparationTime, the gap after it
// is Duration.
type Execution struct {
	PreparationTime time.Duration
	Directory       string
	Duration        time.Duration
	Command         string
}

// TimeAnalysis summarizes one command for a single metric (setup or runtime).
type TimeAnalysis struct {
	Command                string  `json:"command"`
	NumExecutions          int     `json:"num_executions"`
	TypicalDurationSeconds float64 `json:"typical_seconds"`
}

// OverallSeconds returns the total time attributed to the command.
func (a TimeAnalysis) OverallSeconds() float64 {
	return a.TypicalDurationSeconds * float64(a.NumExecutions)
}
