package parser

import "github.com/anomredux/histime/internal/domain"

// Reconstructor turns consecutive log entries into executions. It keeps the
// two most recent entries; each new entry closes the execution of the one
// before it.
type Reconstructor struct {
	prev     *domain.LogEntry
	prevPrev *domain.LogEntry
}

// Add feeds the next valid entry. It returns an execution for the previous
// entry once two earlier entries have been seen.
func (r *Reconstructor) Add(entry domain.LogEntry) (domain.Execution, bool) {
	var (
		exec domain.Execution
		ok   bool
	)
	if r.prev != nil && r.prevPrev != nil {
		exec = domain.Execution{
			PreparationTime: r.prev.StartTime.Sub(r.prevPrev.StartTime),
			Directory:       r.prev.Directory,
			Duration:        entry.StartTime.Sub(r.prev.StartTime),
			Command:         r.prev.Command,
		}
		ok = true
	}
	r.prevPrev = r.prev
	r.prev = &entry
	return exec, ok
}

// Reset forgets the window, as at the start of a new file.
func (r *Reconstructor) Reset() {
	r.prev = nil
	r.prevPrev = nil
}
