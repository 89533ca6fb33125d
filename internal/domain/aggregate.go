package domain

import "sort"

// DefaultMinExecutions is the smallest group size considered reliable.
const DefaultMinExecutions = 3

// CommandGroup holds every execution of one exact command text.
type CommandGroup struct {
	Command    string
	Executions []Execution
}

// AggregateOptions controls which groups survive aggregation.
type AggregateOptions struct {
	MinExecutions int
	NoisePrefixes []string
}

// DefaultAggregateOptions returns the thresholds used when no config is given.
func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{
		MinExecutions: DefaultMinExecutions,
		NoisePrefixes: DefaultNoisePrefixes,
	}
}

// Aggregation is the per-command summary for both metrics.
type Aggregation struct {
	Setup               []TimeAnalysis
	Runtime             []TimeAnalysis
	TotalSetupSeconds   float64
	TotalRuntimeSeconds float64
}

// GroupByCommand groups executions by exact command text.
// Groups are returned in order of first appearance.
func GroupByCommand(execs []Execution) []CommandGroup {
	index := make(map[string]int)
	var groups []CommandGroup

	for _, e := range execs {
		i, ok := index[e.Command]
		if !ok {
			i = len(groups)
			index[e.Command] = i
			groups = append(groups, CommandGroup{Command: e.Command})
		}
		groups[i].Executions = append(groups[i].Executions, e)
	}
	return groups
}

// Aggregate computes median preparation time and median duration per
// command. Negative durations are not filtered.
func Aggregate(execs []Execution, opts AggregateOptions) Aggregation {
	groups := FilterGroups(GroupByCommand(execs), opts.MinExecutions, opts.NoisePrefixes)

	agg := Aggregation{
		Setup:   make([]TimeAnalysis, 0, len(groups)),
		Runtime: make([]TimeAnalysis, 0, len(groups)),
	}

	for _, g := range groups {
		setupTimes := make([]float64, len(g.Executions))
		runtimes := make([]float64, len(g.Executions))
		for i, e := range g.Executions {
			setupTimes[i] = e.PreparationTime.Seconds()
			runtimes[i] = e.Duration.Seconds()
		}

		setup := TimeAnalysis{
			Command:                g.Command,
			NumExecutions:          len(g.Executions),
			TypicalDurationSeconds: Median(setupTimes),
		}
		runtime := TimeAnalysis{
			Command:                g.Command,
			NumExecutions:          len(g.Executions),
			TypicalDurationSeconds: Median(runtimes),
		}

		agg.Setup = append(agg.Setup, setup)
		agg.Runtime = append(agg.Runtime, runtime)
		agg.TotalSetupSeconds += setup.OverallSeconds()
		agg.TotalRuntimeSeconds += runtime.OverallSeconds()
	}

	return agg
}

// Median returns the statistical median of values, averaging the two middle
// values for even-sized input. It returns 0 for empty input and does not
// modify values.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
