package domain

import "strings"

// DefaultNoisePrefixes are command prefixes whose timings are log artifacts
// rather than real work.
var DefaultNoisePrefixes = []string{"ses at ", "ses aat"}

// HasNoisePrefix reports whether command starts with any of prefixes.
func HasNoisePrefix(command string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(command, p) {
			return true
		}
	}
	return false
}

// FilterGroups keeps groups with at least minExecutions members whose
// command does not start with a noise prefix. Order is preserved.
func FilterGroups(groups []CommandGroup, minExecutions int, noisePrefixes []string) []CommandGroup {
	filtered := make([]CommandGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Executions) < minExecutions {
			continue
		}
		if HasNoisePrefix(g.Command, noisePrefixes) {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}
