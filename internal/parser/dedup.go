package parser

import (
	"bufio"
	"fmt"
	"io"
)

// LatestUnique returns each distinct line once, at the position of its last
// occurrence. Relative order of those last occurrences is preserved.
func LatestUnique(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	result := make([]string, 0, len(lines))

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if _, exists := seen[line]; exists {
			continue
		}
		seen[line] = struct{}{}
		result = append(result, line)
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// ReadLines reads all of r, splitting on '\n'. There is no limit on line
// length. A final line without a trailing newline is still returned.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	if err := eachLine(r, func(line string) { lines = append(lines, line) }); err != nil {
		return lines, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// FilterLatest buffers all of r and writes the LatestUnique lines to w, each
// terminated by '\n'.
func FilterLatest(r io.Reader, w io.Writer) error {
	lines, err := ReadLines(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range LatestUnique(lines) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write lines: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write lines: %w", err)
	}
	return nil
}
