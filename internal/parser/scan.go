package parser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/anomredux/histime/internal/domain"
	"github.com/anomredux/histime/internal/observability"
)

// ParseResult holds the executions reconstructed from one log and line stats.
type ParseResult struct {
	Executions []domain.Execution
	EntryCount int
	SkipCount  int
}

// ParseReader reads one history log line by line. Lines that do not parse
// are counted in SkipCount and leave the reconstruction window untouched.
func ParseReader(r io.Reader) (ParseResult, error) {
	var rec Reconstructor
	return parseLog(r, &rec)
}

func parseLog(r io.Reader, rec *Reconstructor) (ParseResult, error) {
	var result ParseResult
	err := eachLine(r, func(line string) {
		entry, ok := ParseLine(strings.TrimRightFunc(line, unicode.IsSpace))
		if !ok {
			result.SkipCount++
			return
		}
		result.EntryCount++

		if exec, ok := rec.Add(entry); ok {
			result.Executions = append(result.Executions, exec)
		}
	})
	if err != nil {
		return result, fmt.Errorf("read log: %w", err)
	}
	return result, nil
}

// ParseFiles parses each path in turn and returns all executions in file
// order. The reconstruction window is reset between files. The first file
// that cannot be opened or read aborts the run.
func ParseFiles(paths []string) ([]domain.Execution, error) {
	var (
		all []domain.Execution
		rec Reconstructor
	)

	for _, path := range paths {
		rec.Reset()
		result, err := parseFile(path, &rec)
		if err != nil {
			return nil, err
		}
		observability.Info("parse.file", map[string]any{
			"path":       path,
			"entries":    result.EntryCount,
			"skipped":    result.SkipCount,
			"executions": len(result.Executions),
		})
		all = append(all, result.Executions...)
	}

	return all, nil
}

func parseFile(path string, rec *Reconstructor) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := parseLog(f, rec)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
