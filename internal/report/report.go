// Package report renders the sampled command timings as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/anomredux/histime/internal/config"
	"github.com/anomredux/histime/internal/domain"
	"github.com/anomredux/histime/internal/sampler"
	"github.com/anomredux/histime/internal/theme"
)

type Report struct {
	Paths               []string              `json:"paths"`
	Setup               []domain.TimeAnalysis `json:"setup"`
	Runtime             []domain.TimeAnalysis `json:"runtime"`
	TotalSetupSeconds   float64               `json:"total_setup_seconds"`
	TotalRuntimeSeconds float64               `json:"total_runtime_seconds"`
	SetupHours          int                   `json:"setup_hours"`
	RuntimeHours        int                   `json:"runtime_hours"`
}

// Build samples both metrics of agg and computes the hour totals.
func Build(paths []string, agg domain.Aggregation, cfg config.Config, rng sampler.Source) Report {
	return Report{
		Paths:               paths,
		Setup:               sampler.Select(agg.Setup, cfg.Analysis.SampleSize, rng),
		Runtime:             sampler.Select(agg.Runtime, cfg.Analysis.SampleSize, rng),
		TotalSetupSeconds:   agg.TotalSetupSeconds,
		TotalRuntimeSeconds: agg.TotalRuntimeSeconds,
		SetupHours:          Hours(agg.TotalSetupSeconds, cfg.Report.SetupHoursDivisor),
		RuntimeHours:        Hours(agg.TotalRuntimeSeconds, cfg.Report.RuntimeHoursDivisor),
	}
}

// WriteText writes the human-readable report.
func WriteText(w io.Writer, r Report, color bool) error {
	styles := theme.NewStyles(w, color)
	var sb strings.Builder

	sb.WriteString(styles.Header.Render(fmt.Sprintf("analyzing paths %v", r.Paths)))
	sb.WriteString("\n")

	writeSection(&sb, styles, "Commands taking substantial time to type:", r.Setup)
	sb.WriteString(styles.Total.Render(fmt.Sprintf("Total time typing commands approximately %dh", r.SetupHours)))
	sb.WriteString("\n")

	writeSection(&sb, styles, "Commands taking substantial time to run:", r.Runtime)
	sb.WriteString(styles.Total.Render(fmt.Sprintf("Total time running commands approximately %dh", r.RuntimeHours)))
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeSection(sb *strings.Builder, styles theme.Styles, title string, analyses []domain.TimeAnalysis) {
	sb.WriteString("\n")
	sb.WriteString(styles.Section.Render(title))
	sb.WriteString("\n")
	for _, a := range analyses {
		// Tabs are part of the format, so lines bypass lipgloss.
		fmt.Fprintf(sb, " total = %ss =\t %d * %ss for\t %s\n",
			FormatSeconds(a.OverallSeconds()), a.NumExecutions, FormatSeconds(a.TypicalDurationSeconds), a.Command)
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
