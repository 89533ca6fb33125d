package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/anomredux/histime/internal/config"
	"github.com/anomredux/histime/internal/domain"
)

// zeroSource always draws 0, so the sampler takes the head of the pool.
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func sampleAggregation() domain.Aggregation {
	return domain.Aggregation{
		Setup: []domain.TimeAnalysis{
			{Command: "make", NumExecutions: 3, TypicalDurationSeconds: 10},
			{Command: "ls -la", NumExecutions: 4, TypicalDurationSeconds: 2.5},
		},
		Runtime: []domain.TimeAnalysis{
			{Command: "make", NumExecutions: 3, TypicalDurationSeconds: 2400},
			{Command: "ls -la", NumExecutions: 4, TypicalDurationSeconds: 1},
		},
		TotalSetupSeconds:   6130,
		TotalRuntimeSeconds: 7204,
	}
}

func TestBuild(t *testing.T) {
	r := Build([]string{"a.log"}, sampleAggregation(), config.DefaultConfig(), zeroSource{})

	if len(r.Setup) != 2 || len(r.Runtime) != 2 {
		t.Fatalf("got %d/%d entries, want 2/2", len(r.Setup), len(r.Runtime))
	}
	if r.Setup[0].Command != "ls -la" {
		t.Errorf("first setup entry = %q, want ls -la (smallest total first)", r.Setup[0].Command)
	}
	if r.SetupHours != 2 { // 6130 / 3060
		t.Errorf("SetupHours = %d, want 2", r.SetupHours)
	}
	if r.RuntimeHours != 2 { // 7204 / 3600
		t.Errorf("RuntimeHours = %d, want 2", r.RuntimeHours)
	}
}

func TestBuild_SampleSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.SampleSize = 1
	r := Build(nil, sampleAggregation(), cfg, zeroSource{})
	if len(r.Setup) != 1 || r.Setup[0].Command != "make" {
		t.Errorf("Setup = %+v, want only make", r.Setup)
	}
}

func TestWriteText(t *testing.T) {
	r := Build([]string{"a.log", "b.log"}, sampleAggregation(), config.DefaultConfig(), zeroSource{})

	var buf bytes.Buffer
	if err := WriteText(&buf, r, true); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	want := "analyzing paths [a.log b.log]\n" +
		"\n" +
		"Commands taking substantial time to type:\n" +
		" total = 10.0s =\t 4 * 2.5s for\t ls -la\n" +
		" total = 30.0s =\t 3 * 10.0s for\t make\n" +
		"Total time typing commands approximately 2h\n" +
		"\n" +
		"Commands taking substantial time to run:\n" +
		" total = 4.0s =\t 4 * 1.0s for\t ls -la\n" +
		" total = 7200.0s =\t 3 * 2400.0s for\t make\n" +
		"Total time running commands approximately 2h\n"

	if got := buf.String(); got != want {
		t.Errorf("WriteText output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteText_Empty(t *testing.T) {
	r := Build(nil, domain.Aggregation{}, config.DefaultConfig(), zeroSource{})

	var buf bytes.Buffer
	if err := WriteText(&buf, r, false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := "analyzing paths []\n" +
		"\n" +
		"Commands taking substantial time to type:\n" +
		"Total time typing commands approximately 0h\n" +
		"\n" +
		"Commands taking substantial time to run:\n" +
		"Total time running commands approximately 0h\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteJSON(t *testing.T) {
	r := Build([]string{"a.log"}, sampleAggregation(), config.DefaultConfig(), zeroSource{})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.SetupHours != 2 || len(decoded.Runtime) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Runtime[1].Command != "make" || decoded.Runtime[1].TypicalDurationSeconds != 2400 {
		t.Errorf("Runtime[1] = %+v, want make 2400s", decoded.Runtime[1])
	}
}
