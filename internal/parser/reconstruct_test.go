package parser

import (
	"testing"
	"time"

	"github.com/anomredux/histime/internal/domain"
)

func entryAt(sec int, command string) domain.LogEntry {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.LogEntry{
		Directory: "dir-" + command,
		StartTime: base.Add(time.Duration(sec) * time.Second),
		Command:   command,
	}
}

func TestReconstructor(t *testing.T) {
	var r Reconstructor

	if _, ok := r.Add(entryAt(0, "c0")); ok {
		t.Fatal("first entry should not yield an execution")
	}
	if _, ok := r.Add(entryAt(10, "c1")); ok {
		t.Fatal("second entry should not yield an execution")
	}
	exec, ok := r.Add(entryAt(25, "c2"))
	if !ok {
		t.Fatal("third entry should yield an execution")
	}

	if exec.Command != "c1" {
		t.Errorf("Command = %q, want c1", exec.Command)
	}
	if exec.Directory != "dir-c1" {
		t.Errorf("Directory = %q, want dir-c1", exec.Directory)
	}
	if exec.PreparationTime != 10*time.Second {
		t.Errorf("PreparationTime = %v, want 10s", exec.PreparationTime)
	}
	if exec.Duration != 15*time.Second {
		t.Errorf("Duration = %v, want 15s", exec.Duration)
	}

	exec, ok = r.Add(entryAt(26, "c3"))
	if !ok || exec.Command != "c2" || exec.PreparationTime != 15*time.Second || exec.Duration != time.Second {
		t.Errorf("fourth entry = %+v, %v; want c2 prep 15s dur 1s", exec, ok)
	}
}

func TestReconstructor_NegativeDelta(t *testing.T) {
	var r Reconstructor
	r.Add(entryAt(100, "a"))
	r.Add(entryAt(50, "b"))
	exec, ok := r.Add(entryAt(60, "c"))
	if !ok {
		t.Fatal("expected execution")
	}
	if exec.PreparationTime != -50*time.Second {
		t.Errorf("PreparationTime = %v, want -50s", exec.PreparationTime)
	}
}

func TestReconstructor_Reset(t *testing.T) {
	var r Reconstructor
	r.Add(entryAt(0, "a"))
	r.Add(entryAt(1, "b"))
	r.Reset()
	if _, ok := r.Add(entryAt(2, "c")); ok {
		t.Error("execution emitted right after Reset")
	}
	if _, ok := r.Add(entryAt(3, "d")); ok {
		t.Error("execution emitted with only one prior entry after Reset")
	}
}
