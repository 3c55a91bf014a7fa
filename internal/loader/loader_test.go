package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "procs.csv", "id,arrival,burst\nP1,0,5\nP2, 2, 3\n,4,1\n")
	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []core.Process{
		{ID: "P1", Arrival: 0, Burst: 5, Order: 0},
		{ID: "P2", Arrival: 2, Burst: 3, Order: 1},
		{ID: "P3", Arrival: 4, Burst: 1, Order: 2},
	}
	if len(w.Processes) != len(want) {
		t.Fatalf("got %+v", w.Processes)
	}
	for i := range want {
		if w.Processes[i] != want[i] {
			t.Errorf("process %d = %+v, want %+v", i, w.Processes[i], want[i])
		}
	}
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	w, err := LoadCSV(strings.NewReader("A,1,2\nB,3,4\n"))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(w.Processes) != 2 || w.Processes[0].ID != "A" {
		t.Errorf("got %+v", w.Processes)
	}
}

func TestLoadCSVRejectsNonIntegers(t *testing.T) {
	for _, input := range []string{
		"P1,0,5\nP2,1.5,3\n",
		"P1,1.5,3\nP2,0,2\n",
		"P1,x,3\n",
		"P1,0,2.0\n",
		"P1,0\n",
	} {
		if _, err := LoadCSV(strings.NewReader(input)); !errors.Is(err, ErrInvalidFile) {
			t.Errorf("LoadCSV(%q) err = %v, want ErrInvalidFile", input, err)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "procs.yaml", `
quantum: 3
processes:
  - id: P1
    arrival: 0
    burst: 5
  - id: P2
    arrival: 1
    burst: 3
`)
	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Quantum == nil || *w.Quantum != 3 {
		t.Errorf("quantum = %v, want 3", w.Quantum)
	}
	if len(w.Processes) != 2 || w.Processes[1] != (core.Process{ID: "P2", Arrival: 1, Burst: 3, Order: 1}) {
		t.Errorf("got %+v", w.Processes)
	}
}

func TestLoadJSONThroughYAML(t *testing.T) {
	path := writeFile(t, "procs.json", `{"processes":[{"id":"P1","arrival":2,"burst":1}]}`)
	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(w.Processes) != 1 || w.Processes[0].Arrival != 2 || w.Quantum != nil {
		t.Errorf("got %+v", w)
	}
}

func TestLoadYAMLRejectsFloats(t *testing.T) {
	for _, input := range []string{
		"processes:\n  - id: P1\n    arrival: 0.5\n    burst: 2\n",
		"processes:\n  - id: P1\n    arrival: 0\n    burst: 2.7\n",
		"processes:\n  - id: P1\n    arrival: 2.0\n    burst: 1\n",
		"quantum: 1.5\nprocesses:\n  - id: P1\n    arrival: 0\n    burst: 1\n",
		"processes:\n  - id: P1\n    arrival: \"3\"\n    burst: 1\n",
	} {
		if _, err := LoadYAML(strings.NewReader(input)); !errors.Is(err, ErrInvalidFile) {
			t.Errorf("LoadYAML(%q) err = %v, want ErrInvalidFile", input, err)
		}
	}
}

func TestLoadYAMLExplicitZeroQuantum(t *testing.T) {
	w, err := LoadYAML(strings.NewReader("quantum: 0\nprocesses:\n  - {id: P1, arrival: 0, burst: 1}\n"))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if w.Quantum == nil || *w.Quantum != 0 {
		t.Errorf("quantum = %v, want explicit 0", w.Quantum)
	}

	w, err = LoadYAML(strings.NewReader("processes:\n  - {id: P1, arrival: 0, burst: 1}\n"))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if w.Quantum != nil {
		t.Errorf("quantum = %d, want unset", *w.Quantum)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not exist", err)
	}
}
