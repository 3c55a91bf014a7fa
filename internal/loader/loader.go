// Package loader reads process lists from CSV and YAML files.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

var ErrInvalidFile = errors.New("invalid process file")

// Workload is a process list plus the round robin quantum, nil when the file
// does not set one.
type Workload struct {
	Processes []core.Process
	Quantum   *int
}

type yamlWorkload struct {
	Quantum   *yamlInt      `yaml:"quantum"`
	Processes []yamlProcess `yaml:"processes"`
}

type yamlProcess struct {
	ID      string  `yaml:"id"`
	Arrival yamlInt `yaml:"arrival"`
	Burst   yamlInt `yaml:"burst"`
}

// yamlInt only accepts scalars tagged !!int; yaml.v3 would otherwise
// truncate floats such as 2.7 into an int field.
type yamlInt int

func (i *yamlInt) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: %q is not an integer", node.Line, node.Value)
	}
	var v int
	if err := node.Decode(&v); err != nil {
		return err
	}
	*i = yamlInt(v)
	return nil
}

// Load reads the file at path, picking the format from its extension:
// .csv is CSV, anything else is parsed as YAML (which accepts JSON too).
func Load(path string) (Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Workload{}, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(f)
	}
	return LoadYAML(f)
}

// LoadCSV reads rows of id,arrival,burst. The first row is skipped when its
// arrival column reads "arrival".
func LoadCSV(r io.Reader) (Workload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return Workload{}, fmt.Errorf("%w: reading CSV: %v", ErrInvalidFile, err)
	}
	if len(rows) > 0 {
		if strings.EqualFold(strings.TrimSpace(rows[0][1]), "arrival") {
			rows = rows[1:]
		}
	}

	set := core.NewProcessSet()
	for i, row := range rows {
		arrival, err := strconv.Atoi(row[1])
		if err != nil {
			return Workload{}, fmt.Errorf("%w: row %d: arrival %q is not an integer", ErrInvalidFile, i+1, row[1])
		}
		burst, err := strconv.Atoi(row[2])
		if err != nil {
			return Workload{}, fmt.Errorf("%w: row %d: burst %q is not an integer", ErrInvalidFile, i+1, row[2])
		}
		set.Add(strings.TrimSpace(row[0]), arrival, burst)
	}
	return Workload{Processes: set.Snapshot()}, nil
}

func LoadYAML(r io.Reader) (Workload, error) {
	var doc yamlWorkload
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Workload{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	set := core.NewProcessSet()
	for _, p := range doc.Processes {
		set.Add(p.ID, int(p.Arrival), int(p.Burst))
	}
	workload := Workload{Processes: set.Snapshot()}
	if doc.Quantum != nil {
		quantum := int(*doc.Quantum)
		workload.Quantum = &quantum
	}
	return workload, nil
}
