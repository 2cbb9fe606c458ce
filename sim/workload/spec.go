// Package workload loads and generates process workloads for the simulator.
//
// Two file formats are accepted: the plain text format (one process per line,
// seven integers) and a YAML format with a processes list. Load picks the
// format from the file extension.
package workload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kernel-sim/kernel-sim/sim"
)

// WorkloadSpec is the YAML workload file.
type WorkloadSpec struct {
	Version   string              `yaml:"version"`
	Processes []sim.WorkloadEntry `yaml:"processes"`
}

// LoadWorkloadSpec reads and parses a YAML workload file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = "1"
	}
	return &spec, nil
}

// Load reads a workload file. .yaml and .yml files use the YAML format,
// everything else the text format.
func Load(path string) ([]sim.WorkloadEntry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		spec, err := LoadWorkloadSpec(path)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Loaded %d processes from %s", len(spec.Processes), path)
		return spec.Processes, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening workload: %w", err)
		}
		defer func() { _ = f.Close() }()
		entries, err := ParseText(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logrus.Infof("Loaded %d processes from %s", len(entries), path)
		return entries, nil
	}
}
