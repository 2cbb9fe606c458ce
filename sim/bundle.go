package sim

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// RunConfigFile holds run configuration loaded from a YAML or HCL file.
// Nil pointer fields mean "not set in the file" and do not override the base config.
type RunConfigFile struct {
	Scheduler *string `yaml:"scheduler" hcl:"scheduler,optional"`
	Quantum   *int64  `yaml:"quantum" hcl:"quantum,optional"`
	Memory    *string `yaml:"memory" hcl:"memory,optional"`
}

// LoadRunConfigFile reads a run configuration file.
// Files ending in .hcl are decoded as HCL; everything else as strict YAML.
func LoadRunConfigFile(path string) (*RunConfigFile, error) {
	var file RunConfigFile
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
			return nil, fmt.Errorf("parsing run config: %w", err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading run config: %w", err)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing run config: %w", err)
		}
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the fields that are set.
func (f *RunConfigFile) Validate() error {
	if f.Scheduler != nil && !IsValidScheduler(*f.Scheduler) {
		return fmt.Errorf("%w %q", ErrUnknownScheduler, *f.Scheduler)
	}
	if f.Memory != nil {
		if _, ok := CanonicalMemoryMode(*f.Memory); !ok {
			return fmt.Errorf("%w %q", ErrUnknownMemoryMode, *f.Memory)
		}
	}
	if f.Quantum != nil && *f.Quantum < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeQuantum, *f.Quantum)
	}
	return nil
}

// ApplyTo returns base with every field set in the file overridden.
func (f *RunConfigFile) ApplyTo(base RunConfig) RunConfig {
	out := base
	if f.Scheduler != nil {
		out.Scheduler = *f.Scheduler
	}
	if f.Quantum != nil {
		out.Quantum = *f.Quantum
	}
	if f.Memory != nil {
		out.Memory = *f.Memory
	}
	return NewRunConfig(out.Scheduler, out.Quantum, out.Memory)
}
