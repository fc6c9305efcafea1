package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
)

// BatchJob is a YAML-defined batch conversion job.
//
// Example:
//
//	direction: roman-to-int
//	historical: true
//	inputs:
//	  - MCMXC
//	  - IIII
type BatchJob struct {
	// Direction selects the conversion direction for every input.
	Direction string `yaml:"direction"`

	// Historical enables additive-notation variants.
	Historical bool `yaml:"historical,omitempty"`

	// Inputs are the raw strings to convert, in order.
	Inputs []string `yaml:"inputs"`
}

// LoadBatchJob reads and validates a batch job file.
func LoadBatchJob(path string) (*BatchJob, roman.Direction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read job file: %w", err)
	}

	var job BatchJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, "", fmt.Errorf("parse job file %s: %w", path, err)
	}

	dir, err := roman.ParseDirection(job.Direction)
	if err != nil {
		return nil, "", fmt.Errorf("job file %s: %w", path, err)
	}
	if len(job.Inputs) == 0 {
		return nil, "", fmt.Errorf("job file %s: no inputs", path)
	}

	return &job, dir, nil
}
