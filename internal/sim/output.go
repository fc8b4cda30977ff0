package sim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/biomass/internal/config"
)

// OutputManager writes simulation samples and milestones as CSV files.
// A nil *OutputManager is valid and writes nothing.
type OutputManager struct {
	dir            string
	samplesFile    *os.File
	milestonesFile *os.File

	samplesHeaderWritten    bool
	milestonesHeaderWritten bool
}

// NewOutputManager creates dir and opens samples.csv and milestones.csv in
// it. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating samples.csv: %w", err)
	}
	om.samplesFile = f

	f, err = os.Create(filepath.Join(dir, "milestones.csv"))
	if err != nil {
		om.samplesFile.Close()
		return nil, fmt.Errorf("creating milestones.csv: %w", err)
	}
	om.milestonesFile = f

	return om, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the effective content config next to the samples.
func (om *OutputManager) WriteConfig(cfg config.BiomassConfig) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRecord appends one sample to samples.csv.
func (om *OutputManager) WriteRecord(r Record) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.samplesFile, []Record{r}, &om.samplesHeaderWritten); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return nil
}

// WriteMilestone appends one level arrival to milestones.csv.
func (om *OutputManager) WriteMilestone(m Milestone) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.milestonesFile, []Milestone{m}, &om.milestonesHeaderWritten); err != nil {
		return fmt.Errorf("writing milestone: %w", err)
	}
	return nil
}

// writeRows writes the header only on the first call for a file.
func writeRows(f *os.File, rows any, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(rows, f)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.samplesFile, om.milestonesFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
