package bench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/gravitas-015/tilecore/internal/config"
)

// OutputManager writes benchmark results as CSV under one directory.
type OutputManager struct {
	dir         string
	resultsFile *os.File
	roundsFile  *os.File

	resultsHeaderWritten bool
	roundsHeaderWritten  bool
}

// NewOutputManager creates the output directory and result files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "results.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating results.csv: %w", err)
	}
	om.resultsFile = f

	f, err = os.Create(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		om.resultsFile.Close()
		return nil, fmt.Errorf("creating rounds.csv: %w", err)
	}
	om.roundsFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteResult appends one aggregated run record to results.csv.
func (om *OutputManager) WriteResult(r ResultCSV) error {
	if om == nil {
		return nil
	}

	records := []ResultCSV{r}
	if !om.resultsHeaderWritten {
		if err := gocsv.Marshal(records, om.resultsFile); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		om.resultsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.resultsFile); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

// WriteRound appends one per-round record to rounds.csv.
func (om *OutputManager) WriteRound(r RoundCSV) error {
	if om == nil {
		return nil
	}

	records := []RoundCSV{r}
	if !om.roundsHeaderWritten {
		if err := gocsv.Marshal(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
		om.roundsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.resultsFile != nil {
		if err := om.resultsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.roundsFile != nil {
		if err := om.roundsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
