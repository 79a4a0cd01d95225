package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/kriolyth/gv-subway/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir      string
	runFile  *os.File
	visitFile *os.File

	runHeaderWritten   bool
	visitHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	runPath := filepath.Join(dir, "runs.csv")
	f, err := os.Create(runPath)
	if err != nil {
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}
	om.runFile = f

	visitPath := filepath.Join(dir, "visited.csv")
	f, err = os.Create(visitPath)
	if err != nil {
		om.runFile.Close()
		return nil, fmt.Errorf("creating visited.csv: %w", err)
	}
	om.visitFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRun appends a run summary record to runs.csv.
func (om *OutputManager) WriteRun(r RunRecord) error {
	if om == nil {
		return nil
	}

	records := []RunRecord{r}
	if !om.runHeaderWritten {
		if err := gocsv.Marshal(records, om.runFile); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
		om.runHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.runFile); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
	}
	return nil
}

// WriteVisited appends a batch of visited-probability snapshot rows to
// visited.csv, typically the final lattice state of one run.
func (om *OutputManager) WriteVisited(rows []VisitedRecord) error {
	if om == nil || len(rows) == 0 {
		return nil
	}

	if !om.visitHeaderWritten {
		if err := gocsv.Marshal(rows, om.visitFile); err != nil {
			return fmt.Errorf("writing visited snapshot: %w", err)
		}
		om.visitHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, om.visitFile); err != nil {
			return fmt.Errorf("writing visited snapshot: %w", err)
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
	if om.runFile != nil {
		if err := om.runFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.visitFile != nil {
		if err := om.visitFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
