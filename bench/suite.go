// Package bench walks a directory of configuration files and runs each
// one, reporting wall-clock time per algorithm/layout combination —
// the same compare-many-configurations-and-report shape as the teacher's
// eval package, applied to the engine/layout combinatorics instead of
// model-output accuracy.
package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spatialmodel/lbm/config"
	"github.com/spatialmodel/lbm/sim"
)

// Entry is one config file's benchmark outcome.
type Entry struct {
	Path     string
	Data     *config.Data
	Duration time.Duration
	Err      error
}

// Suite runs every *.csv file in dir through sim.Run and times it.
// A config file that fails to parse or run is recorded with Err set
// rather than aborting the whole suite, so one bad configuration does
// not hide the results of the rest.
func Suite(dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("bench: globbing %s: %w", dir, err)
	}
	sort.Strings(paths)

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, runOne(path))
	}
	return entries, nil
}

func runOne(path string) Entry {
	d, err := config.Load(path)
	if err != nil {
		return Entry{Path: path, Err: err}
	}
	start := time.Now()
	_, err = sim.Run(d, nil)
	return Entry{Path: path, Data: d, Duration: time.Since(start), Err: err}
}

// Report writes a one-line-per-entry summary to w.
func Report(w *os.File, entries []Entry) {
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(w, "%-40s FAILED: %v\n", e.Path, e.Err)
			continue
		}
		fmt.Fprintf(w, "%-40s algorithm=%-28s layout=%-10s %v\n",
			e.Path, e.Data.Algorithm, e.Data.Layout, e.Duration)
	}
}
