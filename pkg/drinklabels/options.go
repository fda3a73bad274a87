// Package drinklabels turns a drink-order spreadsheet export into table
// orders, zone crate totals and glassware requirements.
package drinklabels

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/reference"
)

// Options configures a pipeline run.
type Options struct {
	// Reference is the catalog, zone and glassware data.
	// If nil, the embedded default is used.
	Reference *reference.Data
	// Sheet selects the worksheet of an XLSX input (default: first sheet).
	Sheet string
	// Strict aborts the run on the first row that cannot be parsed.
	// Otherwise such rows are skipped and reported in the result.
	Strict bool
	// Workers bounds the number of rows parsed concurrently.
	// Zero means runtime.NumCPU().
	Workers int
	// Logger receives progress and diagnostics. If nil, output is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) reference() (*reference.Data, error) {
	if o.Reference != nil {
		return o.Reference, nil
	}
	return reference.Default()
}
