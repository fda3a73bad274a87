package drinklabels

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/parser"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/reference"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/tables"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/zones"
)

// Build reads an order export and runs the full pipeline over it.
func Build(ctx context.Context, path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	ref, err := opts.reference()
	if err != nil {
		return nil, NewStageError("reference", err)
	}

	records, err := parser.ReadFile(path, ref, opts.Sheet)
	if err != nil {
		return nil, NewStageError("read", err)
	}

	result, err := Process(ctx, records, ref, opts)
	if err != nil {
		return nil, err
	}
	result.Source = filepath.Base(path)
	return result, nil
}

// Process runs the pipeline over records that have already been read.
func Process(ctx context.Context, records []models.RawRecord, ref *reference.Data, opts Options) (*models.Result, error) {
	log := opts.logger()
	result := &models.Result{}

	outcomes, err := parser.ParseRows(ctx, records, ref, opts.workers())
	if err != nil {
		return nil, NewStageError("parse", err)
	}

	orders := make([]models.TableOrder, 0, len(outcomes))
	for _, oc := range outcomes {
		if oc.Err != nil {
			if opts.Strict {
				return nil, NewStageError("parse", oc.Err)
			}
			log.Warn("skipping row", "error", oc.Err)
			var rowErr *parser.RowError
			if errors.As(oc.Err, &rowErr) {
				result.Skipped = append(result.Skipped, rowErr.Failure())
			}
			continue
		}
		for _, d := range oc.Dropped {
			if d.Field == models.FieldPax {
				result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: pax %q is not a number, counted as 0", d.Line, d.Text))
				continue
			}
			log.Debug("dropped item", "line", d.Line, "category", d.Category, "text", d.Text, "reason", d.Reason)
		}
		result.Dropped = append(result.Dropped, oc.Dropped...)
		orders = append(orders, oc.Order)
	}
	log.Info("parsed rows", "rows", len(records), "orders", len(orders), "skipped", len(result.Skipped), "dropped_items", len(result.Dropped))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Sorting happens exactly once, here; Merge relies on it.
	merged := tables.Merge(tables.SortByNumber(orders))
	result.Tables = tables.AttachGlassware(merged, ref.Glassware)
	result.Zones = zones.Aggregate(ref.Zones, result.Tables)
	result.GlasswareTotals = tables.GlasswareTotals(ref.Glassware)
	log.Info("merged tables", "tables", len(result.Tables), "zones", len(result.Zones))

	result.Warnings = append(result.Warnings, coverageWarnings(ref, result.Tables)...)
	for _, w := range result.Warnings {
		log.Warn(w)
	}
	return result, nil
}

// coverageWarnings reports expected tables no zone covers and ordered
// tables that fall outside every zone.
func coverageWarnings(ref *reference.Data, orders []models.TableOrder) []string {
	var warnings []string
	if gaps := zones.Uncovered(ref.Zones, ref.ExpectTables); len(gaps) > 0 {
		warnings = append(warnings, fmt.Sprintf("zone table does not cover tables %v", gaps))
	}
	for _, o := range orders {
		if zones.Find(ref.Zones, o.Number) < 0 {
			warnings = append(warnings, fmt.Sprintf("table %s (line %d) is outside every zone; its drinks are on no crate", o.Label, o.Line))
		}
	}
	return warnings
}
