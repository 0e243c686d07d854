// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/bookpress/pkg/types"
)

// ReportFile is the batch report filename under the output root.
const ReportFile = "batch_report.csv"

// WriteReport writes the outcome table to path as CSV, one row per
// input file. The report is written once, after the whole batch, and is
// the single source of truth for batch outcomes.
func WriteReport(path string, outcomes []types.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"file", "type", "status", "clean_xml", "book"}); err != nil {
		return err
	}
	for _, o := range outcomes {
		if err := w.Write([]string{o.File, o.Type, o.Status, o.CleanXML, o.Book}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
