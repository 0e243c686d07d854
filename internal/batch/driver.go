// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the conversion pipeline over an input directory
// and aggregates per-file outcomes. Processing is sequential; each
// file's artifacts are isolated to its own output directory, and no
// failure in one file aborts the rest of the batch.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/bookpress/internal/emit"
	"github.com/pdiddy/bookpress/internal/normalize"
	"github.com/pdiddy/bookpress/internal/pdftext"
	"github.com/pdiddy/bookpress/pkg/types"
)

// Run processes every entry in cfg.Batch.InputDir in name order,
// printing per-file status lines to w, and returns one outcome per
// entry. Directories are ignored; unrecognized extensions are recorded
// as skipped.
func Run(cfg types.PipelineConfig, tool normalize.Extractor, w io.Writer) ([]types.Outcome, error) {
	entries, err := os.ReadDir(cfg.Batch.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}
	if err := os.MkdirAll(cfg.Batch.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var outcomes []types.Outcome
	counts := map[string]int{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		row := convertOne(cfg, tool, entry.Name())
		outcomes = append(outcomes, row)

		switch row.Status {
		case types.StatusOK, types.StatusNeedsManual, types.StatusSkipped:
			counts[row.Status]++
		default:
			counts["error"]++
		}
		fmt.Fprintf(w, "%s: %s\n", row.File, row.Status)
	}

	fmt.Fprintf(w, "\nBatch summary: %d ok, %d manual, %d skipped, %d failed (total: %d)\n",
		counts[types.StatusOK], counts[types.StatusNeedsManual],
		counts[types.StatusSkipped], counts["error"], len(outcomes))
	return outcomes, nil
}

// convertOne runs the full pipeline for a single input file. Every
// failure is converted into an error row here, at the driver boundary.
func convertOne(cfg types.PipelineConfig, tool normalize.Extractor, name string) types.Outcome {
	ext := strings.ToLower(filepath.Ext(name))
	srcType := strings.TrimPrefix(ext, ".")
	if ext != ".pdf" && ext != ".epub" {
		return types.Outcome{File: name, Type: srcType, Status: types.StatusSkipped}
	}

	path := filepath.Join(cfg.Batch.InputDir, name)

	var src normalize.Source
	if ext == ".pdf" {
		// Probe before creating any per-book output: a scanned input
		// must leave no artifacts behind.
		if tool.LooksScanned(path, cfg.Batch.OutDir) {
			return types.Outcome{File: name, Type: srcType, Status: types.StatusNeedsManual}
		}
	}

	stem := normalize.Stem(name)
	bookDir := filepath.Join(cfg.Batch.OutDir, stem)
	if err := os.MkdirAll(bookDir, 0o755); err != nil {
		return errRow(name, srcType, err)
	}

	if ext == ".pdf" {
		src = &normalize.PDFSource{
			Tool:       tool,
			Classifier: classifier(cfg.Extract),
			Path:       path,
			WorkDir:    bookDir,
		}
	} else {
		src = &normalize.EPUBSource{Path: path}
	}

	doc, err := src.Document()
	if err != nil {
		return errRow(name, srcType, err)
	}

	// ".clean" keeps the intermediate from colliding with the master
	// book.xml when the input stem is itself "book".
	cleanName := stem + ".clean.xml"
	if err := normalize.WriteXML(doc, filepath.Join(bookDir, cleanName)); err != nil {
		return errRow(name, srcType, err)
	}

	m, err := emit.Book(bookDir, name, srcType, doc, cfg.Emit)
	if err != nil {
		return errRow(name, srcType, err)
	}

	// Well-formedness failures land in validation.log; they do not fail
	// the file and never block packaging.
	if _, err := emit.ValidateBook(bookDir, m); err != nil {
		return errRow(name, srcType, err)
	}

	if cfg.Batch.Package {
		if _, err := Package(bookDir); err != nil {
			return errRow(name, srcType, err)
		}
	}

	return types.Outcome{
		File:     name,
		Type:     srcType,
		Status:   types.StatusOK,
		CleanXML: cleanName,
		Book:     m.Book,
	}
}

func errRow(name, srcType string, err error) types.Outcome {
	return types.Outcome{File: name, Type: srcType, Status: "error: " + err.Error()}
}

// classifier builds the configured heading heuristic for the PDF path.
func classifier(cfg types.ExtractConfig) pdftext.Classifier {
	if cfg.Classifier == types.ClassifierPattern {
		pattern := pdftext.DefaultHeadingPattern
		if cfg.HeadingPattern != "" {
			if p, err := regexp.Compile(cfg.HeadingPattern); err == nil {
				pattern = p
			}
		}
		return pdftext.PatternClassifier{Pattern: pattern}
	}

	threshold := cfg.HeadingThreshold
	if threshold <= 0 {
		threshold = pdftext.DefaultHeadingThreshold
	}
	return pdftext.SizeClassifier{Threshold: threshold}
}
