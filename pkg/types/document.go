// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the conversion pipeline.
package types

// MetadataKeys lists the Dublin Core fields carried through the pipeline,
// in emission order.
var MetadataKeys = []string{
	"title", "creator", "publisher", "identifier", "language", "date", "subject",
}

// Metadata maps Dublin Core field names to values. Every key is optional;
// absent fields are simply omitted.
type Metadata map[string]string

// Section is the core structural unit of a normalized document: a title
// and the paragraphs under it, in reading order. The title may be empty
// until emission, where a placeholder label is substituted.
type Section struct {
	Title      string
	Paragraphs []string
}

// Document is the single normalized form both source formats converge to.
// It is built once per input file and immutable afterwards.
type Document struct {
	Meta     Metadata
	Sections []Section
}

// Outcome is one row of the batch report.
type Outcome struct {
	// File is the input filename (base name, not path).
	File string

	// Type is the detected input type ("pdf", "epub", or the raw
	// extension for skipped entries).
	Type string

	// Status is "ok", "NeedsManualProcessing", "skipped", or
	// "error: <message>".
	Status string

	// CleanXML is the normalized intermediate XML filename, when produced.
	CleanXML string

	// Book is the master book filename, when produced.
	Book string
}

// Terminal statuses recorded in the batch report.
const (
	StatusOK          = "ok"
	StatusNeedsManual = "NeedsManualProcessing"
	StatusSkipped     = "skipped"
)
