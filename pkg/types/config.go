// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClassifierKind selects the heading detection heuristic for the PDF path.
type ClassifierKind string

const (
	// ClassifierSize marks a run as a heading when its font size meets
	// the configured threshold.
	ClassifierSize ClassifierKind = "size"

	// ClassifierPattern marks a run as a heading when its text matches
	// the configured pattern ("Chapter N" lines, long all-caps runs).
	ClassifierPattern ClassifierKind = "pattern"
)

// ExtractConfig holds settings for the PDF extraction stage.
type ExtractConfig struct {
	// PopplerBin is the pdftohtml executable (name on PATH or full path).
	PopplerBin string `json:"poppler_bin" yaml:"poppler_bin"`

	// HeadingThreshold is the minimum font size for a run to count as a
	// heading (default 14.0).
	HeadingThreshold float64 `json:"heading_threshold" yaml:"heading_threshold"`

	// HeadingPattern overrides the default heading regex for the pattern
	// classifier. This is a tunable heuristic, not a guaranteed contract:
	// running headers and footers can match it.
	HeadingPattern string `json:"heading_pattern,omitempty" yaml:"heading_pattern,omitempty"`

	// Classifier selects the heading heuristic: size or pattern.
	Classifier ClassifierKind `json:"classifier" yaml:"classifier"`
}

// BookStyle selects the master book file's chapter reference mechanism.
type BookStyle string

const (
	// StyleEntity declares an external entity per chapter file and inlines
	// chapters via entity substitution under a fixed DOCTYPE.
	StyleEntity BookStyle = "entity"

	// StyleHref references chapter files with chapterref href attributes
	// and needs no entity declarations.
	StyleHref BookStyle = "href"
)

// BookInfo carries the optional bookinfo fields for the master book file.
// Empty fields fall back to document metadata and are omitted when still
// empty.
type BookInfo struct {
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Author    string `json:"author,omitempty" yaml:"author,omitempty"`
	ISBN      string `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}

// EmitConfig holds settings for the chapter/book emission stage.
type EmitConfig struct {
	// Style selects the book.xml variant: entity or href.
	Style BookStyle `json:"style" yaml:"style"`

	// PublicID and SystemID form the document type identifier pair used
	// by the entity-style master file. Defaults are applied when empty.
	PublicID string `json:"public_id,omitempty" yaml:"public_id,omitempty"`
	SystemID string `json:"system_id,omitempty" yaml:"system_id,omitempty"`

	// DefaultPublisher is substituted when a document carries no
	// publisher metadata.
	DefaultPublisher string `json:"default_publisher,omitempty" yaml:"default_publisher,omitempty"`

	// Info overrides bookinfo fields for every document in the batch
	// (single-file conversions mostly).
	Info BookInfo `json:"info,omitempty" yaml:"info,omitempty"`
}

// BatchConfig holds settings for the batch driver.
type BatchConfig struct {
	// InputDir is the directory enumerated for source files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutDir is the output root; each document gets its own
	// subdirectory under it.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Package controls whether each book directory is zipped after
	// emission.
	Package bool `json:"package" yaml:"package"`
}

// PipelineConfig groups all stage configurations. It is constructed once
// at process start from flags, environment and defaults, and passed
// explicitly; there is no process-wide mutable configuration.
type PipelineConfig struct {
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Emit    EmitConfig    `json:"emit" yaml:"emit"`
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
}
