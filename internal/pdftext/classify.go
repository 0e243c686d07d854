// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"regexp"
	"strings"
)

// RunKind classifies a run as a section boundary or body text.
type RunKind int

const (
	Body RunKind = iota
	Heading
)

// ClassifiedRun is a run after heading classification.
type ClassifiedRun struct {
	Kind RunKind
	Text string
}

// Classifier decides whether a single run opens a new section. Pure and
// stateless; classification of one run never depends on another.
type Classifier interface {
	Classify(run TextRun) RunKind
}

// DefaultHeadingThreshold is the default minimum font size for a run to
// count as a heading.
const DefaultHeadingThreshold = 14.0

// SizeClassifier marks runs at or above the font-size threshold as
// headings.
type SizeClassifier struct {
	Threshold float64
}

func (c SizeClassifier) Classify(run TextRun) RunKind {
	threshold := c.Threshold
	if threshold <= 0 {
		threshold = DefaultHeadingThreshold
	}
	if run.FontSize >= threshold {
		return Heading
	}
	return Body
}

// DefaultHeadingPattern matches "Chapter N" lines (any case) and long
// runs of capitals and punctuation. Running headers and footers can
// match it too; treat this as a tunable heuristic, not a guaranteed
// contract.
var DefaultHeadingPattern = regexp.MustCompile(`^(?:(?i:chapter\s+\d+)|[A-Z0-9 ,.'/-]{8,})$`)

// PatternClassifier marks runs whose trimmed text matches the pattern as
// headings. A nil Pattern uses DefaultHeadingPattern.
type PatternClassifier struct {
	Pattern *regexp.Regexp
}

func (c PatternClassifier) Classify(run TextRun) RunKind {
	pattern := c.Pattern
	if pattern == nil {
		pattern = DefaultHeadingPattern
	}
	if pattern.MatchString(strings.TrimSpace(run.Text)) {
		return Heading
	}
	return Body
}

// ClassifyRuns applies c to every run in order.
func ClassifyRuns(c Classifier, runs []TextRun) []ClassifiedRun {
	out := make([]ClassifiedRun, len(runs))
	for i, r := range runs {
		out[i] = ClassifiedRun{Kind: c.Classify(r), Text: r.Text}
	}
	return out
}
