// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"strings"

	"github.com/pdiddy/bookpress/pkg/types"
)

// BuildSections folds the classified run sequence into the ordered
// section list. A heading commits the pending section and opens a new
// one; body runs accumulate as paragraphs. Consecutive headings yield a
// title-only section, and body text before the first heading yields a
// section with an empty title. Empty titles are defaulted at emission,
// not here.
func BuildSections(runs []ClassifiedRun) []types.Section {
	var sections []types.Section
	var paragraphs []string
	title := ""
	titleSet := false

	commit := func() {
		sections = append(sections, types.Section{
			Title:      collapseSpace(title),
			Paragraphs: paragraphs,
		})
		paragraphs = nil
	}

	for _, r := range runs {
		if r.Kind == Heading {
			if titleSet || len(paragraphs) > 0 {
				commit()
			}
			title = r.Text
			titleSet = true
			continue
		}
		paragraphs = append(paragraphs, r.Text)
	}

	if titleSet || len(paragraphs) > 0 {
		commit()
	}
	return sections
}

// collapseSpace collapses internal whitespace runs to single spaces and
// trims.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
