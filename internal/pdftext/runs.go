// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext turns Poppler layout XML into a normalized section
// sequence. The run parser and the section fold are pure data
// transformations; the heading heuristic between them is swappable.
package pdftext

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TextRun is one extracted span of text with its font size, in reading
// order. Runs are transient: produced per page, consumed immediately by
// the classifier.
type TextRun struct {
	Text     string
	FontSize float64
	Page     int
}

// ParseRuns decodes Poppler layout XML (<page><text size="..">...) into
// the ordered run sequence. Text elements may nest inline markup (<b>,
// <i>, <a>); all character data inside a text element is concatenated.
// Runs whose text trims to empty are dropped so they can never become
// spurious empty sections.
func ParseRuns(r io.Reader) ([]TextRun, error) {
	dec := xml.NewDecoder(r)

	var runs []TextRun
	page := -1
	depth := 0 // nesting depth inside the current <text> element
	var size float64
	var buf strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return runs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing extraction output: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case depth > 0:
				depth++
			case t.Name.Local == "page":
				page++
			case t.Name.Local == "text":
				depth = 1
				size = 0
				buf.Reset()
				for _, a := range t.Attr {
					if a.Name.Local == "size" {
						size, _ = strconv.ParseFloat(a.Value, 64)
					}
				}
			}
		case xml.CharData:
			if depth > 0 {
				buf.Write(t)
			}
		case xml.EndElement:
			if depth > 0 {
				depth--
				if depth == 0 {
					if text := strings.TrimSpace(buf.String()); text != "" {
						runs = append(runs, TextRun{Text: text, FontSize: size, Page: page})
					}
				}
			}
		}
	}
}
