// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converges the format-specific readers onto the
// shared Document model and handles the intermediate XML form.
package normalize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bookpress/internal/epub"
	"github.com/pdiddy/bookpress/internal/pdftext"
	"github.com/pdiddy/bookpress/pkg/types"
)

// Source produces one normalized Document from a single input file.
// Both format paths implement it; everything downstream of a Source is
// format-agnostic.
type Source interface {
	Document() (types.Document, error)
}

// Extractor is the external PDF extraction surface PDFSource needs.
// *poppler.Tool satisfies it; tests substitute fakes.
type Extractor interface {
	ExtractXML(pdfPath, outPath string) error
	LooksScanned(pdfPath, probeDir string) bool
}

// PDFSource extracts a PDF through the external tool and folds the run
// stream into sections.
type PDFSource struct {
	Tool       Extractor
	Classifier pdftext.Classifier

	// Path is the input PDF; WorkDir receives the layout XML.
	Path    string
	WorkDir string
}

func (s *PDFSource) Document() (types.Document, error) {
	stem := Stem(s.Path)
	layout := filepath.Join(s.WorkDir, stem+".poppler.xml")

	if err := s.Tool.ExtractXML(s.Path, layout); err != nil {
		return types.Document{}, err
	}

	f, err := os.Open(layout)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening layout xml: %w", err)
	}
	defer f.Close()

	runs, err := pdftext.ParseRuns(f)
	if err != nil {
		return types.Document{}, err
	}

	classified := pdftext.ClassifyRuns(s.Classifier, runs)
	return types.Document{
		Meta:     types.Metadata{"title": stem},
		Sections: pdftext.BuildSections(classified),
	}, nil
}

// EPUBSource resolves an EPUB spine into one section per fragment.
type EPUBSource struct {
	Path string
}

func (s *EPUBSource) Document() (types.Document, error) {
	book, err := epub.Read(s.Path)
	if err != nil {
		return types.Document{}, err
	}

	doc := types.Document{
		Meta:     book.Meta,
		Sections: make([]types.Section, 0, len(book.Fragments)),
	}
	for _, fragment := range book.Fragments {
		doc.Sections = append(doc.Sections, epub.ExtractSection(fragment))
	}
	return doc, nil
}

// Stem returns the filename without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
