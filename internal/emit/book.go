// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/bookpress/pkg/types"
)

const bookFile = "book.xml"

// Default document type identifier pair for the entity-style master
// file.
const (
	DefaultPublicID = "-//RIS Dev//DTD DocBook V4.3 -Based Variant V1.1//EN"
	DefaultSystemID = "http://LOCALHOST/dtd/V1.1/RittDocBook.dtd"
)

// bookNamespace is the temporary namespace for the href-style master
// file until the final schema is supplied.
const bookNamespace = "urn:ris:r2"

// WriteBook writes the master book file referencing every chapter file
// in order and returns its filename. The entity style declares an
// external entity per chapter and inlines them by substitution; the
// href style links chapters by filename and needs no entity
// declarations.
func WriteBook(dir string, cfg types.EmitConfig, info types.BookInfo, chapters []string) (string, error) {
	var content string
	switch cfg.Style {
	case types.StyleHref:
		content = hrefBook(info, chapters)
	default:
		content = entityBook(cfg, info, chapters)
	}

	if err := os.WriteFile(filepath.Join(dir, bookFile), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", bookFile, err)
	}
	return bookFile, nil
}

func entityBook(cfg types.EmitConfig, info types.BookInfo, chapters []string) string {
	publicID := cfg.PublicID
	if publicID == "" {
		publicID = DefaultPublicID
	}
	systemID := cfg.SystemID
	if systemID == "" {
		systemID = DefaultSystemID
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, "<!DOCTYPE book PUBLIC %q\n  %q [\n", publicID, systemID)
	for _, ch := range chapters {
		fmt.Fprintf(&b, "  <!ENTITY %s SYSTEM %q>\n", strings.TrimSuffix(ch, ".xml"), ch)
	}
	b.WriteString("]>\n<book>\n")

	b.WriteString("  <bookinfo>\n")
	writeInfoField(&b, "title", info.Title)
	writeInfoField(&b, "author", info.Author)
	writeInfoField(&b, "isbn", info.ISBN)
	writeInfoField(&b, "publisher", info.Publisher)
	b.WriteString("  </bookinfo>\n")

	for _, ch := range chapters {
		fmt.Fprintf(&b, "  &%s;\n", strings.TrimSuffix(ch, ".xml"))
	}
	b.WriteString("</book>\n")
	return b.String()
}

func hrefBook(info types.BookInfo, chapters []string) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, "<book xmlns=%q>\n", bookNamespace)

	b.WriteString("  <bookinfo>\n")
	writeInfoField(&b, "isbn", info.ISBN)
	writeInfoField(&b, "title", info.Title)
	writeInfoField(&b, "author", info.Author)
	writeInfoField(&b, "publisher", info.Publisher)
	fmt.Fprintf(&b, "    <created>%s</created>\n", time.Now().UTC().Format(time.RFC3339))
	b.WriteString("  </bookinfo>\n")

	b.WriteString("  <contents>\n")
	for _, ch := range chapters {
		fmt.Fprintf(&b, "    <chapterref href=%q/>\n", ch)
	}
	b.WriteString("  </contents>\n</book>\n")
	return b.String()
}

func writeInfoField(b *strings.Builder, tag, value string) {
	if value != "" {
		fmt.Fprintf(b, "    <%s>%s</%s>\n", tag, Escape(value), tag)
	}
}
