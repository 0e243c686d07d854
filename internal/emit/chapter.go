// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bookpress/pkg/types"
)

// WriteChapter writes one chapter file for section idx and returns its
// filename. The file carries the title (when non-empty) and one para
// element per non-empty paragraph, all text escaped.
func WriteChapter(dir string, idx int, sec types.Section) (string, error) {
	name := ChapterID(idx) + ".xml"

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString("<chapter>\n")
	if sec.Title != "" {
		fmt.Fprintf(&b, "  <title>%s</title>\n", Escape(sec.Title))
	}
	for _, p := range sec.Paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			fmt.Fprintf(&b, "  <para>%s</para>\n", Escape(p))
		}
	}
	b.WriteString("</chapter>\n")

	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing chapter %s: %w", name, err)
	}
	return name, nil
}
