// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// validationLog is the per-book record of well-formedness failures.
const validationLog = "validation.log"

// Wellformed scans the file at path as XML and returns the first parse
// error, if any. The master file declares external entities the scanner
// cannot resolve locally, so strict is false for it; chapter files are
// scanned strictly.
func Wellformed(path string, strict bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	dec.Strict = strict
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ValidateBook checks the emitted tree for well-formedness and writes
// any failures to validation.log in dir. Failures indicate escaping bugs or
// unexpected source content; they are logged for the operator, never
// auto-corrected, and never block packaging. Returns the failure count.
func ValidateBook(dir string, m Manifest) (int, error) {
	var lines []string

	if err := Wellformed(filepath.Join(dir, m.Book), false); err != nil {
		lines = append(lines, fmt.Sprintf("%s: %v", m.Book, err))
	}
	for _, ch := range m.Chapters {
		if err := Wellformed(filepath.Join(dir, ch), true); err != nil {
			lines = append(lines, fmt.Sprintf("%s: %v", ch, err))
		}
	}

	if len(lines) == 0 {
		return 0, nil
	}

	log := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, validationLog), []byte(log), 0o644); err != nil {
		return len(lines), fmt.Errorf("writing %s: %w", validationLog, err)
	}
	return len(lines), nil
}
