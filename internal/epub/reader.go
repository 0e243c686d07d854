// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package epub

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/pdiddy/bookpress/pkg/types"
)

// Book holds the spine-resolved content of one EPUB package: metadata
// plus raw XHTML fragments in reading order.
type Book struct {
	Meta      types.Metadata
	Fragments [][]byte
}

// Read opens the EPUB at path and resolves its spine. Spine entries
// whose content is missing from the archive are skipped, never fatal;
// a missing container or package document is.
func Read(path string) (*Book, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("epub: opening archive: %w", err)
	}
	defer zr.Close()
	return read(&zr.Reader)
}

// ReadFrom reads an EPUB package from an io.ReaderAt.
func ReadFrom(ra io.ReaderAt, size int64) (*Book, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("epub: opening archive: %w", err)
	}
	return read(zr)
}

func read(zr *zip.Reader) (*Book, error) {
	opfPath, err := packagePath(zr)
	if err != nil {
		return nil, err
	}

	pkg, baseDir, err := parseOPF(zr, opfPath)
	if err != nil {
		return nil, err
	}

	book := &Book{Meta: pkg.metadata()}
	for _, href := range pkg.spineHrefs(baseDir) {
		content, err := readFile(zr, href)
		if err != nil {
			continue
		}
		book.Fragments = append(book.Fragments, content)
	}
	return book, nil
}
