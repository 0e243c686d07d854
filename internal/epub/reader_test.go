// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package epub

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Test Book</dc:title>
    <dc:creator>A. Writer</dc:creator>
    <dc:publisher>Test House</dc:publisher>
    <dc:identifier>urn:isbn:9781234567890</dc:identifier>
    <dc:language>en</dc:language>
  </metadata>
  <manifest>
    <item id="c1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
    <item id="c2" href="ch2.xhtml" media-type="application/xhtml+xml"/>
    <item id="gone" href="missing.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="c1"/>
    <itemref idref="gone"/>
    <itemref idref="c2"/>
    <itemref idref="unknown"/>
  </spine>
</package>`

const testContainer = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// writeEPUB builds a minimal EPUB archive on disk from name→content pairs.
func writeEPUB(t *testing.T, entries map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "test.epub")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func validEPUB(t *testing.T) string {
	return writeEPUB(t, map[string]string{
		"mimetype":               "application/epub+zip",
		"META-INF/container.xml": testContainer,
		"OEBPS/content.opf":      testOPF,
		"OEBPS/ch1.xhtml":        `<html><body><h1>One</h1><p>First.</p></body></html>`,
		"OEBPS/ch2.xhtml":        `<html><body><h1>Two</h1><p>Second.</p></body></html>`,
	})
}

func TestRead(t *testing.T) {
	book, err := Read(validEPUB(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Book", book.Meta["title"])
	assert.Equal(t, "A. Writer", book.Meta["creator"])
	assert.Equal(t, "Test House", book.Meta["publisher"])
	assert.Equal(t, "urn:isbn:9781234567890", book.Meta["identifier"])
	assert.Equal(t, "en", book.Meta["language"])
	assert.NotContains(t, book.Meta, "date", "absent fields are omitted")
	assert.NotContains(t, book.Meta, "subject")

	// Missing and unresolvable spine entries are skipped, order kept.
	require.Len(t, book.Fragments, 2)
	assert.Contains(t, string(book.Fragments[0]), "First.")
	assert.Contains(t, string(book.Fragments[1]), "Second.")
}

func TestReadSectionPerFragment(t *testing.T) {
	book, err := Read(validEPUB(t))
	require.NoError(t, err)

	for i, frag := range book.Fragments {
		sec := ExtractSection(frag)
		assert.NotEmpty(t, sec.Title, "fragment %d should carry its heading", i)
	}
}

func TestReadMissingContainer(t *testing.T) {
	path := writeEPUB(t, map[string]string{
		"mimetype": "application/epub+zip",
	})

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container.xml")
}

func TestReadNoRootfile(t *testing.T) {
	path := writeEPUB(t, map[string]string{
		"META-INF/container.xml": `<container><rootfiles></rootfiles></container>`,
	})

	_, err := Read(path)
	assert.ErrorIs(t, err, ErrNoRootfile)
}

func TestReadMissingOPF(t *testing.T) {
	path := writeEPUB(t, map[string]string{
		"META-INF/container.xml": testContainer,
	})

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package document")
}

func TestReadNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.epub")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadOPFAtArchiveRoot(t *testing.T) {
	path := writeEPUB(t, map[string]string{
		"META-INF/container.xml": `<container><rootfiles>
			<rootfile full-path="content.opf"/></rootfiles></container>`,
		"content.opf": `<package><metadata><title>Rootless</title></metadata>
			<manifest><item id="c1" href="ch1.xhtml"/></manifest>
			<spine><itemref idref="c1"/></spine></package>`,
		"ch1.xhtml": `<html><body><p>At the root.</p></body></html>`,
	})

	book, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Rootless", book.Meta["title"])
	require.Len(t, book.Fragments, 1)
}
