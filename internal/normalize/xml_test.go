// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookpress/pkg/types"
)

func TestWriteParseRoundTrip(t *testing.T) {
	doc := types.Document{
		Meta: types.Metadata{
			"title":     "Drugs & Dosages <2025>",
			"creator":   "S. Malamed",
			"publisher": "Test House",
		},
		Sections: []types.Section{
			{Title: "Chapter One", Paragraphs: []string{"First.", "Second & third."}},
			{Title: "", Paragraphs: []string{"Untitled front matter."}},
			{Title: "Appendix"},
		},
	}

	path := filepath.Join(t.TempDir(), "clean.xml")
	require.NoError(t, WriteXML(doc, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := ParseXML(f)
	require.NoError(t, err)

	assert.Equal(t, doc.Meta, got.Meta)
	require.Len(t, got.Sections, 3)
	for i := range doc.Sections {
		assert.Equal(t, doc.Sections[i].Title, got.Sections[i].Title)
		assert.Equal(t, doc.Sections[i].Paragraphs, got.Sections[i].Paragraphs)
	}
}

func TestWriteXMLEscapes(t *testing.T) {
	doc := types.Document{
		Sections: []types.Section{
			{Title: "AT&T <guide>", Paragraphs: []string{"1 < 2 > 0 & done"}},
		},
	}

	path := filepath.Join(t.TempDir(), "clean.xml")
	require.NoError(t, WriteXML(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "AT&amp;T")
	assert.NotContains(t, content, "<guide>")
	assert.True(t, strings.HasPrefix(content, "<?xml"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "book", Stem("/input/book.pdf"))
	assert.Equal(t, "my.book", Stem("my.book.epub"))
	assert.Equal(t, "plain", Stem("plain"))
}
