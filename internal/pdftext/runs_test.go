// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const popplerSample = `<?xml version="1.0" encoding="UTF-8"?>
<pdf2xml producer="poppler" version="25.07.0">
<page number="1" height="1188" width="918">
  <fontspec id="0" size="18" family="Times" color="#000000"/>
  <text top="100" left="108" width="300" height="20" font="0" size="18.2">Chapter One</text>
  <text top="140" left="108" width="400" height="14" font="1" size="11.5">It was the best of <i>times</i>.</text>
  <text top="160" left="108" width="400" height="14" font="1" size="11.5">   </text>
</page>
<page number="2" height="1188" width="918">
  <text top="90" left="108" width="200" height="14" font="1" size="11.5">A second page.</text>
</page>
</pdf2xml>
`

func TestParseRuns(t *testing.T) {
	runs, err := ParseRuns(strings.NewReader(popplerSample))
	require.NoError(t, err)

	require.Len(t, runs, 3, "whitespace-only runs must be dropped")

	assert.Equal(t, "Chapter One", runs[0].Text)
	assert.InDelta(t, 18.2, runs[0].FontSize, 0.001)
	assert.Equal(t, 0, runs[0].Page)

	assert.Equal(t, "It was the best of times.", runs[1].Text,
		"inline markup text must be concatenated")
	assert.InDelta(t, 11.5, runs[1].FontSize, 0.001)

	assert.Equal(t, "A second page.", runs[2].Text)
	assert.Equal(t, 1, runs[2].Page)
}

func TestParseRunsEmptyDocument(t *testing.T) {
	runs, err := ParseRuns(strings.NewReader(`<pdf2xml></pdf2xml>`))
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestParseRunsMalformed(t *testing.T) {
	_, err := ParseRuns(strings.NewReader(`<pdf2xml><page><text size="12">oops`))
	assert.Error(t, err)
}

func TestParseRunsMissingSize(t *testing.T) {
	runs, err := ParseRuns(strings.NewReader(
		`<pdf2xml><page><text>no size attribute</text></page></pdf2xml>`))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Zero(t, runs[0].FontSize)
}
