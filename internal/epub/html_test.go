// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package epub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name      string
		fragment  string
		wantTitle string
		wantParas []string
	}{
		{
			name: "h1 title and paragraphs",
			fragment: `<html><body><h1>Chapter One</h1>
				<p>First paragraph.</p>
				<p>Second   paragraph with
				 a line break.</p></body></html>`,
			wantTitle: "Chapter One",
			wantParas: []string{"First paragraph.", "Second paragraph with a line break."},
		},
		{
			name:      "h2 used when no h1",
			fragment:  `<body><h2>Subhead</h2><p>Text.</p></body>`,
			wantTitle: "Subhead",
			wantParas: []string{"Text."},
		},
		{
			name:      "first heading wins",
			fragment:  `<body><h2>First</h2><h1>Second</h1><p>x</p></body>`,
			wantTitle: "First",
			wantParas: []string{"x"},
		},
		{
			name:      "no heading yields empty title",
			fragment:  `<body><p>Orphan text.</p></body>`,
			wantTitle: "",
			wantParas: []string{"Orphan text."},
		},
		{
			name:      "empty paragraphs excluded",
			fragment:  `<body><h1>T</h1><p>  </p><p>kept</p><p></p></body>`,
			wantTitle: "T",
			wantParas: []string{"kept"},
		},
		{
			name:      "title page with no paragraphs still a section",
			fragment:  `<body><div class="titlepage"><h1>The Book</h1></div></body>`,
			wantTitle: "The Book",
			wantParas: nil,
		},
		{
			name:      "nested markup inside paragraph",
			fragment:  `<body><p>Some <em>emphasized</em> and <b>bold</b> words.</p></body>`,
			wantTitle: "",
			wantParas: []string{"Some emphasized and bold words."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := ExtractSection([]byte(tt.fragment))
			assert.Equal(t, tt.wantTitle, sec.Title)
			assert.Equal(t, tt.wantParas, sec.Paragraphs)
		})
	}
}
