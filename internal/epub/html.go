// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package epub

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/bookpress/pkg/types"
)

// ExtractSection turns one spine fragment into exactly one section.
// Title is the text of the first h1 or h2 in document order; paragraphs
// are the text of every p element, whitespace-collapsed, with empty ones
// excluded. A fragment with no headings or paragraphs still yields a
// section, so spine-file granularity survives (a fragment may be a
// half-page title page).
func ExtractSection(fragment []byte) types.Section {
	doc, err := html.Parse(bytes.NewReader(fragment))
	if err != nil {
		return types.Section{}
	}

	var sec types.Section
	titleSet := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2":
				if !titleSet {
					sec.Title = textContent(n)
					titleSet = true
				}
				return
			case "p":
				if text := textContent(n); text != "" {
					sec.Paragraphs = append(sec.Paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sec
}

// textContent collects the text nodes under n with inter-word whitespace
// collapsed to single spaces.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
