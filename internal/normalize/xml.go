// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/bookpress/pkg/types"
)

// The intermediate form is a contract between the normalizer and the
// emitter only: <document><meta>…</meta><section><title/><p/>…</section>…
// </document>. What matters is that metadata, section order, titles and
// paragraph order round-trip.

type xmlDocument struct {
	XMLName  xml.Name     `xml:"document"`
	Meta     *xmlMeta     `xml:"meta,omitempty"`
	Sections []xmlSection `xml:"section"`
}

// xmlMeta carries the fixed Dublin Core field set.
type xmlMeta struct {
	Title      string `xml:"title,omitempty"`
	Creator    string `xml:"creator,omitempty"`
	Publisher  string `xml:"publisher,omitempty"`
	Identifier string `xml:"identifier,omitempty"`
	Language   string `xml:"language,omitempty"`
	Date       string `xml:"date,omitempty"`
	Subject    string `xml:"subject,omitempty"`
}

type xmlSection struct {
	Title      string   `xml:"title"`
	Paragraphs []string `xml:"p"`
}

// WriteXML writes the normalized intermediate form of doc to path.
// encoding/xml escapes all text content, so reserved characters in the
// source can never produce malformed output here.
func WriteXML(doc types.Document, path string) error {
	data, err := xml.MarshalIndent(toXML(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling normalized document: %w", err)
	}
	return os.WriteFile(path, append([]byte(xml.Header), append(data, '\n')...), 0o644)
}

// ParseXML reads the intermediate form back into a Document.
func ParseXML(r io.Reader) (types.Document, error) {
	var xd xmlDocument
	if err := xml.NewDecoder(r).Decode(&xd); err != nil {
		return types.Document{}, fmt.Errorf("parsing normalized document: %w", err)
	}
	return fromXML(xd), nil
}

func toXML(doc types.Document) xmlDocument {
	xd := xmlDocument{}
	if len(doc.Meta) > 0 {
		xd.Meta = &xmlMeta{
			Title:      doc.Meta["title"],
			Creator:    doc.Meta["creator"],
			Publisher:  doc.Meta["publisher"],
			Identifier: doc.Meta["identifier"],
			Language:   doc.Meta["language"],
			Date:       doc.Meta["date"],
			Subject:    doc.Meta["subject"],
		}
	}
	for _, sec := range doc.Sections {
		xd.Sections = append(xd.Sections, xmlSection{
			Title:      sec.Title,
			Paragraphs: sec.Paragraphs,
		})
	}
	return xd
}

func fromXML(xd xmlDocument) types.Document {
	doc := types.Document{}
	if xd.Meta != nil {
		meta := types.Metadata{}
		for key, val := range map[string]string{
			"title":      xd.Meta.Title,
			"creator":    xd.Meta.Creator,
			"publisher":  xd.Meta.Publisher,
			"identifier": xd.Meta.Identifier,
			"language":   xd.Meta.Language,
			"date":       xd.Meta.Date,
			"subject":    xd.Meta.Subject,
		} {
			if val != "" {
				meta[key] = val
			}
		}
		if len(meta) > 0 {
			doc.Meta = meta
		}
	}
	for _, sec := range xd.Sections {
		doc.Sections = append(doc.Sections, types.Section{
			Title:      sec.Title,
			Paragraphs: sec.Paragraphs,
		})
	}
	return doc
}
