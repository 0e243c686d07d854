// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/bookpress/pkg/types"
)

// opfPackage mirrors the parts of the package document the pipeline
// needs: Dublin Core metadata, the manifest id→href map, and the spine
// reading order. Field names are unqualified, so both EPUB 2 and 3
// namespaces decode.
type opfPackage struct {
	Metadata opfMetadata `xml:"metadata"`
	Manifest struct {
		Items []opfItem `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		Refs []opfItemRef `xml:"itemref"`
	} `xml:"spine"`
}

type opfMetadata struct {
	Title      []string `xml:"title"`
	Creator    []string `xml:"creator"`
	Publisher  []string `xml:"publisher"`
	Identifier []string `xml:"identifier"`
	Language   []string `xml:"language"`
	Date       []string `xml:"date"`
	Subject    []string `xml:"subject"`
}

type opfItem struct {
	ID   string `xml:"id,attr"`
	Href string `xml:"href,attr"`
}

type opfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// parseOPF reads and decodes the package document. It returns the parsed
// package and the directory hrefs resolve against.
func parseOPF(zr *zip.Reader, opfPath string) (*opfPackage, string, error) {
	data, err := readFile(zr, opfPath)
	if err != nil {
		return nil, "", fmt.Errorf("epub: missing package document %s", opfPath)
	}

	var pkg opfPackage
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, "", fmt.Errorf("epub: invalid package document: %w", err)
	}

	baseDir := path.Dir(opfPath)
	if baseDir == "." {
		baseDir = ""
	}
	return &pkg, baseDir, nil
}

// metadata extracts the fixed Dublin Core field set, first element each.
// Absent fields are omitted, never an error.
func (p *opfPackage) metadata() types.Metadata {
	meta := types.Metadata{}
	fields := map[string][]string{
		"title":      p.Metadata.Title,
		"creator":    p.Metadata.Creator,
		"publisher":  p.Metadata.Publisher,
		"identifier": p.Metadata.Identifier,
		"language":   p.Metadata.Language,
		"date":       p.Metadata.Date,
		"subject":    p.Metadata.Subject,
	}
	for key, vals := range fields {
		if len(vals) > 0 {
			if v := strings.TrimSpace(vals[0]); v != "" {
				meta[key] = v
			}
		}
	}
	return meta
}

// spineHrefs resolves the spine's idrefs through the manifest into
// archive paths, in reading order. Idrefs missing from the manifest are
// dropped; malformed packages are handled best-effort.
func (p *opfPackage) spineHrefs(baseDir string) []string {
	byID := make(map[string]string, len(p.Manifest.Items))
	for _, item := range p.Manifest.Items {
		byID[item.ID] = item.Href
	}

	hrefs := make([]string, 0, len(p.Spine.Refs))
	for _, ref := range p.Spine.Refs {
		href, ok := byID[ref.IDRef]
		if !ok || href == "" {
			continue
		}
		if baseDir != "" {
			href = path.Join(baseDir, href)
		}
		hrefs = append(hrefs, href)
	}
	return hrefs
}
