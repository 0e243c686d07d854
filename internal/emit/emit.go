// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit serializes a normalized Document into the externalized
// book layout: one chapter file per section plus a master book.xml that
// references chapters by positional identifier.
package emit

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/bookpress/pkg/types"
)

// escaper rewrites the XML-reserved characters in text content.
// Escaping is mandatory and unconditional; emitting raw &, < or > is a
// contract violation, not a recoverable condition.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape returns t with XML-reserved characters replaced.
func Escape(t string) string {
	return escaper.Replace(t)
}

// ChapterID returns the stable positional identifier for section idx:
// zero-padded four digits starting at ch0000, collision-free and
// sortable for up to 10,000 chapters.
func ChapterID(idx int) string {
	return fmt.Sprintf("ch%04d", idx)
}

// Book writes the chapter files, master book file and manifest for doc
// under dir, returning the manifest describing what was written. A
// document with zero sections still emits one generically-titled
// chapter, so every successfully processed input yields at least one
// chapter file and one master file.
func Book(dir, source, srcType string, doc types.Document, cfg types.EmitConfig) (Manifest, error) {
	sections := doc.Sections
	if len(sections) == 0 {
		sections = []types.Section{{Title: "Chapter 0"}}
	}

	chapters := make([]string, 0, len(sections))
	for i, sec := range sections {
		if sec.Title == "" {
			sec.Title = fmt.Sprintf("Section %d", i)
		}
		name, err := WriteChapter(dir, i, sec)
		if err != nil {
			return Manifest{}, err
		}
		chapters = append(chapters, name)
	}

	info := bookInfo(doc.Meta, cfg)
	book, err := WriteBook(dir, cfg, info, chapters)
	if err != nil {
		return Manifest{}, err
	}

	m := Manifest{
		Source:   source,
		Type:     srcType,
		Meta:     doc.Meta,
		Chapters: chapters,
		Book:     book,
		Created:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := WriteManifest(dir, m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// bookInfo resolves the bookinfo fields: explicit configuration wins,
// then document metadata, then the configured default publisher.
func bookInfo(meta types.Metadata, cfg types.EmitConfig) types.BookInfo {
	info := cfg.Info
	if info.Title == "" {
		info.Title = meta["title"]
	}
	if info.Author == "" {
		info.Author = meta["creator"]
	}
	if info.ISBN == "" {
		info.ISBN = meta["identifier"]
	}
	if info.Publisher == "" {
		info.Publisher = meta["publisher"]
	}
	if info.Publisher == "" {
		info.Publisher = cfg.DefaultPublisher
	}
	return info
}
