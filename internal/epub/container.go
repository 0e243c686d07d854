// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package epub reads EPUB packages: container descriptor, OPF manifest
// and spine, Dublin Core metadata, and spine-ordered content fragments.
package epub

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const containerPath = "META-INF/container.xml"

// ErrNoRootfile reports a container descriptor without a usable rootfile
// entry.
var ErrNoRootfile = errors.New("epub: no rootfile in container.xml")

// containerXML mirrors META-INF/container.xml.
type containerXML struct {
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

// packagePath locates the container descriptor and returns the package
// document path it names.
func packagePath(zr *zip.Reader) (string, error) {
	data, err := readFile(zr, containerPath)
	if err != nil {
		return "", fmt.Errorf("epub: missing %s", containerPath)
	}

	var c containerXML
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("epub: invalid container.xml: %w", err)
	}

	for _, rf := range c.Rootfiles.Rootfile {
		if rf.FullPath != "" {
			return rf.FullPath, nil
		}
	}
	return "", ErrNoRootfile
}

// readFile reads one entry from the archive by exact name.
func readFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("epub: %s not in archive", name)
}
