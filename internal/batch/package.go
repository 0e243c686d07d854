// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Package zips every file under bookDir into package-<name>.zip next to
// it, with paths relative to bookDir. It returns the archive path.
func Package(bookDir string) (string, error) {
	zipPath := filepath.Join(filepath.Dir(bookDir), "package-"+filepath.Base(bookDir)+".zip")

	f, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating package: %w", err)
	}

	zw := zip.NewWriter(f)
	err = filepath.WalkDir(bookDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(bookDir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		zw.Close()
		f.Close()
		return "", fmt.Errorf("packaging %s: %w", bookDir, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("packaging %s: %w", bookDir, err)
	}
	return zipPath, f.Close()
}
