// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package poppler invokes the external pdftohtml tool for PDF text
// extraction. The tool location is supplied by configuration; the core
// pipeline never assumes a hardcoded path.
package poppler

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const defaultBin = "pdftohtml"

// probeMinBytes is the minimum probe output size for a PDF to count as
// having extractable text. Image-only scans yield less than this.
const probeMinBytes = 5000

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec. Run captures
// stderr so tool diagnostics survive into the returned error.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

var defaultExec executor = &osExecutor{}

// Tool wraps one pdftohtml binary.
type Tool struct {
	bin  string
	exec executor
}

// New returns a Tool for the given binary. An empty bin falls back to
// "pdftohtml" resolved on PATH.
func New(bin string) *Tool {
	return newTool(bin, defaultExec)
}

func newTool(bin string, exec executor) *Tool {
	if bin == "" {
		bin = defaultBin
	}
	return &Tool{bin: bin, exec: exec}
}

// Available reports whether the extraction binary can be resolved.
func (t *Tool) Available() bool {
	_, err := t.exec.LookPath(t.bin)
	return err == nil
}

// ExtractXML runs a full layout extraction of pdfPath into outPath.
// It fails when the tool exits non-zero or produces no output file.
func (t *Tool) ExtractXML(pdfPath, outPath string) error {
	if err := t.exec.Run(t.bin, "-xml", "-enc", "UTF-8", pdfPath, outPath); err != nil {
		return fmt.Errorf("extracting %s: %w", pdfPath, err)
	}
	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("extraction produced no output for %s", pdfPath)
	}
	return nil
}

// LooksScanned probes pdfPath with a throwaway extraction into probeDir.
// A failed run, a missing probe file, or probe output under probeMinBytes
// all indicate an image-only document with no extractable text; such
// inputs are classified NeedsManualProcessing and skipped rather than
// run through heuristics that would only produce empty sections.
func (t *Tool) LooksScanned(pdfPath, probeDir string) bool {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	probe := filepath.Join(probeDir, stem+"._probe.xml")

	runErr := t.exec.Run(t.bin, "-xml", "-enc", "UTF-8", pdfPath, probe)

	tiny := true
	if fi, err := os.Stat(probe); err == nil {
		tiny = fi.Size() < probeMinBytes
		os.Remove(probe)
	}

	return runErr != nil || tiny
}
