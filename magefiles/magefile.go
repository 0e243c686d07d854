//go:build mage

// Package main contains Mage build targets for bookpress developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories a conversion run expects.
var projectDirs = []string{
	"input",
	"out",
}

// Init creates the working directory structure for conversion runs.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "bookpress"
	cmdPkg  = "./cmd/bookpress"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// All runs tests and then builds the binary.
func All() {
	mg.SerialDeps(Test, Build)
}

// Clean removes build output and conversion artifacts.
func Clean() error {
	for _, dir := range []string{binDir, "out"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	fmt.Println("Cleaned.")
	return nil
}
