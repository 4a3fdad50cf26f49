//go:build mage

// Package main provides build targets for hyperglue using Mage.
//
// Usage:
//
//	mage build    Compile the hyperglue binary to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage run      Build and start the server with template hot reload
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName   = "hyperglue"
	binaryDir    = "bin"
	cmdDir       = "./cmd/hyperglue"
	templatesDir = "internal/api/handler/web/templates"
)

// Build compiles the hyperglue binary to bin/ with version information.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}

	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf("-X main.GitCommit=%s -X main.BuildTime=%s",
		commit, time.Now().UTC().Format(time.RFC3339))

	return sh.RunV("go", "build", "-v", "-ldflags", ldflags,
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Run builds and serves the dashboard from the source templates with hot reload.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "serve", "--debug",
		"--templates", templatesDir, "--watch")
}
