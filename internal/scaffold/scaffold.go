package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"modman/internal/naming"
)

// ErrModuleExists is returned when the target module directory already
// exists and force was not requested.
var ErrModuleExists = errors.New("module already exists")

// Options controls a scaffold run.
type Options struct {
	// Name is the module name in any casing convention.
	Name string
	// Dir is the application directory the module is created under.
	Dir string
	// Force overwrites existing files and skips the existence pre-check.
	Force bool
}

// Scaffold renders and writes a full module skeleton. It fails fast when
// the module directory already exists, unless Force is set; individual
// file failures are recorded in the report without aborting the run.
func Scaffold(opts Options) (Report, error) {
	forms, err := naming.Parse(opts.Name)
	if err != nil {
		return Report{}, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "app"
	}
	moduleDir := filepath.Join(dir, forms.Identifier)

	if !opts.Force {
		if info, err := os.Stat(moduleDir); err == nil && info.IsDir() {
			return Report{}, fmt.Errorf("%w: %s", ErrModuleExists, moduleDir)
		}
	}

	artifacts, err := RenderAll(forms)
	if err != nil {
		return Report{}, err
	}

	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create %s: %w", moduleDir, err)
	}

	report := Report{Name: opts.Name, Module: forms.Identifier, Dir: moduleDir}
	report.Results = WriteArtifacts(moduleDir, artifacts, opts.Force)
	for _, r := range report.Results {
		switch r.Outcome {
		case OutcomeCreated:
			report.Created++
		case OutcomeSkipped:
			report.Skipped++
		case OutcomeFailed:
			report.Failed++
		}
	}
	return report, nil
}

// WriteArtifacts writes every rendered artifact into dir. A failing file
// does not stop the remaining writes.
func WriteArtifacts(dir string, artifacts []GeneratedArtifact, force bool) []WriteResult {
	results := make([]WriteResult, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.FileName)
		outcome, err := Write(path, a.Content, force)
		r := WriteResult{Kind: a.Kind, FileName: a.FileName, Path: path, Outcome: outcome}
		if err != nil {
			r.Error = err.Error()
		}
		results = append(results, r)
	}
	return results
}
