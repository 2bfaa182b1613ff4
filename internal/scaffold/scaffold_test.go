package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modman/internal/naming"
)

func mustForms(t *testing.T, name string) naming.Forms {
	t.Helper()
	forms, err := naming.Parse(name)
	if err != nil {
		t.Fatalf("Parse(%q): %v", name, err)
	}
	return forms
}

func TestRenderAllProducesEveryArtifact(t *testing.T) {
	artifacts, err := RenderAll(mustForms(t, "HTTPOrder"))
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(artifacts) != len(Artifacts) {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), len(Artifacts))
	}
	for i, a := range artifacts {
		if a.FileName != Artifacts[i].FileName {
			t.Errorf("artifact %d: got %s, want %s", i, a.FileName, Artifacts[i].FileName)
		}
		if a.Content == "" {
			t.Errorf("%s: empty content", a.FileName)
		}
		if strings.Contains(a.Content, "{{") {
			t.Errorf("%s: unexpanded template action", a.FileName)
		}
	}
}

func TestRenderAllNameForms(t *testing.T) {
	artifacts, err := RenderAll(mustForms(t, "HTTPOrder"))
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	byName := map[string]string{}
	for _, a := range artifacts {
		byName[a.FileName] = a.Content
	}
	for _, f := range []string{"model.go", "schemas.go", "crud.go", "service.go", "routes.go", "errors.go", "module.go"} {
		if !strings.Contains(byName[f], "package http_order") {
			t.Errorf("%s: missing package clause for http_order", f)
		}
	}
	if !strings.Contains(byName["model.go"], "type HttpOrder struct") {
		t.Error("model.go: missing HttpOrder type")
	}
	if !strings.Contains(byName["model.go"], `"http_orders"`) {
		t.Error("model.go: missing http_orders table name")
	}
	if !strings.Contains(byName["routes.go"], "/http_orders") {
		t.Error("routes.go: missing collection path")
	}
}

func TestWriteCreatesSkipsAndForces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.go")

	outcome, err := Write(path, "first", false)
	if err != nil || outcome != OutcomeCreated {
		t.Fatalf("first write: outcome=%s err=%v", outcome, err)
	}

	outcome, err = Write(path, "second", false)
	if err != nil || outcome != OutcomeSkipped {
		t.Fatalf("second write: outcome=%s err=%v", outcome, err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "first" {
		t.Fatalf("skip overwrote file: %q", content)
	}

	outcome, err = Write(path, "third", true)
	if err != nil || outcome != OutcomeCreated {
		t.Fatalf("forced write: outcome=%s err=%v", outcome, err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "third" {
		t.Fatalf("force did not replace content: %q", content)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(filepath.Join(dir, "a.go"), "x", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.go" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestScaffoldCreatesModule(t *testing.T) {
	dir := t.TempDir()
	report, err := Scaffold(Options{Name: "Order", Dir: dir})
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if report.Module != "order" {
		t.Fatalf("module = %q, want order", report.Module)
	}
	if report.Created != len(Artifacts) || report.Skipped != 0 || report.Failed != 0 {
		t.Fatalf("counts: created=%d skipped=%d failed=%d", report.Created, report.Skipped, report.Failed)
	}
	for _, a := range Artifacts {
		if _, err := os.Stat(filepath.Join(dir, "order", a.FileName)); err != nil {
			t.Errorf("missing %s: %v", a.FileName, err)
		}
	}
}

func TestScaffoldFailsFastOnExistingModule(t *testing.T) {
	dir := t.TempDir()
	if _, err := Scaffold(Options{Name: "order", Dir: dir}); err != nil {
		t.Fatalf("first scaffold: %v", err)
	}
	_, err := Scaffold(Options{Name: "order", Dir: dir})
	if !errors.Is(err, ErrModuleExists) {
		t.Fatalf("err = %v, want ErrModuleExists", err)
	}
}

func TestScaffoldForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	if _, err := Scaffold(Options{Name: "order", Dir: dir}); err != nil {
		t.Fatalf("first scaffold: %v", err)
	}
	modelPath := filepath.Join(dir, "order", "model.go")
	if err := os.WriteFile(modelPath, []byte("// edited"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	report, err := Scaffold(Options{Name: "order", Dir: dir, Force: true})
	if err != nil {
		t.Fatalf("forced scaffold: %v", err)
	}
	if report.Failed != 0 || report.Skipped != 0 {
		t.Fatalf("counts: %+v", report)
	}
	content, _ := os.ReadFile(modelPath)
	if string(content) == "// edited" {
		t.Fatal("force did not regenerate model.go")
	}
}

func TestScaffoldRejectsInvalidName(t *testing.T) {
	_, err := Scaffold(Options{Name: "---", Dir: t.TempDir()})
	if !errors.Is(err, naming.ErrInvalidName) {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
}

func TestWriteArtifactsSkipsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	artifacts, err := RenderAll(mustForms(t, "order"))
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	first := WriteArtifacts(dir, artifacts, false)
	for _, r := range first {
		if r.Outcome != OutcomeCreated {
			t.Fatalf("%s: outcome = %s", r.FileName, r.Outcome)
		}
	}
	second := WriteArtifacts(dir, artifacts, false)
	for _, r := range second {
		if r.Outcome != OutcomeSkipped {
			t.Fatalf("%s: outcome = %s, want skipped-exists", r.FileName, r.Outcome)
		}
	}
}

func TestWriteArtifactsRecordsPerFileFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on an artifact path makes that write fail
	// while the rest of the run proceeds.
	if err := os.Mkdir(filepath.Join(dir, "model.go"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	artifacts, err := RenderAll(mustForms(t, "order"))
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	results := WriteArtifacts(dir, artifacts, true)
	failed, created := 0, 0
	for _, r := range results {
		switch r.Outcome {
		case OutcomeFailed:
			failed++
			if r.Error == "" {
				t.Errorf("%s: failed without error message", r.FileName)
			}
		case OutcomeCreated:
			created++
		}
	}
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	if created != len(Artifacts)-1 {
		t.Fatalf("created = %d, want %d", created, len(Artifacts)-1)
	}
}

func TestScanInventoriesModules(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha"} {
		if _, err := Scaffold(Options{Name: name, Dir: dir}); err != nil {
			t.Fatalf("Scaffold(%s): %v", name, err)
		}
	}
	// Ignored: reserved, underscore-prefixed, and unrelated directories.
	for _, name := range []string{"core", "apis", "_draft", ".cache", "assets"} {
		if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}
	// Partial module: only a model file.
	if err := os.MkdirAll(filepath.Join(dir, "partial"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "partial", "model.go"), []byte("package partial\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	modules, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(modules) != 3 {
		t.Fatalf("got %d modules: %+v", len(modules), modules)
	}
	if modules[0].Name != "alpha" || modules[1].Name != "partial" || modules[2].Name != "zeta" {
		t.Fatalf("wrong order: %+v", modules)
	}
	if !modules[0].Complete || !modules[2].Complete {
		t.Error("scaffolded modules should be complete")
	}
	if modules[1].Complete {
		t.Error("partial module reported complete")
	}
	if modules[1].Files != 1 {
		t.Errorf("partial files = %d, want 1", modules[1].Files)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("err = %v, want ErrDirectoryNotFound", err)
	}
}
