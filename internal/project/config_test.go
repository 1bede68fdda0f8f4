package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[check]
grammar = "attribute"
max-diagnostics = 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Check.Grammar != "attribute" || cfg.Check.MaxDiagnostics != 8 {
		t.Fatalf("check = %+v", cfg.Check)
	}
	// untouched keys keep defaults
	if !cfg.Check.Cache || cfg.Output.Format != "pretty" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[check]
grammer = "attribute"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("misspelled key accepted")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		"[check]\ngrammar = \"swift\"\n",
		"[check]\nmax-diagnostics = 0\n",
		"[check]\njobs = -1\n",
		"[output]\ncolor = \"sometimes\"\n",
		"[output]\nformat = \"xml\"\n",
	}
	for _, content := range cases {
		path := writeManifest(t, t.TempDir(), content)
		if _, err := Load(path); err == nil {
			t.Errorf("accepted %q", content)
		}
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\ngrammar = \"attribute\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(root, ManifestName) {
		t.Fatalf("path = %q", path)
	}
	if cfg.Check.Grammar != "attribute" {
		t.Fatalf("grammar = %q", cfg.Check.Grammar)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Fatalf("path = %q", path)
	}
	if cfg != Defaults() {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	got, ok, err := FindProjectRoot(root)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	if resolved, _ := filepath.EvalSymlinks(got); resolved != mustEval(t, root) {
		t.Fatalf("root = %q, want %q", got, root)
	}
}

func mustEval(t *testing.T, p string) string {
	t.Helper()
	out, err := filepath.EvalSymlinks(p)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
