package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("missing site.yaml produced non-zero config: %+v", cfg)
	}
}

func TestLoadOptional_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.yaml", `
site:
  name: Recital
  description: A pitch page
  contact: hello@example.com
render:
  width: 1280
  height: 720
  output: out.png
`)

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Site.Name != "Recital" || cfg.Site.Contact != "hello@example.com" {
		t.Errorf("site config = %+v", cfg.Site)
	}
	if cfg.Render.Width != 1280 || cfg.Render.Height != 720 || cfg.Render.Output != "out.png" {
		t.Errorf("render config = %+v", cfg.Render)
	}
}

func TestLoadOptional_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.yaml", "site: [not: a: mapping")

	if _, err := LoadOptional(dir); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/recital\n\ngo 1.24.0\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ModulePath != "github.com/example/recital" {
		t.Errorf("ModulePath = %q", resolved.ModulePath)
	}
	if resolved.SiteName != "recital" {
		t.Errorf("SiteName = %q, want module base name", resolved.SiteName)
	}
	if resolved.Width != 1024 || resolved.Height != 768 {
		t.Errorf("default size = %vx%v, want 1024x768", resolved.Width, resolved.Height)
	}
	if resolved.Output != "page.png" {
		t.Errorf("Output = %q, want page.png", resolved.Output)
	}
}

func TestResolve_ConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/site\n")
	writeFile(t, dir, "site.yaml", `
site:
  name: "  Mayrav  "
  contact: booking@example.com
render:
  width: 640
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.SiteName != "Mayrav" {
		t.Errorf("SiteName = %q, want trimmed override", resolved.SiteName)
	}
	if resolved.Contact != "booking@example.com" {
		t.Errorf("Contact = %q", resolved.Contact)
	}
	if resolved.Width != 640 || resolved.Height != 768 {
		t.Errorf("size = %vx%v, want 640x768", resolved.Width, resolved.Height)
	}
}

func TestResolve_ModuleVersionSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/recital/v2\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.SiteName != "recital" {
		t.Errorf("SiteName = %q, want version suffix stripped", resolved.SiteName)
	}
}

func TestResolve_MissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Fatal("expected an error without go.mod")
	}
}

func TestResolve_RejectsBadContact(t *testing.T) {
	for _, contact := range []string{"not-an-email", "@example.com", "user@", "two words@example.com"} {
		dir := t.TempDir()
		writeFile(t, dir, "go.mod", "module example.com/site\n")
		writeFile(t, dir, "site.yaml", "site:\n  contact: \""+contact+"\"\n")

		_, err := Resolve(dir)
		if err == nil {
			t.Errorf("contact %q accepted, want error", contact)
			continue
		}
		if !strings.Contains(err.Error(), "site.contact") {
			t.Errorf("contact %q: unexpected error %v", contact, err)
		}
	}
}
