// Package config resolves the optional site.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional site.yaml configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
}

// SiteConfig overrides the page metadata.
type SiteConfig struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Contact     string `yaml:"contact,omitempty"`
}

// RenderConfig contains headless rendering settings.
type RenderConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Output string  `yaml:"output,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ModulePath  string
	SiteName    string
	Description string
	Contact     string
	Width       float64
	Height      float64
	Output      string
}

// LoadOptional reads site.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "site.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read site.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads site.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	siteName := strings.TrimSpace(cfg.Site.Name)
	if siteName == "" {
		siteName = defaultSiteName(modulePath, dir)
	}

	contact := strings.TrimSpace(cfg.Site.Contact)
	if err := validateContact(contact); err != nil {
		return nil, err
	}

	width := cfg.Render.Width
	if width <= 0 {
		width = 1024
	}
	height := cfg.Render.Height
	if height <= 0 {
		height = 768
	}

	output := strings.TrimSpace(cfg.Render.Output)
	if output == "" {
		output = "page.png"
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		SiteName:    siteName,
		Description: strings.TrimSpace(cfg.Site.Description),
		Contact:     contact,
		Width:       width,
		Height:      height,
		Output:      output,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultSiteName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "recital"
	}
	return base
}

func validateContact(contact string) error {
	if contact == "" {
		return nil
	}
	at := strings.Index(contact, "@")
	if at <= 0 || at == len(contact)-1 {
		return fmt.Errorf("site.contact must be an email address (got %q)", contact)
	}
	if strings.ContainsAny(contact, " \t") {
		return fmt.Errorf("site.contact must not contain whitespace (got %q)", contact)
	}
	return nil
}
