package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads one template definition from a YAML file.
func LoadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("template: read %s: %w", path, err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("template: parse %s: %w", path, err)
	}
	if err := validateTemplate(&t); err != nil {
		return Template{}, fmt.Errorf("template: %s: %w", path, err)
	}

	// Catalog tags are matched lowercase.
	for i, tag := range t.Tags {
		t.Tags[i] = strings.ToLower(tag)
	}
	return t, nil
}

// LoadDir loads every .yaml/.yml file in dir as a template, in lexical file
// order, and appends the results to the builtin catalog. A directory with no
// template files yields just the builtins.
func LoadDir(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("template: read dir %s: %w", dir, err)
	}

	templates := Builtin()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return NewLibrary(templates), nil
}

// validateTemplate checks the fields a catalog entry cannot function without.
func validateTemplate(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("missing id")
	}
	if t.Code == "" {
		return fmt.Errorf("missing code")
	}
	if t.Spec.SiteType == "" {
		return fmt.Errorf("missing spec.siteType")
	}
	return nil
}
