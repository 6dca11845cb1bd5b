package humandate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads language definitions from YAML or JSON files. Each file
// holds a list of LanguageDef records, so shipping a new language is a
// data-only change.
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a loader over the given definition files.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load parses every configured file and returns the raw definitions.
func (l *FileLoader) Load() ([]LanguageDef, error) {
	var defs []LanguageDef
	for _, path := range l.paths {
		fileDefs, err := loadDefinitionFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}

// LoadInto validates every definition and registers the resulting
// languages. The registry is left untouched when any definition is
// invalid.
func (l *FileLoader) LoadInto(registry *Registry) error {
	defs, err := l.Load()
	if err != nil {
		return err
	}

	langs := make([]*Language, 0, len(defs))
	for _, def := range defs {
		lang, err := NewLanguage(def)
		if err != nil {
			return err
		}
		langs = append(langs, lang)
	}

	for _, lang := range langs {
		registry.Register(lang)
	}
	return nil
}

func loadDefinitionFile(path string) ([]LanguageDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language file %s: %w", path, err)
	}

	var defs []LanguageDef
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &defs); err != nil {
			return nil, fmt.Errorf("yaml parse error in %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &defs); err != nil {
			return nil, fmt.Errorf("json parse error in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported language file extension %q", ext)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no language definitions in %s", path)
	}
	return defs, nil
}
