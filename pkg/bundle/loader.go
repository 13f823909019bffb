package bundle

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Bundles map[string]bundleFile `json:"bundles" yaml:"bundles"`
}

type bundleFile struct {
	Preset         string            `json:"preset" yaml:"preset"`
	Keyboard       string            `json:"keyboard" yaml:"keyboard"`
	Prefix         string            `json:"prefix" yaml:"prefix"`
	Suffix         string            `json:"suffix" yaml:"suffix"`
	Alignment      string            `json:"alignment" yaml:"alignment"`
	Placeholder    string            `json:"placeholder" yaml:"placeholder"`
	Preselect      *bool             `json:"preselect" yaml:"preselect"`
	Capitalization string            `json:"capitalization" yaml:"capitalization"`
	Choices        []string          `json:"choices" yaml:"choices"`
	ReadOnly       bool              `json:"readOnly" yaml:"readOnly"`
	Validators     []ValidatorConfig `json:"validators" yaml:"validators"`
}

// Store holds bundles loaded from files and falls back to a catalog.
type Store struct {
	bundles map[string]Bundle
	catalog *Catalog
}

// NewStore returns an empty store backed by catalog; nil uses NewCatalog.
func NewStore(catalog *Catalog) *Store {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Store{bundles: make(map[string]Bundle), catalog: catalog}
}

// LoadFS walks fsys and parses every JSON/YAML bundle file. Presets named in
// files resolve against catalog. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS, catalog *Catalog) (*Store, error) {
	store := NewStore(catalog)
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isBundleFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("bundle: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Bundles {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("bundle: file %s defines an empty bundle name", path)
			}
			if _, exists := store.bundles[id]; exists {
				return fmt.Errorf("bundle: duplicate bundle %q (file %s)", id, path)
			}
			b, err := store.normalise(id, raw)
			if err != nil {
				return fmt.Errorf("bundle: %q (file %s): %w", id, path, err)
			}
			store.bundles[id] = b
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Lookup returns the named bundle, preferring loaded files over the catalog.
func (s *Store) Lookup(name string) (Bundle, bool) {
	if s == nil {
		return Bundle{}, false
	}
	if b, ok := s.bundles[strings.TrimSpace(name)]; ok {
		return b.Clone(), true
	}
	return s.catalog.Lookup(name)
}

// Loaded returns a bundle defined in files only, ignoring the catalog.
func (s *Store) Loaded(name string) (Bundle, bool) {
	if s == nil {
		return Bundle{}, false
	}
	b, ok := s.bundles[strings.TrimSpace(name)]
	if !ok {
		return Bundle{}, false
	}
	return b.Clone(), true
}

// Names lists loaded and catalog names, sorted and de-duplicated.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for name := range s.bundles {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range s.catalog.Names() {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Catalog returns the fallback catalog.
func (s *Store) Catalog() *Catalog {
	if s == nil {
		return nil
	}
	return s.catalog
}

func (s *Store) normalise(name string, raw bundleFile) (Bundle, error) {
	b := Bundle{}
	if preset := strings.TrimSpace(raw.Preset); preset != "" {
		base, ok := s.catalog.Lookup(preset)
		if !ok {
			return Bundle{}, fmt.Errorf("unknown preset %q", preset)
		}
		b = base
	}
	b.Name = name

	keyboard, err := ParseKeyboard(raw.Keyboard)
	if err != nil {
		return Bundle{}, err
	}
	alignment, err := ParseAlignment(raw.Alignment)
	if err != nil {
		return Bundle{}, err
	}
	caps, err := ParseCapitalization(raw.Capitalization)
	if err != nil {
		return Bundle{}, err
	}
	if keyboard != "" {
		b.Keyboard = keyboard
	}
	if alignment != "" {
		b.Alignment = alignment
	}
	if caps != "" {
		b.Capitalization = caps
	}
	if raw.Prefix != "" {
		b.Prefix = raw.Prefix
	}
	if raw.Suffix != "" {
		b.Suffix = raw.Suffix
	}
	if raw.Placeholder != "" {
		b.Placeholder = raw.Placeholder
	}
	if raw.Preselect != nil {
		b.Preselect = *raw.Preselect
	}
	if len(raw.Choices) > 0 {
		b.Choices = append([]string(nil), raw.Choices...)
	}
	if raw.ReadOnly {
		b.ReadOnly = true
	}

	validators, err := BuildValidators(raw.Validators)
	if err != nil {
		return Bundle{}, err
	}
	b.Validators = append(b.Validators, validators...)
	return b.Sanitized(), nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("bundle: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("bundle: parse %s: invalid JSON or YAML", source)
}

func isBundleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
