package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/camfx"
)

//go:embed *.yaml
var defaultsFS embed.FS

// Library maps definition names to specs. It starts from the embedded
// defaults; disk definitions loaded on top override same-named entries.
type Library struct {
	specs map[string]EffectSpec
}

// NewLibrary builds a library from the embedded default definitions.
func NewLibrary() (*Library, error) {
	l := &Library{specs: map[string]EffectSpec{}}

	entries, err := defaultsFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("prefabs: read embedded defaults: %w", err)
	}
	for _, entry := range entries {
		data, err := defaultsFS.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("prefabs: read %s: %w", entry.Name(), err)
		}
		spec, err := LoadSpec(data)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", entry.Name(), err)
		}
		l.specs[spec.Name] = spec
	}
	return l, nil
}

// LoadDir merges every .yaml definition under dir into the library,
// overriding same-named entries. Returns the names loaded.
func (l *Library) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isSpecFile(entry.Name()) {
			continue
		}
		name, err := l.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

// LoadFile loads or reloads one definition file, returning the definition
// name. Watcher events feed straight into this.
func (l *Library) LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := LoadSpec(data)
	if err != nil {
		return "", fmt.Errorf("prefabs: %s: %w", path, err)
	}
	l.specs[spec.Name] = spec
	return spec.Name, nil
}

// Get returns the spec registered under name.
func (l *Library) Get(name string) (EffectSpec, bool) {
	spec, ok := l.specs[name]
	return spec, ok
}

// Names returns the registered definition names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.specs))
	for name := range l.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named effect bound to node.
func (l *Library) Build(name string, node camfx.Node) (camfx.Effect, error) {
	spec, ok := l.specs[name]
	if !ok {
		return nil, fmt.Errorf("prefabs: unknown effect definition %q", name)
	}
	return Build(spec, node)
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
