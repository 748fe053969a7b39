package words

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is a named word list loaded from <home>/packs/*.yaml.
type Pack struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Words       []string `yaml:"words"`
}

// PackFile pairs a parsed pack with its on-disk source.
type PackFile struct {
	Pack Pack
	Path string
}

// Normalized returns a trimmed copy with every word lower-cased. Words that
// fail NormalizeWord are kept verbatim so Validate can report them.
func (p Pack) Normalized() Pack {
	clone := Pack{
		Name:        strings.ToLower(strings.TrimSpace(p.Name)),
		Description: strings.TrimSpace(p.Description),
	}
	if len(p.Words) > 0 {
		clone.Words = make([]string, len(p.Words))
		for i, w := range p.Words {
			if word, err := NormalizeWord(w); err == nil {
				clone.Words[i] = word
			} else {
				clone.Words[i] = w
			}
		}
	}
	return clone
}

// Validate ensures the pack has a name and at least one a-z word.
func (p Pack) Validate() error {
	normalized := p.Normalized()
	if normalized.Name == "" {
		return fmt.Errorf("pack: name is required")
	}
	if len(normalized.Words) == 0 {
		return fmt.Errorf("pack %s: at least one word is required", normalized.Name)
	}
	for i, w := range normalized.Words {
		if _, err := NormalizeWord(w); err != nil {
			return fmt.Errorf("pack %s: words[%d]: %w", normalized.Name, i, err)
		}
	}
	return nil
}

// ParsePackYAML decodes and validates a single pack payload.
func ParsePackYAML(data []byte) (Pack, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Pack{}, fmt.Errorf("pack: payload is empty")
	}
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("pack: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Pack{}, err
	}
	return p.Normalized(), nil
}

// LoadPackFile reads a YAML pack from disk.
func LoadPackFile(path string) (PackFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PackFile{}, fmt.Errorf("pack: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return PackFile{}, fmt.Errorf("pack: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PackFile{}, fmt.Errorf("pack: read %s: %w", path, err)
	}
	p, err := ParsePackYAML(data)
	if err != nil {
		return PackFile{}, fmt.Errorf("pack: %s: %w", path, err)
	}
	return PackFile{Pack: p, Path: filepath.Clean(path)}, nil
}

// LoadPackDir scans dir for *.yaml and *.yml packs, sorted by path.
// A missing directory means no packs.
func LoadPackDir(dir string) ([]PackFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("pack: read %s: %w", trimmed, err)
	}
	var packs []PackFile
	seen := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		file, err := LoadPackFile(filepath.Join(trimmed, entry.Name()))
		if err != nil {
			return nil, err
		}
		if existing, ok := seen[file.Pack.Name]; ok {
			return nil, fmt.Errorf("pack: duplicate pack name %s (%s and %s)", file.Pack.Name, existing, file.Path)
		}
		seen[file.Pack.Name] = file.Path
		packs = append(packs, file)
	}
	if len(packs) == 0 {
		return nil, nil
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Path < packs[j].Path })
	return packs, nil
}

// BuildCatalog merges extra words with the selected packs. An empty enabled
// list selects every pack; naming a pack that was not loaded is an error.
// When nothing at all is configured the built-in words are used.
func BuildCatalog(extra []string, packs []PackFile, enabled []string) (Catalog, error) {
	selected := packs
	if len(enabled) > 0 {
		byName := make(map[string]PackFile, len(packs))
		for _, p := range packs {
			byName[p.Pack.Name] = p
		}
		selected = make([]PackFile, 0, len(enabled))
		for _, name := range enabled {
			key := strings.ToLower(strings.TrimSpace(name))
			p, ok := byName[key]
			if !ok {
				return Catalog{}, fmt.Errorf("words: enabled pack %q not found", name)
			}
			selected = append(selected, p)
		}
	}
	all := append([]string{}, extra...)
	for _, p := range selected {
		all = append(all, p.Pack.Words...)
	}
	if len(all) == 0 {
		return Default(), nil
	}
	return NewCatalog(all...)
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
