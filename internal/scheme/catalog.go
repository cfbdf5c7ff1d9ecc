package scheme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

type Definition struct {
	Key         string
	DisplayName string
	Scheme      Scheme
	Path        string
}

type Catalog struct {
	order []Definition
	index map[string]int
}

func (c Catalog) All() []Definition {
	out := make([]Definition, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, def := range c.order {
		keys[i] = def.Key
	}
	return keys
}

func (c Catalog) Get(key string) (Definition, bool) {
	if c.index == nil {
		return Definition{}, false
	}
	idx, ok := c.index[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Definition{}, false
	}
	return c.order[idx], true
}

func (c *Catalog) add(def Definition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[def.Key] = len(c.order)
	c.order = append(c.order, def)
}

// LoadCatalog scans dirs for scheme files. Unreadable or invalid files are
// reported through the joined error but do not stop the scan, so the returned
// catalog is usable even when err != nil.
func LoadCatalog(dirs []string) (Catalog, error) {
	var (
		defs        []Definition
		usedKeys    = map[string]int{}
		combinedErr error
	)

	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(
				combinedErr,
				fmt.Errorf("schemes: read directory %q: %w", dir, err),
			)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsSchemeFile(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			s, err := Load(path)
			if err != nil {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("schemes: load %q: %w", path, err))
				continue
			}
			slug := slugify(s.Metadata.Name)
			if slug == "" {
				slug = slugify(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
			}
			def := Definition{
				Key:         ensureUniqueKey(slug, usedKeys),
				DisplayName: strings.TrimSpace(s.Metadata.Name),
				Scheme:      s,
				Path:        path,
			}
			if def.DisplayName == "" {
				def.DisplayName = humaniseSlug(def.Key)
			}
			defs = append(defs, def)
		}
	}

	return assembleCatalog(defs), combinedErr
}

func IsSchemeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Resolve treats ref as a file path first and falls back to a catalog key
// looked up in dirs.
func Resolve(ref string, dirs []string) (Scheme, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Scheme{}, errors.New("scheme reference is empty")
	}
	info, err := os.Stat(ref)
	if err == nil && !info.IsDir() {
		return Load(ref)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Scheme{}, fmt.Errorf("stat scheme %q: %w", ref, err)
	}

	catalog, catErr := LoadCatalog(dirs)
	if def, ok := catalog.Get(ref); ok {
		return def.Scheme, nil
	}
	if catErr != nil {
		return Scheme{}, fmt.Errorf("scheme %q not found: %w", ref, catErr)
	}
	if keys := catalog.Keys(); len(keys) > 0 {
		return Scheme{}, fmt.Errorf("scheme %q not found (available: %s)", ref, strings.Join(keys, ", "))
	}
	return Scheme{}, fmt.Errorf("scheme %q not found: no such file or catalog entry", ref)
}

func assembleCatalog(defs []Definition) Catalog {
	var catalog Catalog
	sorted := make([]Definition, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool {
		left := strings.ToLower(sorted[i].DisplayName)
		right := strings.ToLower(sorted[j].DisplayName)
		if left == right {
			return sorted[i].Key < sorted[j].Key
		}
		return left < right
	})
	for _, def := range sorted {
		catalog.add(def)
	}
	return catalog
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "scheme"
	}
	base := key
	counter := used[base]
	if counter == 0 {
		used[base] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", base, counter)
		if _, exists := used[suffix]; !exists {
			used[base] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

func slugify(name string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func humaniseSlug(slug string) string {
	if slug == "" {
		return "Scheme"
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
