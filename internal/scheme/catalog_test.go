package scheme

import (
	"strings"
	"testing"
)

func TestLoadCatalogKeysBySchemeName(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "tokyo.yaml", classicScheme)
	writeScheme(t, dir, "copy.yml", classicScheme)
	writeScheme(t, dir, "nameless.yaml", strings.Replace(classicScheme, "scheme: \"Tokyo Night\"\n", "", 1))
	writeScheme(t, dir, "notes.txt", "not a scheme")

	catalog, err := LoadCatalog([]string{dir})
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	if got := len(catalog.All()); got != 3 {
		t.Fatalf("expected 3 schemes, got %d (%v)", got, catalog.Keys())
	}
	if _, ok := catalog.Get("tokyo-night"); !ok {
		t.Fatalf("expected tokyo-night key, got %v", catalog.Keys())
	}
	if _, ok := catalog.Get("tokyo-night-1"); !ok {
		t.Fatalf("expected duplicate name to be uniquified, got %v", catalog.Keys())
	}
	nameless, ok := catalog.Get("nameless")
	if !ok {
		t.Fatalf("expected file name fallback key, got %v", catalog.Keys())
	}
	if nameless.DisplayName != "Nameless" {
		t.Fatalf("expected humanised display name, got %q", nameless.DisplayName)
	}
}

func TestLoadCatalogCollectsBrokenFilesButKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "good.yaml", classicScheme)
	writeScheme(t, dir, "bad.yaml", "base00: \"#000000\"\n")

	catalog, err := LoadCatalog([]string{dir})
	if err == nil {
		t.Fatalf("expected error for incomplete scheme")
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("expected error to name the broken file, got %v", err)
	}
	if _, ok := catalog.Get("tokyo-night"); !ok {
		t.Fatalf("expected good scheme to load despite broken sibling")
	}
}

func TestLoadCatalogHandlesMissingDirectory(t *testing.T) {
	catalog, err := LoadCatalog([]string{"/nonexistent/path", ""})
	if err != nil {
		t.Fatalf("LoadCatalog should not error on missing directories: %v", err)
	}
	if len(catalog.All()) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(catalog.All()))
	}
}

func TestResolvePrefersPathThenCatalogKey(t *testing.T) {
	dir := t.TempDir()
	path := writeScheme(t, dir, "tokyo.yaml", classicScheme)

	byPath, err := Resolve(path, nil)
	if err != nil {
		t.Fatalf("Resolve by path: %v", err)
	}
	if byPath.Path != path {
		t.Fatalf("expected path %q, got %q", path, byPath.Path)
	}

	byKey, err := Resolve("Tokyo-Night", []string{dir})
	if err != nil {
		t.Fatalf("Resolve by key: %v", err)
	}
	if byKey.Color(Base0D) != "#2ac3de" {
		t.Fatalf("unexpected base0D %q", byKey.Color(Base0D))
	}

	_, err = Resolve("missing", []string{dir})
	if err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
	if !strings.Contains(err.Error(), "(available: tokyo-night)") {
		t.Fatalf("expected available keys in error, got %q", err.Error())
	}

	_, err = Resolve("missing", []string{t.TempDir()})
	if err == nil || strings.Contains(err.Error(), "available") {
		t.Fatalf("expected plain not found error for empty catalog, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Tokyo Night":      "tokyo-night",
		"  Gruvbox_Dark  ": "gruvbox-dark",
		"Rosé Pine":        "rosé-pine",
		"---":              "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
