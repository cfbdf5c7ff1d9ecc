package config

import "strings"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func DefaultSettings() Settings {
	return Settings{Color: ColorAuto}
}

func NormaliseSettings(in Settings) Settings {
	out := DefaultSettings()
	out.Root = strings.TrimSpace(in.Root)
	out.TemplateDir = strings.TrimSpace(in.TemplateDir)
	out.SchemesDir = strings.TrimSpace(in.SchemesDir)
	out.Color = NormaliseColorMode(in.Color, out.Color)

	skip := make([]string, 0, len(in.Skip))
	for _, name := range in.Skip {
		skip = append(skip, strings.ToLower(strings.TrimSpace(name)))
	}
	out.Skip = dedupeNonEmpty(skip)
	if len(out.Skip) == 0 {
		out.Skip = nil
	}

	if len(in.Paths) > 0 {
		out.Paths = make(map[string]string, len(in.Paths))
		for name, path := range in.Paths {
			name = strings.ToLower(strings.TrimSpace(name))
			path = strings.TrimSpace(path)
			if name == "" || path == "" {
				continue
			}
			out.Paths[name] = path
		}
	}
	return out
}

func NormaliseColorMode(in ColorMode, def ColorMode) ColorMode {
	switch strings.ToLower(strings.TrimSpace(string(in))) {
	case string(ColorAuto):
		return ColorAuto
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return def
	}
}

// ParseColorMode is NormaliseColorMode for user input that must be valid.
func ParseColorMode(value string) (ColorMode, bool) {
	mode := NormaliseColorMode(ColorMode(value), "")
	return mode, mode != ""
}

func dedupeNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
