package targets

import (
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
)

// ansiNames are the eight colour names of terminal configs; bright variants
// sit eight indexes higher.
var ansiNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func ansiEntries(p palette.Palette, offset int) []rewrite.Entry {
	out := make([]rewrite.Entry, len(ansiNames))
	for i, name := range ansiNames {
		out[i] = rewrite.Entry{Key: name, Value: p.ANSI[i+offset]}
	}
	return out
}

func ghostty(p palette.Palette) rewrite.Format {
	rules, keys := rewrite.Table("", rewrite.Assign, "keys", []rewrite.Entry{
		{Key: "background", Value: p.UI.Background},
		{Key: "foreground", Value: p.UI.Foreground},
	})
	ix := indexed{values: p.ANSI, base: 10, key: "%d", label: "palette[%d]"}
	rules = append(rules, rewrite.Dynamic("", rewrite.Syntax{
		Claim: `^\s*palette\s*=\s*{key}=#?[0-9A-Fa-f]{6}`,
		Value: `^\s*palette\s*=\s*{key}=` + rewrite.HexValue,
	}, `\d+`, ix.lookup))

	return rewrite.Format{
		Rules:  rules,
		Expect: []rewrite.Expectation{keys, ix.expect("palette indexes")},
	}
}

func alacritty(p palette.Palette) rewrite.Format {
	primary, primaryKeys := rewrite.SectionTable("colors.primary", rewrite.AssignQuoted, "keys", []rewrite.Entry{
		{Key: "background", Value: p.UI.Background},
		{Key: "foreground", Value: p.UI.Foreground},
	})
	cursor, cursorKeys := rewrite.SectionTable("colors.cursor", rewrite.AssignQuoted, "keys", []rewrite.Entry{
		{Key: "text", Value: p.UI.Background},
		{Key: "cursor", Value: p.UI.Cursor},
	})
	normal, normalKeys := rewrite.SectionTable("colors.normal", rewrite.AssignQuoted, "keys", ansiEntries(p, 0))
	bright, brightKeys := rewrite.SectionTable("colors.bright", rewrite.AssignQuoted, "keys", ansiEntries(p, 8))

	var rules []rewrite.Rule
	for _, group := range [][]rewrite.Rule{primary, cursor, normal, bright} {
		rules = append(rules, group...)
	}
	return rewrite.Format{
		Sections: rewrite.TOMLSections,
		Rules:    rules,
		Expect:   []rewrite.Expectation{primaryKeys, cursorKeys, normalKeys, brightKeys},
	}
}

func kitty(p palette.Palette) rewrite.Format {
	rules, keys := rewrite.Table("", rewrite.Spaced, "keys", []rewrite.Entry{
		{Key: "background", Value: p.UI.Background},
		{Key: "foreground", Value: p.UI.Foreground},
	})
	ix := indexed{values: p.ANSI, base: 10, key: "%d", label: "color%d"}
	rules = append(rules, rewrite.Dynamic("", rewrite.Syntax{
		Claim: `^\s*color{key}\s+#?[0-9A-Fa-f]{6}`,
		Value: `^\s*color{key}\s+` + rewrite.HexValue,
	}, `\d{1,2}`, ix.lookup))

	return rewrite.Format{
		Rules:  rules,
		Expect: []rewrite.Expectation{keys, ix.expect("colors")},
	}
}

func warp(p palette.Palette) rewrite.Format {
	rules, keys := rewrite.Table("", rewrite.ColonQuoted, "keys", []rewrite.Entry{
		{Key: "background", Value: p.UI.Background},
		{Key: "foreground", Value: p.UI.Foreground},
		{Key: "accent", Value: p.UI.Accent},
		{Key: "cursor", Value: p.UI.Cursor},
	})
	normal, normalKeys := rewrite.SectionTable("terminal_colors.normal", rewrite.ColonQuoted, "keys", ansiEntries(p, 0))
	bright, brightKeys := rewrite.SectionTable("terminal_colors.bright", rewrite.ColonQuoted, "keys", ansiEntries(p, 8))
	rules = append(append(rules, normal...), bright...)

	return rewrite.Format{
		Sections: func() rewrite.Sectioner {
			return rewrite.NestedSections("terminal_colors", "normal", "bright")
		},
		Rules:  rules,
		Expect: []rewrite.Expectation{keys, normalKeys, brightKeys},
	}
}

// fishValue is a fish universal variable value, optionally single quoted.
// Replacements are always written quoted.
const fishValue = `(?P<value>'?#?[0-9A-Fa-f]{6}'?)`

func colorsFish(p palette.Palette) rewrite.Format {
	rules, keys := rewrite.Table("", rewrite.Syntax{
		Claim: `^\s*set -U {key}\s+`,
		Value: `^\s*set -U {key}\s+` + fishValue,
	}, "keys", []rewrite.Entry{
		{Key: "background", Value: p.UI.Background},
		{Key: "foreground", Value: p.UI.Foreground},
		{Key: "cursor", Value: p.UI.Cursor},
	})
	ix := indexed{values: p.ANSI, base: 10, key: "%d", label: "color%d"}
	rules = append(rules, rewrite.Dynamic("", rewrite.Syntax{
		Claim: `^\s*set -U color{key}\s+'?#?[0-9A-Fa-f]{6}'?`,
		Value: `^\s*set -U color{key}\s+` + fishValue,
	}, `\d{1,2}`, ix.lookup))

	return rewrite.Format{
		Rules:  withRender(rules, rewrite.Wrap("'")),
		Expect: []rewrite.Expectation{keys, ix.expect("colors")},
	}
}

func fzfFish(p palette.Palette) rewrite.Format {
	ix := indexed{values: p.ANSI, base: 16, key: "%02X", label: "color%02X"}
	rule := rewrite.Dynamic("", rewrite.Syntax{
		Claim: `^\s*set -l color{key}\s+'?#?[0-9A-Fa-f]{6}'?`,
		Value: `^\s*set -l color{key}\s+` + fishValue,
	}, `[0-9A-Fa-f]{2}`, ix.lookup)

	return rewrite.Format{
		Rules:  withRender([]rewrite.Rule{rule}, rewrite.Wrap("'")),
		Expect: []rewrite.Expectation{ix.expect("color slots")},
	}
}
