package targets

import (
	"regexp"

	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
)

func neovim(p palette.Palette) rewrite.InlineFormat {
	var (
		rules []rewrite.InlineRule
		exp   = rewrite.Expectation{Group: "keys"}
	)
	for _, r := range p.Neovim {
		b := rewrite.Binding{Key: r.Name, Value: r.Value}
		rules = append(rules, rewrite.InlineRule{
			Pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(r.Name) + `\s*=\s*['"]?(?P<value>#[0-9A-Fa-f]{6})['"]?`),
			Lookup: func(string) (rewrite.Binding, bool) {
				return b, true
			},
		})
		exp.Keys = append(exp.Keys, r.Name)
	}
	return rewrite.InlineFormat{Rules: rules, Expect: []rewrite.Expectation{exp}}
}

var vencordVar = regexp.MustCompile(`--color(?P<key>\d{2})\s*:\s*` + rewrite.HexValue + `;`)

func vencord(p palette.Palette) rewrite.InlineFormat {
	ix := indexed{values: p.Indexed, base: 10, key: "%d", label: "--color%02d"}
	return rewrite.InlineFormat{
		Rules: []rewrite.InlineRule{{
			Pattern: vencordVar,
			Lookup:  ix.lookup,
		}},
		Expect: []rewrite.Expectation{ix.expect("colors")},
	}
}
