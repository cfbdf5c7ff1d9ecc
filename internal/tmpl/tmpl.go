// Package tmpl fills "{{ name }}" placeholders from a flat context.
package tmpl

import (
	"regexp"
	"sort"
)

var token = regexp.MustCompile(`{{\s*([a-zA-Z0-9_]+)\s*}}`)

// Render replaces every token whose name is in ctx. Unknown tokens stay as
// written and their names are returned sorted, without duplicates. Values
// are inserted literally and never expanded again.
func Render(text string, ctx map[string]string) (string, []string) {
	missing := map[string]struct{}{}
	out := token.ReplaceAllStringFunc(text, func(tok string) string {
		name := token.FindStringSubmatch(tok)[1]
		if v, ok := ctx[name]; ok {
			return v
		}
		missing[name] = struct{}{}
		return tok
	})
	if len(missing) == 0 {
		return out, nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return out, names
}
