// Package targets wires every supported application file to its rewriter.
package targets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/b16apply/internal/hexcolor"
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/zed"
)

// RewriteFunc turns the current file content into the new one.
type RewriteFunc func(content string, p palette.Palette) (string, rewrite.Report, error)

type Target struct {
	// Name is the short handle used by --skip and settings.
	Name string
	// File is the default file name, relative to the root directory.
	File    string
	Rewrite RewriteFunc
}

// All returns the targets in processing order.
func All() []Target {
	return []Target{
		lines("ghostty", "ghostty.conf", ghostty),
		inline("neovim", "neovim.lua", neovim),
		lines("alacritty", "alacritty.toml", alacritty),
		lines("kitty", "kitty.conf", kitty),
		lines("warp", "warp.yaml", warp),
		lines("fish", "colors.fish", colorsFish),
		lines("fzf", "fzf.fish", fzfFish),
		inline("vencord", "vencord.theme.css", vencord),
		lines("hyprland", "hyprland.conf", hyprland),
		lines("hyprlock", "hyprlock.conf", hyprlock),
		lines("mako", "mako.ini", mako),
		lines("waybar", "waybar.css", defineColors(waybarColors)),
		lines("wofi", "wofi.css", defineColors(wofiColors)),
		lines("walker", "walker.css", defineColors(walkerColors)),
		lines("swayosd", "swayosd.css", defineColors(swayosdColors)),
		lines("btop", "btop.theme", btop),
		lines("cava", "cava_theme", cava),
		{Name: "chromium", File: "chromium.theme", Rewrite: chromium},
		lines("gtk", "gtk.css", gtkCSS),
		lines("aether-override", "aether.override.css", gtkCSS),
		lines("steam", "steam.css", steam),
		{Name: "zed", File: "aether.zed.json", Rewrite: zed.Rewrite},
	}
}

// Lookup finds a target by name or by file name.
func Lookup(name string) (Target, bool) {
	name = strings.TrimSpace(name)
	for _, t := range All() {
		if strings.EqualFold(t.Name, name) || t.File == name {
			return t, true
		}
	}
	return Target{}, false
}

// Names lists the target names in processing order.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, t := range all {
		out[i] = t.Name
	}
	return out
}

func lines(name, file string, build func(palette.Palette) rewrite.Format) Target {
	return Target{
		Name: name,
		File: file,
		Rewrite: func(content string, p palette.Palette) (string, rewrite.Report, error) {
			out, report := build(p).Rewrite(content)
			return out, report, nil
		},
	}
}

func inline(name, file string, build func(palette.Palette) rewrite.InlineFormat) Target {
	return Target{
		Name: name,
		File: file,
		Rewrite: func(content string, p palette.Palette) (string, rewrite.Report, error) {
			out, report := build(p).Rewrite(content)
			return out, report, nil
		},
	}
}

// indexed resolves numeric keys captured from a file through a 16 entry view.
type indexed struct {
	values [16]string
	base   int
	key    string
	label  string
}

func (ix indexed) lookup(raw string) (rewrite.Binding, bool) {
	n, err := strconv.ParseInt(raw, ix.base, 0)
	if err != nil || n < 0 || n >= int64(len(ix.values)) {
		return rewrite.Binding{}, false
	}
	return rewrite.Binding{
		Key:   fmt.Sprintf(ix.key, n),
		Label: fmt.Sprintf(ix.label, n),
		Value: ix.values[n],
	}, true
}

func (ix indexed) expect(group string) rewrite.Expectation {
	exp := rewrite.Expectation{Group: group}
	for i := range ix.values {
		exp.Keys = append(exp.Keys, fmt.Sprintf(ix.key, i))
	}
	return exp
}

// rgbBinding carries value as a decimal triple for formats that do not take
// hex. An unparsable value makes the binding a skip.
func rgbBinding(key, value string) rewrite.Binding {
	b := rewrite.Binding{Key: key, Value: value}
	c, err := hexcolor.Parse(value)
	if err != nil {
		b.Err = err
		return b
	}
	b.Text = c.Triple(", ")
	return b
}

func withRender(rules []rewrite.Rule, render func(rewrite.Binding, map[string]string) string) []rewrite.Rule {
	for i := range rules {
		rules[i].Render = render
	}
	return rules
}
