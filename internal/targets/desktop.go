package targets

import (
	"regexp"
	"strconv"

	"github.com/unkn0wn-root/b16apply/internal/hexcolor"
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

// slotEntry names a key whose colour comes straight from a scheme slot.
type slotEntry struct {
	key  string
	slot scheme.Slot
}

func resolve(p palette.Palette, table []slotEntry) []rewrite.Entry {
	out := make([]rewrite.Entry, len(table))
	for i, e := range table {
		out[i] = rewrite.Entry{Key: e.key, Value: p.Slot(e.slot)}
	}
	return out
}

const activeBorder = "$activeBorderColor"

var (
	rgbFunc   = regexp.MustCompile(`rgb\([0-9A-Fa-f]{6}\)`)
	angleUnit = regexp.MustCompile(`(?:^|[^A-Za-z_])deg\b`)
)

// gradientReason reports a border that holds more than a single colour or an
// angle, which a plain accent would flatten.
func gradientReason(line string) string {
	if len(rgbFunc.FindAllString(line, -1)) != 1 || angleUnit.MatchString(line) {
		return "gradient"
	}
	return ""
}

func hyprland(p palette.Palette) rewrite.Format {
	accent := p.UI.Accent
	rule := rewrite.Static("", rewrite.Syntax{
		Claim: `^\s*{key}\s*=`,
		Value: `^\s*{key}\s*=\s*rgb\((?P<value>[0-9A-Fa-f]{6})\)`,
	}, activeBorder, rewrite.Binding{
		Value: "#" + hexcolor.Bare(accent),
		Text:  hexcolor.Bare(accent),
	})
	rule.Skip = gradientReason

	return rewrite.Format{
		Rules:  []rewrite.Rule{rule},
		Expect: []rewrite.Expectation{{Keys: []string{activeBorder}}},
	}
}

var hyprlockColors = []slotEntry{
	{"$color", scheme.Base00},
	{"$inner_color", scheme.Base00},
	{"$outer_color", scheme.Base0D},
	{"$font_color", scheme.Base07},
	{"$placeholder_color", scheme.Base07},
	{"$check_color", scheme.Base0E},
}

var hyprlockRGBA = rewrite.Syntax{
	Claim: `^\s*{key}\s*=`,
	Value: `^\s*{key}\s*=\s*rgba\((?P<value>\s*\d+\s*,\s*\d+\s*,\s*\d+\s*(?:,\s*(?P<alpha>[0-9.]+)\s*)?)\)`,
}

// renderRGBA keeps the alpha already in the file, or uses 1.
func renderRGBA(b rewrite.Binding, groups map[string]string) string {
	alpha := groups["alpha"]
	if alpha == "" {
		alpha = "1"
	}
	return b.Text + ", " + alpha
}

func hyprlock(p palette.Palette) rewrite.Format {
	var (
		rules []rewrite.Rule
		exp   = rewrite.Expectation{Group: "keys"}
	)
	for _, e := range hyprlockColors {
		rule := rewrite.Static("", hyprlockRGBA, e.key, rgbBinding(e.key, p.Slot(e.slot)))
		rule.Render = renderRGBA
		rules = append(rules, rule)
		exp.Keys = append(exp.Keys, e.key)
	}
	return rewrite.Format{Rules: rules, Expect: []rewrite.Expectation{exp}}
}

var makoColors = []slotEntry{
	{"text-color", scheme.Base07},
	{"border-color", scheme.Base0D},
	{"background-color", scheme.Base00},
}

func mako(p palette.Palette) rewrite.Format {
	rules, keys := rewrite.Table("", rewrite.Assign, "keys", resolve(p, makoColors))
	return rewrite.Format{Rules: rules, Expect: []rewrite.Expectation{keys}}
}

var waybarColors = []slotEntry{
	{"background", scheme.Base00},
	{"foreground", scheme.Base05},
}

var wofiColors = []slotEntry{
	{"bg", scheme.Base00},
	{"fg", scheme.Base05},
	{"gray1", scheme.Base01},
	{"gray2", scheme.Base02},
	{"gray3", scheme.Base03},
	{"gray4", scheme.Base04},
	{"gray5", scheme.Base05},
	{"fg_bright", scheme.Base07},
}

var walkerColors = []slotEntry{
	{"selected-text", scheme.Base0D},
	{"text", scheme.Base05},
	{"base", scheme.Base00},
	{"border", scheme.Base02},
	{"foreground", scheme.Base05},
	{"background", scheme.Base00},
}

var swayosdColors = []slotEntry{
	{"background-color", scheme.Base00},
	{"border-color", scheme.Base02},
	{"label", scheme.Base05},
	{"image", scheme.Base05},
	{"progress", scheme.Base0B},
}

func defineColors(table []slotEntry) func(palette.Palette) rewrite.Format {
	return func(p palette.Palette) rewrite.Format {
		rules, keys := rewrite.Table("", rewrite.DefineColor, "keys", resolve(p, table))
		return rewrite.Format{Rules: rules, Expect: []rewrite.Expectation{keys}}
	}
}

var btopColors = []slotEntry{
	{"main_bg", scheme.Base00},
	{"main_fg", scheme.Base05},
	{"title", scheme.Base0D},
	{"hi_fg", scheme.Base0E},
	{"selected_bg", scheme.Base01},
	{"selected_fg", scheme.Base05},
	{"inactive_fg", scheme.Base02},
	{"proc_misc", scheme.Base0D},
	{"cpu_box", scheme.Base0A},
	{"mem_box", scheme.Base0A},
	{"net_box", scheme.Base0A},
	{"proc_box", scheme.Base0A},
	{"div_line", scheme.Base02},
	{"temp_start", scheme.Base0E},
	{"temp_mid", scheme.Base0D},
	{"temp_end", scheme.Base0A},
	{"cpu_start", scheme.Base0E},
	{"cpu_mid", scheme.Base0D},
	{"cpu_end", scheme.Base0A},
	{"free_start", scheme.Base0D},
	{"free_mid", scheme.Base0B},
	{"free_end", scheme.Base0B},
	{"cached_start", scheme.Base0B},
	{"cached_mid", scheme.Base0B},
	{"cached_end", scheme.Base0B},
	{"available_start", scheme.Base0E},
	{"available_mid", scheme.Base0E},
	{"available_end", scheme.Base0E},
	{"used_start", scheme.Base0A},
	{"used_mid", scheme.Base0A},
	{"used_end", scheme.Base0A},
	{"download_start", scheme.Base0B},
	{"download_mid", scheme.Base0E},
	{"download_end", scheme.Base0D},
	{"upload_start", scheme.Base0B},
	{"upload_mid", scheme.Base0E},
	{"upload_end", scheme.Base0D},
}

func btop(p palette.Palette) rewrite.Format {
	entries := resolve(p, btopColors)
	values := make(map[string]string, len(entries))
	exp := rewrite.Expectation{Group: "keys"}
	for _, e := range entries {
		values[e.Key] = e.Value
		exp.Keys = append(exp.Keys, e.Key)
	}
	rule := rewrite.Dynamic("", rewrite.Syntax{
		Claim: `^\s*theme\[{key}\]\s*=\s*"#?[0-9A-Fa-f]{6}"`,
		Value: `^\s*theme\[{key}\]\s*=\s*"` + rewrite.HexValue + `"`,
	}, `[^\]]+`, func(key string) (rewrite.Binding, bool) {
		v, ok := values[key]
		return rewrite.Binding{Key: key, Value: v}, ok
	})
	return rewrite.Format{Rules: []rewrite.Rule{rule}, Expect: []rewrite.Expectation{exp}}
}

// cavaGradient holds gradient_color_1 through gradient_color_8.
var cavaGradient = []scheme.Slot{
	scheme.Base0D,
	scheme.Base0C,
	scheme.Base0B,
	scheme.Base0A,
	scheme.Base09,
	scheme.Base08,
	scheme.Base0E,
	scheme.Base0F,
}

func cava(p palette.Palette) rewrite.Format {
	exp := rewrite.Expectation{Group: "keys"}
	for i := range cavaGradient {
		exp.Keys = append(exp.Keys, strconv.Itoa(i+1))
	}
	rule := rewrite.Dynamic("", rewrite.Syntax{
		Claim: `^\s*gradient_color_{key}\s*=\s*'#[0-9A-Fa-f]{6}'`,
		Value: `^\s*gradient_color_{key}\s*=\s*'` + rewrite.HexValue + `'`,
	}, `\d+`, func(key string) (rewrite.Binding, bool) {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(cavaGradient) {
			return rewrite.Binding{}, false
		}
		return rewrite.Binding{
			Key:   strconv.Itoa(n),
			Label: "gradient_color_" + strconv.Itoa(n),
			Value: p.Slot(cavaGradient[n-1]),
		}, true
	})
	return rewrite.Format{Rules: []rewrite.Rule{rule}, Expect: []rewrite.Expectation{exp}}
}

// chromium replaces the whole file with the background as "r,g,b".
func chromium(content string, p palette.Palette) (string, rewrite.Report, error) {
	const key = "chromium.theme"
	c, err := hexcolor.Parse(p.Slot(scheme.Base00))
	if err != nil {
		return content, rewrite.Report{rewrite.Skip(key, err.Error())}, nil
	}
	value := c.Triple(",")
	return value + "\n", rewrite.Report{rewrite.Match(key, value)}, nil
}

var steamColors = []slotEntry{
	{"--adw-accent-bg-rgb", scheme.Base0D},
	{"--adw-accent-fg-rgb", scheme.Base00},
	{"--adw-accent-rgb", scheme.Base0D},
	{"--adw-destructive-bg-rgb", scheme.Base08},
	{"--adw-destructive-fg-rgb", scheme.Base07},
	{"--adw-destructive-rgb", scheme.Base08},
	{"--adw-success-bg-rgb", scheme.Base0B},
	{"--adw-success-fg-rgb", scheme.Base00},
	{"--adw-success-rgb", scheme.Base0B},
	{"--adw-warning-bg-rgb", scheme.Base0A},
	{"--adw-warning-fg-rgb", scheme.Base00},
	{"--adw-warning-rgb", scheme.Base0A},
	{"--adw-error-bg-rgb", scheme.Base08},
	{"--adw-error-fg-rgb", scheme.Base00},
	{"--adw-error-rgb", scheme.Base08},
	{"--adw-window-bg-rgb", scheme.Base00},
	{"--adw-window-fg-rgb", scheme.Base05},
	{"--adw-view-bg-rgb", scheme.Base00},
	{"--adw-view-fg-rgb", scheme.Base05},
	{"--adw-headerbar-bg-rgb", scheme.Base00},
	{"--adw-headerbar-fg-rgb", scheme.Base05},
	{"--adw-headerbar-border-rgb", scheme.Base02},
	{"--adw-headerbar-backdrop-rgb", scheme.Base00},
	{"--adw-sidebar-bg-rgb", scheme.Base00},
	{"--adw-sidebar-fg-rgb", scheme.Base05},
	{"--adw-sidebar-backdrop-rgb", scheme.Base01},
	{"--adw-secondary-sidebar-bg-rgb", scheme.Base00},
	{"--adw-secondary-sidebar-fg-rgb", scheme.Base05},
	{"--adw-secondary-sidebar-backdrop-rgb", scheme.Base01},
	{"--adw-card-bg-rgb", scheme.Base00},
	{"--adw-card-fg-rgb", scheme.Base05},
	{"--adw-dialog-bg-rgb", scheme.Base00},
	{"--adw-dialog-fg-rgb", scheme.Base05},
	{"--adw-popover-bg-rgb", scheme.Base00},
	{"--adw-popover-fg-rgb", scheme.Base05},
	{"--adw-thumbnail-bg-rgb", scheme.Base00},
}

var steamTriple = rewrite.Syntax{
	Claim: `^\s*{key}\s*:`,
	Value: `^\s*{key}\s*:\s*(?P<value>\d+\s*,\s*\d+\s*,\s*\d+)`,
}

func steam(p palette.Palette) rewrite.Format {
	var (
		rules []rewrite.Rule
		exp   = rewrite.Expectation{Group: "keys"}
	)
	for _, e := range steamColors {
		b := rgbBinding(e.key, p.Slot(e.slot))
		if b.Err == nil {
			b.Detail = "(" + b.Text + ")"
		}
		rules = append(rules, rewrite.Static("", steamTriple, e.key, b))
		exp.Keys = append(exp.Keys, e.key)
	}
	return rewrite.Format{Rules: rules, Expect: []rewrite.Expectation{exp}}
}
