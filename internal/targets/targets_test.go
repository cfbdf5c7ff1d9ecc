package targets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

var testColors = [scheme.SlotCount]string{
	"#1a1b26", // base00
	"#16161e", // base01
	"#2f3549", // base02
	"#444b6a", // base03
	"#787c99", // base04
	"#f8f8f2", // base05
	"#cbccd1", // base06
	"#d5d6db", // base07
	"#ff5555", // base08
	"#ff9e64", // base09
	"#ffaa00", // base0A
	"#9ece6a", // base0B
	"#b4f9f8", // base0C
	"#2ac3de", // base0D
	"#bb9af7", // base0E
	"#f7768e", // base0F
}

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	s, err := scheme.New(testColors)
	require.NoError(t, err)
	return palette.Build(s)
}

func run(t *testing.T, name, content string) (string, rewrite.Report) {
	t.Helper()
	target, ok := Lookup(name)
	require.True(t, ok, "target %s", name)
	out, report, err := target.Rewrite(content, testPalette(t))
	require.NoError(t, err)
	return out, report
}

// fixtures holds one representative file per line based target.
var fixtures = map[string]string{
	"ghostty": heredoc.Doc(`
		font-size = 12
		background = #000000
		foreground = 000000
		palette = 1=#000000
		palette = 9=#000000
		palette = 20=#000000
	`),
	"alacritty": heredoc.Doc(`
		[colors.primary]
		background = "#000000"
		foreground = '#000000'

		[colors.cursor]
		text = "#000000"
		cursor = "#000000"

		[colors.normal]
		red = "#000000"

		[colors.bright]
		red = "#000000"
	`),
	"kitty": heredoc.Doc(`
		background #000000
		foreground #000000 # trailing
		color0 #000000
		color15 #000000
	`),
	"warp": heredoc.Doc(`
		accent: '#000000'
		background: "#000000"
		terminal_colors:
		  normal:
		    red: '#000000'
		  bright:
		    red: '#000000'
		details: darker
	`),
	"fish": heredoc.Doc(`
		set -U background #000000
		set -U foreground '#000000'
		set -U color3 000000
	`),
	"fzf": heredoc.Doc(`
		set -l color0a '#000000'
		set -l color0F #000000
	`),
	"hyprland": heredoc.Doc(`
		$activeBorderColor = rgb(000000)
	`),
	"hyprlock": heredoc.Doc(`
		$color = rgba(0, 0, 0, 0.85)
		$outer_color = rgba(0,0,0)
	`),
	"mako": heredoc.Doc(`
		text-color=#000000
		border-color = #000000
	`),
	"waybar": heredoc.Doc(`
		@define-color background #000000;
		@define-color foreground #000000 ;
	`),
	"btop": heredoc.Doc(`
		theme[main_bg]="#000000"
		theme[unknown]="#000000"
	`),
	"cava": heredoc.Doc(`
		gradient_color_3 = '#112233'
		gradient_color_9 = '#112233'
	`),
	"gtk": heredoc.Doc(`
		@define-color selection_bg #000000;
	`),
	"steam": heredoc.Doc(`
		--adw-accent-rgb: 0, 0, 0;
	`),
}

func TestAllOrder(t *testing.T) {
	var files []string
	for _, target := range All() {
		files = append(files, target.File)
	}
	assert.Equal(t, []string{
		"ghostty.conf", "neovim.lua", "alacritty.toml", "kitty.conf", "warp.yaml",
		"colors.fish", "fzf.fish", "vencord.theme.css", "hyprland.conf", "hyprlock.conf",
		"mako.ini", "waybar.css", "wofi.css", "walker.css", "swayosd.css", "btop.theme",
		"cava_theme", "chromium.theme", "gtk.css", "aether.override.css", "steam.css",
		"aether.zed.json",
	}, files)
	assert.Len(t, Names(), len(files))
}

func TestLookupByNameOrFile(t *testing.T) {
	byName, ok := Lookup("Kitty")
	require.True(t, ok)
	byFile, ok := Lookup("kitty.conf")
	require.True(t, ok)
	assert.Equal(t, byName.File, byFile.File)

	_, ok = Lookup("emacs")
	assert.False(t, ok)
}

func TestLineTargetsKeepLineCountAndAreIdempotent(t *testing.T) {
	for name, content := range fixtures {
		t.Run(name, func(t *testing.T) {
			once, first := run(t, name, content)
			twice, second := run(t, name, once)

			assert.Equal(t, once, twice)
			assert.Equal(t, first, second)
			assert.Equal(t, len(rewrite.SplitLines(content)), len(rewrite.SplitLines(once)))
		})
	}
}

func TestGhostty(t *testing.T) {
	out, report := run(t, "ghostty", fixtures["ghostty"])

	assert.Equal(t, heredoc.Doc(`
		font-size = 12
		background = #1a1b26
		foreground = #f8f8f2
		palette = 1=#ff5555
		palette = 9=#ff5555
		palette = 20=#000000
	`), out)
	lines := report.Lines()
	assert.Contains(t, lines, "foreground -> #f8f8f2")
	assert.Contains(t, lines, "palette[9] -> #ff5555")
	assert.Contains(t, lines, "missing palette indexes: 0, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15")
	assert.NotContains(t, strings.Join(lines, "\n"), "missing keys")
}

func TestAlacrittySections(t *testing.T) {
	out, report := run(t, "alacritty", fixtures["alacritty"])

	assert.Contains(t, out, "background = \"#1a1b26\"\nforeground = '#f8f8f2'\n")
	assert.Contains(t, out, "text = \"#1a1b26\"\ncursor = \"#f8f8f2\"\n")
	assert.Contains(t, out, "[colors.normal]\nred = \"#ff5555\"\n")
	assert.Contains(t, report.Lines(), "colors.bright.red -> #ff5555")
	missing := report.MissingKeys()
	assert.Contains(t, missing, "colors.normal.black")
	assert.Contains(t, missing, "colors.bright.white")
	assert.NotContains(t, missing, "colors.primary.background")
}

func TestKittyKeepsTrailingText(t *testing.T) {
	out, report := run(t, "kitty", fixtures["kitty"])

	assert.Contains(t, out, "foreground #f8f8f2 # trailing\n")
	assert.Contains(t, out, "color15 #d5d6db\n")
	assert.Contains(t, report.Lines(), "color0 -> #1a1b26")
}

func TestWarpNestedColors(t *testing.T) {
	out, report := run(t, "warp", fixtures["warp"])

	assert.Contains(t, out, "accent: '#2ac3de'\n")
	assert.Contains(t, out, "  normal:\n    red: '#ff5555'\n")
	assert.Contains(t, report.Lines(), "terminal_colors.bright.red -> #ff5555")
	assert.Contains(t, report.MissingKeys(), "cursor")
}

func TestFishValuesAreQuoted(t *testing.T) {
	out, report := run(t, "fish", fixtures["fish"])

	assert.Equal(t, heredoc.Doc(`
		set -U background '#1a1b26'
		set -U foreground '#f8f8f2'
		set -U color3 '#ffaa00'
	`), out)
	assert.Contains(t, report.Lines(), "missing keys: cursor")

	out, report = run(t, "fzf", fixtures["fzf"])
	assert.Equal(t, "set -l color0a '#9ece6a'\nset -l color0F '#d5d6db'\n", out)
	assert.Contains(t, report.Lines(), "color0A -> #9ece6a")
	assert.Contains(t, report.MissingKeys(), "00")
}

func TestHyprlandAccent(t *testing.T) {
	out, report := run(t, "hyprland", "$activeBorderColor = rgb(000000)\n")
	assert.Equal(t, "$activeBorderColor = rgb(2ac3de)\n", out)
	assert.Equal(t, []string{"$activeBorderColor -> #2ac3de"}, report.Lines())

	_, report = run(t, "hyprland", "general {\n}\n")
	assert.Equal(t, []string{"missing $activeBorderColor"}, report.Lines())
}

func TestHyprlandSkipsGradients(t *testing.T) {
	for _, line := range []string{
		"$activeBorderColor = rgb(112233) 45deg\n",
		"$activeBorderColor = rgb(112233) rgb(445566) 90deg\n",
		"$activeBorderColor = rgb(112233) rgb(445566)\n",
	} {
		out, report := run(t, "hyprland", line)
		assert.Equal(t, line, out)
		assert.Equal(t, []string{"skipped $activeBorderColor (gradient)"}, report.Lines())
		assert.Empty(t, report.Filter(rewrite.Missing))
	}
}

func TestHyprlockRGBA(t *testing.T) {
	out, report := run(t, "hyprlock", fixtures["hyprlock"])

	assert.Equal(t, "$color = rgba(26, 27, 38, 0.85)\n$outer_color = rgba(42, 195, 222, 1)\n", out)
	assert.Contains(t, report.Lines(), "$outer_color -> #2ac3de")
	assert.Contains(t, report.Lines(), "missing keys: $inner_color, $font_color, $placeholder_color, $check_color")
}

func TestSteamReportsTriple(t *testing.T) {
	out, report := run(t, "steam", fixtures["steam"])

	assert.Equal(t, "--adw-accent-rgb: 42, 195, 222;\n", out)
	assert.Equal(t, "--adw-accent-rgb -> #2ac3de (42, 195, 222)", report.Lines()[0])
}

func TestBtopAndCava(t *testing.T) {
	out, report := run(t, "btop", fixtures["btop"])
	assert.Equal(t, "theme[main_bg]=\"#1a1b26\"\ntheme[unknown]=\"#000000\"\n", out)
	assert.Equal(t, "main_bg -> #1a1b26", report.Lines()[0])

	out, report = run(t, "cava", fixtures["cava"])
	assert.Equal(t, "gradient_color_3 = '#ffaa00'\ngradient_color_9 = '#112233'\n", out)
	assert.Equal(t, []string{
		"gradient_color_3 -> #ffaa00",
		"missing keys: 1, 2, 4, 5, 6, 7, 8",
	}, report.Lines())
}

func TestChromiumReplacesWholeFile(t *testing.T) {
	out, report := run(t, "chromium", "anything\nat all\n")
	assert.Equal(t, "26,27,38\n", out)
	assert.Equal(t, []string{"chromium.theme -> 26,27,38"}, report.Lines())
}

func TestNeovimInline(t *testing.T) {
	in := `local c = { bg = "#000000", bg_dark = '#000000', fg = #000000, fg = "#111111" }` + "\n"
	out, report := run(t, "neovim", in)

	assert.Equal(t, `local c = { bg = "#1a1b26", bg_dark = '#1a1b26', fg = #f8f8f2, fg = "#f8f8f2" }`+"\n", out)
	lines := report.Lines()
	assert.Equal(t, "bg -> #1a1b26", lines[0])
	assert.Equal(t, "bg_dark -> #1a1b26", lines[1])
	assert.Equal(t, "fg -> #f8f8f2", lines[2])
	assert.Equal(t, "missing keys: bg_highlight, fg_dark, comment, red, orange, yellow, green, cyan, blue, purple, magenta", lines[3])
}

func TestVencordUsesIndexedView(t *testing.T) {
	in := ":root { --color09: #000000; --color01:000000; --color16: #000000; }\n"
	out, report := run(t, "vencord", in)

	assert.Equal(t, ":root { --color09: #ff9e64; --color01:#16161e; --color16: #000000; }\n", out)
	lines := report.Lines()
	assert.Equal(t, "--color01 -> #16161e", lines[0])
	assert.Equal(t, "--color09 -> #ff9e64", lines[1])
	assert.Equal(t, "missing colors: 0, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15", lines[2])
}

func TestGTKTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gtk.css")
	require.NoError(t, os.WriteFile(path, []byte("@define-color bg {{ background }};\n{{ nope }} {{ accent }}\n"), 0o644))

	out, report, err := GTKTemplate(path).Rewrite("old\n", testPalette(t))
	require.NoError(t, err)
	assert.Equal(t, "@define-color bg #1a1b26;\n{{ nope }} {{ accent }}\n", out)
	assert.Equal(t, []string{"template -> gtk.css", "missing keys: accent, nope"}, report.Lines())
}

func TestGTKTemplateMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtk.css")
	target := GTKTemplate(path)
	assert.Equal(t, "gtk.css", target.File)

	out, report, err := target.Rewrite("old\n", testPalette(t))
	require.NoError(t, err)
	assert.Equal(t, "old\n", out)
	assert.Equal(t, []string{"missing template: " + path}, report.Lines())
}
