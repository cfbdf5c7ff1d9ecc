// Package report prints apply results and palette previews to a terminal.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/b16apply/internal/apply"
	"github.com/unkn0wn-root/b16apply/internal/config"
	"github.com/unkn0wn-root/b16apply/internal/hexcolor"
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

type styles struct {
	header  lipgloss.Style
	bullet  lipgloss.Style
	missing lipgloss.Style
	skipped lipgloss.Style
	failure lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
	muted   lipgloss.Style
}

type Printer struct {
	out    io.Writer
	r      *lipgloss.Renderer
	styles styles
}

// New returns a printer writing to out. ColorAuto lets termenv inspect out
// and the environment (NO_COLOR included).
func New(out io.Writer, mode config.ColorMode) *Printer {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out: out,
		r:   r,
		styles: styles{
			header:  r.NewStyle().Bold(true),
			bullet:  r.NewStyle(),
			missing: r.NewStyle().Foreground(lipgloss.Color("3")),
			skipped: r.NewStyle().Faint(true),
			failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			added:   r.NewStyle().Foreground(lipgloss.Color("2")),
			removed: r.NewStyle().Foreground(lipgloss.Color("1")),
			hunk:    r.NewStyle().Foreground(lipgloss.Color("6")),
			muted:   r.NewStyle().Faint(true),
		},
	}
}

// Swatch draws label on a block of the given colour. Values that are not hex
// colours are returned as is.
func (p *Printer) Swatch(hex, label string) string {
	if !hexcolor.Valid(hex) {
		return label
	}
	return p.r.NewStyle().
		Background(lipgloss.Color(hexcolor.Normalize(hex))).
		Foreground(lipgloss.Color(hexcolor.Contrast(hex))).
		Render(" " + label + " ")
}

// Entry prefixes a report line with a swatch of the first colour it names.
func (p *Printer) Entry(line string) string {
	hex := hexcolor.Match.FindString(line)
	style := p.styles.bullet
	switch {
	case strings.HasPrefix(line, "missing "):
		style = p.styles.missing
	case strings.HasPrefix(line, "skipped "):
		style = p.styles.skipped
	}
	if hex == "" {
		return style.Render(line)
	}
	return p.Swatch(hex, hex) + " " + style.Render(line)
}

// Results prints one block per target followed by "Done.".
func (p *Printer) Results(results []apply.Result) {
	for _, res := range results {
		p.Result(res)
	}
	fmt.Fprintln(p.out, "Done.")
}

func (p *Printer) Result(res apply.Result) {
	fmt.Fprintln(p.out, p.styles.header.Render("==> "+filepath.Base(res.Path)))
	switch {
	case res.Skipped:
		fmt.Fprintln(p.out, "  - "+p.styles.skipped.Render("skipped"))
		return
	case res.Err != nil:
		fmt.Fprintln(p.out, "  ! "+p.styles.failure.Render(res.Err.Error()))
		return
	}

	lines := res.Report.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(p.out, "  - no matches")
	}
	for _, line := range lines {
		fmt.Fprintln(p.out, "  - "+p.Entry(line))
	}
	if res.Diff != "" {
		p.Diff(res.Diff)
	}
}

// Diff prints a unified diff indented under the current target.
func (p *Printer) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		style := p.styles.muted
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			style = p.styles.added
		case strings.HasPrefix(line, "-"):
			style = p.styles.removed
		case strings.HasPrefix(line, "@@"):
			style = p.styles.hunk
		}
		fmt.Fprintln(p.out, "    "+style.Render(line))
	}
}

// Palette prints the scheme slots and the ANSI view.
func (p *Printer) Palette(pal palette.Palette) {
	s := pal.Scheme()
	if title := schemeTitle(s); title != "" {
		fmt.Fprintln(p.out, p.styles.header.Render(title))
	}

	width := 0
	for _, slot := range scheme.Slots() {
		width = max(width, ansi.StringWidth(slot.String()))
	}
	for _, slot := range scheme.Slots() {
		name := slot.String()
		pad := strings.Repeat(" ", width-ansi.StringWidth(name))
		value := pal.Slot(slot)
		fmt.Fprintf(p.out, "%s%s  %s\n", name, pad, p.Swatch(value, value))
	}

	var normal, bright strings.Builder
	for i, value := range pal.ANSI {
		block := p.Swatch(value, fmt.Sprintf("%2d", i))
		if i < 8 {
			normal.WriteString(block)
		} else {
			bright.WriteString(block)
		}
	}
	fmt.Fprintln(p.out, p.styles.muted.Render("ansi"))
	fmt.Fprintln(p.out, normal.String())
	fmt.Fprintln(p.out, bright.String())
}

func schemeTitle(s scheme.Scheme) string {
	var (
		meta  = s.Metadata
		parts []string
	)
	if meta.Name != "" {
		parts = append(parts, meta.Name)
	}
	if meta.Author != "" {
		parts = append(parts, "by "+meta.Author)
	}
	if meta.Variant != "" {
		parts = append(parts, "("+meta.Variant+")")
	}
	return strings.Join(parts, " ")
}
