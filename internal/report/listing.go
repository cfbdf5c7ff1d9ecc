package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

// TargetState is one row of the targets listing.
type TargetState struct {
	Name string
	Path string
	// Present is false when the file does not exist.
	Present bool
	Skipped bool
}

// Catalog lists schemes by key with their name and a strip of base00..base07.
func (p *Printer) Catalog(defs []scheme.Definition) {
	if len(defs) == 0 {
		fmt.Fprintln(p.out, p.styles.muted.Render("no schemes found"))
		return
	}
	width := 0
	for _, def := range defs {
		width = max(width, ansi.StringWidth(def.Key))
	}
	for _, def := range defs {
		var strip strings.Builder
		for _, slot := range scheme.Slots()[:8] {
			strip.WriteString(p.Swatch(def.Scheme.Color(slot), " "))
		}
		line := def.Key + strings.Repeat(" ", width-ansi.StringWidth(def.Key))
		line += "  " + def.DisplayName
		if v := def.Scheme.Metadata.Variant; v != "" {
			line += " " + p.styles.muted.Render("("+v+")")
		}
		fmt.Fprintf(p.out, "%s  %s\n", strip.String(), line)
	}
}

func (p *Printer) Targets(rows []TargetState) {
	width := 0
	for _, row := range rows {
		width = max(width, ansi.StringWidth(row.Name))
	}
	for _, row := range rows {
		state := p.styles.bullet.Render("ok")
		switch {
		case row.Skipped:
			state = p.styles.skipped.Render("skipped")
		case !row.Present:
			state = p.styles.missing.Render("missing")
		}
		pad := strings.Repeat(" ", width-ansi.StringWidth(row.Name))
		state += strings.Repeat(" ", len("skipped")-ansi.StringWidth(state))
		fmt.Fprintf(p.out, "%s%s  %s  %s\n", row.Name, pad, state, row.Path)
	}
}
