// Package palette derives the colour views consumed by the rewriters from a
// Base16 scheme.
package palette

import "github.com/unkn0wn-root/b16apply/internal/scheme"

// ANSISlots maps terminal colour indexes to scheme slots. Bright red, green,
// yellow, blue, magenta and cyan reuse their normal slot.
var ANSISlots = [16]scheme.Slot{
	scheme.Base00,
	scheme.Base08,
	scheme.Base0B,
	scheme.Base0A,
	scheme.Base0D,
	scheme.Base0E,
	scheme.Base0C,
	scheme.Base05,
	scheme.Base03,
	scheme.Base08,
	scheme.Base0B,
	scheme.Base0A,
	scheme.Base0D,
	scheme.Base0E,
	scheme.Base0C,
	scheme.Base07,
}

// RoleSlot binds a semantic name used by a consuming application to a slot.
type RoleSlot struct {
	Name string
	Slot scheme.Slot
}

var NeovimRoles = []RoleSlot{
	{"bg", scheme.Base00},
	{"bg_dark", scheme.Base00},
	{"bg_highlight", scheme.Base02},
	{"fg", scheme.Base05},
	{"fg_dark", scheme.Base04},
	{"comment", scheme.Base03},
	{"red", scheme.Base08},
	{"orange", scheme.Base09},
	{"yellow", scheme.Base0A},
	{"green", scheme.Base0B},
	{"cyan", scheme.Base0C},
	{"blue", scheme.Base0D},
	{"purple", scheme.Base0E},
	{"magenta", scheme.Base0F},
}

var GTKRoles = []RoleSlot{
	{"background", scheme.Base00},
	{"foreground", scheme.Base05},
	{"black", scheme.Base00},
	{"red", scheme.Base08},
	{"green", scheme.Base0B},
	{"yellow", scheme.Base0A},
	{"blue", scheme.Base0D},
	{"magenta", scheme.Base0E},
	{"cyan", scheme.Base0C},
	{"white", scheme.Base05},
	{"bright_black", scheme.Base01},
	{"bright_red", scheme.Base09},
	{"bright_green", scheme.Base0B},
	{"bright_yellow", scheme.Base0A},
	{"bright_blue", scheme.Base0D},
	{"bright_magenta", scheme.Base0F},
	{"bright_cyan", scheme.Base0C},
	{"bright_white", scheme.Base07},
	{"selection_bg", scheme.Base0A},
	{"selection_fg", scheme.Base00},
}

type Role struct {
	Name  string
	Slot  scheme.Slot
	Value string
}

type UI struct {
	Background string
	Foreground string
	Accent     string
	Cursor     string
}

type Palette struct {
	ANSI    [16]string
	Indexed [16]string
	UI      UI
	Neovim  []Role
	GTK     []Role

	source scheme.Scheme
}

func Build(s scheme.Scheme) Palette {
	p := Palette{source: s}
	for i, slot := range ANSISlots {
		p.ANSI[i] = s.Color(slot)
	}
	for _, slot := range scheme.Slots() {
		p.Indexed[slot] = s.Color(slot)
	}
	p.UI = UI{
		Background: s.Color(scheme.Base00),
		Foreground: s.Color(scheme.Base05),
		Accent:     s.Color(scheme.Base0D),
		Cursor:     s.Color(scheme.Base05),
	}
	p.Neovim = resolveRoles(s, NeovimRoles)
	p.GTK = resolveRoles(s, GTKRoles)
	return p
}

func resolveRoles(s scheme.Scheme, table []RoleSlot) []Role {
	out := make([]Role, len(table))
	for i, rs := range table {
		out[i] = Role{Name: rs.Name, Slot: rs.Slot, Value: s.Color(rs.Slot)}
	}
	return out
}

// Slot returns the raw scheme colour.
func (p Palette) Slot(slot scheme.Slot) string {
	return p.source.Color(slot)
}

func (p Palette) Scheme() scheme.Scheme {
	return p.source
}

// GTKContext is the placeholder context for GTK stylesheet templates.
func (p Palette) GTKContext() map[string]string {
	ctx := make(map[string]string, len(p.GTK))
	for _, r := range p.GTK {
		ctx[r.Name] = r.Value
	}
	return ctx
}
