// Package zed rewrites the colours of a Zed editor theme document. The
// document is edited in place so that key order and every value the tables
// do not name survive untouched.
package zed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

// ScrollbarBorderAlpha is appended to base03 for the scrollbar thumb border.
const ScrollbarBorderAlpha = "6f"

type slotKey struct {
	key  string
	slot scheme.Slot
}

var styleKeys = []slotKey{
	{"border", scheme.Base01},
	{"border.variant", scheme.Base01},
	{"elevated_surface.background", scheme.Base00},
	{"surface.background", scheme.Base00},
	{"background", scheme.Base00},
	{"element.background", scheme.Base01},
	{"element.hover", scheme.Base02},
	{"element.selected", scheme.Base02},
	{"drop_target.background", scheme.Base02},
	{"ghost_element.hover", scheme.Base01},
	{"ghost_element.selected", scheme.Base02},
	{"text", scheme.Base05},
	{"text.muted", scheme.Base04},
	{"text.placeholder", scheme.Base04},
	{"text.disabled", scheme.Base03},
	{"text.accent", scheme.Base0D},
	{"status_bar.background", scheme.Base00},
	{"title_bar.background", scheme.Base00},
	{"title_bar.inactive_background", scheme.Base01},
	{"toolbar.background", scheme.Base00},
	{"tab_bar.background", scheme.Base00},
	{"tab.inactive_background", scheme.Base01},
	{"tab.active_background", scheme.Base00},
	{"search.match_background", scheme.Base02},
	{"panel.background", scheme.Base00},
	{"panel.focused_border", scheme.Base0D},
	{"scrollbar.thumb.background", scheme.Base02},
	{"scrollbar.thumb.hover_background", scheme.Base03},
	{"scrollbar.track.background", scheme.Base00},
	{"editor.foreground", scheme.Base05},
	{"editor.background", scheme.Base00},
	{"editor.gutter.background", scheme.Base00},
	{"editor.subheader.background", scheme.Base00},
	{"editor.active_line.background", scheme.Base01},
	{"editor.line_number", scheme.Base03},
	{"editor.active_line_number", scheme.Base05},
	{"editor.wrap_guide", scheme.Base02},
	{"editor.active_wrap_guide", scheme.Base02},
	{"editor.document_highlight.read_background", scheme.Base01},
	{"editor.document_highlight.write_background", scheme.Base01},
	{"terminal.background", scheme.Base00},
	{"terminal.foreground", scheme.Base05},
	{"terminal.bright_foreground", scheme.Base07},
	{"terminal.dim_foreground", scheme.Base04},
	{"link_text.hover", scheme.Base0C},
	{"conflict", scheme.Base0A},
	{"conflict.background", scheme.Base00},
	{"conflict.border", scheme.Base0A},
	{"created", scheme.Base0B},
	{"created.background", scheme.Base00},
	{"created.border", scheme.Base0B},
	{"deleted", scheme.Base08},
	{"deleted.background", scheme.Base00},
	{"deleted.border", scheme.Base08},
	{"error", scheme.Base08},
	{"error.background", scheme.Base00},
	{"error.border", scheme.Base08},
	{"hidden", scheme.Base03},
	{"hidden.background", scheme.Base00},
	{"hidden.border", scheme.Base03},
	{"hint", scheme.Base0C},
	{"hint.background", scheme.Base00},
	{"hint.border", scheme.Base0C},
	{"ignored", scheme.Base03},
	{"ignored.background", scheme.Base00},
	{"ignored.border", scheme.Base03},
	{"info", scheme.Base0C},
	{"info.background", scheme.Base00},
	{"info.border", scheme.Base0C},
	{"modified", scheme.Base0D},
	{"modified.background", scheme.Base00},
	{"modified.border", scheme.Base0D},
	{"predictive", scheme.Base03},
	{"predictive.background", scheme.Base01},
	{"predictive.border", scheme.Base01},
	{"renamed", scheme.Base09},
	{"renamed.background", scheme.Base00},
	{"renamed.border", scheme.Base09},
	{"success", scheme.Base0B},
	{"success.background", scheme.Base00},
	{"success.border", scheme.Base0B},
	{"unreachable", scheme.Base09},
	{"unreachable.background", scheme.Base00},
	{"unreachable.border", scheme.Base09},
	{"warning", scheme.Base09},
	{"warning.background", scheme.Base00},
	{"warning.border", scheme.Base09},
}

// ansiKeys are indexed like the palette's ANSI view.
var ansiKeys = [16]string{
	"terminal.ansi.black",
	"terminal.ansi.red",
	"terminal.ansi.green",
	"terminal.ansi.yellow",
	"terminal.ansi.blue",
	"terminal.ansi.magenta",
	"terminal.ansi.cyan",
	"terminal.ansi.white",
	"terminal.ansi.bright_black",
	"terminal.ansi.bright_red",
	"terminal.ansi.bright_green",
	"terminal.ansi.bright_yellow",
	"terminal.ansi.bright_blue",
	"terminal.ansi.bright_magenta",
	"terminal.ansi.bright_cyan",
	"terminal.ansi.bright_white",
}

var playerKeys = []slotKey{
	{"cursor", scheme.Base05},
	{"selection", scheme.Base02},
}

var syntaxKeys = []slotKey{
	{"attribute", scheme.Base0D},
	{"boolean", scheme.Base09},
	{"comment", scheme.Base03},
	{"comment.doc", scheme.Base03},
	{"constant", scheme.Base09},
	{"constructor", scheme.Base0D},
	{"emphasis", scheme.Base0D},
	{"emphasis.strong", scheme.Base08},
	{"function", scheme.Base0D},
	{"keyword", scheme.Base0E},
	{"label", scheme.Base0A},
	{"link_text", scheme.Base0D},
	{"link_uri", scheme.Base0D},
	{"number", scheme.Base09},
	{"punctuation", scheme.Base05},
	{"punctuation.bracket", scheme.Base05},
	{"punctuation.delimiter", scheme.Base05},
	{"punctuation.list_marker", scheme.Base05},
	{"punctuation.special", scheme.Base05},
	{"string", scheme.Base0B},
	{"string.escape", scheme.Base0C},
	{"string.regex", scheme.Base0C},
	{"string.special", scheme.Base0C},
	{"string.special.symbol", scheme.Base0C},
	{"tag", scheme.Base0A},
	{"text.literal", scheme.Base0B},
	{"title", scheme.Base0D},
	{"type", scheme.Base0A},
	{"variable", scheme.Base08},
	{"variable.special", scheme.Base08},
}

// Rewrite updates themes[0].style of a Zed theme. A document that is not
// valid JSON is an error; a missing style object only produces missing
// entries. The result is indented with two spaces and ends in a newline.
func Rewrite(content string, p palette.Palette) (string, rewrite.Report, error) {
	var doc bytes.Buffer
	if err := json.Compact(&doc, []byte(content)); err != nil {
		return "", nil, fmt.Errorf("parse theme json: %w", err)
	}
	data := doc.Bytes()

	var report rewrite.Report
	style, end, ok := locateStyle(data)
	if ok {
		edited, r, err := rewriteStyle(style, p)
		if err != nil {
			return "", nil, err
		}
		start := end - len(style)
		data = append(append(append([]byte{}, data[:start]...), edited...), data[end:]...)
		report = r
	} else {
		report = missingStyle()
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return "", nil, fmt.Errorf("format theme json: %w", err)
	}
	out.WriteByte('\n')
	return out.String(), report, nil
}

func locateStyle(data []byte) ([]byte, int, bool) {
	style, dt, end, err := jsonparser.Get(data, "themes", "[0]", "style")
	if err != nil || dt != jsonparser.Object {
		return nil, 0, false
	}
	return style, end, true
}

type styleEditor struct {
	style  []byte
	report rewrite.Report
}

func rewriteStyle(style []byte, p palette.Palette) ([]byte, rewrite.Report, error) {
	e := &styleEditor{style: style}
	for _, k := range styleKeys {
		if err := e.set(p.Slot(k.slot), k.key); err != nil {
			return nil, nil, err
		}
	}
	border := p.Slot(scheme.Base03) + ScrollbarBorderAlpha
	if err := e.set(border, "scrollbar.thumb.border"); err != nil {
		return nil, nil, err
	}
	for i, key := range ansiKeys {
		if err := e.set(p.ANSI[i], key); err != nil {
			return nil, nil, err
		}
	}
	if err := e.players(p); err != nil {
		return nil, nil, err
	}
	if err := e.syntax(p); err != nil {
		return nil, nil, err
	}
	return e.style, e.report, nil
}

func (e *styleEditor) set(value, key string) error {
	label := "style." + key
	if _, _, _, err := jsonparser.Get(e.style, key); err != nil {
		e.report = append(e.report, rewrite.Absent("", label))
		return nil
	}
	next, err := jsonparser.Set(e.style, quote(value), key)
	if err != nil {
		return fmt.Errorf("set %s: %w", label, err)
	}
	e.style = next
	e.report = append(e.report, rewrite.Match(label, value))
	return nil
}

func (e *styleEditor) players(p palette.Palette) error {
	raw, dt, _, err := jsonparser.Get(e.style, "players")
	if err != nil || dt != jsonparser.Array {
		return nil
	}

	var (
		elems  [][]byte
		idx    int
		setErr error
	)
	_, err = jsonparser.ArrayEach(raw, func(value []byte, vt jsonparser.ValueType, _ int, _ error) {
		prefix := "players[" + strconv.Itoa(idx) + "]."
		idx++
		if vt != jsonparser.Object {
			for _, k := range playerKeys {
				e.report = append(e.report, rewrite.Absent("", prefix+k.key))
			}
			elems = append(elems, rawElement(value, vt))
			return
		}
		player := value
		for _, k := range playerKeys {
			if _, _, _, err := jsonparser.Get(player, k.key); err != nil {
				e.report = append(e.report, rewrite.Absent("", prefix+k.key))
				continue
			}
			v := p.Slot(k.slot)
			next, err := jsonparser.Set(player, quote(v), k.key)
			if err != nil && setErr == nil {
				setErr = fmt.Errorf("set %s%s: %w", prefix, k.key, err)
				continue
			}
			player = next
			e.report = append(e.report, rewrite.Match(prefix+k.key, v))
		}
		elems = append(elems, player)
	})
	if err != nil {
		return fmt.Errorf("read players: %w", err)
	}
	if setErr != nil {
		return setErr
	}
	if len(elems) == 0 {
		return nil
	}

	arr := append([]byte{'['}, bytes.Join(elems, []byte{','})...)
	arr = append(arr, ']')
	next, err := jsonparser.Set(e.style, arr, "players")
	if err != nil {
		return fmt.Errorf("set players: %w", err)
	}
	e.style = next
	return nil
}

func (e *styleEditor) syntax(p palette.Palette) error {
	for _, k := range syntaxKeys {
		label := "syntax." + k.key
		entry, dt, _, err := jsonparser.Get(e.style, "syntax", k.key)
		if err != nil || dt != jsonparser.Object {
			e.report = append(e.report, rewrite.Absent("", label))
			continue
		}
		if _, _, _, err := jsonparser.Get(entry, "color"); err != nil {
			e.report = append(e.report, rewrite.Absent("", label))
			continue
		}
		v := p.Slot(k.slot)
		next, err := jsonparser.Set(e.style, quote(v), "syntax", k.key, "color")
		if err != nil {
			return fmt.Errorf("set %s: %w", label, err)
		}
		e.style = next
		e.report = append(e.report, rewrite.Match(label, v))
	}
	return nil
}

func missingStyle() rewrite.Report {
	var r rewrite.Report
	for _, k := range styleKeys {
		r = append(r, rewrite.Absent("", "style."+k.key))
	}
	r = append(r, rewrite.Absent("", "style.scrollbar.thumb.border"))
	for _, key := range ansiKeys {
		r = append(r, rewrite.Absent("", "style."+key))
	}
	for _, k := range syntaxKeys {
		r = append(r, rewrite.Absent("", "syntax."+k.key))
	}
	return r
}

// rawElement restores an array element as JSON text; jsonparser hands string
// values over without their quotes.
func rawElement(value []byte, vt jsonparser.ValueType) []byte {
	if vt != jsonparser.String {
		return value
	}
	out := make([]byte, 0, len(value)+2)
	out = append(out, '"')
	out = append(out, value...)
	return append(out, '"')
}

func quote(s string) []byte {
	b, _ := json.Marshal(s)
	return b
}
