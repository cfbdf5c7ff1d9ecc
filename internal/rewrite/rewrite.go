// Package rewrite substitutes colour values in line oriented configuration
// files. A Format is a declarative list of rules; the engine walks the lines,
// lets the first claiming rule replace the value span and reports every key
// it expected but never saw.
package rewrite

import (
	"regexp"
	"strings"
)

// HexValue is the usual replaceable span: six hex digits with an optional '#'.
const HexValue = `(?P<value>#?[0-9A-Fa-f]{6})`

// Binding is what a rule resolved a key to.
type Binding struct {
	// Key identifies the binding for missing-key tracking.
	Key string
	// Label is shown in the report; defaults to Key.
	Label string
	// Value is the reported colour.
	Value string
	// Text replaces the value span; defaults to Value.
	Text string
	// Detail is appended to the report line.
	Detail string
	// Err marks a binding that cannot be written, e.g. an RGB conversion
	// failure. The line is left alone and reported as skipped.
	Err error
}

func (b Binding) label() string {
	if b.Label != "" {
		return b.Label
	}
	return b.Key
}

func (b Binding) text() string {
	if b.Text != "" {
		return b.Text
	}
	return b.Value
}

// Rule matches one family of keys.
type Rule struct {
	// Section restricts the rule to lines inside that section.
	Section string
	// Claim decides whether the line belongs to this rule. A named group
	// "key" is passed to Lookup.
	Claim *regexp.Regexp
	// Value locates the span to replace through the named group "value".
	// When an "open" group captures a quote, "close" must capture the same.
	Value *regexp.Regexp
	// Lookup resolves a claimed key. Returning false declines the line.
	Lookup func(key string) (Binding, bool)
	// Skip returns a reason to leave a claimed line untouched.
	Skip func(line string) string
	// Render builds the replacement text from the binding and the groups of
	// the Value match. Nil uses the binding's Text.
	Render func(b Binding, groups map[string]string) string
}

// Expectation lists the keys a format is expected to provide. Missing keys
// are reported under Group.
type Expectation struct {
	Group string
	Keys  []string
}

type Format struct {
	Sections func() Sectioner
	Rules    []Rule
	Expect   []Expectation
}

// Rewrite applies f to content. Lines are never added, dropped or reordered
// and lines no rule claims are copied verbatim.
func (f Format) Rewrite(content string) (string, Report) {
	var (
		sections Sectioner
		report   Report
		out      strings.Builder
		handled  = map[string]bool{}
	)
	if f.Sections != nil {
		sections = f.Sections()
	}
	out.Grow(len(content))

	for _, line := range SplitLines(content) {
		if sections != nil && sections.Observe(line) {
			out.WriteString(line)
			continue
		}
		current := ""
		if sections != nil {
			current = sections.Current()
		}
		next, o, key, ok := f.applyRules(line, current)
		if ok {
			report = append(report, o)
			handled[key] = true
		}
		out.WriteString(next)
	}

	return out.String(), append(report, f.missing(handled)...)
}

// applyRules offers line to the rules in order. The returned key is the
// binding key, which is what expectations are tracked against.
func (f Format) applyRules(line, section string) (string, Outcome, string, bool) {
	for _, rule := range f.Rules {
		if rule.Section != "" && rule.Section != section {
			continue
		}
		m := rule.Claim.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := ""
		if idx := rule.Claim.SubexpIndex("key"); idx >= 0 {
			key = m[idx]
		}
		b, ok := rule.Lookup(key)
		if !ok {
			continue
		}
		if rule.Skip != nil {
			if reason := rule.Skip(line); reason != "" {
				return line, Skip(b.label(), reason), b.Key, true
			}
		}
		if b.Err != nil {
			return line, Skip(b.label(), b.Err.Error()), b.Key, true
		}
		next, replaced := rule.replace(line, b)
		if !replaced {
			return line, Outcome{}, "", false
		}
		o := Match(b.label(), b.Value)
		o.Detail = b.Detail
		return next, o, b.Key, true
	}
	return line, Outcome{}, "", false
}

func (r Rule) replace(line string, b Binding) (string, bool) {
	loc := r.Value.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, false
	}
	groups := make(map[string]string)
	for i, name := range r.Value.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		groups[name] = line[loc[2*i]:loc[2*i+1]]
	}
	if open := groups["open"]; open != "" && open != groups["close"] {
		return line, false
	}
	vi := r.Value.SubexpIndex("value")
	if vi < 0 || loc[2*vi] < 0 {
		return line, false
	}
	text := b.text()
	if r.Render != nil {
		text = r.Render(b, groups)
	}
	return line[:loc[2*vi]] + text + line[loc[2*vi+1]:], true
}

func (f Format) missing(seen map[string]bool) Report {
	var out Report
	for _, exp := range f.Expect {
		for _, key := range exp.Keys {
			if !seen[key] {
				out = append(out, Absent(exp.Group, key))
			}
		}
	}
	return out
}
