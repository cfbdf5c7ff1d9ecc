package rewrite

import (
	"regexp"
	"strings"
)

// Syntax is a pair of pattern templates in which "{key}" stands for the key
// name. Claim recognises the line; Value must define the "value" group.
type Syntax struct {
	Claim string
	Value string
}

const keyPlaceholder = "{key}"

var (
	// Assign matches "key = #rrggbb".
	Assign = Syntax{
		Claim: `^\s*{key}\s*=`,
		Value: `^\s*{key}\s*=\s*` + HexValue,
	}
	// AssignQuoted matches "key = #rrggbb" with an optional matching quote.
	AssignQuoted = Syntax{
		Claim: `^\s*{key}\s*=`,
		Value: `^\s*{key}\s*=\s*(?P<open>['"]?)` + HexValue + `(?P<close>['"]?)`,
	}
	// ColonQuoted matches YAML style "key: '#rrggbb'".
	ColonQuoted = Syntax{
		Claim: `^\s*{key}:\s*`,
		Value: `^\s*{key}:\s*(?P<open>['"]?)` + HexValue + `(?P<close>['"]?)`,
	}
	// Spaced matches "key #rrggbb" with anything after the value.
	Spaced = Syntax{
		Claim: `^\s*{key}\s+`,
		Value: `^\s*{key}\s+` + HexValue,
	}
	// DefineColor matches GTK "@define-color key #rrggbb;".
	DefineColor = Syntax{
		Claim: `^\s*@define-color\s+{key}\s+`,
		Value: `^\s*@define-color\s+{key}\s+` + HexValue + `\s*;`,
	}
)

func (s Syntax) compile(claimKey, valueKey string) (*regexp.Regexp, *regexp.Regexp) {
	claim := strings.ReplaceAll(s.Claim, keyPlaceholder, claimKey)
	value := strings.ReplaceAll(s.Value, keyPlaceholder, valueKey)
	return regexp.MustCompile(claim), regexp.MustCompile(value)
}

// Static builds a rule for one literal key.
func Static(section string, syntax Syntax, key string, b Binding) Rule {
	quoted := regexp.QuoteMeta(key)
	claim, value := syntax.compile(quoted, quoted)
	if b.Key == "" {
		b.Key = key
	}
	return Rule{
		Section: section,
		Claim:   claim,
		Value:   value,
		Lookup: func(string) (Binding, bool) {
			return b, true
		},
	}
}

// Dynamic builds a rule whose key is captured from the line by keyPattern
// and resolved through lookup.
func Dynamic(section string, syntax Syntax, keyPattern string, lookup func(key string) (Binding, bool)) Rule {
	claim, value := syntax.compile(`(?P<key>`+keyPattern+`)`, `(?:`+keyPattern+`)`)
	return Rule{
		Section: section,
		Claim:   claim,
		Value:   value,
		Lookup:  lookup,
	}
}

// Entry is one row of a static key table.
type Entry struct {
	Key   string
	Value string
}

// Table builds one Static rule per entry, in order, and the expectation
// covering all of them.
func Table(section string, syntax Syntax, group string, entries []Entry) ([]Rule, Expectation) {
	return table(section, syntax, group, "", entries)
}

// SectionTable is Table for keys that live inside section. Keys are tracked
// and reported as "section.key".
func SectionTable(section string, syntax Syntax, group string, entries []Entry) ([]Rule, Expectation) {
	return table(section, syntax, group, section+".", entries)
}

func table(section string, syntax Syntax, group, prefix string, entries []Entry) ([]Rule, Expectation) {
	rules := make([]Rule, 0, len(entries))
	exp := Expectation{Group: group, Keys: make([]string, 0, len(entries))}
	for _, e := range entries {
		key := prefix + e.Key
		rules = append(rules, Static(section, syntax, e.Key, Binding{Key: key, Value: e.Value}))
		exp.Keys = append(exp.Keys, key)
	}
	return rules, exp
}

// Wrap returns a Render func that surrounds the binding text with quote.
func Wrap(quote string) func(Binding, map[string]string) string {
	return func(b Binding, _ map[string]string) string {
		return quote + b.text() + quote
	}
}
