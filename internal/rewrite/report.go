package rewrite

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Matched Kind = iota
	Missing
	Skipped
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Missing:
		return "missing"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is one entry of a rewrite report.
//
// Matched carries the new Value (and an optional Detail such as an RGB
// triple). Missing carries the Group it is summarised under; an empty group
// is rendered on its own line. Skipped carries the Reason.
type Outcome struct {
	Kind   Kind
	Key    string
	Value  string
	Detail string
	Group  string
	Reason string
}

func Match(key, value string) Outcome {
	return Outcome{Kind: Matched, Key: key, Value: value}
}

func Absent(group, key string) Outcome {
	return Outcome{Kind: Missing, Group: group, Key: key}
}

func Skip(key, reason string) Outcome {
	return Outcome{Kind: Skipped, Key: key, Reason: reason}
}

type Report []Outcome

func (r Report) Filter(kind Kind) Report {
	var out Report
	for _, o := range r {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// MissingKeys lists missing keys in report order.
func (r Report) MissingKeys() []string {
	var out []string
	for _, o := range r.Filter(Missing) {
		out = append(out, o.Key)
	}
	return out
}

// Lines renders the report for display. Missing entries sharing a group are
// folded into a single "missing <group>: a, b" line placed where the first of
// them appeared.
func (r Report) Lines() []string {
	var (
		lines  []string
		groups = map[string]int{}
	)
	for _, o := range r {
		switch o.Kind {
		case Matched:
			line := o.Key + " -> " + o.Value
			if o.Detail != "" {
				line += " " + o.Detail
			}
			lines = append(lines, line)
		case Skipped:
			line := "skipped " + o.Key
			if o.Reason != "" {
				line += " (" + o.Reason + ")"
			}
			lines = append(lines, line)
		case Missing:
			if o.Group == "" {
				lines = append(lines, "missing "+o.Key)
				continue
			}
			if idx, ok := groups[o.Group]; ok {
				lines[idx] += ", " + o.Key
				continue
			}
			groups[o.Group] = len(lines)
			lines = append(lines, "missing "+o.Group+": "+o.Key)
		}
	}
	return lines
}

func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
