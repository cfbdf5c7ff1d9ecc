package rewrite

import (
	"regexp"
	"strings"
)

// InlineRule rewrites every occurrence of Pattern anywhere in the text.
// Pattern may capture "key" for Lookup and must capture "value".
type InlineRule struct {
	Pattern *regexp.Regexp
	Lookup  func(key string) (Binding, bool)
}

// InlineFormat is used for files where colour assignments are not one per
// line. Each key is reported once: expected keys in expectation order, then
// any other key that matched, then the missing ones.
type InlineFormat struct {
	Rules  []InlineRule
	Expect []Expectation
}

func (f InlineFormat) Rewrite(content string) (string, Report) {
	var (
		found = map[string]Outcome{}
		order []string
	)
	record := func(key string, o Outcome) {
		if _, ok := found[key]; !ok {
			order = append(order, key)
		}
		found[key] = o
	}

	for _, rule := range f.Rules {
		content = rule.apply(content, record)
	}

	var (
		report   Report
		missing  Report
		reported = make(map[string]bool, len(found))
	)
	for _, exp := range f.Expect {
		for _, key := range exp.Keys {
			if o, ok := found[key]; ok {
				report = append(report, o)
				reported[key] = true
				continue
			}
			missing = append(missing, Absent(exp.Group, key))
		}
	}
	for _, key := range order {
		if !reported[key] {
			report = append(report, found[key])
		}
	}
	return content, append(report, missing...)
}

func (r InlineRule) apply(content string, record func(string, Outcome)) string {
	matches := r.Pattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return content
	}
	ki := r.Pattern.SubexpIndex("key")
	vi := r.Pattern.SubexpIndex("value")

	var (
		out  strings.Builder
		last int
	)
	out.Grow(len(content))
	for _, loc := range matches {
		key := ""
		if ki >= 0 && loc[2*ki] >= 0 {
			key = content[loc[2*ki]:loc[2*ki+1]]
		}
		b, ok := r.Lookup(key)
		if !ok || vi < 0 || loc[2*vi] < 0 {
			continue
		}
		if b.Err != nil {
			record(b.Key, Skip(b.label(), b.Err.Error()))
			continue
		}
		out.WriteString(content[last:loc[2*vi]])
		out.WriteString(b.text())
		last = loc[2*vi+1]
		o := Match(b.label(), b.Value)
		o.Detail = b.Detail
		record(b.Key, o)
	}
	out.WriteString(content[last:])
	return out.String()
}
