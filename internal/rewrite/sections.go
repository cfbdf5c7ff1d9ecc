package rewrite

import (
	"regexp"
	"strings"
)

// Sectioner tracks which section of a file the current line belongs to.
// Observe returns true when the line is a section header; header lines are
// passed through without being offered to any rule.
type Sectioner interface {
	Observe(line string) bool
	Current() string
}

var tomlHeader = regexp.MustCompile(`^\s*\[(.+)\]\s*$`)

type tomlSections struct {
	current string
}

// TOMLSections follows "[table.name]" headers.
func TOMLSections() Sectioner {
	return &tomlSections{}
}

func (s *tomlSections) Observe(line string) bool {
	m := tomlHeader.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	s.current = strings.TrimSpace(m[1])
	return true
}

func (s *tomlSections) Current() string {
	return s.current
}

var topLevelKey = regexp.MustCompile(`^[A-Za-z_].*:\s*$`)

type nestedSections struct {
	parent   *regexp.Regexp
	children map[string]*regexp.Regexp
	name     string
	inside   bool
	current  string
}

// NestedSections follows YAML-style block keys: once the parent key has been
// seen, a child key header switches the current section to "parent.child".
// Any other top-level block key leaves the parent.
func NestedSections(parent string, children ...string) Sectioner {
	s := &nestedSections{
		parent:   blockKey(parent),
		children: make(map[string]*regexp.Regexp, len(children)),
		name:     parent,
	}
	for _, child := range children {
		s.children[child] = blockKey(child)
	}
	return s
}

func blockKey(name string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(name) + `:\s*$`)
}

func (s *nestedSections) Observe(line string) bool {
	if s.parent.MatchString(line) {
		s.inside = true
		s.current = ""
		return true
	}
	if s.inside {
		for child, re := range s.children {
			if re.MatchString(line) {
				s.current = s.name + "." + child
				return true
			}
		}
	}
	if topLevelKey.MatchString(line) {
		s.inside = false
		s.current = ""
	}
	return false
}

func (s *nestedSections) Current() string {
	return s.current
}
