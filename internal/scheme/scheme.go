// Package scheme loads Base16 colour schemes.
package scheme

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/b16apply/internal/hexcolor"
)

// Slot indexes one of the sixteen Base16 entries.
type Slot int

const (
	Base00 Slot = iota
	Base01
	Base02
	Base03
	Base04
	Base05
	Base06
	Base07
	Base08
	Base09
	Base0A
	Base0B
	Base0C
	Base0D
	Base0E
	Base0F
)

const SlotCount = 16

func (s Slot) String() string {
	return fmt.Sprintf("base%02X", int(s))
}

func (s Slot) Valid() bool {
	return s >= Base00 && s <= Base0F
}

// Slots lists every slot in order.
func Slots() []Slot {
	out := make([]Slot, SlotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// Metadata is the optional descriptive part of a scheme file.
type Metadata struct {
	Name    string
	Author  string
	Variant string
}

// Scheme is a validated, read-only set of sixteen colours.
type Scheme struct {
	Metadata Metadata
	Path     string
	colors   [SlotCount]string
}

// Color returns the "#RRGGBB" value of slot s.
func (s Scheme) Color(slot Slot) string {
	if !slot.Valid() {
		return ""
	}
	return s.colors[slot]
}

// New builds a scheme from sixteen "#RRGGBB" colours. Blank slots give a
// *MissingSlotsError; any other value that is not six hex digits wraps
// hexcolor.ErrInvalidHex.
func New(colors [SlotCount]string) (Scheme, error) {
	var (
		missing []string
		invalid []error
	)
	for i, c := range colors {
		switch {
		case strings.TrimSpace(c) == "":
			missing = append(missing, Slot(i).String())
		case !hexcolor.Valid(c):
			invalid = append(invalid, fmt.Errorf("%s: %w: %q", Slot(i), hexcolor.ErrInvalidHex, c))
		}
	}
	if len(missing) > 0 {
		return Scheme{}, &MissingSlotsError{Slots: missing}
	}
	if len(invalid) > 0 {
		return Scheme{}, errors.Join(invalid...)
	}
	return Scheme{colors: colors}, nil
}

type MissingSlotsError struct {
	Path  string
	Slots []string
}

func (e *MissingSlotsError) Error() string {
	msg := "missing Base16 keys: " + strings.Join(e.Slots, ", ")
	if e.Path != "" {
		return fmt.Sprintf("scheme %q: %s", e.Path, msg)
	}
	return msg
}

var slotLine = regexp.MustCompile(
	`^\s*(base[0-9A-Fa-f]{2})\s*:\s*['"]?(#?[0-9A-Fa-f]{6})`,
)

// Load reads and validates the scheme at path.
func Load(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("read scheme: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		if missing, ok := err.(*MissingSlotsError); ok {
			missing.Path = path
		}
		return Scheme{}, err
	}
	s.Path = path
	return s, nil
}

// Parse extracts the sixteen slots line by line. The two digit slot suffix is
// read as hex, so "base0a" and "base0A" name the same slot. Later lines win.
func Parse(data []byte) (Scheme, error) {
	var colors [SlotCount]string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		m := slotLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		n, err := strconv.ParseUint(m[1][len("base"):], 16, 8)
		if err != nil || n >= SlotCount {
			continue
		}
		colors[n] = "#" + strings.TrimPrefix(m[2], "#")
	}
	if err := scanner.Err(); err != nil {
		return Scheme{}, fmt.Errorf("scan scheme: %w", err)
	}

	s, err := New(colors)
	if err != nil {
		return Scheme{}, err
	}
	s.Metadata, _ = parseMetadata(data)
	return s, nil
}

type metadataDoc struct {
	Scheme  string `yaml:"scheme"`
	Name    string `yaml:"name"`
	System  string `yaml:"system"`
	Author  string `yaml:"author"`
	Variant string `yaml:"variant"`
}

// parseMetadata understands both the classic base16 layout ("scheme:") and
// the tinted-theming one ("name:", "system:", nested "palette:").
func parseMetadata(data []byte) (Metadata, error) {
	var doc metadataDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Metadata{}, err
	}
	name := strings.TrimSpace(doc.Scheme)
	if name == "" {
		name = strings.TrimSpace(doc.Name)
	}
	return Metadata{
		Name:    name,
		Author:  strings.TrimSpace(doc.Author),
		Variant: strings.TrimSpace(doc.Variant),
	}, nil
}
