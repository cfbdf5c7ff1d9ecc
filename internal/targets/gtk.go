package targets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/tmpl"
)

func gtkCSS(p palette.Palette) rewrite.Format {
	entries := make([]rewrite.Entry, len(p.GTK))
	for i, r := range p.GTK {
		entries[i] = rewrite.Entry{Key: r.Name, Value: r.Value}
	}
	rules, keys := rewrite.Table("", rewrite.DefineColor, "keys", entries)
	return rewrite.Format{Rules: rules, Expect: []rewrite.Expectation{keys}}
}

// GTKTemplate returns the gtk target rendering the template at path instead
// of patching @define-color lines. The current file content is discarded on
// success and kept when the template does not exist.
func GTKTemplate(path string) Target {
	t, _ := Lookup("gtk")
	t.Rewrite = func(content string, p palette.Palette) (string, rewrite.Report, error) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return content, rewrite.Report{rewrite.Absent("template", path)}, nil
		}
		if err != nil {
			return "", nil, fmt.Errorf("read gtk template: %w", err)
		}
		out, missing := tmpl.Render(string(data), p.GTKContext())
		report := rewrite.Report{rewrite.Match("template", filepath.Base(path))}
		for _, name := range missing {
			report = append(report, rewrite.Absent("keys", name))
		}
		return out, report, nil
	}
	return t
}
