// Package apply runs every target against one palette: read, rewrite and
// write back, collecting a per-target result.
package apply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/cespare/xxhash/v2"

	"github.com/unkn0wn-root/b16apply/internal/fsutil"
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/targets"
)

// ErrTargetFailed is wrapped by the error Run returns when at least one target
// could not be processed.
var ErrTargetFailed = errors.New("one or more targets failed")

// ErrModified reports a target file that changed on disk between being read
// and being written back. The newer content is left in place.
var ErrModified = errors.New("file changed on disk since it was read")

type Mode string

const (
	ModePatch Mode = ""
	ModeGTK   Mode = "gtk"
)

type Runner struct {
	// Root holds the target files.
	Root string
	// TemplateDir defaults to <Root>/templates.
	TemplateDir string
	Mode        Mode
	// DryRun computes results and diffs without writing.
	DryRun bool
	// Diff fills Result.Diff even when writing.
	Diff bool
	// Skip lists target names to leave alone.
	Skip []string
	// Paths overrides target locations by name; relative paths are joined
	// to Root.
	Paths  map[string]string
	Logger *slog.Logger
}

type Result struct {
	Target targets.Target
	Path   string
	Report rewrite.Report
	Err    error
	// Diff is a unified diff of the change, set in dry-run or diff mode.
	Diff string
	// Changed is false when the rewrite produced the same bytes.
	Changed bool
	Written bool
	// Skipped marks a target excluded through Skip.
	Skipped bool
}

// Run processes the targets in their fixed order. A failing target is
// recorded in its Result and does not stop the others; the returned error
// wraps ErrTargetFailed and joins every target error.
func (r Runner) Run(ctx context.Context, p palette.Palette) ([]Result, error) {
	logger := r.logger()
	all := targets.All()
	results := make([]Result, 0, len(all))

	var errs []error
	for _, t := range all {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if r.Mode == ModeGTK && t.Name == "gtk" {
			t = targets.GTKTemplate(r.templatePath("gtk.css"))
		}
		res := Result{Target: t, Path: r.Path(t)}
		if r.Skips(t.Name) {
			res.Skipped = true
			logger.Debug("target skipped", "target", t.Name)
			results = append(results, res)
			continue
		}

		r.process(&res, p, logger)
		if res.Err != nil {
			logger.Error("target failed", "target", t.Name, "path", res.Path, "err", res.Err)
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, res.Err))
		}
		results = append(results, res)
	}

	if len(errs) > 0 {
		return results, fmt.Errorf("%w: %w", ErrTargetFailed, errors.Join(errs...))
	}
	return results, nil
}

func (r Runner) process(res *Result, p palette.Palette, logger *slog.Logger) {
	data, err := os.ReadFile(res.Path)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		return
	}
	before := string(data)
	sum := xxhash.Sum64(data)

	after, report, err := res.Target.Rewrite(before, p)
	if err != nil {
		res.Err = err
		return
	}
	res.Report = report
	res.Changed = before != after

	if r.DryRun || r.Diff {
		res.Diff = udiff.Unified(res.Path, res.Path, before, after)
	}
	if r.DryRun {
		logger.Debug("dry run", "target", res.Target.Name, "changed", res.Changed)
		return
	}
	if !res.Changed {
		logger.Debug("unchanged", "target", res.Target.Name)
		return
	}

	if err := commit(res.Path, sum, after); err != nil {
		res.Err = err
		return
	}
	res.Written = true
	logger.Debug("written", "target", res.Target.Name, "path", res.Path)
}

// commit writes content to path unless the file no longer hashes to sum.
func commit(path string, sum uint64, content string) error {
	current, err := fsutil.Checksum(path)
	if err != nil {
		return fmt.Errorf("recheck: %w", err)
	}
	if current != sum {
		return ErrModified
	}
	perm := fsutil.Perm(path, 0o644)
	if err := fsutil.WriteFileAtomic(path, []byte(content), perm); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Path is where the runner reads and writes t.
func (r Runner) Path(t targets.Target) string {
	if p, ok := r.Paths[t.Name]; ok && p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(r.Root, p)
	}
	return filepath.Join(r.Root, t.File)
}

func (r Runner) templatePath(name string) string {
	dir := r.TemplateDir
	if dir == "" {
		dir = filepath.Join(r.Root, "templates")
	}
	return filepath.Join(dir, name)
}

func (r Runner) Skips(name string) bool {
	for _, s := range r.Skip {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return true
		}
	}
	return false
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
