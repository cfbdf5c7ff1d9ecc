package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/b16apply/internal/apply"
	"github.com/unkn0wn-root/b16apply/internal/config"
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/report"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

// errReported is returned once failed targets have already been printed.
var errReported = errors.New("some targets failed")

type options struct {
	scheme   string
	quiet    bool
	template string
	root     string
	dryRun   bool
	diff     bool
	skip     []string
	color    string
	verbose  bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:   "b16apply -s <scheme>",
		Short: "Apply a Base16 colour scheme to application theme files",
		Long: heredoc.Doc(`
			b16apply rewrites the colour values of a fixed set of theme files
			(terminals, editors, bars, launchers, GTK, Chromium, Zed and more)
			so they follow one Base16 scheme. Only colour values change; the
			rest of every file is kept as is.

			The scheme is a YAML file with base00..base0F entries, or the name
			of a scheme found in the scheme directories (see "b16apply schemes").
		`),
		Example: heredoc.Doc(`
			b16apply -s ~/schemes/tokyo-night.yaml
			b16apply -s tokyo-night --root ~/.config/omarchy/current/theme
			b16apply -s tokyo-night -t --dry-run
		`),
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          o.templateArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.template = args[0]
			}
			return runApply(cmd, o)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.root, "root", "", "Directory holding the theme files (default: working directory)")
	pf.StringSliceVar(&o.skip, "skip", nil, "Target names to leave untouched (repeatable, comma separated)")
	pf.StringVar(&o.color, "color", string(config.ColorAuto), "Colour output: auto, always or never")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug details to stderr")

	f := cmd.Flags()
	f.StringVarP(&o.scheme, "scheme", "s", "", "Scheme file or catalog name")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Print nothing unless a fatal error occurs")
	f.StringVarP(&o.template, "template", "t", "", `Render templates instead of patching ("gtk")`)
	f.Lookup("template").NoOptDefVal = string(apply.ModeGTK)
	f.BoolVar(&o.dryRun, "dry-run", false, "Show what would change without writing")
	f.BoolVar(&o.diff, "diff", false, "Print a unified diff for every changed file")
	_ = cmd.MarkFlagRequired("scheme")

	cmd.AddCommand(
		newSchemesCmd(o),
		newPreviewCmd(o),
		newTargetsCmd(o),
		newConfigCmd(o),
	)
	return cmd
}

// templateArg accepts "-t gtk": pflag reads a bare -t as its default value and
// leaves the mode as a positional argument, which is only valid right after
// a bare --template.
func (o *options) templateArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	flag := cmd.Flags().Lookup("template")
	if len(args) > 1 || !flag.Changed || o.template != flag.NoOptDefVal {
		return cobra.NoArgs(cmd, args)
	}
	if apply.Mode(args[0]) != apply.ModeGTK {
		return fmt.Errorf("unknown template %q (only %q is supported)", args[0], apply.ModeGTK)
	}
	return nil
}

func runApply(cmd *cobra.Command, o *options) error {
	mode := apply.Mode(o.template)
	if mode != apply.ModePatch && mode != apply.ModeGTK {
		return fmt.Errorf("unknown template %q (only %q is supported)", o.template, apply.ModeGTK)
	}

	logger := o.logger()
	settings, err := o.settings(cmd, logger)
	if err != nil {
		return err
	}
	s, err := scheme.Resolve(o.scheme, config.SchemeDirs(settings))
	if err != nil {
		return fmt.Errorf("load scheme: %w", err)
	}
	logger.Debug("scheme loaded", "name", s.Metadata.Name, "path", s.Path)

	runner := o.runner(settings, logger)
	runner.Mode = mode
	results, err := runner.Run(cmd.Context(), palette.Build(s))
	if o.quiet {
		return err
	}
	report.New(o.stdout, settings.Color).Results(results)
	if errors.Is(err, apply.ErrTargetFailed) {
		logger.Debug("targets failed", "err", err)
		return errReported
	}
	return err
}

// settings merges the settings file, the environment and the flags given on
// the command line, in increasing order of precedence.
func (o *options) settings(cmd *cobra.Command, logger *slog.Logger) (config.Settings, error) {
	s, handle, err := config.LoadSettings()
	if err != nil {
		logger.Warn("settings not loaded, using defaults", "err", err)
		s = config.DefaultSettings()
	} else {
		logger.Debug("settings", "path", handle.Path)
	}
	s = config.ApplyEnv(s)

	flags := cmd.Flags()
	if flags.Changed("root") {
		s.Root = o.root
	}
	if flags.Changed("skip") {
		s.Skip = append(s.Skip, o.skip...)
	}
	if flags.Changed("color") {
		mode, ok := config.ParseColorMode(o.color)
		if !ok {
			return config.Settings{}, fmt.Errorf("invalid --color %q (want auto, always or never)", o.color)
		}
		s.Color = mode
	}
	return config.NormaliseSettings(s), nil
}

func (o *options) runner(s config.Settings, logger *slog.Logger) apply.Runner {
	return apply.Runner{
		Root:        s.Root,
		TemplateDir: s.TemplateDir,
		DryRun:      o.dryRun,
		Diff:        o.diff,
		Skip:        s.Skip,
		Paths:       s.Paths,
		Logger:      logger,
	}
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: level}))
}
