package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/b16apply/internal/config"
	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/report"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
	"github.com/unkn0wn-root/b16apply/internal/targets"
)

func newSchemesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the schemes found in the scheme directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := o.logger()
			settings, err := o.settings(cmd, logger)
			if err != nil {
				return err
			}
			dirs := config.SchemeDirs(settings)
			catalog, err := scheme.LoadCatalog(dirs)
			if err != nil {
				logger.Warn("some schemes could not be loaded", "err", err)
			}
			logger.Debug("scheme directories", "dirs", dirs)
			report.New(o.stdout, settings.Color).Catalog(catalog.All())
			return nil
		},
	}
}

func newPreviewCmd(o *options) *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "preview -s <scheme>",
		Short: "Print the scheme slots and the derived ANSI palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := o.settings(cmd, o.logger())
			if err != nil {
				return err
			}
			s, err := scheme.Resolve(ref, config.SchemeDirs(settings))
			if err != nil {
				return fmt.Errorf("load scheme: %w", err)
			}
			report.New(o.stdout, settings.Color).Palette(palette.Build(s))
			return nil
		},
	}
	cmd.Flags().StringVarP(&ref, "scheme", "s", "", "Scheme file or catalog name")
	_ = cmd.MarkFlagRequired("scheme")
	return cmd
}

func newTargetsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the theme files b16apply rewrites and where it looks for them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := o.logger()
			settings, err := o.settings(cmd, logger)
			if err != nil {
				return err
			}
			runner := o.runner(settings, logger)

			all := targets.All()
			rows := make([]report.TargetState, 0, len(all))
			for _, t := range all {
				path := runner.Path(t)
				_, statErr := os.Stat(path)
				rows = append(rows, report.TargetState{
					Name:    t.Name,
					Path:    path,
					Present: statErr == nil,
					Skipped: runner.Skips(t.Name),
				})
			}
			report.New(o.stdout, settings.Color).Targets(rows)
			return nil
		},
	}
}

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
		Args:  cobra.NoArgs,
	}

	var (
		asJSON bool
		force  bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file to the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handle := config.SettingsHandle{
				Path:   filepath.Join(config.Dir(), "settings.toml"),
				Format: config.SettingsFormatTOML,
			}
			if asJSON {
				handle = config.SettingsHandle{
					Path:   filepath.Join(config.Dir(), "settings.json"),
					Format: config.SettingsFormatJSON,
				}
			}
			if err := config.SaveSettings(config.DefaultSettings(), handle, force); err != nil {
				return err
			}
			fmt.Fprintf(o.stdout, "Wrote %s\n", handle.Path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&asJSON, "json", false, "Write settings.json instead of settings.toml")
	initCmd.Flags().BoolVar(&force, "force", false, "Replace an existing settings file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, handle, err := config.LoadSettings()
			if err != nil {
				return err
			}
			state := ""
			if _, err := os.Stat(handle.Path); errors.Is(err, fs.ErrNotExist) {
				state = " (not created)"
			}
			fmt.Fprintf(o.stdout, "%s%s\n", handle.Path, state)
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
