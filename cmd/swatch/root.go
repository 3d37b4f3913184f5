package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

type rootFlags struct {
	configPath  string
	palettePath string
	scheme      string
	verbose     bool
	noColor     bool
}

// appContext holds what every command needs once flags are parsed.
type appContext struct {
	flags       *rootFlags
	settings    *config.Settings
	logger      *logger.Logger
	palette     *token.Palette
	palettePath string
	scheme      token.Scheme
}

func (a *appContext) resolver() *components.Resolver {
	return components.NewResolver(a.palette)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch resolves design-system component styles from token palettes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default ~/.config/swatch/config.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.palettePath, "palette", "p", "", "Palette file (default: built-in palette)")
	cmd.PersistentFlags().StringVar(&flags.scheme, "scheme", "", "Color scheme: light or dark")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newAuditCmd(app))
	cmd.AddCommand(newSnapshotCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newVersionCmd())

	for _, sub := range cmd.Commands() {
		app.logFailures(sub)
	}

	return cmd
}

// logFailures records a failing command on the log stream before cobra
// hands the error back to main.
func (a *appContext) logFailures(cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			cause := err
			var cmdErr *commandError
			if errors.As(err, &cmdErr) {
				cause = cmdErr.cause
			}
			a.logger.WithFields(map[string]any{
				"args":    args,
				"palette": a.palettePath,
				"scheme":  a.scheme.String(),
			}).Error(cause, cmd.Name()+" command failed")
		}
		return err
	}
}

// load reads settings, then layers flags over them and loads the palette.
func (a *appContext) load(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.flags.configPath)
	if err != nil {
		return newCommandError("load settings", "reading the settings file", err, "Fix the settings file or pass --config with a valid path.")
	}
	a.settings = settings

	level := settings.LogLevel
	if a.flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = log

	initColor(a.flags.noColor, cmd.OutOrStdout())

	schemeName := a.flags.scheme
	if strings.TrimSpace(schemeName) == "" {
		schemeName = settings.Scheme
	}
	scheme, ok := token.ParseScheme(schemeName)
	if !ok {
		return newCommandError("parse flags", fmt.Sprintf("unknown scheme %q", schemeName), errInvalidFlag, "Use --scheme light or --scheme dark.")
	}
	a.scheme = scheme

	a.palettePath = a.flags.palettePath
	if a.palettePath == "" {
		a.palettePath = settings.Palette
	}
	if a.palettePath == "" {
		a.palette = token.Default()
		log.Debug("using built-in palette")
		return nil
	}

	palette, err := config.LoadPalette(a.palettePath)
	if err != nil {
		return newCommandError("load palette", a.palettePath, err, "Check the palette file; every token needs a light and a dark value unless it sets base: default.")
	}
	a.palette = palette
	log.With("palette", palette.Name()).Debug("palette loaded")
	return nil
}
