package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/revision"
	"github.com/alexisbeaulieu97/swatch/pkg/diff"
)

var errStylesChanged = errors.New("resolved styles changed")

type diffOptions struct {
	rev      string
	exitCode bool
}

func newDiffCmd(app *appContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how resolved styles changed since a git revision",
		Long: `Read the palette file as it was at a git revision, snapshot both versions
and print a unified diff of the resolved styles. Token edits that no
component uses produce no output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.rev, "rev", "HEAD", "Git revision to compare against")
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Exit with an error when resolved styles differ")

	return cmd
}

func runDiff(cmd *cobra.Command, app *appContext, opts *diffOptions) error {
	if app.palettePath == "" {
		return newCommandError("diff", "no palette file selected", errInvalidFlag, "Pass --palette with a file tracked in a git repository.")
	}

	label := fmt.Sprintf("%s@%s", app.palettePath, opts.rev)
	data, err := revision.ReadFile(filepath.Dir(app.palettePath), opts.rev, app.palettePath)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("reading %s", label), err, "Check that the file is committed at that revision.")
	}

	previous, err := config.ParsePalette(data, label)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("parsing %s", label), err, "The palette at that revision must be valid to compare against it.")
	}

	before, err := catalog.Snapshot(components.NewResolver(previous))
	if err != nil {
		return err
	}
	after, err := catalog.Snapshot(app.resolver())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unified := diff.GenerateUnifiedDiff(before, after, label, app.palettePath)
	if unified == "" {
		fmt.Fprintln(out, "No changes in resolved styles.")
		return nil
	}

	renderDiff(out, unified)
	summary := diff.Summarize(before, after)
	fmt.Fprintf(out, "\n%d line(s) added, %d line(s) removed\n", summary.Added, summary.Removed)
	app.logger.With("rev", opts.rev).Debug("resolved styles differ")

	if opts.exitCode {
		return errStylesChanged
	}
	return nil
}

func renderDiff(out io.Writer, unified string) {
	added := color.New(color.FgGreen).SprintFunc()
	removed := color.New(color.FgRed).SprintFunc()
	hunk := color.New(color.FgCyan).SprintFunc()

	for _, line := range strings.SplitAfter(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(out, hunk(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(out, added(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(out, removed(line))
		default:
			fmt.Fprint(out, line)
		}
	}
}
