package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
)

type snapshotOptions struct {
	out string
}

func newSnapshotCmd(app *appContext) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write every resolved style of the palette as YAML",
		Long: `Resolve every family, variant, state and scheme against the palette and
write the result as YAML. Snapshots of equal palettes are byte-identical,
so they can be committed and diffed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the snapshot to this file instead of stdout")

	return cmd
}

func runSnapshot(cmd *cobra.Command, app *appContext, opts *snapshotOptions) error {
	data, err := catalog.Snapshot(app.resolver())
	if err != nil {
		return newCommandError("snapshot", "encoding resolved styles", err, "Report this as a bug; snapshots of a valid palette always encode.")
	}

	if opts.out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return newCommandError("snapshot", fmt.Sprintf("writing %s", opts.out), err, "Check that the directory exists and is writable.")
	}
	app.logger.With("path", opts.out).Info("snapshot written")
	return nil
}
