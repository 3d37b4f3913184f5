package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/render"
	"github.com/alexisbeaulieu97/swatch/internal/token"
)

type tokensOptions struct {
	format string
}

type tokenRow struct {
	Name  string `json:"name"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

func newTokensCmd(app *appContext) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List every token with its light and dark values",
		Long: `List every token with its light and dark values.

The yaml format writes a complete palette file that --palette accepts,
which is a convenient starting point for a new palette.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: table, json or yaml (default from settings)")

	return cmd
}

func runTokens(cmd *cobra.Command, app *appContext, opts *tokensOptions) error {
	format, err := outputFormat(opts.format, app.settings.Format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case formatYAML:
		data, err := config.MarshalPalette(app.palette)
		if err != nil {
			return newCommandError("list tokens", "encoding palette", err, "Check that every token has a value in both schemes.")
		}
		_, err = out.Write(data)
		return err
	case formatJSON:
		rows, err := tokenRows(app.palette)
		if err != nil {
			return newCommandError("list tokens", "reading palette", err, "Check that every token has a value in both schemes.")
		}
		return writeJSON(out, rows)
	default:
		rows, err := tokenRows(app.palette)
		if err != nil {
			return newCommandError("list tokens", "reading palette", err, "Check that every token has a value in both schemes.")
		}
		return renderTokenTable(out, app.palette, rows, isTerminal(out))
	}
}

func tokenRows(palette *token.Palette) ([]tokenRow, error) {
	rows := make([]tokenRow, 0, len(token.Names()))
	for _, name := range token.Names() {
		light, err := palette.Lookup(name, token.Light)
		if err != nil {
			return nil, err
		}
		dark, err := palette.Lookup(name, token.Dark)
		if err != nil {
			return nil, err
		}
		rows = append(rows, tokenRow{Name: name.String(), Light: light.String(), Dark: dark.String()})
	}
	return rows, nil
}

// renderTokenTable prints one row per token. Swatches go in the last
// column so their escape codes do not skew tabwriter alignment.
func renderTokenTable(out io.Writer, palette *token.Palette, rows []tokenRow, swatches bool) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	header := "NAME\tLIGHT\tDARK"
	if swatches {
		header += "\t"
	}
	fmt.Fprintln(writer, header)

	for i, row := range rows {
		line := fmt.Sprintf("%s\t%s\t%s", row.Name, row.Light, row.Dark)
		if swatches {
			name := token.Names()[i]
			line += "\t" + render.Swatch(palette.MustLookup(name, token.Light)) + " " + render.Swatch(palette.MustLookup(name, token.Dark))
		}
		fmt.Fprintln(writer, line)
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d tokens in palette %s\n", len(rows), palette.Name())
	return nil
}
