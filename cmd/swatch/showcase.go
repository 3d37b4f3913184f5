package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
	"github.com/alexisbeaulieu97/swatch/internal/render"
	"github.com/alexisbeaulieu97/swatch/internal/showcase"
	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

var errNotTerminal = errors.New("not a terminal")

type showcaseOptions struct {
	interactive bool
}

func newShowcaseCmd(app *appContext) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:       "showcase [family]",
		Short:     "Render every variant and state of a family",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalog.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := ""
			if len(args) == 1 {
				family = args[0]
			}
			return runShowcase(cmd, app, family, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse families in an interactive terminal view")

	return cmd
}

func runShowcase(cmd *cobra.Command, app *appContext, family string, opts *showcaseOptions) error {
	if opts.interactive {
		if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
			return newCommandError("open showcase", "interactive mode needs a terminal", errNotTerminal, "Run without --interactive to print the showcase.")
		}
		app.logger.Debug("launching interactive showcase")
		return tui.Run(tui.NewModel(app.resolver(), family, app.scheme))
	}

	families := catalog.Families()
	if family != "" {
		families = []string{family}
	}

	r := app.resolver()
	blocks := make([]string, 0, len(families))
	for _, name := range families {
		block, err := showcase.Render(r, name, app.scheme)
		if err != nil {
			return newCommandError("render showcase", fmt.Sprintf("family %q", name), err,
				"Use one of: "+strings.Join(catalog.Families(), ", ")+".")
		}
		blocks = append(blocks, block)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Column(2, blocks...))
	return nil
}
