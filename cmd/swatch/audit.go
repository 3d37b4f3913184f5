package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/catalog"
)

var errAuditFailed = errors.New("audit failed")

type auditOptions struct {
	minContrast float64
	strict      bool
	format      string
}

func newAuditCmd(app *appContext) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check palette completeness and text contrast",
		Long: `Check that the palette defines every token the component tables reference
in both schemes, and that every enabled component keeps its text readable
against its background.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min-contrast") {
				opts.minContrast = app.settings.MinContrast
			}
			return runAudit(cmd, app, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.minContrast, "min-contrast", catalog.DefaultMinContrast, "Minimum contrast ratio between text and background")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat contrast warnings as failures")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: table, json or yaml (default from settings)")

	return cmd
}

func runAudit(cmd *cobra.Command, app *appContext, opts *auditOptions) error {
	format, err := outputFormat(opts.format, app.settings.Format)
	if err != nil {
		return err
	}

	report := catalog.Audit(app.palette, opts.minContrast)
	app.logger.WithFields(map[string]any{
		"palette":  report.Palette,
		"checked":  report.Checked,
		"errors":   report.Errors(),
		"warnings": report.Warnings(),
	}).Debug("audit complete")

	switch format {
	case formatJSON:
		err = writeJSON(cmd.OutOrStdout(), report)
	case formatYAML:
		err = writeYAML(cmd.OutOrStdout(), report)
	default:
		renderAuditReport(cmd.OutOrStdout(), report)
	}
	if err != nil {
		return err
	}

	if !report.OK() {
		return newCommandError("audit palette", fmt.Sprintf("%d missing token(s) in %s", report.Errors(), report.Palette),
			errAuditFailed, "Define the missing tokens for both schemes, or add base: default to inherit them.")
	}
	if opts.strict && report.Warnings() > 0 {
		return newCommandError("audit palette", fmt.Sprintf("%d contrast warning(s) in %s", report.Warnings(), report.Palette),
			errAuditFailed, "Adjust the flagged colors or lower --min-contrast.")
	}
	return nil
}

func renderAuditReport(out io.Writer, report catalog.Report) {
	errorLabel := color.New(color.FgRed, color.Bold).SprintFunc()
	warningLabel := color.New(color.FgYellow).SprintFunc()

	for _, finding := range report.Findings {
		label := warningLabel("warning")
		if finding.Severity == catalog.SeverityError {
			label = errorLabel("error")
		}
		fmt.Fprintf(out, "%s %s: %s\n", label, finding.Subject, finding.Message)
	}

	summary := fmt.Sprintf("palette %s: %d checked, %d error(s), %d warning(s)",
		report.Palette, report.Checked, report.Errors(), report.Warnings())
	switch {
	case !report.OK():
		fmt.Fprintln(out, color.RedString(summary))
	case report.Warnings() > 0:
		fmt.Fprintln(out, color.YellowString(summary))
	default:
		fmt.Fprintln(out, color.GreenString(summary))
	}
}
