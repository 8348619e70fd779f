package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/syster/internal/app"
	"go.trai.ch/syster/internal/ui/output"
	"go.trai.ch/syster/internal/ui/style"
)

func (c *CLI) newStdlibCmd() *cobra.Command {
	var opts app.StdlibOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stdlib",
		Short: "Parse the standard library and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Stdlib(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return renderReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "Parse this directory instead of the resolved sysml.library")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}

func renderReport(w io.Writer, report *app.StdlibReport) error {
	out := output.New(w)
	accent := func(s string) termenv.Style {
		return out.String(s).Foreground(termenv.RGBColor(string(style.Iris)))
	}
	muted := func(s string) termenv.Style {
		return out.String(s).Foreground(termenv.RGBColor(string(style.Slate)))
	}

	lines := []string{
		out.String(style.Check+" Parsed standard library").
			Foreground(termenv.RGBColor(string(style.Green))).String(),
		fmt.Sprintf("  %s %s", muted("path:       "), report.Path),
		fmt.Sprintf("  %s %s", muted("files:      "), accent(fmt.Sprint(len(report.Files)))),
		fmt.Sprintf("  %s %s", muted("elements:   "), accent(fmt.Sprint(report.Elements))),
		fmt.Sprintf("  %s %s", muted("definitions:"), accent(fmt.Sprint(report.Definitions))),
	}
	for _, lang := range report.SortedLanguages() {
		lines = append(lines, fmt.Sprintf("  %s %d", muted(fmt.Sprintf("%-12s", string(lang)+":")), report.Languages[lang]))
	}
	lines = append(lines, fmt.Sprintf("  %s %s", muted("fingerprint:"), report.Fingerprint))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
