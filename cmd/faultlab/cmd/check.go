package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/faultlab/foundation/core/log"
	"github.com/msto63/faultlab/internal/cases"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var failedOnly bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run a case file against the catalog",
		Long: `Runs every case of a YAML or TOML case file and reports which cases
passed. Without a file the built-in cases are run. faultlab exits with
status 1 when any case fails.

Examples:
  faultlab check
  faultlab check cases.yaml
  faultlab check --failed cases.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app

			var (
				cs     []cases.Case
				source = "builtin"
				err    error
			)
			if len(args) == 1 {
				source = args[0]
				cs, err = cases.Load(source)
			} else {
				cs, err = cases.Builtin()
			}
			if err != nil {
				return err
			}

			report := cases.Run(cmd.Context(), a.registry, cs)
			a.logger.Info("case run finished", log.Fields{
				"source":      source,
				"passed":      report.Passed,
				"failed":      report.Failed,
				"duration_ms": report.Duration.Milliseconds(),
			})

			if a.output == outputJSON {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				renderReport(cmd.OutOrStdout(), source, report, failedOnly)
			}

			if !report.OK() {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failedOnly, "failed", false, "only print failing cases")
	return cmd
}

func renderReport(w io.Writer, source string, report cases.Report, failedOnly bool) {
	fmt.Fprintln(w, titleStyle.Render("Cases: "+source))
	fmt.Fprintln(w)

	for _, r := range report.Results {
		if r.Passed && failedOnly {
			continue
		}

		call := strings.TrimSpace(r.Case.Operation + " " + strings.Join(r.Case.Args, " "))
		if r.Passed {
			fmt.Fprintf(w, "%s %s  %s\n", passStyle.Render("PASS"), r.Case.Name, usageStyle.Render(call))
			continue
		}

		fmt.Fprintf(w, "%s %s  %s\n", failStyle.Render("FAIL"), r.Case.Name, usageStyle.Render(call))
		fmt.Fprintf(w, "     %s %s\n", labelStyle.Render("want:"), r.Case.Expectation())
		fmt.Fprintf(w, "     %s %s\n", labelStyle.Render("got:"), r.Outcome())
		if r.Error != "" {
			fmt.Fprintf(w, "     %s %s\n", labelStyle.Render("message:"), r.Error)
		}
	}

	style := passStyle
	if !report.OK() {
		style = failStyle
	}
	fmt.Fprintln(w, summaryStyle.Inherit(style).Render(report.Summary()))
}
