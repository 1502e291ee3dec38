package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/utils/slicex"
	"github.com/msto63/faultlab/internal/catalog"
)

type paramView struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Example  string `json:"example"`
	Nullable bool   `json:"nullable,omitempty"`
}

type operationView struct {
	Name     string      `json:"name"`
	Summary  string      `json:"summary"`
	Usage    string      `json:"usage"`
	Example  string      `json:"example"`
	Params   []paramView `json:"params"`
	Failures []string    `json:"failures"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog operations",
		Long: `Lists every catalog operation with its arguments and the error
codes it can fail with.

Examples:
  faultlab list
  faultlab list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := opts.app.registry.Operations()
			if opts.app.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), operationViews(ops))
			}
			renderOperations(cmd.OutOrStdout(), ops)
			return nil
		},
	}
}

func operationViews(ops []catalog.Operation) []operationView {
	return slicex.Map(ops, func(op catalog.Operation) operationView {
		return operationView{
			Name:    op.Name,
			Summary: op.Summary,
			Usage:   op.Usage(),
			Example: op.Example(),
			Params: slicex.Map(op.Params, func(p catalog.Param) paramView {
				return paramView{Name: p.Name, Kind: string(p.Kind), Example: p.Kind.Example(), Nullable: p.Nullable}
			}),
			Failures: failureCodes(op),
		}
	})
}

func failureCodes(op catalog.Operation) []string {
	return slicex.Map(op.Failures, flerror.Code.String)
}

func renderOperations(w io.Writer, ops []catalog.Operation) {
	fmt.Fprintln(w, titleStyle.Render("Catalog operations"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, operationStyle.Inherit(columnStyle).Render("OPERATION")+columnStyle.Render("SUMMARY"))

	for _, op := range ops {
		fmt.Fprintln(w, operationStyle.Render(op.Name)+op.Summary)
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("usage:"), usageStyle.Render("faultlab run "+op.Usage()))

		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("example:"), usageStyle.Render("faultlab run "+op.Example()))
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("fails:"), codeStyle.Render(strings.Join(failureCodes(op), ", ")))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d operation(s)\n", len(ops))
}
