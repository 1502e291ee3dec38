package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

type failureView struct {
	Code       string `json:"code"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	HTTPStatus int    `json:"http_status"`
	GRPCCode   string `json:"grpc_code"`
	Message    string `json:"message"`
}

type runView struct {
	Operation string       `json:"operation"`
	Args      []string     `json:"args"`
	Result    *string      `json:"result,omitempty"`
	Error     *failureView `json:"error,omitempty"`
	RequestID string       `json:"request_id"`
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <operation> [args...]",
		Short: "Invoke one catalog operation",
		Long: `Invokes a catalog operation and prints its result. When the operation
fails, the error code is printed with its category, HTTP status and gRPC
code, and faultlab exits with status 1.

Argument encodings:
  null        absent text or sequence
  1,2,3       sequence ("" is the empty sequence)
  a=1,b=2     dictionary

Examples:
  faultlab run reverse-text hello
  faultlab run divide-numbers 10 0
  faultlab run sum-collection-elements 1,2,3,4 2
  faultlab run --output json get-element-as-number a=x a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts.app, args[0], args[1:])
		},
	}

	// Arguments after the operation name are passed through, so negative
	// numbers are not mistaken for flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runOperation(cmd *cobra.Command, a *app, operation string, args []string) error {
	result, err := a.registry.Invoke(cmd.Context(), operation, args)

	view := runView{Operation: operation, Args: args, RequestID: a.requestID}
	if view.Args == nil {
		view.Args = []string{}
	}
	if err == nil {
		view.Result = &result
	} else {
		view.Error = describeFailure(err)
	}

	out := cmd.OutOrStdout()
	if a.output == outputJSON {
		if encErr := writeJSON(out, view); encErr != nil {
			return encErr
		}
	} else {
		renderRun(out, view)
	}

	if err != nil {
		return errReported
	}
	return nil
}

func describeFailure(err error) *failureView {
	code := flerror.GetCode(err)
	return &failureView{
		Code:       code.String(),
		Category:   code.Category(),
		Severity:   flerror.GetSeverity(err).String(),
		HTTPStatus: code.HTTPStatus(),
		GRPCCode:   status.Code(err).String(),
		Message:    err.Error(),
	}
}

func renderRun(w io.Writer, view runView) {
	if view.Result != nil {
		fmt.Fprintln(w, *view.Result)
		return
	}

	f := view.Error
	fmt.Fprintf(w, "%s %s\n", failStyle.Render(view.Operation+" failed:"), f.Message)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("code:"), codeStyle.Render(f.Code))
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("category:"), f.Category)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("severity:"), f.Severity)
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("http:"), f.HTTPStatus)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("grpc:"), f.GRPCCode)
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("request:"), view.RequestID)
}
