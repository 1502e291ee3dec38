package cases

import (
	"context"
	"fmt"
	"time"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/internal/catalog"
)

// Result is the outcome of one case
type Result struct {
	Case     Case          `json:"case"`
	Got      string        `json:"got,omitempty"`
	GotError flerror.Code  `json:"got_error,omitempty"`
	Error    string        `json:"error,omitempty"`
	Passed   bool          `json:"passed"`
	Duration time.Duration `json:"duration_ns"`
}

// Outcome describes what the case actually produced
func (r Result) Outcome() string {
	if r.GotError != "" {
		return "error " + r.GotError.String()
	}
	return r.Got
}

// Report collects the results of a run in case order
type Report struct {
	Results  []Result      `json:"results"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every case passed
func (r Report) OK() bool {
	return r.Failed == 0
}

// Summary returns a one line description such as "26 passed, 0 failed"
func (r Report) Summary() string {
	return fmt.Sprintf("%d passed, %d failed", r.Passed, r.Failed)
}

// Run invokes every case through registry. A case passes when its result
// equals Want, or when it fails with exactly the WantError code. Once ctx is
// done the remaining cases fail with the context error.
func Run(ctx context.Context, registry *catalog.Registry, cases []Case) Report {
	start := time.Now()
	report := Report{Results: make([]Result, 0, len(cases))}

	for _, c := range cases {
		result := runOne(ctx, registry, c)
		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	report.Duration = time.Since(start)
	return report
}

func runOne(ctx context.Context, registry *catalog.Registry, c Case) Result {
	start := time.Now()
	got, err := registry.Invoke(ctx, c.Operation, c.Args)

	result := Result{Case: c, Got: got, Duration: time.Since(start)}
	if err != nil {
		result.GotError = flerror.GetCode(err)
		result.Error = err.Error()
	}

	switch {
	case c.WantError != "":
		result.Passed = err != nil && result.GotError == c.WantError
	case c.Want != nil:
		result.Passed = err == nil && got == *c.Want
	}
	return result
}
