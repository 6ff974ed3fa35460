// Package scenario loads declared input/expectation pairs from TOML and runs
// them through the same read-then-lookup pipeline as the interactive program.
package scenario

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"firstelem/internal/app"
	apperrors "firstelem/internal/errors"
	"firstelem/internal/input"
	"firstelem/internal/slogutil"
)

// Scenario is one declared case. Exactly one of Expect and ExpectError is set.
type Scenario struct {
	// Name identifies the case in reports
	Name string `toml:"name"`

	// Input is the raw text fed to the reader: the length then the elements
	Input string `toml:"input"`

	// Expect is the first element the case should produce
	Expect *int64 `toml:"expect,omitempty"`

	// ExpectError is the error code the case should fail with
	ExpectError apperrors.ErrorCode `toml:"expect_error,omitempty"`
}

// File is the root of a scenarios TOML document.
type File struct {
	Scenarios []Scenario `toml:"scenario"`
}

// LoadFile reads and validates a scenarios file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenarios document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names are present and unique and each case has one expectation.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("no scenarios declared")
	}
	seen := make(map[string]bool)
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario[%d]: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name: %s", s.Name)
		}
		seen[s.Name] = true

		if (s.Expect == nil) == (s.ExpectError == "") {
			return fmt.Errorf("scenario[%d] (%s): set exactly one of expect or expect_error", i, s.Name)
		}
	}
	return nil
}

// Result is the outcome of one scenario.
type Result struct {
	Name      string              `json:"name"`
	Passed    bool                `json:"passed"`
	Want      string              `json:"want"`
	Got       string              `json:"got"`
	ErrorCode apperrors.ErrorCode `json:"errorCode,omitempty"`
}

// Report summarizes a run over a File.
type Report struct {
	RunID   string   `json:"runId"`
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// Err returns a SCENARIO_FAILED error naming the failing cases, or nil.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	var names []string
	for _, res := range r.Results {
		if !res.Passed {
			names = append(names, res.Name)
		}
	}
	return apperrors.Newf(apperrors.ScenarioFailed, "%d of %d scenarios failed: %s",
		r.Failed, len(r.Results), strings.Join(names, ", ")).
		WithDetails(map[string]interface{}{"failed": names})
}

// Runner evaluates scenarios. The zero value has no length cap and discards logs.
type Runner struct {
	MaxLength int
	Logger    *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slogutil.NewDiscardLogger()
	}
	return r.Logger
}

// Run evaluates a single scenario.
func (r *Runner) Run(s Scenario) Result {
	res := Result{Name: s.Name}
	if s.Expect != nil {
		res.Want = fmt.Sprint(*s.Expect)
	} else {
		res.Want = string(s.ExpectError)
	}

	logger := r.logger().With("scenario", s.Name)
	out, err := app.Evaluate(strings.NewReader(s.Input), input.Options{MaxLength: r.MaxLength}, logger)
	if err != nil {
		res.ErrorCode = apperrors.CodeOf(err)
		res.Got = string(res.ErrorCode)
		res.Passed = s.ExpectError != "" && res.ErrorCode == s.ExpectError
		logger.Debug("Scenario failed to evaluate", "error", err.Error())
	} else {
		res.Got = fmt.Sprint(out.First)
		res.Passed = s.Expect != nil && out.First == *s.Expect
	}
	return res
}

// RunAll evaluates every scenario in order.
func (r *Runner) RunAll(f *File) *Report {
	report := &Report{Results: make([]Result, 0, len(f.Scenarios))}
	for _, s := range f.Scenarios {
		res := r.Run(s)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}
