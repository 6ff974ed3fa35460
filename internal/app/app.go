// Package app runs the interactive first-element program: banner, prompts,
// array input and the constant-time lookup.
package app

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"firstelem/internal/config"
	"firstelem/internal/header"
	"firstelem/internal/input"
	"firstelem/internal/sequence"
	"firstelem/internal/slogutil"
)

// Result is the outcome of one run.
type Result struct {
	RunID  string `json:"runId"`
	Length int    `json:"length"`
	First  int64  `json:"first"`
}

// Evaluate reads one array from r and returns its first element.
// A nil logger discards.
func Evaluate(r io.Reader, opts input.Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	reader := input.NewReader(r, opts)
	values, err := reader.ReadArray()
	if err != nil {
		return Result{}, err
	}
	logger.Info("Array read", "length", values.Len(), "tokens", reader.Tokens())

	counted := sequence.NewCounting(values)
	first, err := sequence.First(counted)
	if err != nil {
		return Result{Length: values.Len()}, err
	}
	logger.Debug("First element read", "length", values.Len(), "reads", counted.Reads())

	return Result{Length: values.Len(), First: first}, nil
}

// App wires configuration and I/O for a single run.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
	Now    func() time.Time
	RunID  string
}

// JSONOutput reports whether results are emitted as JSON.
// Banner and prompts are suppressed in that mode so stdout stays parseable.
func (a *App) JSONOutput() bool {
	return strings.EqualFold(a.Config.Output.Format, "json")
}

// Style returns the configured banner style.
func (a *App) Style() header.Style {
	style, err := header.ParseStyle(a.Config.Header.Style)
	if err != nil {
		return header.StyleEmoji
	}
	return style
}

// ResultLabel returns the label printed before the first element.
func (a *App) ResultLabel() string {
	if a.Config.Prompts.ResultLabel != "" {
		return a.Config.Prompts.ResultLabel
	}
	return header.ResultLabel(a.Style())
}

// Run prints the banner, prompts for the array and returns its first element.
func (a *App) Run() (Result, error) {
	cfg := a.Config
	now := a.Now
	if now == nil {
		now = time.Now
	}

	opts := input.Options{
		LengthPrompt:   cfg.Prompts.Length,
		ElementsPrompt: cfg.Prompts.Elements,
		MaxLength:      cfg.Input.MaxLength,
	}
	if !a.JSONOutput() {
		opts.Prompt = a.Out
		if cfg.Header.Enabled {
			info := header.Info{
				Author:     cfg.Header.Author,
				Campus:     cfg.Header.Campus,
				Repository: cfg.Header.Repository,
				Time:       now(),
				TimeFormat: cfg.Header.TimeFormat,
			}
			if err := header.Render(a.Out, info, a.Style()); err != nil {
				return Result{}, err
			}
		}
	}

	res, err := Evaluate(a.In, opts, a.Logger)
	res.RunID = a.RunID
	return res, err
}
