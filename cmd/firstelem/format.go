package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"firstelem/internal/scenario"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FirstElementResponseCLI is the result of the default command
type FirstElementResponseCLI struct {
	RunID  string `json:"runId"`
	Length int    `json:"length"`
	First  int64  `json:"first"`
	Label  string `json:"-"`
}

// VerifyResponseCLI is the result of the verify command
type VerifyResponseCLI struct {
	File string `json:"file"`
	*scenario.Report
}

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch OutputFormat(strings.ToLower(string(format))) {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *FirstElementResponseCLI:
		return fmt.Sprintf("%s%d", v.Label, v.First), nil
	case *VerifyResponseCLI:
		return formatVerifyHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatVerifyHuman(resp *VerifyResponseCLI) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Scenarios: %s\n", resp.File))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, r := range resp.Results {
		icon := "✓"
		if !r.Passed {
			icon = "✗"
		}
		b.WriteString(fmt.Sprintf("%s %s: want %s, got %s\n", icon, r.Name, r.Want, r.Got))
	}

	b.WriteString(fmt.Sprintf("\n%d passed, %d failed", resp.Passed, resp.Failed))
	return b.String()
}
