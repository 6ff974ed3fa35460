package main

import (
	"strings"
	"testing"

	"firstelem/internal/scenario"
)

func TestFormatResponse_FirstElementHuman(t *testing.T) {
	resp := &FirstElementResponseCLI{RunID: "r", Length: 3, First: -1, Label: "first element is "}

	got, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first element is -1" {
		t.Errorf("FormatResponse() = %q, want %q", got, "first element is -1")
	}
}

func TestFormatResponse_JSON(t *testing.T) {
	resp := &FirstElementResponseCLI{RunID: "r", Length: 3, First: 7, Label: "hidden"}

	got, err := FormatResponse(resp, "JSON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"first": 7`) {
		t.Errorf("JSON output missing first: %s", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("label should not be serialized: %s", got)
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	_, err := FormatResponse(map[string]string{"key": "value"}, "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected unsupported format error, got: %v", err)
	}
}

func TestFormatResponse_HumanFallsBackToJSON(t *testing.T) {
	got, err := FormatResponse(map[string]int{"n": 1}, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"n": 1`) {
		t.Errorf("expected JSON fallback, got: %s", got)
	}
}

func TestFormatVerifyHuman(t *testing.T) {
	resp := &VerifyResponseCLI{
		File: "cases.toml",
		Report: &scenario.Report{
			Results: []scenario.Result{
				{Name: "A", Passed: true, Want: "7", Got: "7"},
				{Name: "B", Passed: false, Want: "42", Got: "MALFORMED_INPUT"},
			},
			Passed: 1,
			Failed: 1,
		},
	}

	got := formatVerifyHuman(resp)
	for _, want := range []string{
		"Scenarios: cases.toml\n",
		"✓ A: want 7, got 7\n",
		"✗ B: want 42, got MALFORMED_INPUT\n",
		"1 passed, 1 failed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
