package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "firstelem/internal/errors"
	"firstelem/internal/slogutil"
)

func newRunner() *Runner {
	return &Runner{MaxLength: 100, Logger: slogutil.NewDiscardLogger()}
}

func TestLoadFile_Testdata(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "..", "testdata", "scenarios.toml"))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 8)

	a := f.Scenarios[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, "3\n7 2 9\n", a.Input)
	require.NotNil(t, a.Expect)
	assert.Equal(t, int64(7), *a.Expect)

	c := f.Scenarios[2]
	assert.Nil(t, c.Expect)
	assert.Equal(t, apperrors.EmptyArrayAccess, c.ExpectError)

	report := newRunner().RunAll(f)
	for _, res := range report.Results {
		assert.Truef(t, res.Passed, "scenario %s: want %s, got %s", res.Name, res.Want, res.Got)
	}
	assert.Equal(t, 8, report.Passed)
	assert.Zero(t, report.Failed)
	assert.NoError(t, report.Err())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"empty", "", "no scenarios"},
		{"missing name", "[[scenario]]\ninput = \"1 1\"\nexpect = 1\n", "name is required"},
		{"duplicate", "[[scenario]]\nname = \"x\"\nexpect = 1\n[[scenario]]\nname = \"x\"\nexpect = 2\n", "duplicate"},
		{"no expectation", "[[scenario]]\nname = \"x\"\ninput = \"1 1\"\n", "exactly one"},
		{"both expectations", "[[scenario]]\nname = \"x\"\nexpect = 1\nexpect_error = \"INVALID_LENGTH\"\n", "exactly one"},
		{"bad toml", "[[scenario]\n", "parse scenarios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunner_Run(t *testing.T) {
	seven := int64(7)
	eight := int64(8)

	tests := []struct {
		name       string
		scenario   Scenario
		wantPassed bool
		wantGot    string
	}{
		{"value match", Scenario{Name: "a", Input: "3 7 2 9", Expect: &seven}, true, "7"},
		{"value mismatch", Scenario{Name: "b", Input: "3 7 2 9", Expect: &eight}, false, "7"},
		{"error match", Scenario{Name: "c", Input: "0", ExpectError: apperrors.EmptyArrayAccess}, true, "EMPTY_ARRAY_ACCESS"},
		{"wrong error", Scenario{Name: "d", Input: "zz", ExpectError: apperrors.EmptyArrayAccess}, false, "MALFORMED_INPUT"},
		{"unexpected error", Scenario{Name: "e", Input: "0", Expect: &seven}, false, "EMPTY_ARRAY_ACCESS"},
		{"expected error got value", Scenario{Name: "f", Input: "1 7", ExpectError: apperrors.MalformedInput}, false, "7"},
		{"over max length", Scenario{Name: "g", Input: "101", ExpectError: apperrors.InvalidLength}, true, "INVALID_LENGTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newRunner().Run(tt.scenario)
			assert.Equal(t, tt.wantPassed, res.Passed)
			assert.Equal(t, tt.wantGot, res.Got)
			assert.Equal(t, tt.scenario.Name, res.Name)
		})
	}
}

func TestReport_Err(t *testing.T) {
	eight := int64(8)
	f := &File{Scenarios: []Scenario{
		{Name: "ok", Input: "1 8", Expect: &eight},
		{Name: "bad", Input: "1 9", Expect: &eight},
	}}

	report := newRunner().RunAll(f)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)

	err := report.Err()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ScenarioFailed))
	assert.Contains(t, err.Error(), "bad")
	assert.NotContains(t, err.Error(), "ok,")
}

func TestRunner_ZeroValue(t *testing.T) {
	three := int64(3)
	var r Runner

	res := r.Run(Scenario{Name: "z", Input: "1 3", Expect: &three})
	assert.True(t, res.Passed)

	report := r.RunAll(&File{Scenarios: []Scenario{{Name: "e", Input: "0", ExpectError: apperrors.EmptyArrayAccess}}})
	assert.Equal(t, 1, report.Passed)
}
