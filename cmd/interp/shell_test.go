package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-interp/config"
)

// script feeds lines to a shell over a session built from cfg and returns
// the output with prompts stripped.
func script(t *testing.T, cfg config.Config, lines ...string) []string {
	t.Helper()
	var out bytes.Buffer
	sh := newShell(newSession(cfg, nil), &out, nil)
	require.NoError(t, sh.run(strings.NewReader(strings.Join(lines, "\n"))))

	var got []string
	for _, ln := range strings.Split(out.String(), "\n") {
		ln = strings.TrimPrefix(ln, prompt)
		if ln != "" {
			got = append(got, ln)
		}
	}

	return got
}

func noExport() config.Config {
	cfg := config.Default()
	cfg.Export.Enabled = false

	return cfg
}

func TestShell_ThreePointWorkflow(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Export.Dir = dir

	got := script(t, cfg,
		"add 0 1",
		"add 1 3",
		"add 2 7",
		"calc",
		"eval 2",
		"d1",
		"d2",
		"poly",
	)
	path := filepath.Join(dir, "interpolation.tex")
	assert.Equal(t, []string{
		"Added (0, 1).",
		"Added (1, 3).",
		"Added (2, 7).",
		"Calculation complete. LaTeX file saved to " + path + ".",
		"P(x) = 1*x^2+1*x^1+1*x^0",
		"P(2) = 7",
		"First Derivative: 2*x^1+1*x^0",
		"Second Derivative: 2*x^0",
		"P(x) = 1*x^2+1*x^1+1*x^0",
	}, got)

	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "domain=0:2]")
}

func TestShell_Errors(t *testing.T) {
	got := script(t, noExport(),
		"eval 1",
		"add a 1",
		"add 1",
		"remove",
		"select 0",
		"select x",
		"add 1 1",
		"calc",
		"add 1 2",
		"calc",
		"frobnicate",
		`add "1`,
	)
	assert.Equal(t, []string{
		"Please calculate the interpolation polynomial first.",
		"Invalid input. Please enter valid numbers.",
		"Usage: add x y",
		"No point selected. Please select a point to remove.",
		"No such point.",
		"Invalid input. Please enter valid numbers.",
		"Added (1, 1).",
		"At least two points are required for interpolation.",
		"Added (1, 2).",
		"The points do not define a unique polynomial. Remove points with duplicate x values.",
		`Unknown command "frobnicate". Type help for a list of commands.`,
	}, got[:11])
	require.Len(t, got, 12)
	assert.True(t, strings.HasPrefix(got[11], "Malformed command: "))
}

func TestShell_SelectRemoveList(t *testing.T) {
	got := script(t, noExport(),
		"list",
		"add 0 0",
		"add 1 1",
		"select 1",
		"list",
		"remove",
		"list",
		"calc",
	)
	assert.Equal(t, []string{
		"No points.",
		"Added (0, 0).",
		"Added (1, 1).",
		"Selected (1, 1).",
		" 0: (0, 0)",
		"*1: (1, 1)",
		"Removed (1, 1).",
		" 0: (0, 0)",
		"At least two points are required for interpolation.",
	}, got)
}

func TestShell_StaleAfterAdd(t *testing.T) {
	got := script(t, noExport(),
		"add 0 0",
		"add 1 2",
		"calc",
		"eval 0.5",
		"add 2 4",
		"eval 0.5",
	)
	assert.Equal(t, []string{
		"Added (0, 0).",
		"Added (1, 2).",
		"Calculation complete.",
		"P(x) = 2*x^1+0*x^0",
		"P(0.5) = 1",
		"Added (2, 4).",
		"Please calculate the interpolation polynomial first.",
	}, got)
}

func TestShell_QuitStopsReading(t *testing.T) {
	got := script(t, noExport(), "help", "quit", "add 1 1")
	require.NotEmpty(t, got)
	assert.Equal(t, "Commands:", got[0])
	for _, ln := range got {
		assert.NotContains(t, ln, "Added")
	}
}

func TestShell_ExportFailureKeepsFit(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	cfg := config.Default()
	cfg.Export.Dir = filepath.Join(blocker, "sub") // parent is a regular file

	got := script(t, cfg, "add 0 0", "add 1 1", "calc", "eval 3")
	require.Len(t, got, 5)
	assert.True(t, strings.HasPrefix(got[2], "Calculation complete, but the LaTeX file could not be saved: "))
	assert.Equal(t, "P(x) = 1*x^1+0*x^0", got[3])
	assert.Equal(t, "P(3) = 3", got[4])
}
