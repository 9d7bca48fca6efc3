package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCLIRunFromExpr(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "run", "-e", "take 10\ntake 3\ntake 7\n")

	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Program")
	assert.Contains(t, stdout, "3 command(s) parsed")
	assert.Contains(t, stdout, "Result")
	assert.Contains(t, stdout, "bound 3 (")
	assert.Contains(t, stdout, "✓ OK")
}

func TestCLIRunFromStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, "take 42\ntake 42\ntake 42\n", "run")

	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "bound 42 (")
}

func TestCLIRunEmptyProgram(t *testing.T) {
	code, stdout, _ := runCLI(t, "\n\n", "run")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "0 command(s) parsed")
	assert.Contains(t, stdout, "bound unbounded")
}

func TestCLIRunParseError(t *testing.T) {
	tests := []struct {
		name    string
		program string
		message string
	}{
		{"unknown command", "tak 5\n", `line 1, column 1: unknown command "tak"`},
		{"missing argument", "take\n", "line 1, column 5: missing argument"},
		{"invalid number", "take -1\n", `line 1, column 6: invalid number "-1"`},
		{"trailing tokens", "take 1\ntake 2 3", `line 2, column 8: trailing tokens "3"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.program, "run")

			assert.Equal(t, exitParse, code)
			assert.Empty(t, stdout, "nothing is printed when parsing fails")
			assert.Contains(t, stderr, "✗ Error: parse error at "+tt.message)
		})
	}
}

func TestCLIRunJSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "run", "-o", "json", "-e", "take 10\ntake 3")
	require.Equal(t, exitOK, code, stderr)

	var out struct {
		Program struct {
			Commands []struct {
				Command  string `json:"command"`
				Argument uint64 `json:"argument"`
			} `json:"commands"`
			Text string `json:"text"`
		} `json:"program"`
		Result struct {
			Bound    *uint64 `json:"bound"`
			Commands int     `json:"commands"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	require.Len(t, out.Program.Commands, 2)
	assert.Equal(t, "take", out.Program.Commands[0].Command)
	assert.Equal(t, uint64(10), out.Program.Commands[0].Argument)
	assert.Equal(t, "take 10\ntake 3\n", out.Program.Text)
	require.NotNil(t, out.Result.Bound)
	assert.Equal(t, uint64(3), *out.Result.Bound)
	assert.Equal(t, 2, out.Result.Commands)
}

func TestCLIRunJSONUnbounded(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "run", "-o", "json", "-e", "\n")
	require.Equal(t, exitOK, code, stderr)

	var out struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "null", string(out.Result["bound"]))
}

func TestCLIDemo(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "demo")

	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "3 command(s) parsed")
	assert.Contains(t, stdout, "bound 42 (")
}

func TestCLIParse(t *testing.T) {
	code, stdout, stderr := runCLI(t, "take 5\n\ntake 9\n", "parse")

	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "2 command(s) parsed")
	assert.NotContains(t, stdout, "bound")
}

func TestCLIFormat(t *testing.T) {
	code, stdout, stderr := runCLI(t, "  take   007 \r\n\n take 3", "format")

	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "take 7\ntake 3\n", stdout)
}

func TestCLIVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "version")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "TakeQL vdev\n", stdout)
}

func TestCLIUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"explode"}},
		{"unknown flag", []string{"run", "--bogus"}},
		{"unexpected argument", []string{"run", "take 1"}},
		{"invalid output", []string{"run", "-o", "yaml", "-e", "take 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, "✗ Error:")
		})
	}
}

func TestCLIVerboseLogsToStderr(t *testing.T) {
	code, _, stderr := runCLI(t, "", "run", "-v", "-e", "take 4")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "command applied")
	assert.Contains(t, stderr, "bound=4")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitInternal, exitCode(&inputError{err: errors.New("boom")}))
	assert.Equal(t, exitUsage, exitCode(errors.New("bad flag")))
}

func TestCLIInputReadError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"run"}, iotest.ErrReader(errors.New("broken pipe")), &stdout, &stderr)

	assert.Equal(t, exitInternal, code)
	assert.Contains(t, stderr.String(), "failed to read program: broken pipe")
}
