package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/shabbyrobe/go-ebi"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "12345\n", "demo", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, []string{
		"Your number is 12345 (0x3039)",
		"a+b = 82056373577192766440263908030568869677607",
		"a-b = 82056373577192766440263908030568869652917",
		"a*b = 1012985931810444701705057944637372696017659390",
		"a/b = 6646931841003869294472572541965886566",
		"a%b = 7992",
		"Counting from 0 to 2: 0 1 2",
	}, lines)
}

func TestDemoIsDefaultCommand(t *testing.T) {
	out, _, err := execute(t, "12345", "--count", "0")
	require.NoError(t, err)
	require.Contains(t, out, "a%b = 7992")
	require.NotContains(t, out, "Please key in")
}

func TestDemoDefaultCount(t *testing.T) {
	out, _, err := execute(t, "1")
	require.NoError(t, err)
	require.Contains(t, out, "Counting from 0 to 99: 0 1 2")
	require.True(t, strings.HasSuffix(out, " 98 99\n"))
}

func TestDemoNegativeOperand(t *testing.T) {
	out, _, err := execute(t, "-7", "--count", "0")
	require.NoError(t, err)
	require.Contains(t, out, "Your number is -7 (-0x7)")
	require.Contains(t, out, "a%b = 1\n")

	out, _, err = execute(t, "-7", "--count", "0", "--mod", "nonnegative")
	require.Error(t, err)
	require.True(t, ebi.InvalidModulus.Has(err))
	require.Contains(t, out, "a/b = -11722339082456109491466272575795552809323")
}

func TestDemoDivideByZero(t *testing.T) {
	_, _, err := execute(t, "0")
	require.Error(t, err)
	require.True(t, ebi.DivideByZero.Has(err))
}

func TestDemoMalformed(t *testing.T) {
	_, _, err := execute(t, "12z")
	require.Error(t, err)
	require.True(t, ebi.ParseError.Has(err))

	_, _, err = execute(t, "")
	require.Error(t, err)
	require.True(t, ebi.ParseError.Has(err))
}

func TestDemoLenient(t *testing.T) {
	// Malformed input turns into zero, which then can't be divided by:
	_, stderr, err := execute(t, "garbage", "--lenient")
	require.Error(t, err)
	require.True(t, ebi.DivideByZero.Has(err))
	require.Contains(t, stderr, "malformed integer text")
}

func TestDemoCapacity(t *testing.T) {
	_, _, err := execute(t, "1", "--max-digits", "16")
	require.Error(t, err)
	require.True(t, ebi.CapacityExceeded.Has(err))
}

func TestCalc(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"2", "+", "3"}, "5"},
		{[]string{"2", "-", "3"}, "-1"},
		{[]string{"--", "-4", "*", "0x10"}, "-64"},
		{[]string{"--", "-7", "/", "2"}, "-3"},
		{[]string{"--", "-7", "%", "2"}, "-1"},
		{[]string{"--", "-7", "mod", "2"}, "-1"},
		{[]string{"--mod", "nonnegative", "--", "-7", "mod", "2"}, "1"},
		{[]string{"2", "pow", "64"}, "18446744073709551616"},
		{[]string{"--base", "16", "2", "pow", "64"}, "10000000000000000"},
		{[]string{"0x1", "<<", "8"}, "256"},
		{[]string{"--base", "16", "0xabc", ">>", "4"}, "ab"},
		{[]string{"1", "cmp", "2"}, "-1"},
		{[]string{"2", "cmp", "2"}, "0"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"calc"}, tc.args...)...)
			require.NoError(t, err)
			require.Equal(t, tc.out+"\n", out)
		})
	}
}

func TestCalcErrors(t *testing.T) {
	_, _, err := execute(t, "", "calc", "1", "/", "0")
	require.True(t, ebi.DivideByZero.Has(err))

	_, _, err = execute(t, "", "calc", "1", "<<", "3")
	require.True(t, ebi.InvalidShiftAmount.Has(err))

	_, _, err = execute(t, "", "calc", "--", "1", "pow", "-1")
	require.True(t, ebi.Overflow.Has(err))

	_, _, err = execute(t, "", "calc", "1", "^", "2")
	require.ErrorContains(t, err, "unknown operator")

	_, _, err = execute(t, "", "calc", "--base", "8", "1", "+", "2")
	require.ErrorContains(t, err, "unsupported base")

	_, _, err = execute(t, "", "calc", "1", "+")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ebi.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
mod = "nonnegative"
count = 2
color = "off"
`), 0o600))

	out, _, err := execute(t, "", "calc", "--config", file, "--", "-7", "mod", "2")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	// Flags override the file:
	out, _, err = execute(t, "", "calc", "--config", file, "--mod", "truncated", "--", "-7", "mod", "2")
	require.NoError(t, err)
	require.Equal(t, "-1\n", out)

	out, _, err = execute(t, "5", "--config", file)
	require.NoError(t, err)
	require.Contains(t, out, "Counting from 0 to 1: 0 1\n")
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`mod = "floored"`), 0o600))
	_, _, err := execute(t, "", "calc", "--config", bad, "1", "+", "1")
	require.ErrorContains(t, err, "unsupported mod")

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte(`mod = `), 0o600))
	_, _, err = execute(t, "", "calc", "--config", broken, "1", "+", "1")
	require.Error(t, err)

	_, _, err = execute(t, "", "calc", "--config", filepath.Join(dir, "missing.toml"), "1", "+", "1")
	require.Error(t, err)
}

func TestVerboseLogsSettings(t *testing.T) {
	_, stderr, err := execute(t, "", "calc", "--verbose", "--color", "off", "--max-digits", "100", "1", "+", "1")
	require.NoError(t, err)
	require.Contains(t, stderr, "settings")
	require.Contains(t, stderr, "max_digits=100")
}
