package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildProgram translates src, compiles it with the system C compiler and
// returns the binary path. The test is skipped when no compiler is installed.
func buildProgram(t *testing.T, src string) string {
	t.Helper()
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler on PATH")
	}

	dir := t.TempDir()
	cPath := filepath.Join(dir, "prog.c")
	binPath := filepath.Join(dir, "prog")

	out, _ := translateString(t, src)
	require.NoError(t, os.WriteFile(cPath, []byte(out), 0644))

	cmd := exec.Command(cc, "-o", binPath, cPath)
	msg, err := cmd.CombinedOutput()
	require.NoError(t, err, "compile failed:\n%s", msg)
	return binPath
}

func runProgram(t *testing.T, binPath string, stdin string) string {
	t.Helper()
	var stdout bytes.Buffer
	cmd := exec.Command(binPath)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())
	return stdout.String()
}

func TestCompiledEmptyProgram(t *testing.T) {
	bin := buildProgram(t, "")
	assert.Empty(t, runProgram(t, bin, "unused"))
}

func TestCompiledZeroCell(t *testing.T) {
	bin := buildProgram(t, ",[-].")
	for _, in := range []string{"\x00", "\x01", "A", "\x7f", "\x80", "\xff"} {
		assert.Equal(t, "\x00", runProgram(t, bin, in), "input %q", in)
	}
}

func TestCompiledArithmetic(t *testing.T) {
	bin := buildProgram(t, "++++++++[>++++++++<-]>+.+.")
	assert.Equal(t, "AB", runProgram(t, bin, ""))
}

func TestCompiledEcho(t *testing.T) {
	bin := buildProgram(t, ",.,.,.")
	assert.Equal(t, "abc", runProgram(t, bin, "abc"))
}

func TestCompiledWrapsOnUnderflow(t *testing.T) {
	bin := buildProgram(t, "-.")
	assert.Equal(t, "\xff", runProgram(t, bin, ""))
}

func TestCompiledUnbalancedLoopFails(t *testing.T) {
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler on PATH")
	}
	dir := t.TempDir()
	cPath := filepath.Join(dir, "prog.c")
	out, _ := translateString(t, "[")
	require.NoError(t, os.WriteFile(cPath, []byte(out), 0644))

	cmd := exec.Command(cc, "-o", filepath.Join(dir, "prog"), cPath)
	assert.Error(t, cmd.Run())
}
