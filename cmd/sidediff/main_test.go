package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/sidediff/internal/config"
	"github.com/aleister1102/sidediff/internal/differ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs the command in an empty working directory with no config env var set.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	t.Setenv(config.ConfigPathEnvVar, "")
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_IdenticalFiles(t *testing.T) {
	left := writeInput(t, "left.txt", "same\n")
	right := writeInput(t, "right.txt", "same\n")

	res := runCLI(t, "", left, right)

	assert.Equal(t, exitNoDifferences, res.code)
	assert.Equal(t, string(differ.Diff([]byte("same\n"), []byte("same\n"))), res.stdout)
	assert.Empty(t, res.stderr)
}

func TestRun_DifferentFiles(t *testing.T) {
	left := writeInput(t, "left.txt", "original")
	right := writeInput(t, "right.txt", "modified")

	res := runCLI(t, "", left, right)

	assert.Equal(t, exitDifferences, res.code)
	assert.Equal(t, "original"+strings.Repeat(" ", 54)+"| modified"+differ.LineEnding, res.stdout)
}

func TestRun_BothEmpty(t *testing.T) {
	left := writeInput(t, "left.txt", "")
	right := writeInput(t, "right.txt", "")

	res := runCLI(t, "", left, right)

	assert.Equal(t, exitNoDifferences, res.code)
	assert.Empty(t, res.stdout)
}

func TestRun_ReadsStandardInput(t *testing.T) {
	right := writeInput(t, "right.txt", "a\nb")

	res := runCLI(t, "a\nb", "-", right)

	assert.Equal(t, exitNoDifferences, res.code)
	assert.Contains(t, res.stdout, "  b")
}

func TestRun_Help(t *testing.T) {
	res := runCLI(t, "", "--help")

	assert.Equal(t, exitNoDifferences, res.code)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--layout")
	assert.Empty(t, res.stderr)
}

func TestRun_WrongArgumentCount(t *testing.T) {
	res := runCLI(t, "", "only-one")

	assert.Equal(t, exitTrouble, res.code)
	assert.Contains(t, res.stderr, "expected 2 file arguments, got 1")
	assert.Contains(t, res.stderr, usageLine)
	assert.Empty(t, res.stdout)
}

func TestRun_MissingFile(t *testing.T) {
	right := writeInput(t, "right.txt", "x")

	res := runCLI(t, "", filepath.Join(t.TempDir(), "missing.txt"), right)

	assert.Equal(t, exitTrouble, res.code)
	assert.Contains(t, res.stderr, "cannot read")
	assert.Contains(t, res.stderr, "file not found")
	assert.Empty(t, res.stdout)
}

func TestRun_InvalidLayoutFlag(t *testing.T) {
	left := writeInput(t, "left.txt", "a")
	right := writeInput(t, "right.txt", "b")

	res := runCLI(t, "", "--layout", "wide", left, right)

	assert.Equal(t, exitTrouble, res.code)
	assert.Contains(t, res.stderr, "layout")
}

func TestRun_PlainLayoutFlag(t *testing.T) {
	left := writeInput(t, "left.txt", "a\nb\n")
	right := writeInput(t, "right.txt", "a\nc\n")

	res := runCLI(t, "", "-l", "plain", left, right)

	assert.Equal(t, exitDifferences, res.code)
	expected := "a" + strings.Repeat(" ", 59) + "   a" + differ.LineEnding +
		"b" + strings.Repeat(" ", 59) + " < " + differ.LineEnding +
		strings.Repeat(" ", 60) + " > c" + differ.LineEnding
	assert.Equal(t, expected, res.stdout)
}

func TestRun_ConfigFileSelectsLayout(t *testing.T) {
	left := writeInput(t, "left.txt", "a\n")
	right := writeInput(t, "right.txt", "b\n")
	cfgPath := writeInput(t, "sidediff.yaml", "diff_config:\n  layout: plain\n")

	res := runCLI(t, "", "--config", cfgPath, left, right)

	assert.Equal(t, exitDifferences, res.code)
	assert.Equal(t, "a"+strings.Repeat(" ", 59)+" < "+differ.LineEnding+
		strings.Repeat(" ", 60)+" > b"+differ.LineEnding, res.stdout)
}

func TestRun_LayoutFlagOverridesConfigFile(t *testing.T) {
	left := writeInput(t, "left.txt", "original")
	right := writeInput(t, "right.txt", "modified")
	cfgPath := writeInput(t, "sidediff.yaml", "diff_config:\n  layout: plain\n")

	res := runCLI(t, "", "-c", cfgPath, "--layout", "paired", left, right)

	assert.Equal(t, exitDifferences, res.code)
	assert.Contains(t, res.stdout, "| modified")
}

func TestRun_MissingConfigFile(t *testing.T) {
	left := writeInput(t, "left.txt", "a")
	right := writeInput(t, "right.txt", "a")

	res := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), left, right)

	assert.Equal(t, exitTrouble, res.code)
	assert.Contains(t, res.stderr, "could not load configuration")
}

func TestRun_InputTooLarge(t *testing.T) {
	left := writeInput(t, "left.txt", strings.Repeat("x", 2*1024*1024))
	right := writeInput(t, "right.txt", "x")
	cfgPath := writeInput(t, "sidediff.json", `{"input_config": {"max_input_size_mb": 1}}`)

	res := runCLI(t, "", "-c", cfgPath, left, right)

	assert.Equal(t, exitTrouble, res.code)
	assert.Contains(t, res.stderr, "too large")
}

func TestRun_LogFileFlag(t *testing.T) {
	left := writeInput(t, "left.txt", "a")
	right := writeInput(t, "right.txt", "b")
	logPath := filepath.Join(t.TempDir(), "sidediff.log")

	res := runCLI(t, "", "--log-level", "info", "--log-file", logPath, left, right)

	assert.Equal(t, exitDifferences, res.code)
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Comparison finished")
	assert.Contains(t, string(content), "has_differences")
	assert.Contains(t, res.stderr, "Comparison finished")
}
