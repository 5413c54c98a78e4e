package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[0], "PATH"))
	require.Equal(t, []string{"/", "home", "true"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"/admin", "admin", "false"}, strings.Fields(lines[6]))
}

func TestRoutesCommandRejectsArgs(t *testing.T) {
	_, err := execute(t, "routes", "extra")
	require.Error(t, err)
}

func TestServeValidatesFlags(t *testing.T) {
	t.Setenv("KNOWLEDGEHUB_WEB_ADDR", "127.0.0.1:0")

	_, err := execute(t, "serve", "--log-format", "xml")
	require.ErrorContains(t, err, "log format")

	_, err = execute(t, "--log-level", "chatty")
	require.ErrorContains(t, err, "logging:")
}

func TestServeReportsEnvErrors(t *testing.T) {
	t.Setenv("KNOWLEDGEHUB_WEB_METRICS", "maybe")
	_, err := execute(t, "serve")
	require.ErrorContains(t, err, "parse env:")
}

func TestHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "serve")
	require.Contains(t, out, "routes")
	require.Contains(t, out, "--addr")
}
