package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	for _, sub := range []string{"demo", "calibrate", "inspect", "validate"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing %q command", sub)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	if !strings.Contains(out, version) {
		t.Errorf("expected version %q in %q", version, out)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	require.Error(t, err)
}
