package tmuxinator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflows/internal/domain"
)

func TestStartCommand_QuotesName(t *testing.T) {
	assert.Equal(t, "tmuxinator start notes", StartCommand("notes"))
	assert.Equal(t, "tmuxinator start 'my notes'", StartCommand("my notes"))
	assert.Equal(t, `tmuxinator start 'x;rm -rf ~'`, StartCommand("x;rm -rf ~"))
}

// fakeShell returns a Client whose shell records the command it was asked to run
func fakeShell(t *testing.T, exitCode string) (*Client, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	dir := t.TempDir()
	record := filepath.Join(dir, "record")
	shell := filepath.Join(dir, "fake-sh")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + record + "\nexit " + exitCode + "\n"
	require.NoError(t, os.WriteFile(shell, []byte(script), 0755))

	client := NewClient(t.TempDir())
	client.shell = shell
	client.stdin = strings.NewReader("")
	client.stdout = &bytes.Buffer{}
	client.stderr = &bytes.Buffer{}
	return client, record
}

func TestStart_RunsTmuxinatorThroughShell(t *testing.T) {
	client, record := fakeShell(t, "0")

	require.NoError(t, client.Start(context.Background(), "notes"))

	data, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "-c\ntmuxinator start notes\n", string(data))
}

func TestStart_SessionExitStatusIsNotAnError(t *testing.T) {
	client, _ := fakeShell(t, "3")

	assert.NoError(t, client.Start(context.Background(), "notes"))
}

func TestStart_MissingShell(t *testing.T) {
	client := NewClient(t.TempDir())
	client.shell = "definitely-not-a-shell-" + t.Name()

	err := client.Start(context.Background(), "notes")

	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}
