package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workflows/internal/adapters/terminal"
	"workflows/internal/config"
	"workflows/internal/domain"
	portsmocks "workflows/internal/ports/mocks"
)

type deleteFixture struct {
	dir      string
	out      *bytes.Buffer
	prompter *portsmocks.MockPrompter
	service  *DeleteService
	sessions *portsmocks.MockSessionManager
	vcs      *portsmocks.MockVersionControl
}

func newDeleteFixture(t *testing.T, git config.GitConfig) *deleteFixture {
	t.Helper()
	f := &deleteFixture{
		dir:      setupProjectsDir(t, "alpha"),
		out:      &bytes.Buffer{},
		prompter: portsmocks.NewMockPrompter(t),
		sessions: portsmocks.NewMockSessionManager(t),
		vcs:      portsmocks.NewMockVersionControl(t),
	}
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "alpha", "main.go"), []byte("package main\n"), 0644))
	f.service = NewDeleteService(f.vcs, f.sessions, f.prompter, terminal.NewReporterTo(f.out), f.dir, git)
	return f
}

func TestDelete_RemovesProjectAndConfigAfterConfirmation(t *testing.T) {
	f := newDeleteFixture(t, config.GitConfig{})
	root := filepath.Join(f.dir, "alpha")

	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, root).Return(true, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, root, "main").Return(true, nil)
	f.prompter.EXPECT().Confirm("Delete alpha?", false).Return(true, nil)
	f.sessions.EXPECT().Delete("alpha").Return(nil)

	deleted, err := f.service.Delete(context.Background(), domain.NewLocalRepo("alpha"))

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoDirExists(t, root)

	out := f.out.String()
	assert.Contains(t, out, "clean working tree")
	assert.Contains(t, out, "main pushed")
	assert.Contains(t, out, "These checks are only for the main branch of the repo")
	assert.Contains(t, out, "Deleting tmuxinator config")
	assert.Contains(t, out, "Deleting project from")
	assert.Contains(t, out, "Deleted alpha!")
}

func TestDelete_DeclineLeavesEverythingUntouched(t *testing.T) {
	f := newDeleteFixture(t, config.GitConfig{})
	root := filepath.Join(f.dir, "alpha")

	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, root).Return(true, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, root, "main").Return(true, nil)
	f.prompter.EXPECT().Confirm("Delete alpha?", false).Return(false, nil)

	deleted, err := f.service.Delete(context.Background(), domain.NewLocalRepo("alpha"))

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.FileExists(t, filepath.Join(root, "main.go"))
	f.sessions.AssertNotCalled(t, "Delete", mock.Anything)
	assert.NotContains(t, f.out.String(), "Deleting")
}

func TestDelete_FailedChecksAreAdvisory(t *testing.T) {
	f := newDeleteFixture(t, config.GitConfig{})
	root := filepath.Join(f.dir, "alpha")

	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, root).Return(false, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, root, "main").Return(false, nil)
	f.prompter.EXPECT().Confirm("Delete alpha?", false).Return(true, nil)
	f.sessions.EXPECT().Delete("alpha").Return(nil)

	deleted, err := f.service.Delete(context.Background(), domain.NewLocalRepo("alpha"))

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoDirExists(t, root)
}

func TestDelete_UsesConfiguredMainBranch(t *testing.T) {
	branch := "master"
	f := newDeleteFixture(t, config.GitConfig{MainBranch: &branch})
	root := filepath.Join(f.dir, "alpha")

	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, root).Return(true, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, root, "master").Return(true, nil)
	f.prompter.EXPECT().Confirm(mock.Anything, false).Return(false, nil)

	_, err := f.service.Delete(context.Background(), domain.NewLocalRepo("alpha"))

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "master pushed")
	assert.Contains(t, f.out.String(), "only for the master branch")
}

func TestDelete_GitFailureIsFatal(t *testing.T) {
	gitErr := errors.New("not a git repository")
	f := newDeleteFixture(t, config.GitConfig{})

	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, mock.Anything).Return(false, gitErr)

	deleted, err := f.service.Delete(context.Background(), domain.NewLocalRepo("alpha"))

	assert.ErrorIs(t, err, gitErr)
	assert.False(t, deleted)
	assert.DirExists(t, filepath.Join(f.dir, "alpha"))
	f.prompter.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestDelete_ConfigDeleteFailureKeepsProject(t *testing.T) {
	cfgErr := errors.New("read-only file system")
	f := newDeleteFixture(t, config.GitConfig{})

	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, mock.Anything).Return(true, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, mock.Anything, "main").Return(true, nil)
	f.prompter.EXPECT().Confirm(mock.Anything, false).Return(true, nil)
	f.sessions.EXPECT().Delete("alpha").Return(cfgErr)

	_, err := f.service.Delete(context.Background(), domain.NewLocalRepo("alpha"))

	assert.ErrorIs(t, err, cfgErr)
	assert.DirExists(t, filepath.Join(f.dir, "alpha"))
}

func TestDelete_RejectsRemoteRepo(t *testing.T) {
	f := newDeleteFixture(t, config.GitConfig{})

	_, err := f.service.Delete(context.Background(), domain.NewRemoteRepo("alpha", domain.RemoteInfo{Owner: "me"}))

	assert.ErrorIs(t, err, domain.ErrNotLocal)
	assert.DirExists(t, filepath.Join(f.dir, "alpha"))
}

func TestDelete_RefusesPathsOutsideProjectsDir(t *testing.T) {
	tests := []struct {
		name string
		repo string
	}{
		{name: "empty name", repo: ""},
		{name: "current dir", repo: "."},
		{name: "parent dir", repo: ".."},
		{name: "escaping name", repo: "../elsewhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDeleteFixture(t, config.GitConfig{})

			_, err := f.service.Delete(context.Background(), domain.NewLocalRepo(tt.repo))

			assert.ErrorIs(t, err, domain.ErrOutsideProjectsDir)
			assert.DirExists(t, f.dir)
		})
	}
}
