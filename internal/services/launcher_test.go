package services

import (
	"bytes"
	"context"
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

type launcherFixture struct {
	dir      string
	hosting  *portsmocks.MockHostingService
	prompter *portsmocks.MockPrompter
	selector *portsmocks.MockSelector
	session  *portsmocks.MockSelectorSession
	sessions *portsmocks.MockSessionManager
	service  *LauncherService
	vcs      *portsmocks.MockVersionControl
}

func newLauncherFixture(t *testing.T, local ...string) *launcherFixture {
	t.Helper()
	f := &launcherFixture{
		dir:      setupProjectsDir(t, local...),
		hosting:  portsmocks.NewMockHostingService(t),
		prompter: portsmocks.NewMockPrompter(t),
		selector: portsmocks.NewMockSelector(t),
		session:  portsmocks.NewMockSelectorSession(t),
		sessions: portsmocks.NewMockSessionManager(t),
		vcs:      portsmocks.NewMockVersionControl(t),
	}

	cfg := config.Default()
	projects := NewProjectService(f.dir, f.hosting, cfg.Github.ResolvedRepoLimit())
	f.service = NewLauncherService(
		NewPickerService(projects, f.selector, cfg.Fzf),
		NewCloneService(f.hosting, f.prompter, f.dir, cfg.Github),
		NewSessionService(f.sessions, f.dir, cfg.Tmuxinator),
		NewDeleteService(f.vcs, f.sessions, f.prompter, terminal.NewReporterTo(&bytes.Buffer{}), f.dir, cfg.Git),
	)

	f.selector.EXPECT().Start(mock.Anything, mock.Anything).Return(f.session, nil)
	f.session.EXPECT().Send(mock.Anything).Return(nil)
	return f
}

func (f *launcherFixture) expectRemote(repos ...domain.Repo) {
	f.hosting.EXPECT().ListRepositories(mock.Anything, config.DefaultRepoLimit).Return(domain.Repos(repos), nil)
}

func TestRun_EmptySelectionHasNoSideEffects(t *testing.T) {
	f := newLauncherFixture(t, "alpha")
	f.expectRemote()
	f.session.EXPECT().Wait().Return("", nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{}))
	assert.DirExists(t, filepath.Join(f.dir, "alpha"))
}

func TestRun_OpensLocalProject(t *testing.T) {
	f := newLauncherFixture(t, "alpha")
	f.expectRemote()
	f.session.EXPECT().Wait().Return("alpha", nil)
	f.sessions.EXPECT().Exists("alpha").Return(false, nil)
	f.sessions.EXPECT().Write(mock.MatchedBy(func(cfg domain.SessionConfig) bool {
		return cfg.Name == "alpha" && cfg.Root == filepath.Join(f.dir, "alpha")
	})).Return("/cfg/alpha.yml", nil)
	f.sessions.EXPECT().Start(mock.Anything, "alpha").Return(nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{}))
}

func TestRun_ClonesRemoteProjectBeforeOpening(t *testing.T) {
	f := newLauncherFixture(t, "alpha")
	remote := domain.NewRemoteRepo("gamma", domain.RemoteInfo{Owner: "me"})
	f.expectRemote(remote)
	f.session.EXPECT().Wait().Return("gamma", nil)
	f.prompter.EXPECT().Confirm(mock.Anything, true).Return(true, nil)
	f.hosting.EXPECT().Clone(mock.Anything, remote, filepath.Join(f.dir, "gamma")).Return(nil)
	f.sessions.EXPECT().Exists("gamma").Return(false, nil)
	f.sessions.EXPECT().Write(mock.Anything).Return("/cfg/gamma.yml", nil)
	f.sessions.EXPECT().Start(mock.Anything, "gamma").Return(nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{}))
}

func TestRun_DeclinedCloneStopsQuietly(t *testing.T) {
	f := newLauncherFixture(t)
	f.expectRemote(domain.NewRemoteRepo("gamma", domain.RemoteInfo{Owner: "me"}))
	f.session.EXPECT().Wait().Return("gamma", nil)
	f.prompter.EXPECT().Confirm(mock.Anything, true).Return(false, nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{}))
	f.sessions.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestRun_UnknownSelectionIsIgnored(t *testing.T) {
	f := newLauncherFixture(t, "alpha")
	f.expectRemote()
	f.session.EXPECT().Wait().Return("typed-by-hand", nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{}))
}

func TestRun_DeleteModeDeclined(t *testing.T) {
	f := newLauncherFixture(t, "alpha")
	root := filepath.Join(f.dir, "alpha")
	f.session.EXPECT().Wait().Return("alpha", nil)
	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, root).Return(true, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, root, "main").Return(true, nil)
	f.prompter.EXPECT().Confirm("Delete alpha?", false).Return(false, nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{DeleteMode: true}))
	assert.DirExists(t, root)
	f.hosting.AssertNotCalled(t, "ListRepositories", mock.Anything, mock.Anything)
}

func TestRun_DeleteModeConfirmed(t *testing.T) {
	f := newLauncherFixture(t, "alpha")
	root := filepath.Join(f.dir, "alpha")
	f.session.EXPECT().Wait().Return("alpha", nil)
	f.vcs.EXPECT().IsWorkingTreeClean(mock.Anything, root).Return(true, nil)
	f.vcs.EXPECT().IsBranchPushed(mock.Anything, root, "main").Return(false, nil)
	f.prompter.EXPECT().Confirm("Delete alpha?", false).Return(true, nil)
	f.sessions.EXPECT().Delete("alpha").Return(nil)

	require.NoError(t, f.service.Run(context.Background(), RunParams{DeleteMode: true}))
	assert.NoDirExists(t, root)
}
