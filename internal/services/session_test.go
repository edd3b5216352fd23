package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workflows/internal/adapters/tmuxinator"
	"workflows/internal/config"
	"workflows/internal/domain"
	portsmocks "workflows/internal/ports/mocks"
)

func TestBuildConfig_UsesDefaults(t *testing.T) {
	service := NewSessionService(portsmocks.NewMockSessionManager(t), "/home/me/Projects", config.TmuxinatorConfig{})

	cfg := service.BuildConfig(domain.NewLocalRepo("alpha"))

	assert.Equal(t, domain.SessionConfig{
		Name:       "alpha",
		OnOpen:     "nvim .",
		Root:       filepath.Join("/home/me/Projects", "alpha"),
		WindowName: "editor",
	}, cfg)
}

func TestOpen_WritesConfigWhenMissing(t *testing.T) {
	dir := t.TempDir()
	repo := domain.NewLocalRepo("alpha")

	sessions := portsmocks.NewMockSessionManager(t)
	sessions.EXPECT().Exists("alpha").Return(false, nil)
	sessions.EXPECT().Write(domain.SessionConfig{
		Name:       "alpha",
		OnOpen:     "nvim .",
		Root:       filepath.Join(dir, "alpha"),
		WindowName: "editor",
	}).Return("/cfg/alpha.yml", nil)
	sessions.EXPECT().Start(mock.Anything, "alpha").Return(nil)

	service := NewSessionService(sessions, dir, config.TmuxinatorConfig{})

	require.NoError(t, service.Open(context.Background(), repo))
}

func TestOpen_ReusesExistingConfig(t *testing.T) {
	sessions := portsmocks.NewMockSessionManager(t)
	sessions.EXPECT().Exists("alpha").Return(true, nil)
	sessions.EXPECT().Path("alpha").Return("/cfg/alpha.yml")
	sessions.EXPECT().Start(mock.Anything, "alpha").Return(nil)

	service := NewSessionService(sessions, t.TempDir(), config.TmuxinatorConfig{})

	require.NoError(t, service.Open(context.Background(), domain.NewLocalRepo("alpha")))
	sessions.AssertNotCalled(t, "Write", mock.Anything)
}

func TestOpen_FreshConfigAlwaysRegenerates(t *testing.T) {
	fresh := true
	sessions := portsmocks.NewMockSessionManager(t)
	sessions.EXPECT().Write(mock.Anything).Return("/cfg/alpha.yml", nil)
	sessions.EXPECT().Start(mock.Anything, "alpha").Return(nil)

	service := NewSessionService(sessions, t.TempDir(), config.TmuxinatorConfig{FreshConfig: &fresh})

	require.NoError(t, service.Open(context.Background(), domain.NewLocalRepo("alpha")))
	sessions.AssertNotCalled(t, "Exists", mock.Anything)
}

func TestOpen_WriteFailureSkipsStart(t *testing.T) {
	writeErr := errors.New("permission denied")
	sessions := portsmocks.NewMockSessionManager(t)
	sessions.EXPECT().Exists("alpha").Return(false, nil)
	sessions.EXPECT().Write(mock.Anything).Return("", writeErr)

	service := NewSessionService(sessions, t.TempDir(), config.TmuxinatorConfig{})

	err := service.Open(context.Background(), domain.NewLocalRepo("alpha"))

	assert.ErrorIs(t, err, writeErr)
	sessions.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestEnsureConfig_FreshConfigOverwritesCustomizedFile(t *testing.T) {
	projectsDir := t.TempDir()
	store := tmuxinator.NewConfigStore(t.TempDir())
	fresh := true
	onOpen := "make dev"

	sessions := &storeOnlySessions{ConfigStore: store}
	repo := domain.NewLocalRepo("alpha")

	// First run with defaults, second with fresh_config and a new command
	_, err := NewSessionService(sessions, projectsDir, config.TmuxinatorConfig{}).EnsureConfig(repo)
	require.NoError(t, err)

	written, err := NewSessionService(sessions, projectsDir, config.TmuxinatorConfig{
		FreshConfig: &fresh,
		OnOpen:      &onOpen,
	}).EnsureConfig(repo)
	require.NoError(t, err)
	assert.True(t, written)

	project, err := store.Load("alpha")
	require.NoError(t, err)
	require.Len(t, project.Windows, 1)
	assert.Equal(t, "make dev", project.Windows[0]["editor"])
}

func TestEnsureConfig_KeepsExistingFileWithoutFreshConfig(t *testing.T) {
	projectsDir := t.TempDir()
	store := tmuxinator.NewConfigStore(t.TempDir())
	onOpen := "make dev"

	sessions := &storeOnlySessions{ConfigStore: store}
	repo := domain.NewLocalRepo("alpha")

	_, err := NewSessionService(sessions, projectsDir, config.TmuxinatorConfig{}).EnsureConfig(repo)
	require.NoError(t, err)

	written, err := NewSessionService(sessions, projectsDir, config.TmuxinatorConfig{OnOpen: &onOpen}).EnsureConfig(repo)
	require.NoError(t, err)
	assert.False(t, written)

	project, err := store.Load("alpha")
	require.NoError(t, err)
	assert.Equal(t, "nvim .", project.Windows[0]["editor"])
}

// storeOnlySessions pairs a real config store with a launcher that must not run
type storeOnlySessions struct {
	*tmuxinator.ConfigStore
}

func (s *storeOnlySessions) Start(ctx context.Context, name string) error {
	return errors.New("unexpected session start")
}
