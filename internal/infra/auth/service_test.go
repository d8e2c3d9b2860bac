package auth

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	return NewService(store, 0)
}

func TestLoginSuccessMintsTokenAndPersists(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, "pedro@mini-crm.dev", "123456")

	require.NoError(t, err)
	assert.Equal(t, entity.SessionAuthenticated, session.Status)
	assert.True(t, strings.HasPrefix(session.Token, "mock-token-"))
	require.NotNil(t, session.User)
	assert.Equal(t, "Pedro SDR", session.User.Name)

	loaded := service.LoadSession(ctx)
	assert.Equal(t, session.Token, loaded.Token)
	assert.True(t, loaded.Authenticated())
}

func TestLoginNormalizesEmail(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), "  PEDRO@mini-crm.DEV  ", "123456")

	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentialsWithSingleMessage(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, wrongPassword := service.Login(ctx, "pedro@mini-crm.dev", "errada")
	_, unknownUser := service.Login(ctx, "outro@mini-crm.dev", "123456")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	// Usuário desconhecido e senha errada dão a mesma mensagem.
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "pedro@mini-crm.dev", "123456")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx))

	loaded := service.LoadSession(ctx)
	assert.Equal(t, entity.SessionUnauthenticated, loaded.Status)
	assert.False(t, loaded.Authenticated())
}

func TestLoadSessionFailsSoftWithoutPersistedState(t *testing.T) {
	service := newTestService(t)

	loaded := service.LoadSession(context.Background())

	assert.Equal(t, entity.SessionUnauthenticated, loaded.Status)
	assert.Nil(t, loaded.User)
	assert.Empty(t, loaded.Token)
}
