package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evickastudio/hugauth/internal/config"
	"github.com/evickastudio/hugauth/internal/logger"
	"github.com/evickastudio/hugauth/internal/login"
	"github.com/evickastudio/hugauth/internal/mock"
	"github.com/evickastudio/hugauth/internal/store"
	"github.com/evickastudio/hugauth/models"
)

// newTestManager builds a Manager over mocked collaborators. The login-client
// factory is replaced so no network is involved; the credentials passed to
// the factory are captured for assertions.
func newTestManager(t *testing.T, ctrl *gomock.Controller) (*Manager, *mock.MockStore, *mock.MockSessionClient, *models.Credentials) {
	t.Helper()

	mockStore := mock.NewMockStore(ctrl)
	mockClient := mock.NewMockSessionClient(ctrl)

	captured := &models.Credentials{}

	m := NewManager(mockStore, config.Login{UserAgent: "test-agent"}, logger.Nop())
	m.newLoginClient = func(credentials models.Credentials) login.SessionClient {
		*captured = credentials
		return mockClient
	}

	return m, mockStore, mockClient, captured
}

// ── SetUpAuthentication ──────────────────────────────────────────────────────

func TestManager_SetUpAuthentication_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockClient, captured := newTestManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockClient.EXPECT().SignIn(ctx).Return(nil),
		mockClient.EXPECT().Cookies().Return(map[string]string{
			"token":         "abc123",
			"session-trace": "ignored",
		}),
		mockStore.EXPECT().SetCredentials("a@x.com", "pw").Return(nil),
		mockStore.EXPECT().SetToken("abc123", "").Return(nil),
	)

	ok := m.SetUpAuthentication(ctx, "a@x.com", "pw")
	require.True(t, ok)

	assert.Equal(t, "a@x.com", captured.Email, "login client must receive the given credentials")
	assert.Equal(t, "pw", captured.Password)
}

func TestManager_SetUpAuthentication_LoginFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockClient, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().SignIn(ctx).Return(&login.Error{StatusCode: 401})

	// No store expectations: a failed login must write nothing.
	ok := m.SetUpAuthentication(ctx, "a@x.com", "pw")
	assert.False(t, ok)
}

func TestManager_SetUpAuthentication_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockClient, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().SignIn(ctx).Return(errors.New("connection refused"))

	ok := m.SetUpAuthentication(ctx, "a@x.com", "pw")
	assert.False(t, ok)
}

func TestManager_SetUpAuthentication_NoTokenCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockClient, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockClient.EXPECT().SignIn(ctx).Return(nil),
		mockClient.EXPECT().Cookies().Return(map[string]string{"session-trace": "xyz"}),
		mockStore.EXPECT().SetCredentials("a@x.com", "pw").Return(nil),
	)

	// A response without a token cookie is not a failure: the credentials are
	// persisted and no token is written.
	ok := m.SetUpAuthentication(ctx, "a@x.com", "pw")
	assert.True(t, ok)
}

func TestManager_SetUpAuthentication_PersistCredentialsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockClient, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockClient.EXPECT().SignIn(ctx).Return(nil),
		mockClient.EXPECT().Cookies().Return(map[string]string{"token": "abc123"}),
		mockStore.EXPECT().SetCredentials("a@x.com", "pw").Return(errors.New("disk full")),
	)

	ok := m.SetUpAuthentication(ctx, "a@x.com", "pw")
	assert.False(t, ok, "persistence failure converts to a false return, not a panic or error")
}

func TestManager_SetUpAuthentication_PersistTokenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockClient, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockClient.EXPECT().SignIn(ctx).Return(nil),
		mockClient.EXPECT().Cookies().Return(map[string]string{"token": "abc123"}),
		mockStore.EXPECT().SetCredentials("a@x.com", "pw").Return(nil),
		mockStore.EXPECT().SetToken("abc123", "").Return(errors.New("disk full")),
	)

	ok := m.SetUpAuthentication(ctx, "a@x.com", "pw")
	assert.False(t, ok)
}

// ── TearDownAuthentication ───────────────────────────────────────────────────

func TestManager_TearDownAuthentication_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().DeleteSection(store.SectionToken).Return(nil).Times(2)

	m.TearDownAuthentication()
	m.TearDownAuthentication()
}

func TestManager_TearDownAuthentication_DeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().DeleteSection(store.SectionToken).Return(errors.New("disk full"))

	// Logged, never propagated.
	m.TearDownAuthentication()
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestManager_Authenticate_NoStoredCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().Credentials().Return(models.Credentials{})

	assert.Nil(t, m.Authenticate(), "missing auth data is an absent result, not an error")
}

func TestManager_Authenticate_MissingPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().Credentials().Return(models.Credentials{Email: "a@x.com"})

	assert.Nil(t, m.Authenticate())
}

func TestManager_Authenticate_WithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().Credentials().Return(models.Credentials{Email: "a@x.com", Password: "pw"})
	mockStore.EXPECT().Token().Return(models.SessionToken{Token: "abc123"})

	clientConfig := m.Authenticate()
	require.NotNil(t, clientConfig)

	assert.Equal(t, "a@x.com", clientConfig.Email)
	assert.Equal(t, "pw", clientConfig.Password)
	assert.Equal(t, "test-agent", clientConfig.UserAgent)
	assert.Equal(t, "abc123", clientConfig.Token)
}

func TestManager_Authenticate_CredentialsWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().Credentials().Return(models.Credentials{Email: "a@x.com", Password: "pw"})
	mockStore.EXPECT().Token().Return(models.SessionToken{})

	// Distinguished from the absent case: basic-auth is populated and the
	// token cookie is simply empty.
	clientConfig := m.Authenticate()
	require.NotNil(t, clientConfig)
	assert.Empty(t, clientConfig.Token)
}

func TestManager_Authenticate_ExpiredTokenStillUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _, _ := newTestManager(t, ctrl)

	mockStore.EXPECT().Credentials().Return(models.Credentials{Email: "a@x.com", Password: "pw"})
	mockStore.EXPECT().Token().Return(models.SessionToken{Token: "stale", ExpireDate: "2000-01-01"})

	// The expire date is deliberately not checked before reuse: any non-empty
	// token is treated as a live session.
	clientConfig := m.Authenticate()
	require.NotNil(t, clientConfig)
	assert.Equal(t, "stale", clientConfig.Token)
}
