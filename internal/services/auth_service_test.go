package services

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo - репозиторий в памяти, db игнорируется
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if _, exists := f.users[user.Username]; exists {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = "id-" + user.Username
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ *gorm.DB, id string) error {
	for username, u := range f.users {
		if u.ID == id {
			delete(f.users, username)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(_ *gorm.DB, _, _ int) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindWithFilter(_ *gorm.DB, _ repositories.UserFilter) ([]models.User, error) {
	return f.FindAll(nil, 0, 0)
}

func newTestAuthService(t *testing.T, repo repositories.UserRepository) (AuthService, *auth.TokenCodec) {
	t.Helper()

	codec := auth.NewTokenCodec("test-secret")
	binding, err := auth.NewKeyBindingVerifier("equality")
	require.NoError(t, err)
	return NewAuthService(repo, codec, binding, 15*time.Minute, 7*24*time.Hour), codec
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, role models.UserRole, status models.AccountStatus) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		FullName:      "Test User",
		Username:      username,
		Email:         username + "@test.com",
		PasswordHash:  hash,
		Role:          role,
		AccountStatus: status,
	}
	require.NoError(t, repo.Create(nil, user))
	return user
}

func TestAuthService_SignUp(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)

	user, err := svc.SignUp(nil, &dto.SignUpRequest{
		FullName: "New Seeker",
		Username: "seeker",
		Email:    "seeker@test.com",
		Password: "super_password",
		Role:     models.UserRoleJobSeeker,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleJobSeeker, user.Role)
	// Пароль хранится только хешем
	assert.NotEqual(t, "super_password", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("super_password", user.PasswordHash))
}

func TestAuthService_SignUp_AdminForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)

	for _, role := range []models.UserRole{models.UserRoleAdmin, models.UserRoleFullAdmin} {
		_, err := svc.SignUp(nil, &dto.SignUpRequest{
			FullName: "Wannabe Admin",
			Username: "admin-" + string(role),
			Email:    string(role) + "@test.com",
			Password: "super_password",
			Role:     role,
		})
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
	}
}

func TestAuthService_SignUp_WeakPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.SignUp(nil, &dto.SignUpRequest{
		FullName: "Short Pass",
		Username: "shorty",
		Email:    "shorty@test.com",
		Password: "1234567",
		Role:     models.UserRoleEmployer,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_SignUp_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	seedUser(t, repo, "taken", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	_, err := svc.SignUp(nil, &dto.SignUpRequest{
		FullName: "Second",
		Username: "taken",
		Email:    "other@test.com",
		Password: "super_password",
		Role:     models.UserRoleJobSeeker,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc, codec := newTestAuthService(t, repo)
	user := seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	resp, err := svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "super_password"}, nil)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(15*60), resp.AccessExpiresIn)

	accessClaims, err := codec.Decode(resp.AccessToken, true)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeAccess, accessClaims[auth.ClaimTokenType])
	assert.Equal(t, user.ID, accessClaims[auth.ClaimSubject])
	assert.Equal(t, "job_seeker", accessClaims[auth.ClaimRole])
	assert.NotEmpty(t, accessClaims[auth.ClaimJTI])
	assert.NotContains(t, accessClaims, auth.ClaimConfirmation)

	refreshClaims, err := codec.Decode(resp.RefreshToken, true)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeRefresh, refreshClaims[auth.ClaimTokenType])
	// У каждого токена свой jti
	assert.NotEqual(t, accessClaims[auth.ClaimJTI], refreshClaims[auth.ClaimJTI])
}

func TestAuthService_Login_OpaqueFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	// Неизвестный логин и неверный пароль дают один и тот же ответ
	_, err := svc.Login(nil, &dto.LoginRequest{Username: "ghost", Password: "super_password"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "wrong_password"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Suspended(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	seedUser(t, repo, "banned", "super_password", models.UserRoleEmployer, models.AccountStatusSuspended)

	_, err := svc.Login(nil, &dto.LoginRequest{Username: "banned", Password: "super_password"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrUserSuspended)
}

func TestAuthService_Login_WithClientKey(t *testing.T) {
	repo := newFakeUserRepo()
	svc, codec := newTestAuthService(t, repo)
	seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	jwk := map[string]any{"kty": "EC", "crv": "P-256", "x": "eA", "y": "eQ"}
	resp, err := svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "super_password"}, jwk)
	require.NoError(t, err)

	for _, tokenStr := range []string{resp.AccessToken, resp.RefreshToken} {
		claims, err := codec.Decode(tokenStr, true)
		require.NoError(t, err)
		boundJWK, present := auth.ConfirmationKey(claims)
		assert.True(t, present)
		assert.Equal(t, jwk, boundJWK)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newFakeUserRepo()
	svc, codec := newTestAuthService(t, repo)
	seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	login, err := svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "super_password"}, nil)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	resp, err := svc.Refresh(nil, login.RefreshToken, r)
	require.NoError(t, err)

	claims, err := codec.Decode(resp.AccessToken, true)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeAccess, claims[auth.ClaimTokenType])
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	login, err := svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "super_password"}, nil)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	_, err = svc.Refresh(nil, login.AccessToken, r)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)

	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	_, err := svc.Refresh(nil, "garbage", r)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_Refresh_BoundToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc, codec := newTestAuthService(t, repo)
	seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	jwk := map[string]any{"kty": "EC", "crv": "P-256", "x": "eA", "y": "eQ"}
	login, err := svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "super_password"}, jwk)
	require.NoError(t, err)

	// Без доказательства владения ключом - отказ
	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	_, err = svc.Refresh(nil, login.RefreshToken, r)
	assert.ErrorIs(t, err, apperrors.ErrProofRequired)

	// С тем же ключом в заголовке пара обновляется, привязка переносится
	raw, err := json.Marshal(jwk)
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	r.Header.Set(auth.HeaderClientJWK, hex.EncodeToString(raw))

	resp, err := svc.Refresh(nil, login.RefreshToken, r)
	require.NoError(t, err)

	claims, err := codec.Decode(resp.RefreshToken, true)
	require.NoError(t, err)
	boundJWK, present := auth.ConfirmationKey(claims)
	assert.True(t, present)
	assert.Equal(t, jwk, boundJWK)
}

func TestAuthService_Refresh_SuspendedAfterIssue(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	user := seedUser(t, repo, "seeker", "super_password", models.UserRoleJobSeeker, models.AccountStatusActive)

	login, err := svc.Login(nil, &dto.LoginRequest{Username: "seeker", Password: "super_password"}, nil)
	require.NoError(t, err)

	user.AccountStatus = models.AccountStatusSuspended
	require.NoError(t, repo.Update(nil, user))

	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	_, err = svc.Refresh(nil, login.RefreshToken, r)
	assert.ErrorIs(t, err, apperrors.ErrUserSuspended)
}
