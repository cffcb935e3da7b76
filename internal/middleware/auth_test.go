package middleware

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, codec *auth.TokenCodec) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	binding, err := auth.NewKeyBindingVerifier("equality")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", CurrentUser(codec, binding), func(c *gin.Context) {
		principal, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": principal.ID, "role": principal.Role})
	})
	r.GET("/admin-only", CurrentUser(codec, binding),
		RequireRoles(models.UserRoleFullAdmin, models.UserRoleAdmin),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	r.GET("/any-authed", CurrentUser(codec, binding), RequireRoles(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func mintAccess(t *testing.T, codec *auth.TokenCodec, extra map[string]any) string {
	t.Helper()

	claims := map[string]any{
		auth.ClaimSubject:   "user-1",
		auth.ClaimRole:      "job_seeker",
		auth.ClaimTokenType: auth.TokenTypeAccess,
	}
	for k, v := range extra {
		claims[k] = v
	}
	tokenStr, err := codec.Encode(claims, time.Minute)
	require.NoError(t, err)
	return tokenStr
}

func doRequest(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCurrentUser_NoHeader(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	w := doRequest(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser_GarbageToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	w := doRequest(r, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	tokenStr, err := codec.Encode(map[string]any{
		auth.ClaimSubject:   "user-1",
		auth.ClaimRole:      "job_seeker",
		auth.ClaimTokenType: auth.TokenTypeAccess,
	}, -time.Minute)
	require.NoError(t, err)

	w := doRequest(r, map[string]string{"Authorization": "Bearer " + tokenStr})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestCurrentUser_RefreshTokenRejected(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	tokenStr := mintAccess(t, codec, map[string]any{auth.ClaimTokenType: auth.TokenTypeRefresh})
	w := doRequest(r, map[string]string{"Authorization": "Bearer " + tokenStr})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser_IncompleteClaims(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	tokenStr, err := codec.Encode(map[string]any{
		auth.ClaimSubject:   "user-1",
		auth.ClaimTokenType: auth.TokenTypeAccess,
	}, time.Minute)
	require.NoError(t, err)

	// Подпись верна, но роли нет - это 403, а не 401
	w := doRequest(r, map[string]string{"Authorization": "Bearer " + tokenStr})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCurrentUser_Success(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	w := doRequest(r, map[string]string{"Authorization": "Bearer " + mintAccess(t, codec, nil)})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestCurrentUser_BoundTokenRequiresKey(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	jwk := map[string]any{"kty": "EC", "crv": "P-256", "x": "eA", "y": "eQ"}
	tokenStr := mintAccess(t, codec, map[string]any{
		auth.ClaimConfirmation: map[string]any{auth.ClaimJWK: jwk},
	})

	// Без заголовка с ключом - отказ
	w := doRequest(r, map[string]string{"Authorization": "Bearer " + tokenStr})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С тем же ключом - доступ
	raw, err := json.Marshal(jwk)
	require.NoError(t, err)
	w = doRequest(r, map[string]string{
		"Authorization":      "Bearer " + tokenStr,
		auth.HeaderClientJWK: hex.EncodeToString(raw),
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret")
	r := setupAuthRouter(t, codec)

	seekerToken := mintAccess(t, codec, nil)
	adminToken := mintAccess(t, codec, map[string]any{auth.ClaimRole: "admin"})

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+seekerToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Пустой список ролей пропускает любого аутентифицированного
	req = httptest.NewRequest(http.MethodGet, "/any-authed", nil)
	req.Header.Set("Authorization", "Bearer "+seekerToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
