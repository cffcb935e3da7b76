package integration_test

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"
	"jobport_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	signUpBody := map[string]any{
		"full_name": "Новый Соискатель",
		"username":  "new_seeker",
		"email":     "new_seeker@test.com",
		"password":  "super_password123",
		"role":      "job_seeker",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/sign-up", "", signUpBody, nil)
	assert.Equal(t, http.StatusCreated, res.Code, "Ответ: "+bodyStr)
	// Хеш пароля наружу не отдается
	assert.NotContains(t, bodyStr, "password_hash")

	loginBody := map[string]any{
		"username": "new_seeker",
		"password": "super_password123",
	}
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/login", "", loginBody, nil)
	assert.Equal(t, http.StatusOK, res.Code, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "access_token")
	assert.Contains(t, bodyStr, "refresh_token")
	assert.Contains(t, bodyStr, `"token_type":"bearer"`)
}

func TestSignUp_AdminRoleForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	body := map[string]any{
		"full_name": "Wannabe Admin",
		"username":  "wannabe_admin",
		"email":     "wannabe@test.com",
		"password":  "super_password123",
		"role":      "admin",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/sign-up", "", body, nil)
	assert.Equal(t, http.StatusForbidden, res.Code, "Ответ: "+bodyStr)
}

func TestSignUp_Duplicate(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateUser(t, tx, &models.User{
		FullName: "First",
		Username: "dup_user",
		Email:    "dup@test.com",
		Role:     models.UserRoleJobSeeker,
	}, "password123")

	body := map[string]any{
		"full_name": "Second",
		"username":  "dup_user",
		"email":     "other@test.com",
		"password":  "super_password123",
		"role":      "employer",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/sign-up", "", body, nil)
	assert.Equal(t, http.StatusConflict, res.Code, "Ответ: "+bodyStr)
}

func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateUser(t, tx, &models.User{
		FullName: "User",
		Username: "login_user",
		Email:    "login_user@test.com",
		Role:     models.UserRoleJobSeeker,
	}, "correct-password")

	body := map[string]any{
		"username": "login_user",
		"password": "wrong-password",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/login", "", body, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, bodyStr, "INVALID_CREDENTIALS")
}

func TestGetMe(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginUser(t, ts, tx, models.UserRoleEmployer)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/get_me", token, nil, nil)
	assert.Equal(t, http.StatusOK, res.Code, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, user.Username)
	assert.Contains(t, bodyStr, user.Email)
	assert.NotContains(t, bodyStr, "password_hash")

	// Без токена - 401
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/get_me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestRefreshToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateUser(t, tx, &models.User{
		FullName: "Refresher",
		Username: "refresher",
		Email:    "refresher@test.com",
		Role:     models.UserRoleJobSeeker,
	}, "password123")

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/login", "", map[string]any{
		"username": "refresher",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	// Обновление по refresh-токену
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/refresh-token", "", nil, map[string]string{
		"Authorization-Refresh": "Bearer " + login.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.Code, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "access_token")

	// Access-токен в обмен не принимается
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/refresh-token", "", nil, map[string]string{
		"Authorization-Refresh": "Bearer " + login.AccessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

// TestBoundTokenFlow - вход с привязкой к клиентскому ключу (режим equality)
func TestBoundTokenFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateUser(t, tx, &models.User{
		FullName: "Bound User",
		Username: "bound_user",
		Email:    "bound@test.com",
		Role:     models.UserRoleJobSeeker,
	}, "password123")

	jwk := map[string]any{"kty": "EC", "crv": "P-256", "x": "eA", "y": "eQ"}
	raw, err := json.Marshal(jwk)
	require.NoError(t, err)
	jwkHeader := hex.EncodeToString(raw)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/login", "", map[string]any{
		"username": "bound_user",
		"password": "password123",
	}, map[string]string{auth.HeaderClientJWK: jwkHeader})
	require.Equal(t, http.StatusOK, res.Code, "Ответ: "+bodyStr)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	// Привязанный токен без ключа не работает
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/get_me", login.AccessToken, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	// Кривой hex в заголовке - 400, а не 401
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/get_me", login.AccessToken, nil, map[string]string{
		auth.HeaderClientJWK: "zz-not-hex",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	// С тем же ключом - доступ
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/get_me", login.AccessToken, nil, map[string]string{
		auth.HeaderClientJWK: jwkHeader,
	})
	assert.Equal(t, http.StatusOK, res.Code, "Ответ: "+bodyStr)
}
