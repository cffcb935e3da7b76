package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobport_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testECKey(t *testing.T) (*ecdsa.PrivateKey, map[string]any) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	jwk := map[string]any{
		"kty": "EC",
		"crv": "P-256",
		"x":   base64.RawURLEncoding.EncodeToString(key.PublicKey.X.Bytes()),
		"y":   base64.RawURLEncoding.EncodeToString(key.PublicKey.Y.Bytes()),
	}
	return key, jwk
}

func signProof(t *testing.T, key *ecdsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func hexJWK(t *testing.T, jwk map[string]any) string {
	t.Helper()

	raw, err := json.Marshal(jwk)
	require.NoError(t, err)
	return hex.EncodeToString(raw)
}

func TestEqualityVerifier(t *testing.T) {
	v := &EqualityVerifier{}
	_, jwk := testECKey(t)

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrProofRequired)
	})

	t.Run("bad hex is 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderClientJWK, "zz-not-hex")
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrMalformedClientKey)
	})

	t.Run("bad json is 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderClientJWK, hex.EncodeToString([]byte("not json")))
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrMalformedClientKey)
	})

	t.Run("key mismatch", func(t *testing.T) {
		_, otherJWK := testECKey(t)
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderClientJWK, hexJWK(t, otherJWK))
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrKeyBindingFailed)
	})

	t.Run("matching key", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderClientJWK, hexJWK(t, jwk))
		assert.NoError(t, v.Verify(r, jwk))
	})
}

func TestDPoPVerifier(t *testing.T) {
	v := &DPoPVerifier{MaxSkew: 300 * time.Second}
	key, jwk := testECKey(t)

	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"htm": "GET",
			"htu": "https://api.example.com/get_me",
			"jti": "proof-1",
			"iat": time.Now().UTC().Unix(),
		}
	}

	t.Run("missing proof", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrProofRequired)
	})

	t.Run("valid proof in header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, validClaims()))
		assert.NoError(t, v.Verify(r, jwk))
	})

	t.Run("proof in query is ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me?dpop="+signProof(t, key, validClaims()), nil)
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrProofRequired)
	})

	t.Run("htm is case-insensitive", func(t *testing.T) {
		claims := validClaims()
		claims["htm"] = "get"
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, claims))
		assert.NoError(t, v.Verify(r, jwk))
	})

	t.Run("wrong method", func(t *testing.T) {
		claims := validClaims()
		claims["htm"] = "POST"
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, claims))
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrKeyBindingFailed)
	})

	t.Run("htu path mismatch", func(t *testing.T) {
		claims := validClaims()
		claims["htu"] = "https://api.example.com/other"
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, claims))
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrKeyBindingFailed)
	})

	t.Run("bare path htu accepted", func(t *testing.T) {
		claims := validClaims()
		claims["htu"] = "/get_me"
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, claims))
		assert.NoError(t, v.Verify(r, jwk))
	})

	t.Run("missing claims", func(t *testing.T) {
		for _, drop := range []string{"htm", "htu", "jti", "iat"} {
			claims := validClaims()
			delete(claims, drop)
			r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
			r.Header.Set(HeaderDPoP, signProof(t, key, claims))
			assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrKeyBindingFailed, "dropped claim %q", drop)
		}
	})

	t.Run("stale iat", func(t *testing.T) {
		claims := validClaims()
		claims["iat"] = time.Now().UTC().Add(-10 * time.Minute).Unix()
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, claims))
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrKeyBindingFailed)
	})

	t.Run("future iat within skew", func(t *testing.T) {
		claims := validClaims()
		claims["iat"] = time.Now().UTC().Add(2 * time.Minute).Unix()
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, claims))
		assert.NoError(t, v.Verify(r, jwk))
	})

	t.Run("signed with wrong key", func(t *testing.T) {
		otherKey, _ := testECKey(t)
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, otherKey, validClaims()))
		assert.ErrorIs(t, v.Verify(r, jwk), apperrors.ErrKeyBindingFailed)
	})

	t.Run("garbage jwk", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/get_me", nil)
		r.Header.Set(HeaderDPoP, signProof(t, key, validClaims()))
		assert.ErrorIs(t, v.Verify(r, map[string]any{"kty": "EC"}), apperrors.ErrKeyBindingFailed)
	})
}

func TestNewKeyBindingVerifier(t *testing.T) {
	v, err := NewKeyBindingVerifier("equality")
	require.NoError(t, err)
	assert.IsType(t, &EqualityVerifier{}, v)

	v, err = NewKeyBindingVerifier("dpop")
	require.NoError(t, err)
	assert.IsType(t, &DPoPVerifier{}, v)

	_, err = NewKeyBindingVerifier("mtls")
	assert.Error(t, err)
}
