package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	claims := map[string]any{
		ClaimSubject:   "user-1",
		ClaimRole:      "job_seeker",
		ClaimTokenType: TokenTypeAccess,
	}

	tokenStr, err := codec.Encode(claims, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	decoded, err := codec.Decode(tokenStr, true)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded[ClaimSubject])
	assert.Equal(t, "job_seeker", decoded[ClaimRole])
	assert.Equal(t, TokenTypeAccess, decoded[ClaimTokenType])

	// exp добавлен кодеком, исходная карта не мутирована
	assert.Contains(t, decoded, "exp")
	assert.NotContains(t, claims, "exp")
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	tokenStr, err := codec.Encode(map[string]any{ClaimSubject: "user-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(tokenStr, true)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// С отключенной проверкой exp тот же токен читается
	decoded, err := codec.Decode(tokenStr, false)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded[ClaimSubject])
}

func TestTokenCodec_BadSignature(t *testing.T) {
	codec := NewTokenCodec("test-secret")
	other := NewTokenCodec("other-secret")

	tokenStr, err := codec.Encode(map[string]any{ClaimSubject: "user-1"}, time.Minute)
	require.NoError(t, err)

	_, err = other.Decode(tokenStr, true)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenCodec_UnsupportedAlg(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	// Токен подписан HS256 тем же секретом - отклоняется по алгоритму
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ClaimSubject: "user-1"})
	tokenStr, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Decode(tokenStr, true)
	assert.ErrorIs(t, err, ErrUnsupportedAlg)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	_, err := codec.Decode("not-a-token", true)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = codec.Decode("", true)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
