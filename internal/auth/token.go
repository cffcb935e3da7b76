package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Имена claims в подписанном токене
const (
	ClaimSubject      = "sub"
	ClaimRole         = "role"
	ClaimTokenType    = "token_type"
	ClaimJTI          = "jti"
	ClaimConfirmation = "cnf"
	ClaimJWK          = "jwk"

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Ошибки декодирования. Наверх хендлеры транслируют их все
// в непрозрачный 401; различим для клиента только ErrTokenExpired.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrBadSignature   = errors.New("token signature invalid")
	ErrUnsupportedAlg = errors.New("token signing algorithm unsupported")
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenCodec кодирует и декодирует подписанные claim-наборы с ограниченным
// временем жизни. Секрет один на процесс и задается при старте.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode подписывает копию claims алгоритмом HS512, добавив exp
// (unix-секунды). Карта вызывающего не мутируется.
func (c *TokenCodec) Encode(claims map[string]any, ttl time.Duration) (string, error) {
	toEncode := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		toEncode[k] = v
	}
	toEncode["exp"] = time.Now().UTC().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, toEncode)
	return token.SignedString(c.secret)
}

// Decode проверяет подпись всегда, exp - только при verifyExpiry.
// verifyExpiry=false нужен только диагностическим сценариям,
// на боевом пути exp проверяется при каждом декодировании.
func (c *TokenCodec) Decode(tokenStr string, verifyExpiry bool) (map[string]any, error) {
	var opts []jwt.ParserOption
	if !verifyExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, ErrUnsupportedAlg
		}
		return c.secret, nil
	}, opts...)
	if err != nil {
		return nil, classifyDecodeError(err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}
	return map[string]any(claims), nil
}

func classifyDecodeError(err error) error {
	switch {
	case errors.Is(err, ErrUnsupportedAlg):
		return ErrUnsupportedAlg
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	default:
		return ErrTokenMalformed
	}
}
