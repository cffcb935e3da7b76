package auth

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"jobport_backend/internal/config"
	"jobport_backend/internal/logger"
	"jobport_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Заголовки привязки токена к клиентскому ключу
const (
	HeaderClientJWK = "X-Client-JWK"
	HeaderDPoP      = "DPoP"

	// Допустимое расхождение iat в DPoP proof
	proofMaxSkew = 300 * time.Second
)

// KeyBindingVerifier проверяет, что запрос вправе использовать токен,
// привязанный к клиентскому ключу (claim cnf.jwk). Режим выбирается
// один раз при старте, см. config.BindingMode*.
type KeyBindingVerifier interface {
	Verify(r *http.Request, boundKey map[string]any) error
}

func NewKeyBindingVerifier(mode string) (KeyBindingVerifier, error) {
	switch mode {
	case config.BindingModeEquality:
		return &EqualityVerifier{}, nil
	case config.BindingModeDPoP:
		return &DPoPVerifier{MaxSkew: proofMaxSkew}, nil
	default:
		return nil, fmt.Errorf("unknown key binding mode %q", mode)
	}
}

// EqualityVerifier - режим простого равенства: клиент повторяет свой
// публичный ключ в заголовке X-Client-JWK (hex-кодированный JSON), и он
// сравнивается со связанным ключом из токена.
//
// Это НЕ криптографическое доказательство владения ключом: проверяется
// только то, что клиент прислал тот же публичный ключ. Для настоящего
// proof-of-possession используйте режим DPoP.
type EqualityVerifier struct{}

func (v *EqualityVerifier) Verify(r *http.Request, boundKey map[string]any) error {
	header := r.Header.Get(HeaderClientJWK)
	if header == "" {
		return apperrors.ErrProofRequired
	}

	// Кривой hex/JSON в заголовке - это ошибка формата запроса (400),
	// а не провал аутентификации (401). Асимметрия намеренная.
	decoded, err := hex.DecodeString(header)
	if err != nil {
		return apperrors.ErrMalformedClientKey
	}
	var presented map[string]any
	if err := json.Unmarshal(decoded, &presented); err != nil {
		return apperrors.ErrMalformedClientKey
	}

	if !reflect.DeepEqual(presented, boundKey) {
		return apperrors.ErrKeyBindingFailed
	}
	return nil
}

// DPoPVerifier - режим подписанного доказательства: заголовок DPoP несет
// компактный JWT, подписанный приватной частью связанного ключа.
type DPoPVerifier struct {
	MaxSkew time.Duration
}

func (v *DPoPVerifier) Verify(r *http.Request, boundKey map[string]any) error {
	// Proof принимается только из заголовка: query-параметры попадают
	// в access-логи.
	proof := r.Header.Get(HeaderDPoP)
	if proof == "" {
		return apperrors.ErrProofRequired
	}

	key, err := ParseJWK(boundKey)
	if err != nil {
		return apperrors.ErrKeyBindingFailed
	}

	// Подпись проверяется ключом из cnf.jwk; claims валидируем сами ниже.
	parsed, err := jwt.Parse(proof, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return apperrors.ErrKeyBindingFailed
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return apperrors.ErrKeyBindingFailed
	}

	htm, _ := claims["htm"].(string)
	htu, _ := claims["htu"].(string)
	jti, _ := claims["jti"].(string)
	iat, iatOK := numericClaim(claims["iat"])
	if htm == "" || htu == "" || jti == "" || !iatOK {
		return apperrors.ErrKeyBindingFailed
	}

	if !strings.EqualFold(htm, r.Method) {
		return apperrors.ErrKeyBindingFailed
	}

	// htu сверяется по суффиксу пути: клиенты шлют то абсолютный URI,
	// то один путь.
	if !strings.HasSuffix(htu, r.URL.Path) {
		return apperrors.ErrKeyBindingFailed
	}

	now := time.Now().UTC().Unix()
	skew := now - iat
	if skew < 0 {
		skew = -skew
	}
	if time.Duration(skew)*time.Second > v.MaxSkew {
		return apperrors.ErrKeyBindingFailed
	}

	// Система stateless: jti не проверяется по хранилищу повторов,
	// только логируется для офлайн-анализа аномалий.
	logger.Debug("dpop proof accepted", "jti", jti, "htm", htm, "path", r.URL.Path)
	return nil
}

func numericClaim(val any) (int64, bool) {
	switch n := val.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		parsed, err := n.Int64()
		return parsed, err == nil
	default:
		return 0, false
	}
}
