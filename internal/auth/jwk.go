package auth

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
)

// ParseJWK собирает публичный ключ из JWK-карты (поля как в RFC 7517).
// Поддерживаются EC (P-256/P-384/P-521), RSA и OKP/Ed25519 - то,
// чем клиенты реально подписывают DPoP proof.
func ParseJWK(raw map[string]any) (any, error) {
	kty, _ := raw["kty"].(string)

	switch kty {
	case "EC":
		return parseECKey(raw)
	case "RSA":
		return parseRSAKey(raw)
	case "OKP":
		return parseOKPKey(raw)
	case "":
		return nil, errors.New("jwk: missing kty")
	default:
		return nil, fmt.Errorf("jwk: unsupported key type %q", kty)
	}
}

func parseECKey(raw map[string]any) (*ecdsa.PublicKey, error) {
	var curve elliptic.Curve
	crv, _ := raw["crv"].(string)
	switch crv {
	case "P-256":
		curve = elliptic.P256()
	case "P-384":
		curve = elliptic.P384()
	case "P-521":
		curve = elliptic.P521()
	default:
		return nil, fmt.Errorf("jwk: unsupported EC curve %q", crv)
	}

	x, err := b64Field(raw, "x")
	if err != nil {
		return nil, err
	}
	y, err := b64Field(raw, "y")
	if err != nil {
		return nil, err
	}

	return &ecdsa.PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}, nil
}

func parseRSAKey(raw map[string]any) (*rsa.PublicKey, error) {
	n, err := b64Field(raw, "n")
	if err != nil {
		return nil, err
	}
	e, err := b64Field(raw, "e")
	if err != nil {
		return nil, err
	}

	exponent := new(big.Int).SetBytes(e)
	if !exponent.IsInt64() || exponent.Int64() <= 0 {
		return nil, errors.New("jwk: invalid RSA exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(exponent.Int64()),
	}, nil
}

func parseOKPKey(raw map[string]any) (ed25519.PublicKey, error) {
	crv, _ := raw["crv"].(string)
	if crv != "Ed25519" {
		return nil, fmt.Errorf("jwk: unsupported OKP curve %q", crv)
	}

	x, err := b64Field(raw, "x")
	if err != nil {
		return nil, err
	}
	if len(x) != ed25519.PublicKeySize {
		return nil, errors.New("jwk: invalid Ed25519 key size")
	}
	return ed25519.PublicKey(x), nil
}

func b64Field(raw map[string]any, name string) ([]byte, error) {
	val, _ := raw[name].(string)
	if val == "" {
		return nil, fmt.Errorf("jwk: missing field %q", name)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("jwk: field %q is not base64url: %w", name, err)
	}
	return decoded, nil
}
