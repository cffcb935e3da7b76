package auth

import (
	"jobport_backend/internal/models"
	"jobport_backend/pkg/apperrors"
)

// Principal - аутентифицированная личность на время одного запроса.
// Строится заново на каждый запрос, никогда не кэшируется.
type Principal struct {
	ID   string
	Role models.UserRole
	// Extra - остальные claims токена без дублей id/role
	Extra map[string]any
}

// PrincipalFromClaims собирает принципала из декодированных claims.
// Отсутствие subject или роли - это 403 "неполные claims", а не 401:
// токен подлинный, но непригодный.
func PrincipalFromClaims(claims map[string]any) (*Principal, error) {
	sub, _ := claims[ClaimSubject].(string)
	if sub == "" {
		// исторически часть клиентов клала идентификатор в "id"
		sub, _ = claims["id"].(string)
	}
	role, _ := claims[ClaimRole].(string)

	if sub == "" || role == "" {
		return nil, apperrors.ErrIncompleteClaims
	}

	extra := make(map[string]any)
	for k, v := range claims {
		switch k {
		case ClaimSubject, "id", ClaimRole:
			continue
		}
		extra[k] = v
	}

	return &Principal{
		ID:    sub,
		Role:  models.UserRole(role),
		Extra: extra,
	}, nil
}

// ConfirmationKey достает cnf.jwk из claims.
// present=true, а jwk=nil означает испорченный cnf.
func ConfirmationKey(claims map[string]any) (jwk map[string]any, present bool) {
	cnfRaw, exists := claims[ClaimConfirmation]
	if !exists {
		return nil, false
	}
	cnf, ok := cnfRaw.(map[string]any)
	if !ok {
		return nil, true
	}
	jwk, _ = cnf[ClaimJWK].(map[string]any)
	return jwk, true
}
