package middleware

import (
	"errors"
	"strings"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/logger"
	"jobport_backend/internal/models"
	"jobport_backend/pkg/apperrors"
	"jobport_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// CurrentUser - middleware разрешения текущего пользователя.
// Конвейер на каждый запрос, без кэширования между запросами:
// bearer -> декодирование -> тип токена -> полнота claims ->
// проверка привязки ключа (если токен несет cnf) -> Principal в контексте.
func CurrentUser(codec *auth.TokenCodec, binding auth.KeyBindingVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := codec.Decode(tokenStr, true)
		if err != nil {
			// Клиенту различим только факт истечения срока,
			// причины отказа подписи не раскрываются.
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			return
		}

		if tokenType, _ := claims[auth.ClaimTokenType].(string); tokenType != auth.TokenTypeAccess {
			// refresh-токен не принимается как учетные данные доступа
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		principal, err := auth.PrincipalFromClaims(claims)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		if jwk, present := auth.ConfirmationKey(claims); present {
			if jwk == nil {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
				return
			}
			if err := binding.Verify(c.Request, jwk); err != nil {
				apperrors.HandleError(c, err)
				return
			}
		}

		ctx := logger.WithUserID(c.Request.Context(), principal.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextkeys.PrincipalContextKey, principal)
		c.Set("userID", principal.ID)
		c.Set("role", string(principal.Role))
		c.Next()
	}
}

// RequireRoles - декларативная проверка ролей поверх CurrentUser.
// Пустой список ролей пропускает любого аутентифицированного.
// Единственный примитив контроля доступа для маршрутов - роли
// внутри хендлеров не проверяются.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		if len(roleSet) > 0 && !roleSet[principal.Role] {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// GetPrincipal извлекает принципала из контекста запроса
func GetPrincipal(c *gin.Context) (*auth.Principal, bool) {
	val, exists := c.Get(contextkeys.PrincipalContextKey)
	if !exists {
		return nil, false
	}
	principal, ok := val.(*auth.Principal)
	return principal, ok
}
