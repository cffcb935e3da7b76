package handlers

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/services"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// SignUp - POST /sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	user, err := h.authService.SignUp(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, user)
}

// Login - POST /login. Заголовок X-Client-JWK (hex-кодированный JSON)
// привязывает выдаваемую пару токенов к клиентскому ключу.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	clientJWK, err := clientJWKFromHeader(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.authService.Login(db, &req, clientJWK)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

// Refresh - POST /refresh-token. Refresh-токен приходит в заголовке
// Authorization-Refresh, для совместимости принимается и Authorization.
func (h *AuthHandler) Refresh(c *gin.Context) {
	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	tokenStr := bearerToken(c.GetHeader("Authorization-Refresh"))
	if tokenStr == "" {
		tokenStr = bearerToken(c.GetHeader("Authorization"))
	}
	if tokenStr == "" {
		h.HandleServiceError(c, apperrors.ErrUnauthorized)
		return
	}

	resp, err := h.authService.Refresh(db, tokenStr, c.Request)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

// clientJWKFromHeader декодирует X-Client-JWK. Отсутствие заголовка -
// норма (вход без привязки), кривой формат - 400.
func clientJWKFromHeader(c *gin.Context) (map[string]any, error) {
	header := c.GetHeader(auth.HeaderClientJWK)
	if header == "" {
		return nil, nil
	}

	decoded, err := hex.DecodeString(header)
	if err != nil {
		return nil, apperrors.ErrMalformedClientKey
	}
	var jwk map[string]any
	if err := json.Unmarshal(decoded, &jwk); err != nil {
		return nil, apperrors.ErrMalformedClientKey
	}
	return jwk, nil
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}
