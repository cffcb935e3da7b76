package services

import (
	"errors"
	"net/http"
	"time"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService - регистрация, вход и обновление токенов
type AuthService interface {
	SignUp(db *gorm.DB, req *dto.SignUpRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest, clientJWK map[string]any) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, tokenStr string, r *http.Request) (*dto.RefreshResponse, error)
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	codec      *auth.TokenCodec
	binding    auth.KeyBindingVerifier
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	codec *auth.TokenCodec,
	binding auth.KeyBindingVerifier,
	accessTTL, refreshTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		codec:      codec,
		binding:    binding,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// SignUp регистрирует работодателя или соискателя.
// Административные роли через публичную регистрацию не создаются.
func (s *AuthServiceImpl) SignUp(db *gorm.DB, req *dto.SignUpRequest) (*models.User, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if req.Role.IsAdministrative() {
		return nil, apperrors.NewForbiddenError("Administrative accounts cannot self-register")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Login - аутентификация пользователя. Неизвестное имя и неверный пароль
// дают один и тот же ответ, чтобы не раскрывать существование аккаунта.
// clientJWK != nil включает привязку пары токенов к клиентскому ключу.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest, clientJWK map[string]any) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.AccountStatus == models.AccountStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	accessToken, refreshToken, err := s.mintPair(user.ID, string(user.Role), clientJWK)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		UserID:           user.ID,
		Role:             user.Role,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "bearer",
		AccessExpiresIn:  int64(s.accessTTL.Seconds()),
		RefreshExpiresIn: int64(s.refreshTTL.Seconds()),
	}, nil
}

// Refresh обменивает действующий refresh-токен на новую пару.
// Access-токен здесь не принимается. Если refresh-токен был привязан
// к ключу, запрос обязан доказать владение тем же ключом, и привязка
// переносится в новую пару.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, tokenStr string, r *http.Request) (*dto.RefreshResponse, error) {
	claims, err := s.codec.Decode(tokenStr, true)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if tokenType, _ := claims[auth.ClaimTokenType].(string); tokenType != auth.TokenTypeRefresh {
		return nil, apperrors.ErrInvalidToken
	}

	sub, _ := claims[auth.ClaimSubject].(string)
	role, _ := claims[auth.ClaimRole].(string)
	if sub == "" || role == "" {
		return nil, apperrors.ErrIncompleteClaims
	}

	var boundJWK map[string]any
	if jwk, present := auth.ConfirmationKey(claims); present {
		if jwk == nil {
			return nil, apperrors.ErrInvalidToken
		}
		if err := s.binding.Verify(r, jwk); err != nil {
			return nil, err
		}
		boundJWK = jwk
	}

	// Пользователь мог быть заблокирован после выдачи refresh-токена
	user, err := s.userRepo.FindByID(db, sub)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if user.AccountStatus == models.AccountStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	accessToken, refreshToken, err := s.mintPair(user.ID, string(user.Role), boundJWK)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RefreshResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "bearer",
		AccessExpiresIn:  int64(s.accessTTL.Seconds()),
		RefreshExpiresIn: int64(s.refreshTTL.Seconds()),
	}, nil
}

// mintPair выпускает access/refresh пару с общим набором claims.
// У каждого токена свой jti.
func (s *AuthServiceImpl) mintPair(userID, role string, clientJWK map[string]any) (access, refresh string, err error) {
	base := map[string]any{
		auth.ClaimSubject: userID,
		auth.ClaimRole:    role,
	}
	if clientJWK != nil {
		base[auth.ClaimConfirmation] = map[string]any{auth.ClaimJWK: clientJWK}
	}

	accessClaims := make(map[string]any, len(base)+2)
	for k, v := range base {
		accessClaims[k] = v
	}
	accessClaims[auth.ClaimTokenType] = auth.TokenTypeAccess
	accessClaims[auth.ClaimJTI] = uuid.NewString()

	access, err = s.codec.Encode(accessClaims, s.accessTTL)
	if err != nil {
		return "", "", err
	}

	refreshClaims := make(map[string]any, len(base)+2)
	for k, v := range base {
		refreshClaims[k] = v
	}
	refreshClaims[auth.ClaimTokenType] = auth.TokenTypeRefresh
	refreshClaims[auth.ClaimJTI] = uuid.NewString()

	refresh, err = s.codec.Encode(refreshClaims, s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}
