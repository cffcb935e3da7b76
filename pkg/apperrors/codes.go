package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Коды ошибок сгруппированные по доменам
const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Аутентификация и авторизация (сквозные)
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeIncompleteClaims   ErrorCode = "INCOMPLETE_CLAIMS"
	CodeProofRequired      ErrorCode = "PROOF_REQUIRED"
	CodeInvalidClientKey   ErrorCode = "INVALID_CLIENT_KEY"

	// Пользователи
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeUserExists      ErrorCode = "USER_ALREADY_EXISTS"
	CodeUserSuspended   ErrorCode = "USER_SUSPENDED"
	CodeWeakPassword    ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole ErrorCode = "INVALID_USER_ROLE"
)
