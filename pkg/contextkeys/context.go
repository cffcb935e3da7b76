package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы храним *gorm.DB в context
const DBContextKey = contextKey("db")

// PrincipalContextKey - ключ, по которому middleware кладет
// аутентифицированного принципала в gin.Context
const PrincipalContextKey = "principal"
