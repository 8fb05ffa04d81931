package models

// Identity — аутентифицированная личность запроса.
// Формируется из проверенного access-токена и передаётся дальше по стеку
// явно через context, без глобального состояния.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}
