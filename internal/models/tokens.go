package models

// AuthTokens — пара токенов, выдаваемая при регистрации/входе/ротации.
//
// Описание:
//   - AccessToken — короткоживущий подписанный JWT для доступа к API;
//   - RefreshToken — долгоживущий JWT, однократно предъявляемый для выпуска
//     новой пары; на сервере его jti отмечен записью refresh-сессии;
//   - TokenType — всегда "Bearer";
//   - ExpiresIn — время жизни access-токена в секундах.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}
