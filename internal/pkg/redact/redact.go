// redact содержит хелперы, не позволяющие чувствительным данным
// (логины, токены, пароли) попадать в логи в открытом виде.
package redact

import "strings"

// Username оставляет первые два символа логина, остальное маскирует.
func Username(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return "***"
	}

	return string(r[:2]) + "***"
}

// Email маскирует локальную часть адреса, домен сохраняется.
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := parts[0], parts[1]
	if r := []rune(local); len(r) > 2 {
		local = string(r[:2]) + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
