// Package validation содержит чистые предикаты проверки полей
// и сбор ошибок по полям для ответа API.
//
// Порядок проверок единый для всех хендлеров:
// наличие -> формат -> спецсимволы -> длина -> уникальность.
package validation

import "regexp"

// минимальные длины полей (берём из контракта API)
const (
	MinUsernameLen     = 4 // username > 3
	MinCategoryNameLen = 5 // category name > 4
	MinRecipeTitleLen  = 4 // title > 3
	MinRecipeTextLen   = 4 // ingredients/steps > 3
	MinPasswordLen     = 6
)

var (
	// local@domain.tld
	emailRe = regexp.MustCompile(`^[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,4})$`)
	// всё, что за пределами букв, цифр и пробела
	specialRe = regexp.MustCompile(`[^A-Za-z0-9 ]`)

	lowerRe = regexp.MustCompile(`[a-z]`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// ValidEmail проверяет форму email (local@domain.tld).
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// StrongPassword требует минимум одну строчную, одну заглавную букву,
// одну цифру и длину не меньше MinPasswordLen.
func StrongPassword(s string) bool {
	if len(s) < MinPasswordLen {
		return false
	}
	return lowerRe.MatchString(s) && upperRe.MatchString(s) && digitRe.MatchString(s)
}

// HasSpecialCharacter сообщает, содержит ли строка символ
// вне алфавита [A-Za-z0-9 ].
func HasSpecialCharacter(s string) bool {
	return specialRe.MatchString(s)
}

// LongEnough проверяет минимальную длину поля в байтах.
// Вход ожидается уже после трима.
func LongEnough(s string, min int) bool {
	return len(s) >= min
}
