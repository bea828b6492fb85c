// Утилитарные функции общего назначения
package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// Normalize приводит строку к виду хранения: трим + нижний регистр.
// Используется для email, имён категорий и заголовков рецептов.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
