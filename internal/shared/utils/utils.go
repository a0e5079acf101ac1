// Утилитарные функции общего назначения
package utils

import "strings"

// StrPtr возвращает указатель на копию строки.
func StrPtr(s string) *string {
	return &s
}

// TrimPtr обрезает пробелы у значения по указателю.
// Пустая после обрезки строка превращается в nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
