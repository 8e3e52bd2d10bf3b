// Package ptr хелперы для работы с указателями на литералы
package ptr

// Ptr возвращает указатель на переданное значение
func Ptr[T any](v T) *T {
	return &v
}
