package ptr

// Ptr возвращает указатель на значение
func Ptr[T any](v T) *T {
	return &v
}

// Value разыменовывает указатель или возвращает fallback, если указатель nil
func Value[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
