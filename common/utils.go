package common

// Coalesce walks the provided values in order and returns the first that is
// not the zero value of T. When every value is zero, the zero value is
// returned.
//
// Parameters:
//   - values: candidate values, checked in order
//
// Returns:
//   - T: the first non-zero value, or T's zero value when none qualifies
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
