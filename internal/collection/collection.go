// Package collection holds small generic helpers over slices.
package collection

// Filter returns the elements of s for which keep returns true, in order.
// The result is never nil and never aliases s.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s left to right starting from init.
func Reduce[T, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Concat joins slices in argument order into a new slice. With no
// arguments it returns an empty, non-nil slice.
func Concat[T any](slices ...[]T) []T {
	n := 0
	for _, s := range slices {
		n += len(s)
	}

	return Reduce(slices, make([]T, 0, n), func(acc []T, s []T) []T {
		return append(acc, s...)
	})
}
