// Package ptr provides pointer helpers for optional task fields.
package ptr

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *p, or nil if p is nil.
// The result never aliases p.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
