package core

// Ptr returns a pointer to v. Optional attributes are pointers so that
// "unset" differs from the zero value.
func Ptr[T any](v T) *T {
	return &v
}
