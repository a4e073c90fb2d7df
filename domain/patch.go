package domain

// patch collects the columns an update writes. Absent and null request fields
// are both left out.
type patch map[string]any

func setIf[T any](p patch, column string, v *T) {
	if v != nil {
		p[column] = *v
	}
}

func value[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
