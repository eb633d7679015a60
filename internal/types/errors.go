//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// FieldError is returned when an update names a field outside the closed set
type FieldError struct {
	Field Field
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown letter field: %q", string(e.Field))
}

// PointIndexError is returned when a point edit addresses a missing index
type PointIndexError struct {
	Index int
	Len   int
}

func (e *PointIndexError) Error() string {
	return fmt.Sprintf("context point index %d out of range [0,%d)", e.Index, e.Len)
}
