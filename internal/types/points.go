//nolint:revive // types is a standard Go package name pattern
package types

// ReplacePoint returns a new sequence with points[index] set to value.
func ReplacePoint(points []string, index int, value string) ([]string, error) {
	if index < 0 || index >= len(points) {
		return nil, &PointIndexError{Index: index, Len: len(points)}
	}
	out := clonePoints(points)
	out[index] = value
	return out, nil
}

// AppendPoint returns a new sequence with an empty point added at the end.
// An empty point is filled with the register's filler sentence on generation.
func AppendPoint(points []string) []string {
	out := make([]string, len(points), len(points)+1)
	copy(out, points)
	return append(out, "")
}

// RemovePoint returns a new sequence without points[index].
// When exactly one point remains it is cleared instead of removed, so the
// sequence never becomes empty through editing.
func RemovePoint(points []string, index int) ([]string, error) {
	if index < 0 || index >= len(points) {
		return nil, &PointIndexError{Index: index, Len: len(points)}
	}
	if len(points) == 1 {
		return []string{""}, nil
	}

	out := make([]string, 0, len(points)-1)
	out = append(out, points[:index]...)
	out = append(out, points[index+1:]...)
	return out, nil
}

func clonePoints(points []string) []string {
	if points == nil {
		return nil
	}
	out := make([]string, len(points))
	copy(out, points)
	return out
}
