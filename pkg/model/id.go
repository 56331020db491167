package model

import "strconv"

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID parses a decimal entity identifier.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
