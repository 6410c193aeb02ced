package util

// ParseBoolParam maps the query-string values "true"/"false" to a pointer,
// leaving nil for anything else (including absence).
func ParseBoolParam(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
