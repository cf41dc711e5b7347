package utils

// PtrString dereferences s, returning "" for nil.
func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
