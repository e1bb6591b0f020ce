package sequence

// MiddleTwo returns the two characters around the center of value.
// For odd lengths the pair is the character before the center and the
// center itself. Values shorter than two characters are returned as-is.
func MiddleTwo(value string) string {
	if len(value) < 2 {
		return value
	}
	mid := len(value) / 2
	return value[mid-1 : mid+1]
}
