package llm

// Clip cuts s to at most n runes for inclusion in a prompt. A non-positive
// n leaves s unchanged.
func Clip(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
