package wordlist

// Keep reports whether a token can be typed with the printable ASCII keys
// the input adapter delivers. Space submits a word, so it is never part of one.
func Keep(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch <= ' ' || ch > '~' {
			return false
		}
	}
	return true
}
