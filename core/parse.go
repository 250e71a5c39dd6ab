// File: parse.go
// Role: hashtag and mention extraction from post bodies.
//
// Tokens are one or more ASCII letters, digits or underscores directly
// after a '#' (hashtag) or '@' (mention). The marker is stripped from
// the stored token. Tokens are kept in order of appearance and
// duplicates are preserved. A single left-to-right scan; no regex.

package core

// parseTokens extracts hashtags and tagged users from text in one pass.
// Complexity: O(len(text))
func parseTokens(text string) (hashtags, taggedUsers []string) {
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		marker := runes[i]
		if marker != '#' && marker != '@' {
			continue
		}
		j := i + 1
		for j < len(runes) && isTokenRune(runes[j]) {
			j++
		}
		if j == i+1 {
			// Bare marker with no word characters after it.
			continue
		}
		token := string(runes[i+1 : j])
		if marker == '#' {
			hashtags = append(hashtags, token)
		} else {
			taggedUsers = append(taggedUsers, token)
		}
		// The token body cannot start another token.
		i = j - 1
	}

	return hashtags, taggedUsers
}

// isTokenRune reports whether r may appear in a hashtag or mention
// body: ASCII letters, digits, underscore.
func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
