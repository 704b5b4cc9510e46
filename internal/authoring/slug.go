package authoring

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/abhisek/quizcard/internal/catalog"
)

// Slug turns a title into a kebab-case id. Non-alphanumeric runs become a
// single hyphen. An empty result becomes "quiz".
func Slug(title string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	if b.Len() == 0 {
		return "quiz"
	}
	return b.String()
}

// Append adds q to quizzes, suffixing its id with -2, -3, ... when the id
// is already taken.
func Append(quizzes []catalog.Quiz, q catalog.Quiz) []catalog.Quiz {
	taken := make(map[string]bool, len(quizzes))
	for _, existing := range quizzes {
		taken[existing.ID] = true
	}
	base := q.ID
	for n := 2; taken[q.ID]; n++ {
		q.ID = fmt.Sprintf("%s-%d", base, n)
	}
	return append(quizzes, q)
}
