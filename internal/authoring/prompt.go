package authoring

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write multiple-choice quizzes for a flash-card quiz app.

Rules:
- Write exactly the requested number of questions about the given topic.
- Each question has a short title and between 2 and 5 alternatives.
- Exactly one alternative is correct. "correct" is its zero-based index.
- Distractors should be plausible mistakes, not jokes.
- Keep every alternative under 60 characters.
- Vary the position of the correct alternative.
- Match the difficulty level: easy is recall, medium is application, hard is edge cases.
- Do not repeat any question from the "already in the catalog" list.
- Use plain text. No markdown.`

// userMessage renders the request, keeping at most maxAvoid of the most
// recent titles to avoid.
func userMessage(req Request, maxAvoid int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Level: %s\n", strings.ToLower(req.Level.String()))
	fmt.Fprintf(&b, "Questions: %d\n", req.Questions)

	b.WriteString("\nAlready in the catalog:\n")
	avoid := req.Avoid
	if maxAvoid > 0 && len(avoid) > maxAvoid {
		avoid = avoid[len(avoid)-maxAvoid:]
	}
	if len(avoid) == 0 {
		b.WriteString("None")
	}
	for i, t := range avoid {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, t)
	}
	return b.String()
}
