package problem

import (
	"fmt"
	"strings"
)

// Markdown renders the answer and numbered working steps.
func (s Solution) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s**\n", escapeMarkdown(s.Answer)))
	if len(s.Steps) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.StepsMarkdown())
	}
	return sb.String()
}

// StepsMarkdown renders only the working steps as a numbered list.
func (s Solution) StepsMarkdown() string {
	var sb strings.Builder
	for i, step := range s.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, escapeMarkdown(step)))
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(`*`, `\*`, `_`, `\_`, "`", "\\`")

// escapeMarkdown keeps "2 * 3" and "a_b" from turning into emphasis.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
