// Package markdown removes formatting noise from request text before it
// reaches the glossary and the engine. Formatting markers confuse seq2seq
// models; the content inside them is kept.
package markdown

import (
	"regexp"
	"strings"
)

var (
	headerRe     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
	boldUnderRe  = regexp.MustCompile(`__([^_]+)__`)
	italUnderRe  = regexp.MustCompile(`_([^_]+)_`)
	hrDashRe     = regexp.MustCompile(`(?m)^---+\s*$`)
	hrEqualRe    = regexp.MustCompile(`(?m)^===+\s*$`)
	codeFenceRe  = regexp.MustCompile("(?s)```[^\n]*\n(.*?)```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// Strip removes markdown formatting, keeping the readable text.
func Strip(text string) string {
	text = headerRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = boldUnderRe.ReplaceAllString(text, "$1")
	text = italUnderRe.ReplaceAllString(text, "$1")
	text = hrDashRe.ReplaceAllString(text, "")
	text = hrEqualRe.ReplaceAllString(text, "")
	text = codeFenceRe.ReplaceAllString(text, "$1")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
