// Package segment splits request text into independently translatable
// units and packs over-long units into engine-sized chunks.
package segment

import "strings"

// Units derives the translation units for one request. Newlines win: when
// present, each non-blank line is one unit in original order. Otherwise the
// text splits on sentence-ending punctuation followed by whitespace. Blank
// input yields no units.
func Units(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if strings.Contains(text, "\n") {
		var units []string
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			units = append(units, line)
		}
		return units
	}

	trimmed := strings.TrimSpace(text)
	units := splitSentences(trimmed)
	if len(units) == 0 {
		return []string{trimmed}
	}
	return units
}

// Chunk packs text into pieces of at most maxChars for the engine,
// splitting at sentence boundaries first and comma boundaries when a
// single sentence is itself over the cap. A comma-free sentence longer
// than maxChars is passed through whole.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}

	sentences := splitSentences(strings.TrimSpace(text))
	if len(sentences) == 0 {
		return []string{text}
	}

	var chunks []string
	current := ""

	flush := func() {
		chunk := strings.TrimSpace(strings.TrimRight(current, ", "))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current = ""
	}

	for _, sentence := range sentences {
		if len(sentence) > maxChars {
			flush()
			for _, part := range strings.Split(sentence, ", ") {
				if len(current)+len(part)+2 <= maxChars {
					current += part + ", "
					continue
				}
				flush()
				current = part + ", "
			}
			flush()
			continue
		}

		if len(current)+len(sentence)+1 <= maxChars {
			current += sentence + " "
			continue
		}
		flush()
		current = sentence + " "
	}
	flush()

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

// splitSentences splits on '.', '!' or '?' runs followed by whitespace;
// the punctuation stays with the left-hand sentence.
func splitSentences(text string) []string {
	var units []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isSentenceEnd(text[i]) {
			continue
		}
		j := i + 1
		if j >= len(text) || !isSpace(text[j]) {
			continue
		}
		if unit := strings.TrimSpace(text[start:j]); unit != "" {
			units = append(units, unit)
		}
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(text) {
		if unit := strings.TrimSpace(text[start:]); unit != "" {
			units = append(units, unit)
		}
	}
	return units
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
