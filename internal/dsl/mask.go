package dsl

import (
	"strings"

	"github.com/google/uuid"
)

// blockMasker replaces outermost balanced text blocks with opaque tokens so
// that a later line-based filter cannot be confused by braces or fences
// embedded in a submission body, then restores them verbatim afterwards.
//
// Two marker shapes are supported: toggle markers where open == close (a
// fenced code block), and paired markers where open != close (brace bodies),
// tracked with a depth counter so only the outermost block per layer masks.
type blockMasker struct {
	replacements map[string]string
}

func newBlockMasker() *blockMasker {
	return &blockMasker{replacements: make(map[string]string)}
}

func (m *blockMasker) mask(text, open, close string) string {
	if text == "" {
		return text
	}

	var out strings.Builder
	runes := []rune(text)
	n := len(runes)
	isToggle := open == close
	openRunes := []rune(open)
	closeRunes := []rune(close)

	depth := 0
	start := -1
	flushed := 0

	matches := func(i int, marker []rune) bool {
		if i+len(marker) > n {
			return false
		}
		for k, r := range marker {
			if runes[i+k] != r {
				return false
			}
		}
		return true
	}

	i := 0
	for i < n {
		if depth > 0 && matches(i, closeRunes) {
			if isToggle {
				depth = 0
			} else {
				depth--
			}
			i += len(closeRunes)
			if depth == 0 {
				block := string(runes[start:i])
				token := maskToken()
				m.replacements[token] = block
				out.WriteString(token)
				flushed = i
			}
			continue
		}

		if matches(i, openRunes) {
			if depth == 0 {
				out.WriteString(string(runes[flushed:i]))
				start = i
			}
			if isToggle {
				if depth == 0 {
					depth = 1
				}
			} else {
				depth++
			}
			i += len(openRunes)
			continue
		}

		i++
	}

	out.WriteString(string(runes[flushed:]))
	return out.String()
}

func (m *blockMasker) unmask(text string) string {
	if text == "" || len(m.replacements) == 0 {
		return text
	}
	result := text
	for {
		replacedAny := false
		for token, original := range m.replacements {
			if strings.Contains(result, token) {
				result = strings.ReplaceAll(result, token, original)
				replacedAny = true
			}
		}
		if !replacedAny {
			break
		}
	}
	return result
}

func maskToken() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "__BLOCK_" + id[:8] + "__"
}
