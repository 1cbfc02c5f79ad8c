package dsl

import "strings"

// sigils are the command characters that mark a kept (non-prose) line.
const sigils = "#:/@!"

// filterBody masks fenced/brace regions, drops every line that isn't a DSL
// command line, then restores the masked regions. Masking runs strongest
// wrapper first (code fence, then double brace, then single brace) so that
// bodies nested inside a heavier wrapper are protected from the lighter
// passes below them.
func filterBody(text string) string {
	masker := newBlockMasker()

	masked := masker.mask(text, "```", "```")
	masked = masker.mask(masked, "{{", "}}")
	masked = masker.mask(masked, "{", "}")

	lines := strings.Split(masked, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		if stripped == "" {
			continue
		}
		if strings.ContainsRune(sigils, rune(stripped[0])) {
			kept = append(kept, line)
		}
	}

	filtered := strings.Join(kept, "\n")
	return masker.unmask(filtered)
}
