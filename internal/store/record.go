package store

import "strings"

// Record is one parsed .sorter file: the original submission body plus the
// envelope metadata recorded alongside it.
type Record struct {
	Filename  string
	From      string
	Timestamp string
	Body      string
}

const envelopeSeparator = "---"

// formatEnvelope renders the on-disk content for a submission: an optional
// From header, a Timestamp header, a "---" separator, then the body
// verbatim.
func formatEnvelope(from, timestamp, body string) string {
	var lines []string
	if from != "" {
		lines = append(lines, "From: "+from)
	}
	lines = append(lines, "Timestamp: "+timestamp)
	lines = append(lines, envelopeSeparator)
	lines = append(lines, body)
	return strings.Join(lines, "\n")
}

// parseEnvelope splits raw .sorter file content into its body and envelope
// metadata. A file with no "---" separator is a legacy record: its entire
// content is the body, with no From or Timestamp.
func parseEnvelope(content string) (body, from, timestamp string) {
	lines := strings.Split(content, "\n")

	separatorIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == envelopeSeparator {
			separatorIdx = i
			break
		}
	}

	if separatorIdx == -1 {
		return content, "", ""
	}

	for _, line := range lines[:separatorIdx] {
		switch {
		case strings.HasPrefix(line, "From: "):
			from = strings.TrimSpace(strings.TrimPrefix(line, "From: "))
		case strings.HasPrefix(line, "Timestamp: "):
			timestamp = strings.TrimSpace(strings.TrimPrefix(line, "Timestamp: "))
		}
	}

	body = strings.Join(lines[separatorIdx+1:], "\n")
	return body, from, timestamp
}
