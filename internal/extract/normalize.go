package extract

import "strings"

// NormalizeText collapses internal runs of whitespace within each line to a
// single space, drops blank lines, and trims the result. Line structure is
// preserved so downstream prompts keep the document's rough layout.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned := strings.Join(strings.Fields(line), " ")
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
