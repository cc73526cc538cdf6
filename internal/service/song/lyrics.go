package song

import "strings"

// NormalizeLyrics strips blank lines from raw prompt text, keeping one line
// per lyric line. The result is stable: normalizing already-normalized text
// yields the same text.
func NormalizeLyrics(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	normalized := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		normalized = append(normalized, line)
	}

	return strings.Join(normalized, "\n")
}
