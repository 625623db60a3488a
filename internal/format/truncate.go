package format

// SummaryDisplayLimit is the number of runes of an article summary shown in
// report output before truncation.
const SummaryDisplayLimit = 70

// TruncateSummary shortens s to limit runes, appending "..." when anything
// was cut. It counts runes, not bytes, so multi-byte text is never split
// mid-character.
func TruncateSummary(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
