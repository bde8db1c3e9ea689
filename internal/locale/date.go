package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "10.12.2024", the dotted numeric style (German reports).
	numericDateRE = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	// "15 abr 2025" or "1 févr. 2025": day, month word, year.
	textualDateRE = regexp.MustCompile(`^(\d{1,2})\s+([\p{L}.]+)\s+(\d{4})`)
)

// DateNormalizer rewrites marketplace date strings to the canonical
// dd-mm-yyyy form. Month words are resolved through a MonthIndex, so the
// supported languages are data, not code.
type DateNormalizer struct {
	months MonthIndex
}

func NewDateNormalizer(months MonthIndex) *DateNormalizer {
	return &DateNormalizer{months: months}
}

// Normalize returns text as dd-mm-yyyy when it matches the dotted numeric
// style or the "day monthname year" style in any supported language.
// Anything else is returned unchanged: month-name coverage can never be
// proven exhaustive, so normalization is best-effort and never fails.
func (n *DateNormalizer) Normalize(text string) string {
	t := strings.TrimSpace(text)

	if m := numericDateRE.FindStringSubmatch(t); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d-%02d-%s", day, month, m[3])
	}

	if m := textualDateRE.FindStringSubmatch(t); m != nil {
		if month, ok := n.months.Month(m[2]); ok {
			day, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("%02d-%02d-%s", day, month, m[3])
		}
	}

	return text
}
