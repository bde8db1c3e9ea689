// Package locale holds the language-specific knowledge needed to read
// marketplace payment reports: month-name lookup across every supported
// report language, monetary string parsing for ambiguous separator
// conventions, and the EU display formatter used in the consolidated output.
package locale

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// languages lists the supported report languages in scan order. Order
// matters: when two languages produce the same lookup key for different
// months, the later language wins.
var languages = []string{"EN", "PL", "ES", "IT", "FR", "DE", "NL"}

var monthNames = map[string][12]string{
	"EN": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"PL": {"Styczeń", "Luty", "Marzec", "Kwiecień", "Maj", "Czerwiec",
		"Lipiec", "Sierpień", "Wrzesień", "Październik", "Listopad", "Grudzień"},
	"ES": {"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	"IT": {"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
		"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre"},
	"FR": {"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"},
	"DE": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	"NL": {"Januari", "Februari", "Maart", "April", "Mei", "Juni",
		"Juli", "Augustus", "September", "Oktober", "November", "December"},
}

// extraMonthKeys are abbreviations that are not a plain prefix of the
// full month name (Dutch writes "mrt" for maart).
var extraMonthKeys = map[string]int{
	"mrt": 3,
	"mei": 5,
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics, so "Février", "février" and
// "fevrier" all share one lookup key.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// MonthIndex maps normalized month spellings (full names, exact lowercase
// spellings, 3/4-letter prefixes with and without a trailing period) to
// month numbers 1..12.
type MonthIndex map[string]int

// NewMonthIndex builds the lookup from the full language catalog. New
// languages are additive data in monthNames, not new code paths.
func NewMonthIndex() MonthIndex {
	idx := make(MonthIndex)
	for _, lang := range languages {
		names := monthNames[lang]
		for i, full := range names {
			n := i + 1
			base := Fold(full)
			idx[base] = n
			idx[strings.ToLower(full)] = n
			r := []rune(base)
			for _, width := range []int{3, 4} {
				if len(r) >= width {
					abbr := string(r[:width])
					idx[abbr] = n
					idx[abbr+"."] = n
				}
			}
		}
	}
	for k, v := range extraMonthKeys {
		idx[k] = v
	}
	return idx
}

// Month resolves a free-form month word, case- and accent-insensitive,
// tolerating one trailing period ("févr." or "abr").
func (m MonthIndex) Month(word string) (int, bool) {
	n, ok := m[strings.TrimSuffix(Fold(word), ".")]
	return n, ok
}
