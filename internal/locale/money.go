package locale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Whitespace and sign variants seen in EU marketplace exports.
const (
	nbsp         = "\u00a0"
	narrowNBSP   = "\u202f" // narrow no-break space used by Amazon EU
	unicodeMinus = "\u2212"
)

var moneyCleaner = strings.NewReplacer(
	narrowNBSP, "",
	nbsp, "",
	" ", "",
	"€", "",
	unicodeMinus, "-",
)

// ParseMoney converts a free-form monetary string into an exact decimal.
//
// Reports self-describe their number format, so the separator convention is
// unknown up front. The rule: whichever of ',' and '.' occurs LAST in the
// string is the decimal separator; every other comma or dot is grouping and
// is removed. "1 234,56", "1.234,56" and "1,234.56" all come out as 1234.56.
//
// A leading '-' (or U+2212), or wrapping parentheses, negates the value.
// Blank or digit-free input yields zero, never an error: monetary cells are
// routinely empty in these reports.
func ParseMoney(text string) decimal.Decimal {
	s := moneyCleaner.Replace(strings.TrimSpace(text))
	if s == "" {
		return decimal.Zero
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 1 {
		neg = true
		s = s[1 : len(s)-1]
	}

	// Drop everything except digits, signs and separators (stray currency
	// codes, letters, etc.).
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" {
		return decimal.Zero
	}

	if s[0] == '-' {
		neg = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}
	s = strings.ReplaceAll(s, "+", "")

	sep := strings.LastIndexAny(s, ",.")
	if sep >= 0 {
		intPart := stripSeparators(s[:sep])
		frac := stripSeparators(s[sep+1:])
		if intPart == "" {
			intPart = "0"
		}
		if frac != "" {
			s = intPart + "." + frac
		} else {
			s = intPart
		}
	}
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, ".", "")
}

// FormatEuro renders v in the EU display convention used by the output
// workbook and the reconciliation table, "- € 1 234,56": sign prefix,
// euro sign, space-grouped integer digits, comma decimals, two places.
//
// ParseMoney(FormatEuro(v)) == v for any v with at most two decimal digits.
func FormatEuro(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "- "
	}
	fixed := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + "€ " + strings.Join(groups, " ") + "," + frac
}
