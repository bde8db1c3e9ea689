// Package report defines the canonical row schema every marketplace file is
// normalized into, and the merge step that folds per-marketplace batches into
// one consolidated dataset.
package report

// FinalColumns is the canonical column set, in output order. Every
// normalized row carries exactly these keys, regardless of what the source
// file contained.
var FinalColumns = []string{
	"country", "date/time", "settlement id", "type", "order id", "sku",
	"description", "quantity", "marketplace", "fulfilment", "order city",
	"order state", "order postal", "product sales", "product sales tax",
	"postage credits", "shipping credits tax", "gift wrap credits",
	"gift wrap credits tax", "promotional rebates", "promotional rebates tax",
	"marketplace withheld tax", "selling fees", "fba fees",
	"other transactions fees", "other", "total",
}

// MoneyColumns is the monetary subset of FinalColumns. These carry an EU
// display string in Row.Cells and a raw numeric shadow alongside.
var MoneyColumns = FinalColumns[13:]

// ConvertedSuffix marks the appended reference-currency columns in the
// output artifact when currency conversion is enabled.
const ConvertedSuffix = " eur"

// IsMoneyColumn reports whether name is one of the monetary columns.
func IsMoneyColumn(name string) bool {
	for _, c := range MoneyColumns {
		if c == name {
			return true
		}
	}
	return false
}
