// Package format holds the pure display-shaping helpers: currency strings,
// date labels, chart series, and small text utilities. Everything here is
// deterministic and free of I/O so it can be tested directly.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPrefix is the fixed display currency.
const currencyPrefix = "Rs. "

// Currency renders an amount with two fraction digits and Indian digit
// grouping: the rightmost three integer digits form one group, everything to
// the left is grouped in pairs. 1234567.5 becomes "Rs. 12,34,567.50".
func Currency(amount float64) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return currencyPrefix + sign + groupIndian(intPart) + "." + fracPart
}

// groupIndian inserts commas using the lakh/crore convention.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}
