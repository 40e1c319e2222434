package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func wordsBelowThousand(n int64) string {
	if n == 0 {
		return ""
	}
	if n < 20 {
		return onesWords[n]
	}
	if n < 100 {
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	}
	s := onesWords[n/100] + " Hundred"
	if n%100 != 0 {
		s += " " + wordsBelowThousand(n%100)
	}
	return s
}

// AmountInWords renders a rupee amount in the Indian numbering system
// (Crore/Lakh/Thousand/Hundred) with a paise suffix, e.g.
// "One Lakh Twenty Three Thousand Four Hundred Fifty Six and Seventy Eight Paise Only".
func AmountInWords(amount decimal.Decimal) string {
	rounded := RoundMoney(amount.Abs())
	rupees := rounded.IntPart()
	paise := rounded.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	if rupees == 0 && paise == 0 {
		return "Zero Only"
	}

	crore := rupees / 10000000
	lakh := (rupees % 10000000) / 100000
	thousand := (rupees % 100000) / 1000
	hundred := rupees % 1000

	var parts []string
	if crore > 0 {
		parts = append(parts, wordsBelowThousand(crore)+" Crore")
	}
	if lakh > 0 {
		parts = append(parts, wordsBelowThousand(lakh)+" Lakh")
	}
	if thousand > 0 {
		parts = append(parts, wordsBelowThousand(thousand)+" Thousand")
	}
	if hundred > 0 {
		parts = append(parts, wordsBelowThousand(hundred))
	}
	if rupees == 0 {
		parts = append(parts, "Zero")
	}

	result := strings.Join(parts, " ")
	if paise > 0 {
		result += " and " + wordsBelowThousand(paise) + " Paise"
	}
	return result + " Only"
}

// FormatINR formats an amount with the rupee symbol and Indian digit grouping
// (last three digits, then groups of two) with fixed two decimals,
// e.g. ₹12,34,567.89.
func FormatINR(amount decimal.Decimal) string {
	rounded := RoundMoney(amount)
	neg := rounded.IsNegative()
	s := rounded.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(groups, ",") + "," + tail
	}

	out := "₹" + intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
