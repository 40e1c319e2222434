package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Zero Only"},
		{"1", "One Only"},
		{"19", "Nineteen Only"},
		{"40", "Forty Only"},
		{"105", "One Hundred Five Only"},
		{"1180", "One Thousand One Hundred Eighty Only"},
		{"100000", "One Lakh Only"},
		{"123456.78", "One Lakh Twenty Three Thousand Four Hundred Fifty Six and Seventy Eight Paise Only"},
		{"10000000", "One Crore Only"},
		{"99999999", "Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		{"0.50", "Zero and Fifty Paise Only"},
		{"2000.05", "Two Thousand and Five Paise Only"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := AmountInWords(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("AmountInWords(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"999", "₹999.00"},
		{"1000", "₹1,000.00"},
		{"123456", "₹1,23,456.00"},
		{"1234567.89", "₹12,34,567.89"},
		{"10000000", "₹1,00,00,000.00"},
		{"-54321.5", "-₹54,321.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatINR(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("FormatINR(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
