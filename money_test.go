package carteira

import "testing"

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected Money
		err      bool
	}{
		{"12.34", BRL(12.34), false},
		{"12,34", BRL(12.34), false},
		{"1200", BRL(1200), false},
		{" 150.00 ", BRL(150), false},
		{"abc", Money{}, true},
		{"", Money{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && !got.Equal(tt.expected) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMoneyCSVUsesDecimalComma(t *testing.T) {
	tests := []struct {
		amount   Money
		expected string
	}{
		{BRL(1234.56), "1234,56"},
		{BRL(3500), "3500,00"},
		{BRL(0.5), "0,50"},
	}
	for _, tt := range tests {
		if got := tt.amount.CSV(); got != tt.expected {
			t.Errorf("CSV() = %q, want %q", got, tt.expected)
		}
	}
}

func TestMoneyStringFormatsBRL(t *testing.T) {
	if got := BRL(1234.56).String(); got != "R$1.234,56" {
		t.Errorf("String() = %q, want R$1.234,56", got)
	}
}

func TestMoneyNoFloatDriftOverLongChains(t *testing.T) {
	// 0.1 added 1200 times must be exactly 120, which binary floats miss.
	sum := M(0)
	for i := 0; i < 1200; i++ {
		sum = sum.Add(BRL(0.1))
	}
	if !sum.Equal(BRL(120)) {
		t.Errorf("sum = %v, want exactly 120", sum)
	}
}

func TestShareZeroTotalIsZero(t *testing.T) {
	if got := BRL(100).Share(M(0)); got != 0 {
		t.Errorf("Share of zero total = %v, want 0", got)
	}
}
