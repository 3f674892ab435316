package format

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"Small amount", 12.5, "USD", "USD 12.50"},
		{"Thousands", 1234.567, "EUR", "EUR 1,234.57"},
		{"Millions", 1234567.891, "ngn", "NGN 1,234,567.89"},
		{"Negative", -9876.5, "USD", "USD -9,876.50"},
		{"Zero", 0, "USD", "USD 0.00"},
		{"Negative rounds to zero", -0.001, "USD", "USD 0.00"},
		{"Default code", 100, "", "USD 100.00"},
		{"Trimmed code", 100, " kes ", "KES 100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Money(tt.amount, tt.code); got != tt.expected {
				t.Errorf("Money(%v, %q) = %q, expected %q", tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := map[float64]string{
		0:          "0.00",
		999.999:    "1,000.00",
		-1234.56:   "-1,234.56",
		-0.004:     "0.00",
		1000000:    "1,000,000.00",
		123456.789: "123,456.79",
		3125.125:   "3,125.13",
	}
	for input, expected := range tests {
		if got := NumericCurrency(input); got != expected {
			t.Errorf("NumericCurrency(%v) = %q, expected %q", input, got, expected)
		}
	}
}

func TestCount(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		42:       "42",
		1000:     "1,000",
		-25000:   "-25,000",
		12345678: "12,345,678",
	}
	for input, expected := range tests {
		if got := Count(input); got != expected {
			t.Errorf("Count(%d) = %q, expected %q", input, got, expected)
		}
	}
}
