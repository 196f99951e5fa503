package services

import "testing"

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "£0.00"},
		{"small", 9.5, "£9.50"},
		{"hundreds", 123.45, "£123.45"},
		{"thousands", 1234.5, "£1,234.50"},
		{"millions", 12345678.9, "£12,345,678.90"},
		{"negative", -1234.56, "-£1,234.56"},
		{"rounding", 0.005, "£0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatGBP(tt.amount)
			if got != tt.want {
				t.Errorf("FormatGBP(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(45); got != "45.00" {
		t.Errorf("FormatMoney(45) = %q, want \"45.00\"", got)
	}
	if got := FormatMoney(9.456); got != "9.46" {
		t.Errorf("FormatMoney(9.456) = %q, want \"9.46\"", got)
	}
}
