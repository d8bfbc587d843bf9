package zenith

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		code    string
		want    Money
		wantErr bool
	}{
		{"1234.56", "USD", Cents(123456), false},
		{"0.01", "USD", Cents(1), false},
		{"10", "EUR", Cents(1000), false},
		{"-5.50", "USD", Cents(-550), false},
		{"1500", "JPY", Cents(1500), false}, // zero-fraction currency
		{"1.005", "USD", 0, true},           // too many decimal places
		{"1.5", "JPY", 0, true},
		{"abc", "USD", 0, true},
		{"", "USD", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.in, tc.code)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q, %s) should fail", tc.in, tc.code)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q, %s) failed: %v", tc.in, tc.code, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q, %s) = %d, want %d", tc.in, tc.code, got, tc.want)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	if got := Cents(123456).Format("USD"); got != "$1,234.56" {
		t.Errorf("Format = %q, want %q", got, "$1,234.56")
	}
	if got := Cents(500).SignedFormat("USD"); got != "+$5.00" {
		t.Errorf("SignedFormat = %q, want %q", got, "+$5.00")
	}
	if got := Cents(-500).SignedFormat("USD"); got != "-$5.00" {
		t.Errorf("SignedFormat = %q, want %q", got, "-$5.00")
	}
}

func TestMoneyQuantityMath(t *testing.T) {
	// 3 units at 33.33 each.
	if got := Cents(3333).MulQty(Q(3)); got != Cents(9999) {
		t.Errorf("MulQty = %d, want 9999", got)
	}
	// Per-unit price rounds to the nearest cent.
	if got := Cents(10000).DivQty(Q(3)); got != Cents(3333) {
		t.Errorf("DivQty = %d, want 3333", got)
	}
	if got := Cents(10001).DivQty(Q(3)); got != Cents(3334) {
		t.Errorf("DivQty = %d, want 3334", got)
	}
	// Fractional quantities work through decimal math.
	if got := Cents(600000).MulQty(Q(0.5)); got != Cents(300000) {
		t.Errorf("MulQty(0.5) = %d, want 300000", got)
	}
	if got := Cents(100).DivQty(Q(0)); got != 0 {
		t.Errorf("DivQty by zero = %d, want 0", got)
	}
}

func TestMoneyPredicates(t *testing.T) {
	if !Cents(0).IsZero() || Cents(1).IsZero() {
		t.Error("IsZero misbehaves")
	}
	if !Cents(-1).IsNegative() || Cents(1).IsNegative() {
		t.Error("IsNegative misbehaves")
	}
	if got := Cents(-42).Abs(); got != Cents(42) {
		t.Errorf("Abs = %d, want 42", got)
	}
	if got := Cents(42).Neg(); got != Cents(-42) {
		t.Errorf("Neg = %d, want -42", got)
	}
}
