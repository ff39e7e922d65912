package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.01", 1, true},
		{"12.345", 1234, true},
		{"12.346", 1235, true},
		{"", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: expected ok, got %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("%q: got %d, want %d", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 85000}
	b := Money{Cents: 140000}
	if got := a.Add(b); got.Cents != 225000 {
		t.Fatalf("Add: got %d", got.Cents)
	}
	if got := b.Sub(a); got.Cents != 55000 {
		t.Fatalf("Sub: got %d", got.Cents)
	}
	if got := (Money{Cents: 1234}).Units(); got != 12.34 {
		t.Fatalf("Units: got %v", got)
	}
}
