package runtime

import (
	"math/big"
	"testing"
)

var bigSamples = []string{
	"0",
	"1",
	"-1",
	"999999999",
	"1000000000",
	"-1000000000",
	"123456789012345678901234567890",
	"-98765432109876543210",
	"1000000000000000000000000000",
	"18446744073709551616",
	"-9223372036854775808",
	"42",
}

func mustBig(t *testing.T, s string) BigInteger {
	t.Helper()
	b, err := ParseBigInteger(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return b
}

func refBig(s string) *big.Int {
	n, _ := new(big.Int).SetString(s, 10)
	return n
}

func TestBigIntegerParseAndFormat(t *testing.T) {
	for _, s := range bigSamples {
		if got := mustBig(t, s).String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
	if got := mustBig(t, "+000123").String(); got != "123" {
		t.Fatalf("leading zeros: %q", got)
	}
	if got := mustBig(t, "-0").String(); got != "0" {
		t.Fatalf("negative zero: %q", got)
	}
	for _, bad := range []string{"", "-", "12a", "1.5"} {
		if _, err := ParseBigInteger(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestBigIntegerArithmeticMatchesReference(t *testing.T) {
	for _, x := range bigSamples {
		for _, y := range bigSamples {
			a, b := mustBig(t, x), mustBig(t, y)
			ra, rb := refBig(x), refBig(y)

			if got, want := a.Add(b).String(), new(big.Int).Add(ra, rb).String(); got != want {
				t.Fatalf("%s + %s = %s, want %s", x, y, got, want)
			}
			if got, want := a.Sub(b).String(), new(big.Int).Sub(ra, rb).String(); got != want {
				t.Fatalf("%s - %s = %s, want %s", x, y, got, want)
			}
			if got, want := a.Mul(b).String(), new(big.Int).Mul(ra, rb).String(); got != want {
				t.Fatalf("%s * %s = %s, want %s", x, y, got, want)
			}
			if got, want := a.Cmp(b), ra.Cmp(rb); got != want {
				t.Fatalf("cmp(%s, %s) = %d, want %d", x, y, got, want)
			}
			if rb.Sign() == 0 {
				if _, _, err := a.QuoRem(b); err == nil {
					t.Fatalf("%s / 0 should fail", x)
				}
				continue
			}
			q, r, err := a.QuoRem(b)
			if err != nil {
				t.Fatalf("%s / %s: %v", x, y, err)
			}
			wq, wr := new(big.Int).QuoRem(ra, rb, new(big.Int))
			if q.String() != wq.String() || r.String() != wr.String() {
				t.Fatalf("%s quorem %s = (%s, %s), want (%s, %s)", x, y, q, r, wq, wr)
			}
		}
	}
}

func TestBigIntegerSubtractionIsReal(t *testing.T) {
	diff := NewBigInteger(10).Sub(NewBigInteger(3))
	if diff.String() != "7" {
		t.Fatalf("10 - 3 = %s", diff)
	}
	rem, err := NewBigInteger(-7).Rem(NewBigInteger(3))
	if err != nil || rem.String() != "-1" {
		t.Fatalf("-7 remainder 3 = %s (%v)", rem, err)
	}
}

func TestBigIntegerInt64Conversion(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"-9223372036854775808", -9223372036854775808, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"123456789012345678901234567890", 0, false},
	}
	for _, tc := range cases {
		got, ok := mustBig(t, tc.in).Int64()
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Int64(%s) = %d, %v", tc.in, got, ok)
		}
	}
	if NewBigInteger(-9223372036854775808).String() != "-9223372036854775808" {
		t.Fatalf("min int64 conversion")
	}
}

func TestBigIntegerPow(t *testing.T) {
	got, err := NewBigInteger(2).Pow(100)
	if err != nil {
		t.Fatalf("pow: %v", err)
	}
	if want := new(big.Int).Exp(big.NewInt(2), big.NewInt(100), nil).String(); got.String() != want {
		t.Fatalf("2^100 = %s, want %s", got, want)
	}
	if _, err := NewBigInteger(2).Pow(-1); err == nil {
		t.Fatalf("expected negative exponent error")
	}
}
