package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	bigBase       = 1_000_000_000
	bigBaseDigits = 9
)

// BigInteger is an arbitrary-length signed integer stored as base 10^9
// chunks, least significant first. The zero value is zero. Every
// constructor and operation returns a normalized value: no leading zero
// chunks, and zero is never negative.
type BigInteger struct {
	chunks   []uint32
	negative bool
}

// NewBigInteger converts an int64.
func NewBigInteger(v int64) BigInteger {
	var mag uint64
	neg := v < 0
	if neg {
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}
	var chunks []uint32
	for mag > 0 {
		chunks = append(chunks, uint32(mag%bigBase))
		mag /= bigBase
	}
	return normalize(chunks, neg)
}

// ParseBigInteger parses an optionally signed run of decimal digits.
func ParseBigInteger(s string) (BigInteger, error) {
	text := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		neg = text[0] == '-'
		text = text[1:]
	}
	if text == "" {
		return BigInteger{}, fmt.Errorf("invalid big integer %q", s)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return BigInteger{}, fmt.Errorf("invalid big integer %q", s)
		}
	}
	var chunks []uint32
	for end := len(text); end > 0; end -= bigBaseDigits {
		start := end - bigBaseDigits
		if start < 0 {
			start = 0
		}
		n, err := strconv.ParseUint(text[start:end], 10, 32)
		if err != nil {
			return BigInteger{}, fmt.Errorf("invalid big integer %q: %w", s, err)
		}
		chunks = append(chunks, uint32(n))
	}
	return normalize(chunks, neg), nil
}

func normalize(chunks []uint32, negative bool) BigInteger {
	n := len(chunks)
	for n > 0 && chunks[n-1] == 0 {
		n--
	}
	chunks = chunks[:n]
	if n == 0 {
		return BigInteger{}
	}
	return BigInteger{chunks: chunks, negative: negative}
}

func (b BigInteger) IsZero() bool { return len(b.chunks) == 0 }

// Sign returns -1, 0 or 1.
func (b BigInteger) Sign() int {
	switch {
	case b.IsZero():
		return 0
	case b.negative:
		return -1
	default:
		return 1
	}
}

func (b BigInteger) String() string {
	if b.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if b.negative {
		sb.WriteByte('-')
	}
	top := len(b.chunks) - 1
	sb.WriteString(strconv.FormatUint(uint64(b.chunks[top]), 10))
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", b.chunks[i])
	}
	return sb.String()
}

// Int64 returns the value when it fits in an int64.
func (b BigInteger) Int64() (int64, bool) {
	if len(b.chunks) > 3 {
		return 0, false
	}
	var mag uint64
	for i := len(b.chunks) - 1; i >= 0; i-- {
		next := mag*bigBase + uint64(b.chunks[i])
		if mag > (1<<64-1)/bigBase || next < mag {
			return 0, false
		}
		mag = next
	}
	if b.negative {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag-1) - 1, true
	}
	if mag > 1<<63-1 {
		return 0, false
	}
	return int64(mag), true
}

// Float64 returns the nearest float, losing precision for large values.
func (b BigInteger) Float64() float64 {
	f, _ := strconv.ParseFloat(b.String(), 64)
	return f
}

func (b BigInteger) Neg() BigInteger {
	return normalize(b.chunks, !b.negative)
}

func (b BigInteger) Abs() BigInteger {
	return normalize(b.chunks, false)
}

// Cmp returns -1, 0 or 1 as b is less than, equal to or greater than o.
func (b BigInteger) Cmp(o BigInteger) int {
	if b.negative != o.negative {
		if b.negative {
			return -1
		}
		return 1
	}
	c := cmpMag(b.chunks, o.chunks)
	if b.negative {
		return -c
	}
	return c
}

func (b BigInteger) Add(o BigInteger) BigInteger {
	if b.negative == o.negative {
		return normalize(addMag(b.chunks, o.chunks), b.negative)
	}
	// Opposite signs: subtract the smaller magnitude from the larger.
	switch cmpMag(b.chunks, o.chunks) {
	case 0:
		return BigInteger{}
	case 1:
		return normalize(subMag(b.chunks, o.chunks), b.negative)
	default:
		return normalize(subMag(o.chunks, b.chunks), o.negative)
	}
}

func (b BigInteger) Sub(o BigInteger) BigInteger {
	return b.Add(o.Neg())
}

func (b BigInteger) Mul(o BigInteger) BigInteger {
	if b.IsZero() || o.IsZero() {
		return BigInteger{}
	}
	return normalize(mulMag(b.chunks, o.chunks), b.negative != o.negative)
}

// QuoRem divides with truncation toward zero; the remainder takes the sign
// of the dividend. Division by zero returns an error.
func (b BigInteger) QuoRem(o BigInteger) (BigInteger, BigInteger, error) {
	if o.IsZero() {
		return BigInteger{}, BigInteger{}, fmt.Errorf("division by zero")
	}
	q, r := divMag(b.chunks, o.chunks)
	return normalize(q, b.negative != o.negative), normalize(r, b.negative), nil
}

func (b BigInteger) Quo(o BigInteger) (BigInteger, error) {
	q, _, err := b.QuoRem(o)
	return q, err
}

func (b BigInteger) Rem(o BigInteger) (BigInteger, error) {
	_, r, err := b.QuoRem(o)
	return r, err
}

// Pow raises b to a non-negative exponent by repeated squaring.
func (b BigInteger) Pow(exp int64) (BigInteger, error) {
	if exp < 0 {
		return BigInteger{}, fmt.Errorf("negative exponent %d", exp)
	}
	result := NewBigInteger(1)
	base := b
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result, nil
}

//-----------------------------------------------------------------------------
// Magnitude arithmetic on little-endian base 10^9 chunks
//-----------------------------------------------------------------------------

func cmpMag(a, b []uint32) int {
	a = trim(a)
	b = trim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func trim(a []uint32) []uint32 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i := range a {
		sum := a[i] + carry
		if i < len(b) {
			sum += b[i]
		}
		if sum >= bigBase {
			sum -= bigBase
			carry = 1
		} else {
			carry = 0
		}
		out[i] = sum
	}
	out[len(a)] = carry
	return out
}

// subMag computes a-b for |a| >= |b|.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := range a {
		diff := int64(a[i]) - borrow
		if i < len(b) {
			diff -= int64(b[i])
		}
		if diff < 0 {
			diff += bigBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(diff)
	}
	return out
}

func mulMag(a, b []uint32) []uint32 {
	acc := make([]uint64, len(a)+len(b)+1)
	for i, x := range a {
		var carry uint64
		for j, y := range b {
			cur := acc[i+j] + uint64(x)*uint64(y) + carry
			acc[i+j] = cur % bigBase
			carry = cur / bigBase
		}
		k := i + len(b)
		for carry > 0 {
			cur := acc[k] + carry
			acc[k] = cur % bigBase
			carry = cur / bigBase
			k++
		}
	}
	out := make([]uint32, len(acc))
	for i, v := range acc {
		out[i] = uint32(v)
	}
	return out
}

func mulSmall(a []uint32, m uint32) []uint32 {
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i, x := range a {
		cur := uint64(x)*uint64(m) + carry
		out[i] = uint32(cur % bigBase)
		carry = cur / bigBase
	}
	out[len(a)] = uint32(carry)
	return out
}

// divMag is schoolbook long division: each quotient chunk is found by
// binary search over [0, 10^9).
func divMag(a, b []uint32) (quo, rem []uint32) {
	b = trim(b)
	if cmpMag(a, b) < 0 {
		return nil, append([]uint32(nil), a...)
	}
	quo = make([]uint32, len(a))
	var r []uint32
	for i := len(a) - 1; i >= 0; i-- {
		// r = r*base + a[i]
		r = append([]uint32{a[i]}, r...)
		r = trim(r)
		lo, hi := uint32(0), uint32(bigBase-1)
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			if cmpMag(mulSmall(b, mid), r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		if lo > 0 {
			r = trim(subMag(r, trim(mulSmall(b, lo))))
		}
		quo[i] = lo
	}
	return quo, r
}
