package stdlib

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) mathFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("sqrt", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			x, err := numberArg(args, 0)
			if err != nil {
				return nil, err
			}
			if x < 0 {
				return nil, diag.Runtime("Cannot take square root of a negative number")
			}
			return float(math.Sqrt(x)), nil
		}),
		native("pow", 2, floatBinary(math.Pow)),
		native("abs", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			switch v := args[0].(type) {
			case runtime.IntegerValue:
				if v.Val < 0 {
					return integer(-v.Val), nil
				}
				return v, nil
			case runtime.FloatValue:
				return float(math.Abs(v.Val)), nil
			case runtime.BigIntegerValue:
				return runtime.BigIntegerValue{Val: v.Val.Abs()}, nil
			}
			return nil, diag.Type("Number", runtime.TypeName(args[0]))
		}),
		native("floor", 1, roundingFunc(math.Floor)),
		native("ceil", 1, roundingFunc(math.Ceil)),
		native("round", 1, roundingFunc(math.Round)),
		native("round_to", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			x, err := numberArg(args, 0)
			if err != nil {
				return nil, err
			}
			places, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			rounded, _ := decimal.NewFromFloat(x).Round(int32(places)).Float64()
			return float(rounded), nil
		}),
		native("sin", 1, floatUnary(math.Sin)),
		native("cos", 1, floatUnary(math.Cos)),
		native("tan", 1, floatUnary(math.Tan)),
		native("log", 1, positiveLog(math.Log)),
		native("log10", 1, positiveLog(math.Log10)),
		native("exp", 1, floatUnary(math.Exp)),
		native("min", -1, extremum("min", -1)),
		native("max", -1, extremum("max", 1)),
		native("factorial", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			n, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, diag.Runtime("Factorial of a negative number is undefined")
			}
			return factorial(n), nil
		}),
		native("gcd", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			a, b, err := intPair(args)
			if err != nil {
				return nil, err
			}
			return integer(gcd(a, b)), nil
		}),
		native("lcm", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			a, b, err := intPair(args)
			if err != nil {
				return nil, err
			}
			if a == 0 || b == 0 {
				return integer(0), nil
			}
			return integer(absInt(a / gcd(a, b) * b)), nil
		}),
		native("is_prime", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			n, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			return boolean(isPrime(n)), nil
		}),
		native("random", 0, func(_ *runtime.CallContext, _ []runtime.Value) (runtime.Value, error) {
			return float(l.rng.Float64()), nil
		}),
		native("pi", 0, func(_ *runtime.CallContext, _ []runtime.Value) (runtime.Value, error) {
			return float(math.Pi), nil
		}),
		native("format_number", -1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			if err := arityBetween("format_number", args, 1, 2); err != nil {
				return nil, err
			}
			x, err := numberArg(args, 0)
			if err != nil {
				return nil, err
			}
			tag := "en"
			if len(args) == 2 {
				if tag, err = stringArg(args, 1); err != nil {
					return nil, err
				}
			}
			lang, err := language.Parse(tag)
			if err != nil {
				return nil, diag.Runtimef("Unknown locale '%s'", tag)
			}
			p := message.NewPrinter(lang)
			if n, ok := args[0].(runtime.IntegerValue); ok {
				return str(p.Sprint(number.Decimal(n.Val))), nil
			}
			return str(p.Sprint(number.Decimal(x))), nil
		}),
	}
}

func (l *library) bigFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("big_integer", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			switch v := args[0].(type) {
			case runtime.IntegerValue:
				return runtime.BigIntegerValue{Val: runtime.NewBigInteger(v.Val)}, nil
			case runtime.BigIntegerValue:
				return v, nil
			case runtime.StringValue:
				b, err := runtime.ParseBigInteger(v.Val)
				if err != nil {
					return nil, diag.Runtimef("Invalid number format: '%s'", v.Val)
				}
				return runtime.BigIntegerValue{Val: b}, nil
			}
			return nil, diag.Type("Integer", runtime.TypeName(args[0]))
		}),
		native("big_divide", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			a, b, err := bigPair(args)
			if err != nil {
				return nil, err
			}
			if b.IsZero() {
				return nil, diag.DivisionByZero()
			}
			q, err := a.Quo(b)
			if err != nil {
				return nil, err
			}
			return runtime.BigIntegerValue{Val: q}, nil
		}),
		native("big_power", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			base, ok := toBig(args[0])
			if !ok {
				return nil, diag.Type("Integer", runtime.TypeName(args[0]))
			}
			exp, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			if exp < 0 {
				return nil, diag.Runtime("Exponent must not be negative")
			}
			p, err := base.Pow(exp)
			if err != nil {
				return nil, err
			}
			return runtime.BigIntegerValue{Val: p}, nil
		}),
		native("big_to_integer", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			b, ok := toBig(args[0])
			if !ok {
				return nil, diag.Type("Integer", runtime.TypeName(args[0]))
			}
			n, fits := b.Int64()
			if !fits {
				return nil, diag.Runtimef("%s does not fit in an Integer", b.String())
			}
			return integer(n), nil
		}),
	}
}

func floatUnary(fn func(float64) float64) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		x, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		return float(fn(x)), nil
	}
}

func floatBinary(fn func(float64, float64) float64) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		a, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numberArg(args, 1)
		if err != nil {
			return nil, err
		}
		return float(fn(a, b)), nil
	}
}

// roundingFunc leaves Integer and BigInteger arguments untouched and turns
// a rounded Float into an Integer.
func roundingFunc(fn func(float64) float64) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		switch v := args[0].(type) {
		case runtime.IntegerValue, runtime.BigIntegerValue:
			return v, nil
		case runtime.FloatValue:
			r := fn(v.Val)
			if math.IsNaN(r) || math.IsInf(r, 0) || r > math.MaxInt64 || r < math.MinInt64 {
				return nil, diag.Runtimef("Cannot convert %s to an Integer", runtime.FormatFloat(v.Val))
			}
			return integer(int64(r)), nil
		}
		return nil, diag.Type("Number", runtime.TypeName(args[0]))
	}
}

func positiveLog(fn func(float64) float64) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		x, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		if x <= 0 {
			return nil, diag.Runtime("Logarithm of a non-positive number is undefined")
		}
		return float(fn(x)), nil
	}
}

// extremum folds its arguments with sign selecting min (-1) or max (1).
// The result is an Integer only when every argument is one.
func extremum(name string, sign int) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		if err := arityBetween(name, args, 1, -1); err != nil {
			return nil, err
		}
		allInts := true
		var best float64
		var bestInt int64
		for idx := range args {
			x, err := numberArg(args, idx)
			if err != nil {
				return nil, err
			}
			n, isInt := args[idx].(runtime.IntegerValue)
			allInts = allInts && isInt
			if idx == 0 || (sign < 0 && x < best) || (sign > 0 && x > best) {
				best = x
			}
			if isInt && (idx == 0 || (sign < 0 && n.Val < bestInt) || (sign > 0 && n.Val > bestInt)) {
				bestInt = n.Val
			}
		}
		if allInts {
			return integer(bestInt), nil
		}
		return float(best), nil
	}
}

func factorial(n int64) runtime.Value {
	acc := int64(1)
	for i := int64(2); i <= n; i++ {
		if acc > math.MaxInt64/i {
			big := runtime.NewBigInteger(acc)
			for ; i <= n; i++ {
				big = big.Mul(runtime.NewBigInteger(i))
			}
			return runtime.BigIntegerValue{Val: big}
		}
		acc *= i
	}
	return integer(acc)
}

func intPair(args []runtime.Value) (int64, int64, error) {
	a, err := intArg(args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := intArg(args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func gcd(a, b int64) int64 {
	a, b = absInt(a), absInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absInt(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func toBig(v runtime.Value) (runtime.BigInteger, bool) {
	switch n := v.(type) {
	case runtime.IntegerValue:
		return runtime.NewBigInteger(n.Val), true
	case runtime.BigIntegerValue:
		return n.Val, true
	}
	return runtime.BigInteger{}, false
}

func bigPair(args []runtime.Value) (runtime.BigInteger, runtime.BigInteger, error) {
	a, ok := toBig(args[0])
	if !ok {
		return runtime.BigInteger{}, runtime.BigInteger{}, diag.Type("Integer", runtime.TypeName(args[0]))
	}
	b, ok := toBig(args[1])
	if !ok {
		return runtime.BigInteger{}, runtime.BigInteger{}, diag.Type("Integer", runtime.TypeName(args[1]))
	}
	return a, b, nil
}
