package stdlib

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) stringFuncs() []runtime.NativeFunctionValue {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	return []runtime.NativeFunctionValue{
		native("uppercase", 1, stringUnary(upper.String)),
		native("lowercase", 1, stringUnary(lower.String)),
		native("capitalize", 1, stringUnary(func(s string) string {
			runes := []rune(s)
			if len(runes) == 0 {
				return s
			}
			return upper.String(string(runes[0])) + string(runes[1:])
		})),
		native("string_length", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return integer(int64(len([]rune(s)))), nil
		}),
		native("trim", 1, stringUnary(strings.TrimSpace)),
		native("split", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, sep, err := stringPair(args)
			if err != nil {
				return nil, err
			}
			parts := strings.Split(s, sep)
			out := make([]runtime.Value, len(parts))
			for i, p := range parts {
				out[i] = str(p)
			}
			return list(out), nil
		}),
		native("join", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			sep, err := stringArg(args, 1)
			if err != nil {
				return nil, err
			}
			parts := make([]string, len(items))
			for i, item := range items {
				parts[i] = runtime.Display(item)
			}
			return str(strings.Join(parts, sep)), nil
		}),
		native("replace", 3, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, old, err := stringPair(args)
			if err != nil {
				return nil, err
			}
			repl, err := stringArg(args, 2)
			if err != nil {
				return nil, err
			}
			return str(strings.ReplaceAll(s, old, repl)), nil
		}),
		native("starts_with", 2, stringPredicate(strings.HasPrefix)),
		native("ends_with", 2, stringPredicate(strings.HasSuffix)),
		native("contains", 2, stringPredicate(strings.Contains)),
		native("substring", 3, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			start, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			length, err := intArg(args, 2)
			if err != nil {
				return nil, err
			}
			runes := []rune(s)
			if start < 0 || start > int64(len(runes)) {
				return nil, diag.Index(start, len(runes))
			}
			end := int64(len(runes))
			if length >= 0 && start+length < end {
				end = start + length
			}
			return str(string(runes[start:end])), nil
		}),
		native("index_of", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, sub, err := stringPair(args)
			if err != nil {
				return nil, err
			}
			byteIdx := strings.Index(s, sub)
			if byteIdx < 0 {
				return integer(-1), nil
			}
			return integer(int64(len([]rune(s[:byteIdx])))), nil
		}),
		native("string_reverse", 1, stringUnary(func(s string) string {
			runes := []rune(s)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes)
		})),
		native("string_repeat", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			n, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			if n <= 0 {
				return str(""), nil
			}
			return str(strings.Repeat(s, int(n))), nil
		}),
		native("pad_left", -1, padFunc("pad_left", true)),
		native("pad_right", -1, padFunc("pad_right", false)),
		native("to_number", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return parseNumber(s)
		}),
		native("to_list", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, 0, len(s))
			for _, r := range s {
				out = append(out, str(string(r)))
			}
			return list(out), nil
		}),
		native("is_empty", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			switch v := args[0].(type) {
			case runtime.StringValue:
				return boolean(v.Val == ""), nil
			case runtime.ListValue:
				return boolean(len(v.Elements) == 0), nil
			case runtime.DictValue:
				return boolean(len(v.Entries) == 0), nil
			}
			return nil, diag.Type("String", runtime.TypeName(args[0]))
		}),
	}
}

func stringUnary(fn func(string) string) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		s, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return str(fn(s)), nil
	}
}

func stringPredicate(fn func(string, string) bool) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		a, b, err := stringPair(args)
		if err != nil {
			return nil, err
		}
		return boolean(fn(a, b)), nil
	}
}

func stringPair(args []runtime.Value) (string, string, error) {
	a, err := stringArg(args, 0)
	if err != nil {
		return "", "", err
	}
	b, err := stringArg(args, 1)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// padFunc takes (text, width [, fill]); fill defaults to a space and only
// its first character is used.
func padFunc(name string, left bool) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		if err := arityBetween(name, args, 2, 3); err != nil {
			return nil, err
		}
		s, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		width, err := intArg(args, 1)
		if err != nil {
			return nil, err
		}
		fill := " "
		if len(args) == 3 {
			f, err := stringArg(args, 2)
			if err != nil {
				return nil, err
			}
			if f == "" {
				return nil, diag.Runtimef("%s needs a non-empty fill character", name)
			}
			fill = string([]rune(f)[0])
		}
		missing := int(width) - len([]rune(s))
		if missing <= 0 {
			return str(s), nil
		}
		pad := strings.Repeat(fill, missing)
		if left {
			return str(pad + s), nil
		}
		return str(s + pad), nil
	}
}

// parseNumber reads text with a '.' as a Float, otherwise as an Integer,
// falling back to a BigInteger when the digits overflow.
func parseNumber(s string) (runtime.Value, error) {
	text := strings.TrimSpace(s)
	invalid := diag.Runtimef("Invalid number format: '%s'", s)
	if text == "" {
		return nil, invalid
	}
	if strings.ContainsRune(text, '.') {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, invalid
		}
		return float(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return integer(n), nil
	}
	b, err := runtime.ParseBigInteger(text)
	if err != nil {
		return nil, invalid
	}
	return runtime.BigIntegerValue{Val: b}, nil
}
