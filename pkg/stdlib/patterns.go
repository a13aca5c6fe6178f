package stdlib

import (
	"regexp"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[A-Za-z0-9.-]+(:[0-9]+)?(/[^\s]*)?$`)
)

func (l *library) patternFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("pattern_match", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			re, text, err := patternAndText(args)
			if err != nil {
				return nil, err
			}
			return boolean(re.MatchString(text)), nil
		}),
		native("pattern_find_all", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			re, text, err := patternAndText(args)
			if err != nil {
				return nil, err
			}
			matches := re.FindAllString(text, -1)
			out := make([]runtime.Value, len(matches))
			for i, m := range matches {
				out[i] = str(m)
			}
			return list(out), nil
		}),
		native("pattern_replace", 3, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			re, err := compilePattern(args, 0)
			if err != nil {
				return nil, err
			}
			repl, err := stringArg(args, 1)
			if err != nil {
				return nil, err
			}
			text, err := stringArg(args, 2)
			if err != nil {
				return nil, err
			}
			return str(re.ReplaceAllString(text, repl)), nil
		}),
		native("pattern_split", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			re, text, err := patternAndText(args)
			if err != nil {
				return nil, err
			}
			parts := re.Split(text, -1)
			out := make([]runtime.Value, len(parts))
			for i, p := range parts {
				out[i] = str(p)
			}
			return list(out), nil
		}),
		native("is_email", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return boolean(emailPattern.MatchString(s)), nil
		}),
		native("is_url", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return boolean(urlPattern.MatchString(s)), nil
		}),
	}
}

func compilePattern(args []runtime.Value, idx int) (*regexp.Regexp, error) {
	pattern, err := stringArg(args, idx)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, diag.Runtimef("Invalid pattern '%s'", pattern)
	}
	return re, nil
}

// patternAndText reads the (pattern, text) argument pair.
func patternAndText(args []runtime.Value) (*regexp.Regexp, string, error) {
	re, err := compilePattern(args, 0)
	if err != nil {
		return nil, "", err
	}
	text, err := stringArg(args, 1)
	if err != nil {
		return nil, "", err
	}
	return re, text, nil
}
