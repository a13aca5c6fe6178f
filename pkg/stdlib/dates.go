package stdlib

import (
	"strings"
	"time"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

const secondsPerDay = 86400

// Dates are Integer Unix timestamps in seconds.
func (l *library) dateFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("date_now", 0, func(_ *runtime.CallContext, _ []runtime.Value) (runtime.Value, error) {
			return integer(l.cfg.now().Unix()), nil
		}),
		native("date_format", -1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			if err := arityBetween("date_format", args, 1, 2); err != nil {
				return nil, err
			}
			ts, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			format := "%Y-%m-%d %H:%M:%S"
			if len(args) == 2 {
				if format, err = stringArg(args, 1); err != nil {
					return nil, err
				}
			}
			return str(time.Unix(ts, 0).In(l.cfg.location).Format(goLayout(format))), nil
		}),
		native("date_parse", -1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			if err := arityBetween("date_parse", args, 1, 2); err != nil {
				return nil, err
			}
			text, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			format := "%Y-%m-%d"
			if len(args) == 2 {
				if format, err = stringArg(args, 1); err != nil {
					return nil, err
				}
			}
			t, err := time.ParseInLocation(goLayout(format), text, l.cfg.location)
			if err != nil {
				return nil, diag.Runtimef("Cannot parse date '%s' with format '%s'", text, format)
			}
			return integer(t.Unix()), nil
		}),
		native("date_add_days", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			ts, days, err := intPair(args)
			if err != nil {
				return nil, err
			}
			return integer(ts + days*secondsPerDay), nil
		}),
		native("date_diff_days", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			a, b, err := intPair(args)
			if err != nil {
				return nil, err
			}
			return integer((b - a) / secondsPerDay), nil
		}),
	}
}

var strftime = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'%': "%",
}

// goLayout converts a strftime-style format into a time layout. Unknown
// directives are kept literally.
func goLayout(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			b.WriteByte(c)
			continue
		}
		if layout, ok := strftime[format[i+1]]; ok {
			b.WriteString(layout)
		} else {
			b.WriteByte(c)
			b.WriteByte(format[i+1])
		}
		i++
	}
	return b.String()
}
