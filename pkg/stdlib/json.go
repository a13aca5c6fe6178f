package stdlib

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) jsonFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("json_parse", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			text, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			dec := json.NewDecoder(strings.NewReader(text))
			dec.UseNumber()
			var raw any
			if err := dec.Decode(&raw); err != nil {
				return nil, diag.Runtimef("Invalid JSON: %v", err)
			}
			if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				return nil, diag.Runtime("Invalid JSON: trailing data")
			}
			return fromJSON(raw), nil
		}),
		native("json_stringify", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			data, err := encodeJSON(args[0], false)
			if err != nil {
				return nil, err
			}
			return str(string(data)), nil
		}),
		native("json_format", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			data, err := encodeJSON(args[0], true)
			if err != nil {
				return nil, err
			}
			return str(string(data)), nil
		}),
	}
}

func fromJSON(raw any) runtime.Value {
	switch v := raw.(type) {
	case nil:
		return runtime.NullValue{}
	case bool:
		return boolean(v)
	case string:
		return str(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return integer(n)
		}
		if b, err := runtime.ParseBigInteger(v.String()); err == nil {
			return runtime.BigIntegerValue{Val: b}
		}
		f, _ := v.Float64()
		return float(f)
	case []any:
		out := make([]runtime.Value, len(v))
		for i, item := range v {
			out[i] = fromJSON(item)
		}
		return list(out)
	case map[string]any:
		out := make(map[string]runtime.Value, len(v))
		for k, item := range v {
			out[k] = fromJSON(item)
		}
		return runtime.DictValue{Entries: out}
	}
	return runtime.NullValue{}
}

func toJSON(v runtime.Value) (any, error) {
	switch val := v.(type) {
	case nil, runtime.NullValue:
		return nil, nil
	case runtime.BoolValue:
		return val.Val, nil
	case runtime.IntegerValue:
		return val.Val, nil
	case runtime.FloatValue:
		return val.Val, nil
	case runtime.BigIntegerValue:
		return json.Number(val.Val.String()), nil
	case runtime.StringValue:
		return val.Val, nil
	case runtime.CharValue:
		return string(val.Val), nil
	case runtime.ListValue:
		out := make([]any, len(val.Elements))
		for i, item := range val.Elements {
			converted, err := toJSON(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case runtime.DictValue:
		out := make(map[string]any, len(val.Entries))
		for k, item := range val.Entries {
			converted, err := toJSON(item)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	}
	return nil, diag.Type("JSON value", runtime.TypeName(v))
}

// encodeJSON writes v without HTML escaping. Object keys come out sorted.
func encodeJSON(v runtime.Value, indent bool) ([]byte, error) {
	raw, err := toJSON(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(raw); err != nil {
		return nil, diag.Runtimef("Cannot encode JSON: %v", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
