package stdlib

import (
	"sort"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

// List natives never mutate their argument; each returns a new list.
func (l *library) listFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("list_length", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			return integer(int64(len(items))), nil
		}),
		native("list_append", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, 0, len(items)+1)
			out = append(append(out, items...), args[1])
			return list(out), nil
		}),
		native("list_prepend", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, 0, len(items)+1)
			out = append(append(out, args[1]), items...)
			return list(out), nil
		}),
		native("list_insert", 3, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			idx, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			at := clamp(idx, len(items))
			out := make([]runtime.Value, 0, len(items)+1)
			out = append(out, items[:at]...)
			out = append(out, args[2])
			out = append(out, items[at:]...)
			return list(out), nil
		}),
		native("list_remove", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			idx, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= int64(len(items)) {
				return runtime.NewList(items), nil
			}
			out := make([]runtime.Value, 0, len(items)-1)
			out = append(out, items[:idx]...)
			out = append(out, items[idx+1:]...)
			return list(out), nil
		}),
		native("list_get", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			idx, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= int64(len(items)) {
				return nil, diag.Index(idx, len(items))
			}
			return items[idx], nil
		}),
		native("list_set", 3, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			idx, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= int64(len(items)) {
				return nil, diag.Index(idx, len(items))
			}
			out := runtime.NewList(items)
			out.Elements[idx] = args[2]
			return out, nil
		}),
		native("list_slice", 3, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			start, end, err := intPair(args[1:])
			if err != nil {
				return nil, err
			}
			from, to := clamp(start, len(items)), clamp(end, len(items))
			if from >= to {
				return list([]runtime.Value{}), nil
			}
			return runtime.NewList(items[from:to]), nil
		}),
		native("list_sort", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := runtime.NewList(items)
			var sortErr error
			sort.SliceStable(out.Elements, func(i, j int) bool {
				cmp, ok := runtime.Compare(out.Elements[i], out.Elements[j])
				if !ok && sortErr == nil {
					sortErr = diag.Runtimef("Cannot sort values of type %s and %s",
						runtime.TypeName(out.Elements[i]), runtime.TypeName(out.Elements[j]))
				}
				return cmp < 0
			})
			if sortErr != nil {
				return nil, sortErr
			}
			return out, nil
		}),
		native("list_reverse", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, len(items))
			for i, item := range items {
				out[len(items)-1-i] = item
			}
			return list(out), nil
		}),
		native("list_contains", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			return boolean(indexOf(items, args[1]) >= 0), nil
		}),
		native("list_index_of", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			return integer(int64(indexOf(items, args[1]))), nil
		}),
		native("list_min", 1, listExtremum("min", -1)),
		native("list_max", 1, listExtremum("max", 1)),
		native("list_sum", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			var isum int64
			var fsum float64
			allInts := true
			for _, item := range items {
				switch n := item.(type) {
				case runtime.IntegerValue:
					isum += n.Val
					fsum += float64(n.Val)
				case runtime.FloatValue:
					allInts = false
					fsum += n.Val
				default:
					return nil, diag.Type("Number", runtime.TypeName(item))
				}
			}
			if allInts {
				return integer(isum), nil
			}
			return float(fsum), nil
		}),
		native("list_filter", 2, func(ctx *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, fn, err := listAndCallable(args)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, 0, len(items))
			for _, item := range items {
				keep, err := ctx.Invoke(fn, []runtime.Value{item})
				if err != nil {
					return nil, err
				}
				if runtime.Truthy(keep) {
					out = append(out, item)
				}
			}
			return list(out), nil
		}),
		native("list_map", 2, func(ctx *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, fn, err := listAndCallable(args)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, len(items))
			for i, item := range items {
				if out[i], err = ctx.Invoke(fn, []runtime.Value{item}); err != nil {
					return nil, err
				}
			}
			return list(out), nil
		}),
		native("list_reduce", 3, func(ctx *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, fn, err := listAndCallable(args)
			if err != nil {
				return nil, err
			}
			acc := args[2]
			for _, item := range items {
				if acc, err = ctx.Invoke(fn, []runtime.Value{acc, item}); err != nil {
					return nil, err
				}
			}
			return acc, nil
		}),
		native("list_unique", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, 0, len(items))
			for _, item := range items {
				if indexOf(out, item) < 0 {
					out = append(out, item)
				}
			}
			return list(out), nil
		}),
		native("list_flatten", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := make([]runtime.Value, 0, len(items))
			for _, item := range items {
				if inner, ok := item.(runtime.ListValue); ok {
					out = append(out, inner.Elements...)
					continue
				}
				out = append(out, item)
			}
			return list(out), nil
		}),
	}
}

// clamp pins idx into [0, size].
func clamp(idx int64, size int) int {
	switch {
	case idx < 0:
		return 0
	case idx > int64(size):
		return size
	default:
		return int(idx)
	}
}

func indexOf(items []runtime.Value, target runtime.Value) int {
	for i, item := range items {
		if runtime.Equal(item, target) {
			return i
		}
	}
	return -1
}

func listAndCallable(args []runtime.Value) ([]runtime.Value, runtime.Value, error) {
	items, err := listArg(args, 0)
	if err != nil {
		return nil, nil, err
	}
	fn, err := callableArg(args, 1)
	if err != nil {
		return nil, nil, err
	}
	return items, fn, nil
}

func listExtremum(name string, sign int) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		items, err := listArg(args, 0)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, diag.Runtimef("Cannot find %s of empty list", name)
		}
		best := items[0]
		for _, item := range items[1:] {
			cmp, ok := runtime.Compare(item, best)
			if !ok {
				return nil, diag.Runtimef("Cannot compare values of type %s and %s",
					runtime.TypeName(item), runtime.TypeName(best))
			}
			if cmp*sign > 0 {
				best = item
			}
		}
		return best, nil
	}
}
