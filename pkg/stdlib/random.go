package stdlib

import (
	"math/rand"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) randomFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("random_int", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			lo, hi, err := intPair(args)
			if err != nil {
				return nil, err
			}
			if lo > hi {
				return nil, diag.Runtimef("random_int needs min <= max, got %d and %d", lo, hi)
			}
			span := uint64(hi - lo)
			if span == ^uint64(0) {
				return integer(int64(l.rng.Uint64())), nil
			}
			return integer(lo + int64(l.rng.Uint64()%(span+1))), nil
		}),
		native("random_float", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			lo, err := numberArg(args, 0)
			if err != nil {
				return nil, err
			}
			hi, err := numberArg(args, 1)
			if err != nil {
				return nil, err
			}
			return float(lo + l.rng.Float64()*(hi-lo)), nil
		}),
		native("random_choice", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return nil, diag.Runtime("Cannot choose from an empty list")
			}
			return items[l.rng.Intn(len(items))], nil
		}),
		native("random_shuffle", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			out := runtime.NewList(items)
			l.rng.Shuffle(len(out.Elements), func(i, j int) {
				out.Elements[i], out.Elements[j] = out.Elements[j], out.Elements[i]
			})
			return out, nil
		}),
		native("random_sample", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			items, err := listArg(args, 0)
			if err != nil {
				return nil, err
			}
			k, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			if k < 0 || k > int64(len(items)) {
				return nil, diag.Runtimef("Sample size %d is out of range for a list of %d", k, len(items))
			}
			picked := l.rng.Perm(len(items))[:k]
			out := make([]runtime.Value, len(picked))
			for i, idx := range picked {
				out[i] = items[idx]
			}
			return list(out), nil
		}),
		native("random_seed", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			seed, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			l.rng = rand.New(rand.NewSource(seed))
			return runtime.NullValue{}, nil
		}),
	}
}
