package stdlib

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/docker/go-units"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) fileFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("file_read", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			path, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fileError(path, err)
			}
			return str(string(data)), nil
		}),
		native("file_write", 2, writeFunc(os.O_WRONLY|os.O_CREATE|os.O_TRUNC)),
		native("file_append", 2, writeFunc(os.O_WRONLY|os.O_CREATE|os.O_APPEND)),
		native("file_exists", 1, statPredicate(func(fs.FileInfo) bool { return true })),
		native("is_file", 1, statPredicate(func(info fs.FileInfo) bool { return info.Mode().IsRegular() })),
		native("is_dir", 1, statPredicate(fs.FileInfo.IsDir)),
		native("file_delete", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			path, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			if err := os.Remove(path); err != nil {
				return nil, fileError(path, err)
			}
			return boolean(true), nil
		}),
		native("file_copy", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			src, dst, err := stringPair(args)
			if err != nil {
				return nil, err
			}
			if err := copyFile(src, dst); err != nil {
				return nil, err
			}
			return boolean(true), nil
		}),
		native("file_move", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			src, dst, err := stringPair(args)
			if err != nil {
				return nil, err
			}
			if err := os.Rename(src, dst); err != nil {
				return nil, fileError(src, err)
			}
			return boolean(true), nil
		}),
		native("file_size", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			path, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			info, err := os.Stat(path)
			if err != nil {
				return integer(-1), nil
			}
			return integer(info.Size()), nil
		}),
		native("file_size_text", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			path, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			info, err := os.Stat(path)
			if err != nil {
				return nil, fileError(path, err)
			}
			return str(units.HumanSize(float64(info.Size()))), nil
		}),
		native("list_dir", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			path, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fileError(path, err)
			}
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name()
			}
			sort.Strings(names)
			out := make([]runtime.Value, len(names))
			for i, n := range names {
				out[i] = str(n)
			}
			return list(out), nil
		}),
		native("create_dir", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			path, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(path, 0o755); err != nil {
				return nil, fileError(path, err)
			}
			return boolean(true), nil
		}),
	}
}

// fileError maps an os error onto a FileError with a short reason.
func fileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return diag.File(path, "file not found")
	case errors.Is(err, fs.ErrPermission):
		return diag.File(path, "permission denied")
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return diag.File(path, pathErr.Err.Error())
	}
	return diag.File(path, err.Error())
}

func writeFunc(flag int) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		path, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, flag, 0o644)
		if err != nil {
			return nil, fileError(path, err)
		}
		if _, err := io.WriteString(f, runtime.Display(args[1])); err != nil {
			f.Close()
			return nil, fileError(path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fileError(path, err)
		}
		return boolean(true), nil
	}
}

func statPredicate(pred func(fs.FileInfo) bool) runtime.NativeFunc {
	return func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
		path, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return boolean(false), nil
		}
		return boolean(pred(info)), nil
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fileError(src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fileError(dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fileError(dst, err)
	}
	if err := out.Close(); err != nil {
		return fileError(dst, err)
	}
	return nil
}
