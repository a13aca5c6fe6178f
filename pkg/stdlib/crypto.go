package stdlib

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/google/uuid"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) cryptoFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("sha256", 1, stringUnary(func(s string) string {
			sum := sha256.Sum256([]byte(s))
			return hex.EncodeToString(sum[:])
		})),
		native("md5", 1, stringUnary(func(s string) string {
			sum := md5.Sum([]byte(s))
			return hex.EncodeToString(sum[:])
		})),
		native("base64_encode", 1, stringUnary(func(s string) string {
			return base64.StdEncoding.EncodeToString([]byte(s))
		})),
		native("base64_decode", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			data, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, diag.Runtime("Invalid base64 input")
			}
			return str(string(data)), nil
		}),
		native("random_token", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			n, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			if n <= 0 {
				return nil, diag.Runtimef("Token length must be positive, got %d", n)
			}
			buf := make([]byte, (n+1)/2)
			if _, err := rand.Read(buf); err != nil {
				return nil, diag.Runtimef("Cannot generate token: %v", err)
			}
			return str(hex.EncodeToString(buf)[:n]), nil
		}),
		native("uuid", 0, func(_ *runtime.CallContext, _ []runtime.Value) (runtime.Value, error) {
			return str(uuid.NewString()), nil
		}),
	}
}
