package stdlib

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (l *library) networkFuncs() []runtime.NativeFunctionValue {
	return []runtime.NativeFunctionValue{
		native("http_get", 1, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			url, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				return nil, diag.Runtimef("Invalid URL '%s'", url)
			}
			return l.send(req)
		}),
		native("http_post", 2, func(_ *runtime.CallContext, args []runtime.Value) (runtime.Value, error) {
			url, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			body, contentType := "", "text/plain; charset=utf-8"
			switch args[1].(type) {
			case runtime.DictValue, runtime.ListValue:
				data, err := encodeJSON(args[1], false)
				if err != nil {
					return nil, err
				}
				body, contentType = string(data), "application/json"
			default:
				body = runtime.Display(args[1])
			}
			req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
			if err != nil {
				return nil, diag.Runtimef("Invalid URL '%s'", url)
			}
			req.Header.Set("Content-Type", contentType)
			return l.send(req)
		}),
	}
}

// send performs req and returns the response body as a String. Statuses
// of 400 and above are errors carrying the status line.
func (l *library) send(req *http.Request) (runtime.Value, error) {
	resp, err := l.cfg.client.Do(req)
	if err != nil {
		return nil, diag.Runtimef("HTTP %s %s failed: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, diag.Runtimef("HTTP %s %s failed reading body: %v", req.Method, req.URL, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, diag.Runtimef("HTTP %s %s returned %s", req.Method, req.URL, resp.Status)
	}
	return str(buf.String()), nil
}
