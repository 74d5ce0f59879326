//go:build js && wasm

package wasm_utils

import (
	"errors"
	"runtime/debug"
	"strings"
	"syscall/js"

	"github.com/norunners/vert"
	riot "github.com/riot/parser/internal"
	"github.com/riot/parser/internal/loc"
)

type JSError struct {
	Message    string                 `js:"message"`
	Stack      string                 `js:"stack"`
	Diagnostic *loc.DiagnosticMessage `js:"diagnostic"`
}

func (err *JSError) Value() js.Value {
	return vert.ValueOf(err).Value
}

// ErrorToJSError converts a parse error. Positioned errors keep their
// diagnostic so callers can point at the source.
func ErrorToJSError(err error) js.Value {
	jsError := JSError{
		Message: strings.TrimSpace(err.Error()),
		Stack:   string(debug.Stack()),
	}
	var msg *loc.DiagnosticMessage
	if errors.As(err, &msg) {
		jsError.Diagnostic = msg
	}
	return jsError.Value()
}

func jsString(j js.Value) string {
	if j.IsUndefined() || j.IsNull() {
		return ""
	}
	return j.String()
}

func jsBool(j js.Value, fallback bool) bool {
	if j.Type() != js.TypeBoolean {
		return fallback
	}
	return j.Bool()
}

// ParseOptions reads { brackets, comments, compact, filename } from a JS
// options object. Missing keys keep their defaults.
func ParseOptions(options js.Value) []riot.ParseOption {
	if options.Type() != js.TypeObject {
		return nil
	}
	defaults := riot.DefaultOptions()
	opts := []riot.ParseOption{
		riot.WithComments(jsBool(options.Get("comments"), defaults.Comments)),
		riot.WithCompact(jsBool(options.Get("compact"), defaults.Compact)),
		riot.WithFilename(jsString(options.Get("filename"))),
	}
	brackets := options.Get("brackets")
	if brackets.InstanceOf(js.Global().Get("Array")) && brackets.Length() == 2 {
		opts = append(opts, riot.WithBrackets(jsString(brackets.Index(0)), jsString(brackets.Index(1))))
	}
	return opts
}
