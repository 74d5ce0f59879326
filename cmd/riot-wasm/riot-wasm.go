//go:build js && wasm

package main

import (
	"syscall/js"

	riot "github.com/riot/parser/internal"
	"github.com/riot/parser/internal/printer"
	wasm_utils "github.com/riot/parser/internal_wasm/utils"
)

func main() {
	js.Global().Set("__riot_parse", js.FuncOf(Parse))
	<-make(chan bool)
}

// Parse is called from JS as __riot_parse(source, options). It returns
// { json } on success and { error } when the template cannot be parsed.
func Parse(this js.Value, args []js.Value) interface{} {
	source := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		source = args[0].String()
	}
	options := js.Undefined()
	if len(args) > 1 {
		options = args[1]
	}

	result := js.Global().Get("Object").New()
	parsed, err := riot.Parse(source, wasm_utils.ParseOptions(options)...)
	if err != nil {
		result.Set("error", wasm_utils.ErrorToJSError(err))
		return result
	}

	positions := options.Type() == js.TypeObject && options.Get("positions").Truthy()
	printed, err := printer.PrintToJSON(source, parsed.Output, printer.PrintOptions{Positions: positions})
	if err != nil {
		result.Set("error", wasm_utils.ErrorToJSError(err))
		return result
	}
	result.Set("json", string(printed.Output))
	return result
}
