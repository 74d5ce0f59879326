package printer

import (
	"github.com/riot/parser/internal/handler"
)

type PrintResult struct {
	Output []byte
}

type printer struct {
	handler *handler.Handler
	opts    PrintOptions
}
