package riot

import (
	"github.com/charmbracelet/log"
	"github.com/riot/parser/internal/loc"
	"github.com/riot/parser/internal/logging"
)

type Options struct {
	// Brackets are the opening and closing delimiters of expressions.
	Brackets [2]string
	// Comments keeps comments in the node stream.
	Comments bool
	// Compact drops whitespace-only text and collapses whitespace in literal
	// text outside raw tags.
	Compact  bool
	Filename string
	Logger   *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Brackets: [2]string{"{", "}"},
		Compact:  true,
		Logger:   logging.Discard(),
	}
}

type ParseOption func(*Options)

func WithBrackets(open, close string) ParseOption {
	return func(o *Options) {
		o.Brackets = [2]string{open, close}
	}
}

func WithComments(comments bool) ParseOption {
	return func(o *Options) {
		o.Comments = comments
	}
}

func WithCompact(compact bool) ParseOption {
	return func(o *Options) {
		o.Compact = compact
	}
}

func WithFilename(filename string) ParseOption {
	return func(o *Options) {
		o.Filename = filename
	}
}

func WithLogger(logger *log.Logger) ParseOption {
	return func(o *Options) {
		o.Logger = logger
	}
}

func (o Options) validate() error {
	if o.Brackets[0] == "" || o.Brackets[1] == "" {
		return &loc.ErrorWithRange{Code: loc.ERROR_INVALID_OPTION, Text: invalidBrackets}
	}
	return nil
}
