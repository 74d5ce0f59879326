package riot

import (
	"regexp"
	"sync"

	"github.com/riot/parser/internal/handler"
	"github.com/riot/parser/internal/logging"
)

// A Builder receives the scanned nodes in document order and returns what
// it built from them.
type Builder[T any] interface {
	Push(node RawNode) error
	Get() T
}

type ParseResult[T any] struct {
	Data   string
	Output T
}

// Result is the outcome of a parse with the default TreeBuilder.
type Result = ParseResult[*Output]

// Parser holds the options of a parse and the patterns compiled for them.
// It is safe for concurrent use.
type Parser struct {
	opts     Options
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

func NewParser(opts ...ParseOption) (*Parser, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Parser{
		opts:     o,
		patterns: make(map[string]*regexp.Regexp),
	}, nil
}

func (p *Parser) Options() Options {
	return p.opts
}

// pattern returns the compiled pattern stored under key, compiling the
// source returned by build on first use. Patterns are never replaced.
func (p *Parser) pattern(key string, build func() string) *regexp.Regexp {
	p.mu.Lock()
	defer p.mu.Unlock()
	if re, ok := p.patterns[key]; ok {
		return re
	}
	re := regexp.MustCompile(build())
	p.patterns[key] = re
	return re
}

// Parse parses data with the default TreeBuilder.
func Parse(data string, opts ...ParseOption) (*Result, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

func (p *Parser) Parse(data string) (*Result, error) {
	return p.ParseFrom(data, 0)
}

// ParseFrom parses data starting at offset startPos.
func (p *Parser) ParseFrom(data string, startPos int) (*Result, error) {
	return ParseWith[*Output](p, data, startPos, NewTreeBuilder(p.opts))
}

// ParseWith scans data from startPos and feeds every node to b. The first
// error stops the parse; errors found while scanning are returned as
// *loc.DiagnosticMessage, errors from b are returned as they are.
func ParseWith[T any](p *Parser, data string, startPos int, b Builder[T]) (*ParseResult[T], error) {
	logger := p.opts.Logger
	h := handler.NewHandler(data, p.opts.Filename)

	logger.Debug("parse",
		logging.FieldFile, p.opts.Filename,
		logging.FieldBytes, len(data),
		logging.FieldStart, startPos)
	s := newState(p, data, startPos, b.Push)
	if err := s.walk(); err != nil {
		err = h.Error(err)
		logger.Debug("parse failed", logging.FieldFile, p.opts.Filename, logging.FieldError, err)
		return nil, err
	}
	logger.Debug("parsed",
		logging.FieldFile, p.opts.Filename,
		logging.FieldRoot, s.root.name,
		logging.FieldNodes, s.pushed)

	return &ParseResult[T]{Data: data, Output: b.Get()}, nil
}
