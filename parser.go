package parser

import (
	"github.com/charmbracelet/log"

	riot "github.com/riot/parser/internal"
	"github.com/riot/parser/internal/printer"
)

type (
	Options     = riot.Options
	ParseOption = riot.ParseOption
	Parser      = riot.Parser

	Builder[T any]     = riot.Builder[T]
	ParseResult[T any] = riot.ParseResult[T]
	Result             = riot.Result

	NodeType      = riot.NodeType
	AttributeType = riot.AttributeType
	Expression    = riot.Expression
	Attribute     = riot.Attribute
	RawNode       = riot.RawNode
	RawTag        = riot.RawTag
	RawText       = riot.RawText
	RawComment    = riot.RawComment

	Node        = riot.Node
	TagNode     = riot.TagNode
	TextNode    = riot.TextNode
	CommentNode = riot.CommentNode
	ScryleNode  = riot.ScryleNode
	Attr        = riot.Attr
	Output      = riot.Output
	TreeBuilder = riot.TreeBuilder
)

const (
	TagType     = riot.TagType
	TextType    = riot.TextType
	CommentType = riot.CommentType

	QuotedAttribute   = riot.QuotedAttribute
	UnquotedAttribute = riot.UnquotedAttribute
	EmptyAttribute    = riot.EmptyAttribute
)

func DefaultOptions() Options {
	return riot.DefaultOptions()
}

func WithBrackets(open, close string) ParseOption {
	return riot.WithBrackets(open, close)
}

func WithComments(comments bool) ParseOption {
	return riot.WithComments(comments)
}

func WithCompact(compact bool) ParseOption {
	return riot.WithCompact(compact)
}

func WithFilename(filename string) ParseOption {
	return riot.WithFilename(filename)
}

func WithLogger(logger *log.Logger) ParseOption {
	return riot.WithLogger(logger)
}

// NewParser returns a Parser that can be reused across templates.
func NewParser(opts ...ParseOption) (*Parser, error) {
	return riot.NewParser(opts...)
}

// Parse parses data into a template tree.
func Parse(data string, opts ...ParseOption) (*Result, error) {
	return riot.Parse(data, opts...)
}

// ParseWith feeds the nodes scanned from data to b.
func ParseWith[T any](p *Parser, data string, startPos int, b Builder[T]) (*ParseResult[T], error) {
	return riot.ParseWith(p, data, startPos, b)
}

func NewTreeBuilder(opts Options) *TreeBuilder {
	return riot.NewTreeBuilder(opts)
}

// PrintJSON renders out, parsed from source, as indented JSON. With
// positions every node also carries its line and column.
func PrintJSON(source string, out *Output, positions bool) ([]byte, error) {
	result, err := printer.PrintToJSON(source, out, printer.PrintOptions{Positions: positions})
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}
