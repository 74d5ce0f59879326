package riot

import (
	"strconv"

	"github.com/riot/parser/internal/loc"
)

// A NodeType is the type of a node. The values are the DOM nodeType
// constants so that serialized trees stay comparable with the browser.
type NodeType uint32

const (
	// A TagType node looks like <a> or </a>.
	TagType NodeType = 1
	// A TextType node is a run of text, possibly holding expressions.
	TextType NodeType = 3
	// A CommentType node looks like <!--x-->, <!x> or <![CDATA[x]]>.
	CommentType NodeType = 8
)

// String returns a string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case TagType:
		return "Tag"
	case TextType:
		return "Text"
	case CommentType:
		return "Comment"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// AttributeType is the type of an Attribute
type AttributeType uint32

const (
	QuotedAttribute AttributeType = iota
	UnquotedAttribute
	EmptyAttribute
)

func (t AttributeType) String() string {
	switch t {
	case QuotedAttribute:
		return "quoted"
	case UnquotedAttribute:
		return "unquoted"
	case EmptyAttribute:
		return "empty"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// An Expression is a bracketed code fragment found inside a text run or an
// attribute value. Start and End include the brackets; Text is the source
// between them, untouched.
type Expression struct {
	Text   string
	Start  int
	End    int
	Prefix string
}

func (e Expression) Span() loc.Span {
	return loc.Span{Start: e.Start, End: e.End}
}

// An Attribute is an attribute name-value pair. Value excludes the quotes
// and is empty for EmptyAttribute.
type Attribute struct {
	Name        string
	Value       string
	Type        AttributeType
	Start       int
	End         int
	ValueStart  int
	Expressions []Expression
	Unescape    string
}

func (a *Attribute) Span() loc.Span {
	return loc.Span{Start: a.Start, End: a.End}
}

// A RawNode is one element of the flat stream produced by the scanner:
// *RawTag, *RawText or *RawComment.
type RawNode interface {
	Type() NodeType
	Span() loc.Span
}

// RawTag is an opening or closing tag. Closing tags carry a leading "/" in
// their name.
type RawTag struct {
	Name        string
	Start       int
	End         int
	Attributes  []*Attribute
	SelfClosing bool
}

func (t *RawTag) Type() NodeType { return TagType }
func (t *RawTag) Span() loc.Span { return loc.Span{Start: t.Start, End: t.End} }

// IsClosing reports whether t is a closing tag like </a>.
func (t *RawTag) IsClosing() bool {
	return len(t.Name) > 0 && t.Name[0] == '/'
}

// RawText is a merged run of text. Unescape holds the opening bracket when
// the run contains a backslash-escaped bracket.
type RawText struct {
	Text        string
	Start       int
	End         int
	Expressions []Expression
	Unescape    string
}

func (t *RawText) Type() NodeType { return TextType }
func (t *RawText) Span() loc.Span { return loc.Span{Start: t.Start, End: t.End} }

type RawComment struct {
	Start int
	End   int
}

func (c *RawComment) Type() NodeType { return CommentType }
func (c *RawComment) Span() loc.Span { return loc.Span{Start: c.Start, End: c.End} }
