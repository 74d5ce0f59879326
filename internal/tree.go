package riot

import (
	"strings"

	"github.com/riot/parser/internal/loc"
)

// A Node is an element of the tree built by TreeBuilder: *TagNode,
// *TextNode, *CommentNode or *ScryleNode.
type Node interface {
	Type() NodeType
	Span() loc.Span
}

type TagNode struct {
	Name       string
	Start      int
	End        int
	Attributes []*Attr
	// Nodes is nil for void and self-closing tags.
	Nodes     []Node
	Void      bool
	Raw       bool
	NS        string
	SelfClose bool
}

func (n *TagNode) Type() NodeType { return TagType }
func (n *TagNode) Span() loc.Span { return loc.Span{Start: n.Start, End: n.End} }

// TextNode holds its content split into parts: literal text at even
// indexes, expression code at odd ones.
type TextNode struct {
	Start int
	End   int
	Parts []string
}

func (n *TextNode) Type() NodeType { return TextType }
func (n *TextNode) Span() loc.Span { return loc.Span{Start: n.Start, End: n.End} }

type CommentNode struct {
	Start int
	End   int
}

func (n *CommentNode) Type() NodeType { return CommentType }
func (n *CommentNode) Span() loc.Span { return loc.Span{Start: n.Start, End: n.End} }

// ScryleNode is the inline script or style of a component. Text is its
// content, verbatim.
type ScryleNode struct {
	Name       string
	Start      int
	End        int
	Attributes []*Attr
	Text       *TextNode
}

func (n *ScryleNode) Type() NodeType { return TagType }
func (n *ScryleNode) Span() loc.Span { return loc.Span{Start: n.Start, End: n.End} }

// Attr is an attribute of the tree. Parts is set when the attribute has a
// value and follows the layout of TextNode.Parts.
type Attr struct {
	Name       string
	Value      string
	Type       AttributeType
	Start      int
	End        int
	ValueStart int
	Parts      []string
}

type Output struct {
	Template   *TagNode
	CSS        *ScryleNode
	JavaScript *ScryleNode
}

// TreeBuilder is the default Builder. It nests the scanned nodes and sets
// the inline script and style apart.
type TreeBuilder struct {
	opts Options
	// root holds the top-level nodes.
	root  *TagNode
	last  *TagNode
	stack []*TagNode
	// scryle is the script or style waiting for its content.
	scryle *ScryleNode
	css    *ScryleNode
	js     *ScryleNode
}

func NewTreeBuilder(opts Options) *TreeBuilder {
	root := &TagNode{Nodes: []Node{}}
	return &TreeBuilder{
		opts: opts,
		root: root,
		last: root,
	}
}

func (b *TreeBuilder) Push(node RawNode) error {
	switch n := node.(type) {
	case *RawTag:
		if n.IsClosing() {
			return b.closeTag(n)
		}
		return b.openTag(n)
	case *RawText:
		b.pushText(n)
	case *RawComment:
		b.last.Nodes = append(b.last.Nodes, &CommentNode{Start: n.Start, End: n.End})
	}
	return nil
}

// Get returns the tree. The template is the first top-level tag.
func (b *TreeBuilder) Get() *Output {
	out := &Output{CSS: b.css, JavaScript: b.js}
	for _, n := range b.root.Nodes {
		if tag, ok := n.(*TagNode); ok {
			out.Template = tag
			break
		}
	}
	return out
}

// Nodes returns the top-level nodes, including text and comments met
// before the root tag.
func (b *TreeBuilder) Nodes() []Node {
	return b.root.Nodes
}

func (b *TreeBuilder) openTag(tag *RawTag) error {
	parent := b.last
	name := tag.Name

	ns := parent.NS
	switch {
	case isSvg(name):
		ns = svgNamespace
	case parent.Name == "foreignobject":
		ns = ""
	}
	attrs := b.attributes(tag.Attributes, ns)

	if slot := b.scryleSlot(name, &attrs); slot != nil {
		if *slot != nil {
			return newError(loc.ERROR_DUPLICATED_NAMED_TAG, tag.Start, duplicatedNamedTag, name)
		}
		node := &ScryleNode{
			Name:       name,
			Start:      tag.Start,
			End:        tag.End,
			Attributes: attrs,
		}
		*slot = node
		if !tag.SelfClosing {
			b.scryle = node
		}
		return nil
	}

	node := &TagNode{
		Name:       name,
		Start:      tag.Start,
		End:        tag.End,
		Attributes: attrs,
		Void:       isVoid(name, ns),
		Raw:        parent.Raw || isRawTag(name),
		NS:         ns,
		SelfClose:  tag.SelfClosing,
	}
	parent.Nodes = append(parent.Nodes, node)
	if !node.Void && !node.SelfClose {
		node.Nodes = []Node{}
		b.stack = append(b.stack, parent)
		b.last = node
	}
	return nil
}

// scryleSlot returns where a script or style tag is stored, or nil when
// name is a regular tag. A script with a src is regular, and so is one with
// a defer attribute, which is removed.
func (b *TreeBuilder) scryleSlot(name string, attrs *[]*Attr) **ScryleNode {
	switch name {
	case "style":
		return &b.css
	case "script":
		if findAttr(*attrs, "src") >= 0 {
			return nil
		}
		if i := findAttr(*attrs, "defer"); i >= 0 {
			*attrs = append((*attrs)[:i], (*attrs)[i+1:]...)
			return nil
		}
		return &b.js
	}
	return nil
}

func findAttr(attrs []*Attr, name string) int {
	for i, attr := range attrs {
		if attr.Name == name {
			return i
		}
	}
	return -1
}

func (b *TreeBuilder) attributes(raw []*Attribute, ns string) []*Attr {
	if len(raw) == 0 {
		return nil
	}
	attrs := make([]*Attr, 0, len(raw))
	for _, a := range raw {
		attr := &Attr{
			Name:       a.Name,
			Value:      a.Value,
			Type:       a.Type,
			Start:      a.Start,
			End:        a.End,
			ValueStart: a.ValueStart,
		}
		if ns == "" {
			attr.Name = strings.ToLower(attr.Name)
		}
		if a.Type != EmptyAttribute {
			attr.Parts = split(a.Value, a.ValueStart, a.Expressions, a.Unescape, true)
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (b *TreeBuilder) closeTag(tag *RawTag) error {
	name := tag.Name[1:]
	if b.scryle != nil && b.scryle.Name == name {
		b.scryle.End = tag.End
		b.scryle = nil
		return nil
	}
	if len(b.stack) == 0 {
		return newError(loc.ERROR_EMPTY_STACK, tag.Start, emptyStack)
	}
	last := b.last
	if last.Name != name {
		return newError(loc.ERROR_UNEXPECTED_CLOSING_TAG, tag.Start, unexpectedClosingTag, last.Name, tag.Name)
	}
	last.End = tag.End
	b.last = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *TreeBuilder) pushText(text *RawText) {
	if b.scryle != nil {
		if strings.TrimSpace(text.Text) != "" {
			b.scryle.Text = &TextNode{
				Start: text.Start,
				End:   text.End,
				Parts: []string{text.Text},
			}
		}
		return
	}
	parent := b.last
	// Scripts kept in the template, with a src or defer, hold code.
	if parent.Name == "script" {
		if strings.TrimSpace(text.Text) != "" {
			parent.Nodes = append(parent.Nodes, &TextNode{
				Start: text.Start,
				End:   text.End,
				Parts: []string{text.Text},
			})
		}
		return
	}
	pack := b.opts.Compact && !parent.Raw
	if pack && strings.TrimSpace(text.Text) == "" {
		return
	}
	parent.Nodes = append(parent.Nodes, &TextNode{
		Start: text.Start,
		End:   text.End,
		Parts: split(text.Text, text.Start, text.Expressions, text.Unescape, pack),
	})
}
