package printer

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	. "github.com/riot/parser/internal"
	"github.com/riot/parser/internal/handler"
	"github.com/riot/parser/internal/loc"
)

type ASTPosition struct {
	Start ASTPoint `json:"start"`
	End   ASTPoint `json:"end"`
}

type ASTPoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type ASTAttribute struct {
	Name       string       `json:"name"`
	Value      string       `json:"value,omitempty"`
	Kind       string       `json:"kind"`
	Start      int          `json:"start"`
	End        int          `json:"end"`
	ValueStart int          `json:"valueStart,omitzero"`
	Parts      []string     `json:"parts,omitempty"`
	Position   *ASTPosition `json:"position,omitempty"`
}

type ASTNode struct {
	Type       NodeType       `json:"type"`
	Name       string         `json:"name,omitempty"`
	Start      int            `json:"start"`
	End        int            `json:"end"`
	Attributes []ASTAttribute `json:"attributes,omitempty"`
	// Nodes is null for void and self-closing tags and [] for empty ones.
	Nodes       []ASTNode    `json:"nodes,omitzero"`
	Parts       []string     `json:"parts,omitempty"`
	Text        *ASTNode     `json:"text,omitempty"`
	Void        bool         `json:"isVoid,omitzero"`
	Raw         bool         `json:"isRaw,omitzero"`
	SelfClosing bool         `json:"isSelfClosing,omitzero"`
	NS          string       `json:"ns,omitempty"`
	Position    *ASTPosition `json:"position,omitempty"`
}

type ASTOutput struct {
	Template   *ASTNode `json:"template"`
	CSS        *ASTNode `json:"css"`
	JavaScript *ASTNode `json:"javascript"`
}

type PrintOptions struct {
	// Positions adds line and column information to every node.
	Positions bool
}

// PrintToJSON renders the tree parsed from sourcetext as indented JSON.
func PrintToJSON(sourcetext string, out *Output, opts PrintOptions) (PrintResult, error) {
	p := &printer{
		handler: handler.NewHandler(sourcetext, ""),
		opts:    opts,
	}
	doc := ASTOutput{
		Template:   p.renderTag(out.Template),
		CSS:        p.renderScryle(out.CSS),
		JavaScript: p.renderScryle(out.JavaScript),
	}
	b, err := json.Marshal(doc, jsontext.WithIndent("  "), json.Deterministic(true))
	if err != nil {
		return PrintResult{}, err
	}
	return PrintResult{Output: b}, nil
}

func (p *printer) locToPoint(offset int) ASTPoint {
	info := p.handler.GetLineAndColumnForLocation(loc.Loc{Start: offset})
	return ASTPoint{
		Line:   info[0],
		Column: info[1],
		Offset: offset,
	}
}

func (p *printer) positionAt(span loc.Span) *ASTPosition {
	if !p.opts.Positions {
		return nil
	}
	return &ASTPosition{
		Start: p.locToPoint(span.Start),
		End:   p.locToPoint(span.End),
	}
}

func (p *printer) renderAttributes(attrs []*Attr) []ASTAttribute {
	var nodes []ASTAttribute
	for _, attr := range attrs {
		nodes = append(nodes, ASTAttribute{
			Name:       attr.Name,
			Value:      attr.Value,
			Kind:       attr.Type.String(),
			Start:      attr.Start,
			End:        attr.End,
			ValueStart: attr.ValueStart,
			Parts:      attr.Parts,
			Position:   p.positionAt(loc.Span{Start: attr.Start, End: attr.End}),
		})
	}
	return nodes
}

func (p *printer) renderTag(n *TagNode) *ASTNode {
	if n == nil {
		return nil
	}
	node := &ASTNode{
		Type:        n.Type(),
		Name:        n.Name,
		Start:       n.Start,
		End:         n.End,
		Attributes:  p.renderAttributes(n.Attributes),
		Void:        n.Void,
		Raw:         n.Raw,
		SelfClosing: n.SelfClose,
		NS:          n.NS,
		Position:    p.positionAt(n.Span()),
	}
	if n.Nodes != nil {
		node.Nodes = make([]ASTNode, 0, len(n.Nodes))
		for _, child := range n.Nodes {
			node.Nodes = append(node.Nodes, *p.renderNode(child))
		}
	}
	return node
}

func (p *printer) renderText(n *TextNode) *ASTNode {
	if n == nil {
		return nil
	}
	return &ASTNode{
		Type:     n.Type(),
		Start:    n.Start,
		End:      n.End,
		Parts:    n.Parts,
		Position: p.positionAt(n.Span()),
	}
}

func (p *printer) renderScryle(n *ScryleNode) *ASTNode {
	if n == nil {
		return nil
	}
	return &ASTNode{
		Type:       n.Type(),
		Name:       n.Name,
		Start:      n.Start,
		End:        n.End,
		Attributes: p.renderAttributes(n.Attributes),
		Text:       p.renderText(n.Text),
		Position:   p.positionAt(n.Span()),
	}
}

func (p *printer) renderNode(n Node) *ASTNode {
	switch n := n.(type) {
	case *TagNode:
		return p.renderTag(n)
	case *TextNode:
		return p.renderText(n)
	case *ScryleNode:
		return p.renderScryle(n)
	}
	return &ASTNode{
		Type:     n.Type(),
		Start:    n.Span().Start,
		End:      n.Span().End,
		Position: p.positionAt(n.Span()),
	}
}
