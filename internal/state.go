package riot

// rootTag describes the first tag of the document. Tags with the same name
// move the depth counter.
type rootTag struct {
	name  string
	close string
}

// state is the scanner state of one parse.
type state struct {
	parser *Parser
	opts   Options
	data   string
	pos    int
	// count is the depth of the root tag. It is -1 until the root is seen
	// and the walk stops once it drops back to 0.
	count int
	root  *rootTag
	// last is the node being built. It is pushed when the next one starts.
	last RawNode
	// scryle names the open script, style or textarea tag whose content
	// is taken as one block.
	scryle string
	push   func(RawNode) error
	pushed int
}

func newState(p *Parser, data string, pos int, push func(RawNode) error) *state {
	if pos < 0 {
		pos = 0
	}
	return &state{
		parser: p,
		opts:   p.opts,
		data:   data,
		pos:    pos,
		count:  -1,
		push:   push,
	}
}

// flush hands the pending node to the builder.
func (s *state) flush() error {
	if s.last == nil {
		return nil
	}
	last := s.last
	s.last = nil
	s.pushed++
	return s.push(last)
}

func (s *state) pushTag(name string, start, end int) (*RawTag, error) {
	tag := &RawTag{Name: name, Start: start, End: end}
	s.pos = end
	switch {
	case s.root == nil:
		s.root = &rootTag{name: name, close: "/" + name}
		s.count = 1
	case name == s.root.name:
		s.count++
	case name == s.root.close:
		s.count--
	}
	if err := s.flush(); err != nil {
		return nil, err
	}
	s.last = tag
	return tag, nil
}

// pushText adds data[start:end] to the pending text node, starting a new
// one when the pending node is not text.
func (s *state) pushText(start, end int, expressions []Expression, unescape string) error {
	s.pos = end
	if start >= end {
		return nil
	}
	text, ok := s.last.(*RawText)
	if ok {
		text.Text += s.data[start:end]
		text.End = end
	} else {
		if err := s.flush(); err != nil {
			return err
		}
		text = &RawText{Text: s.data[start:end], Start: start, End: end}
		s.last = text
	}
	text.Expressions = append(text.Expressions, expressions...)
	if unescape != "" {
		text.Unescape = unescape
	}
	return nil
}

func (s *state) pushComment(start, end int) error {
	if err := s.flush(); err != nil {
		return err
	}
	s.pos = end
	if s.opts.Comments {
		s.last = &RawComment{Start: start, End: end}
	}
	return nil
}
