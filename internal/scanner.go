package riot

import (
	"regexp"
	"strings"

	"github.com/riot/parser/internal/loc"
	"golang.org/x/net/html/atom"
)

type scanState uint32

const (
	textState scanState = iota
	tagState
	attrState
)

var (
	// Applied to the two characters after "<".
	tagStart  = regexp.MustCompile(`^(?:/[a-zA-Z]|[a-zA-Z][^\s>/]?)`)
	tagName   = regexp.MustCompile(`^(/?[^\s>/]+)\s*(>)?`)
	attrStart = regexp.MustCompile(`^(\S[^>/=\s]*)(?:\s*=\s*([^>/])?)?`)

	// Closing tags of the tags whose content is taken as one block.
	scryleClosers = map[string]*regexp.Regexp{
		atom.Script.String():   regexp.MustCompile(`(?i)</script\s*>`),
		atom.Style.String():    regexp.MustCompile(`(?i)</style\s*>`),
		atom.Textarea.String(): regexp.MustCompile(`(?i)</textarea\s*>`),
	}
)

// walk runs the state machine until the root tag is closed or the input
// ends.
func (s *state) walk() error {
	st := textState
	for s.pos < len(s.data) && s.count != 0 {
		var err error
		switch st {
		case textState:
			st, err = s.text()
		case tagState:
			st, err = s.tag()
		case attrState:
			st, err = s.attr()
		}
		if err != nil {
			return err
		}
	}
	if err := s.flush(); err != nil {
		return err
	}
	if s.count > 0 {
		return newError(loc.ERROR_UNEXPECTED_END_OF_FILE, s.pos, unexpectedEndOfFile)
	}
	if s.count == -1 {
		return newError(loc.ERROR_ROOT_TAG_NOT_FOUND, s.pos, rootTagNotFound)
	}
	return nil
}

func (s *state) text() (scanState, error) {
	if s.scryle != "" {
		return textState, s.scryleContent()
	}
	if s.data[s.pos] == '<' {
		s.pos++
		return tagState, nil
	}
	start := s.pos
	run, err := s.scanExpressions("<", start)
	if err != nil {
		return textState, err
	}
	return textState, s.pushText(start, run.end, run.expressions, run.unescape)
}

// scryleContent reads everything up to the closing tag of the open script,
// style or textarea. Only textarea content is scanned for expressions.
func (s *state) scryleContent() error {
	name := s.scryle
	m := scryleClosers[name].FindStringIndex(s.data[s.pos:])
	if m == nil {
		return newError(loc.ERROR_UNCLOSED_NAMED_BLOCK, s.pos-1, unclosedNamedBlock, name)
	}
	start, end := s.pos+m[0], s.pos+m[1]
	s.scryle = ""
	if start > s.pos {
		if name == atom.Textarea.String() {
			closer := s.data[start:end]
			run, err := s.scanExpressions(regexp.QuoteMeta(closer), s.pos)
			if err != nil {
				return err
			}
			if !run.found {
				return newError(loc.ERROR_UNCLOSED_NAMED_BLOCK, s.pos-1, unclosedNamedBlock, name)
			}
			start, end = run.end, run.end+len(closer)
			if err := s.pushText(s.pos, start, run.expressions, run.unescape); err != nil {
				return err
			}
		} else if err := s.pushText(s.pos, start, nil, ""); err != nil {
			return err
		}
	}
	_, err := s.pushTag("/"+name, start, end)
	return err
}

func (s *state) tag() (scanState, error) {
	pos := s.pos
	start := pos - 1
	next := s.data[pos:min(pos+2, len(s.data))]
	switch {
	case strings.HasPrefix(next, "!"):
		return textState, s.comment(start)
	case tagStart.MatchString(next):
		return s.parseTag(start)
	}
	// Not a tag: the "<" is plain text.
	return textState, s.pushText(start, pos, nil, "")
}

func (s *state) comment(start int) error {
	from, closer := start+2, ">"
	switch rest := s.data[start:]; {
	case strings.HasPrefix(rest, "<!--"):
		from, closer = start+4, "-->"
	case strings.HasPrefix(rest, "<![CDATA["):
		from, closer = start+9, "]]>"
	}
	i := strings.Index(s.data[from:], closer)
	if i < 0 {
		return newError(loc.ERROR_UNCLOSED_COMMENT, start, unclosedComment)
	}
	return s.pushComment(start, from+i+len(closer))
}

func (s *state) parseTag(start int) (scanState, error) {
	m := tagName.FindStringSubmatchIndex(s.data[s.pos:])
	name := strings.ToLower(s.data[s.pos+m[2] : s.pos+m[3]])
	if _, ok := scryleClosers[name]; ok {
		s.scryle = name
	}
	if _, err := s.pushTag(name, start, s.pos+m[1]); err != nil {
		return tagState, err
	}
	if m[4] < 0 {
		return attrState, nil
	}
	return textState, nil
}

func (s *state) attr() (scanState, error) {
	tag := s.last.(*RawTag)
	pos := s.pos
	for pos < len(s.data) && isSpace(s.data[pos]) {
		pos++
	}
	if pos >= len(s.data) {
		s.pos = len(s.data)
		return attrState, nil
	}

	switch s.data[pos] {
	case '>':
		s.pos = pos + 1
		tag.End = s.pos
		if tag.SelfClosing {
			s.scryle = ""
			if tag.Name == s.root.name {
				s.count--
			}
		}
		return textState, nil
	case '/':
		s.pos = pos + 1
		tag.SelfClosing = true
		return attrState, nil
	}
	tag.SelfClosing = false
	return attrState, s.setAttribute(pos, tag)
}

func (s *state) setAttribute(pos int, tag *RawTag) error {
	m := attrStart.FindStringSubmatchIndex(s.data[pos:])
	attr := &Attribute{
		Name:  s.data[pos+m[2] : pos+m[3]],
		Type:  EmptyAttribute,
		Start: pos,
		End:   pos + m[1],
	}
	if m[4] >= 0 {
		quote := s.data[pos+m[4] : pos+m[5]]
		valueStart, ending := attr.End, quote
		attr.Type = QuotedAttribute
		if quote != `"` && quote != "'" {
			valueStart, ending = pos+m[4], `[>/\s]`
			attr.Type = UnquotedAttribute
		}
		run, err := s.scanExpressions(ending, valueStart)
		if err != nil {
			return err
		}
		if !run.found {
			return newError(loc.ERROR_UNEXPECTED_END_OF_FILE, len(s.data), unexpectedEndOfFile)
		}
		attr.Value = s.data[valueStart:run.end]
		attr.ValueStart = valueStart
		attr.Expressions = run.expressions
		attr.Unescape = run.unescape
		attr.End = run.end
		if attr.Type == QuotedAttribute {
			attr.End++
		}
	}
	s.pos = attr.End
	tag.Attributes = append(tag.Attributes, attr)
	return nil
}
