package loc

import "fmt"

type DiagnosticCode int

const (
	ERROR                           DiagnosticCode = 1000
	ERROR_ROOT_TAG_NOT_FOUND        DiagnosticCode = 1001
	ERROR_UNEXPECTED_END_OF_FILE    DiagnosticCode = 1002
	ERROR_UNCLOSED_COMMENT          DiagnosticCode = 1003
	ERROR_UNCLOSED_NAMED_BLOCK      DiagnosticCode = 1004
	ERROR_DUPLICATED_NAMED_TAG      DiagnosticCode = 1005
	ERROR_UNEXPECTED_CLOSING_TAG    DiagnosticCode = 1006
	ERROR_EMPTY_STACK               DiagnosticCode = 1007
	ERROR_UNCLOSED_EXPRESSION       DiagnosticCode = 1008
	ERROR_UNEXPECTED_CHARACTER      DiagnosticCode = 1009
	ERROR_UNCLOSED_TEMPLATE_LITERAL DiagnosticCode = 1010
	ERROR_INVALID_OPTION            DiagnosticCode = 1011
)

type DiagnosticSeverity int

const (
	ErrorType DiagnosticSeverity = 1
)

// ErrorWithRange is the error value produced while scanning. It only knows
// the byte range it applies to; line and column are resolved later by the
// handler, which owns the source text.
type ErrorWithRange struct {
	Code  DiagnosticCode
	Text  string
	Hint  string
	Range Range
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}

func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	return DiagnosticMessage{
		Code:     int(e.Code),
		Text:     e.Text,
		Hint:     e.Hint,
		Location: location,
	}
}

type DiagnosticMessage struct {
	Severity int                 `js:"severity"`
	Code     int                 `js:"code"`
	Location *DiagnosticLocation `js:"location"`
	Hint     string              `js:"hint"`
	Text     string              `js:"text"`
}

type DiagnosticLocation struct {
	File     string `js:"file"`
	Line     int    `js:"line"`
	Column   int    `js:"column"`
	Offset   int    `js:"offset"`
	Length   int    `js:"length"`
	LineText string `js:"lineText"`
}

// Error renders the message as "[line,col]: text", with a 1-based line and a
// 0-based column.
func (m *DiagnosticMessage) Error() string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("[%d,%d]: %s", m.Location.Line, m.Location.Column, m.Text)
}
