package riot

import (
	"strings"

	"github.com/riot/parser/internal/loc"
)

const (
	rootTagNotFound      = "Root tag not found"
	unexpectedEndOfFile  = "Unexpected end of file"
	unclosedComment      = "Unclosed comment"
	unclosedNamedBlock   = `Unclosed "%1" block`
	duplicatedNamedTag   = `Multiple inline "<%1>" tags are not supported`
	unexpectedCharInExpr = "Unexpected character %1"
	unclosedTemplateLit  = "Unclosed ES6 template"
	unclosedExpression   = "Unclosed expression"
	unexpectedClosingTag = `Expected "</%1>" and instead saw "<%2>"`
	emptyStack           = "Stack is empty"
	invalidBrackets      = "Invalid brackets"
)

// newError builds a ranged error at offset. args replace the %1, %2...
// placeholders of text in order.
func newError(code loc.DiagnosticCode, offset int, text string, args ...string) *loc.ErrorWithRange {
	for i, arg := range args {
		text = strings.ReplaceAll(text, "%"+string(rune('1'+i)), arg)
	}
	return &loc.ErrorWithRange{
		Code:  code,
		Text:  text,
		Range: loc.RangeOf(loc.Span{Start: offset, End: offset + 1}),
	}
}
