package riot

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riot/parser/internal/loc"
)

// Quoted JS strings, with line continuations.
const (
	singleQuotedString = `'[^'\n\r\\]*(?:\\(?:\r\n?|[\S\s])[^'\n\r\\]*)*'`
	doubleQuotedString = `"[^"\n\r\\]*(?:\\(?:\r\n?|[\S\s])[^"\n\r\\]*)*"`
	expressionChars    = "`/{}[]()"
)

var closers = map[byte]string{'[': "]", '(': ")", '{': "}"}

// expressionPattern matches, in priority order, a string literal, the
// closing bracket and any single character that changes the nesting.
func expressionPattern(close string) string {
	var b strings.Builder
	b.WriteString(singleQuotedString + "|" + doubleQuotedString + "|")
	if len(close) > 1 {
		b.WriteString(regexp.QuoteMeta(close) + "|")
	}
	b.WriteString("[")
	for i := 0; i < len(expressionChars); i++ {
		b.WriteString(`\` + expressionChars[i:i+1])
	}
	if len(close) == 1 && !strings.Contains(expressionChars, close) {
		if c := close[0]; c < utf8.RuneSelf && !unicode.IsLetter(rune(c)) && !unicode.IsDigit(rune(c)) {
			b.WriteString(`\`)
		}
		b.WriteString(close)
	}
	b.WriteString("]")
	return b.String()
}

func expressionPrefix(text string) string {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if text != "" && strings.IndexByte("^?=", text[0]) >= 0 {
		return text[:1]
	}
	return ""
}

// extractExpression returns the expression whose opening bracket is at
// start. It returns nil when the closing bracket never shows up.
func (p *Parser) extractExpression(data string, start int) (*Expression, error) {
	open, close := p.opts.Brackets[0], p.opts.Brackets[1]
	re := p.pattern("expr", func() string { return expressionPattern(close) })

	offset := start + len(open)
	stack := []string{}
	pos := offset
	for pos < len(data) {
		m := re.FindStringIndex(data[pos:])
		if m == nil {
			break
		}
		idx, end := pos+m[0], pos+m[1]
		str := data[idx:end]
		pos = end

		if str == close && len(stack) == 0 {
			text := data[offset:idx]
			return &Expression{
				Text:   text,
				Start:  start,
				End:    end,
				Prefix: expressionPrefix(text),
			}, nil
		}
		if len(str) > 1 && str == close {
			// Inside nested brackets only the first character of a
			// multi-character closer counts.
			pos = idx + 1
			str = str[:1]
		}

		switch ch := str[0]; ch {
		case '[', '(', '{':
			stack = append(stack, closers[ch])
		case ']', ')', '}':
			if len(stack) == 0 || stack[len(stack)-1] != str[:1] {
				return nil, newError(loc.ERROR_UNEXPECTED_CHARACTER, idx, unexpectedCharInExpr, str[:1])
			}
			stack = stack[:len(stack)-1]
			if ch == '}' && len(stack) > 0 && stack[len(stack)-1] == templateSentinel {
				// Back inside the template literal the substitution belongs to.
				stack = stack[:len(stack)-1]
				next, err := skipTemplateLiteral(data, pos, &stack)
				if err != nil {
					return nil, err
				}
				pos = next
			}
		case '`':
			next, err := skipTemplateLiteral(data, pos, &stack)
			if err != nil {
				return nil, err
			}
			pos = next
		case '/':
			pos = skipRegex(data, idx)
		}
	}

	if len(stack) > 0 {
		return nil, newError(loc.ERROR_UNCLOSED_EXPRESSION, start, unclosedExpression)
	}
	return nil, nil
}
