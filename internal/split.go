package riot

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	newlines   = strings.NewReplacer("\r", `\r`, "\n", `\n`)
)

// split turns a text run or an attribute value into parts. Even indexes
// hold literal text, odd indexes hold expression code. source starts at
// offset start in the document.
func split(source string, start int, expressions []Expression, unescape string, pack bool) []string {
	parts := make([]string, 0, 2*len(expressions)+1)
	pos := 0
	for _, expr := range expressions {
		parts = append(parts,
			literalPart(source[pos:expr.Start-start], unescape, pack),
			codePart(expr),
		)
		pos = expr.End - start
	}
	if tail := source[pos:]; tail != "" || len(parts) == 0 {
		parts = append(parts, literalPart(tail, unescape, pack))
	}
	return parts
}

func literalPart(text, unescape string, pack bool) string {
	if unescape != "" {
		text = strings.ReplaceAll(text, `\`+unescape, unescape)
	}
	text = strings.ReplaceAll(text, `\`, `\\`)
	if pack {
		text = whitespace.ReplaceAllString(text, " ")
	}
	return text
}

func codePart(expr Expression) string {
	code := strings.TrimSpace(expr.Text)
	if expr.Prefix != "" {
		code = strings.TrimSpace(code[len(expr.Prefix):])
	}
	return newlines.Replace(code)
}
