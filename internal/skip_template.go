package riot

import "github.com/riot/parser/internal/loc"

// templateSentinel marks, on an expression's bracket stack, that the
// innermost "${ }" substitution belongs to a template literal.
const templateSentinel = "`"

// skipTemplateLiteral scans a template literal from start, the offset just
// after its opening backtick. It returns the offset after the closing
// backtick, or, when a "${" substitution opens first, the offset after "${"
// with the sentinel and a "}" closer pushed onto stack.
func skipTemplateLiteral(data string, start int, stack *[]string) (int, error) {
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '`':
			return i + 1, nil
		case '$':
			if i+1 < len(data) && data[i+1] == '{' {
				*stack = append(*stack, templateSentinel, "}")
				return i + 2, nil
			}
		}
	}
	return 0, newError(loc.ERROR_UNCLOSED_TEMPLATE_LITERAL, start-1, unclosedTemplateLit)
}
