package riot

import "regexp"

// An expressionRun is what scanExpressions found between its start and the
// ending pattern.
type expressionRun struct {
	// end is where the ending matched, or len(data) when it never did.
	end         int
	found       bool
	expressions []Expression
	unescape    string
}

// scanExpressions scans from start up to the first match of ending, a
// regular expression source, collecting every expression met on the way.
// Endings inside an expression do not count.
func (s *state) scanExpressions(ending string, start int) (expressionRun, error) {
	open := s.opts.Brackets[0]
	re := s.parser.pattern("run:"+ending, func() string {
		return "(" + ending + ")|" + regexp.QuoteMeta(open)
	})

	run := expressionRun{end: len(s.data)}
	pos := start
	for pos < len(s.data) {
		m := re.FindStringSubmatchIndex(s.data[pos:])
		if m == nil {
			break
		}
		idx := pos + m[0]
		if m[2] >= 0 {
			run.end = idx
			run.found = true
			break
		}
		if idx > 0 && s.data[idx-1] == '\\' {
			run.unescape = open
			pos = idx + len(open)
			continue
		}
		expr, err := s.parser.extractExpression(s.data, idx)
		if err != nil {
			return run, err
		}
		if expr == nil {
			pos = idx + len(open)
			continue
		}
		run.expressions = append(run.expressions, *expr)
		pos = expr.End
	}
	return run, nil
}
