package riot

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/tdewolff/parse/v2/js"
)

// A regex literal confined to one line: a body that does not start a
// comment, with escapes and character classes, then the flags.
var regexLiteral = regexp2.MustCompile(
	`^/(?=[^*>/])[^\[/\\]*(?:(?:\\.|\[(?:\\.|[^\]\\]*)*\])[^\[\\/]*)*?/[gimsuy]*`,
	regexp2.ECMAScript,
)

// Punctuators after which a slash starts a regex literal.
const beforeRegexChars = "[{(,;:?=|&!^~>%*/"

// Keywords after which a slash starts a regex literal.
var beforeRegexWords = map[string]bool{
	"case":       true,
	"default":    true,
	"do":         true,
	"else":       true,
	"in":         true,
	"instanceof": true,
	"prefix":     true,
	"return":     true,
	"typeof":     true,
	"void":       true,
	"yield":      true,
}

// Last characters of beforeRegexWords.
const beforeRegexWordEnds = "etonfxd"

func isIdentChar(c byte) bool {
	return c < utf8.RuneSelf && js.IsIdentifierContinue([]byte{c})
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// prevNonSpace returns the offset of the last non-whitespace byte before
// pos, or -1.
func prevNonSpace(data string, pos int) int {
	for pos--; pos >= 0 && isSpace(data[pos]); pos-- {
	}
	return pos
}

// byteOffset converts n, an offset in the runes of s as regexp2 counts
// them, to a byte offset. Each invalid byte counts as one rune.
func byteOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// skipRegex is called with slash pointing at a "/" inside an expression. It
// returns the offset after the regex literal that starts there, or slash+1
// when the slash is a division operator.
func skipRegex(data string, slash int) int {
	next := slash + 1
	line := data[slash:]
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	m, err := regexLiteral.FindStringMatch(line)
	if err != nil || m == nil {
		return next
	}
	end := slash + byteOffset(line, m.Index+m.Length)

	pos := prevNonSpace(data, slash)
	if pos < 0 {
		return end
	}
	c := data[pos]
	switch {
	case strings.IndexByte(beforeRegexChars, c) >= 0:
		return end
	case c == '.':
		if pos > 0 && data[pos-1] == '.' {
			return end
		}
	case c == '+' || c == '-':
		// A regex follows a binary operator, or "++"/"--" that is not a
		// postfix on an identifier.
		pos--
		if pos < 0 || data[pos] != c {
			return end
		}
		if pos = prevNonSpace(data, pos); pos < 0 || !isIdentChar(data[pos]) {
			return end
		}
	case strings.IndexByte(beforeRegexWordEnds, c) >= 0:
		wordEnd := pos + 1
		for pos--; pos >= 0 && isIdentChar(data[pos]); pos-- {
		}
		if beforeRegexWords[data[pos+1:wordEnd]] {
			return end
		}
	}
	return next
}
