package riot

import (
	"errors"
	"testing"

	"github.com/riot/parser/internal/loc"
	"github.com/riot/parser/internal/test_utils"
)

func TestExtractExpression(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		brackets [2]string
		want     *Expression
	}{
		{
			name:   "simple",
			source: `{ 0 }`,
			want:   &Expression{Text: " 0 ", Start: 0, End: 5},
		},
		{
			name:   "object literal",
			source: `{ {a: 1} }`,
			want:   &Expression{Text: " {a: 1} ", Start: 0, End: 10},
		},
		{
			name:   "closer inside a string",
			source: `{ "}" + '\'}' }`,
			want:   &Expression{Text: ` "}" + '\'}' `, Start: 0, End: 15},
		},
		{
			name:   "template literal with substitution",
			source: "{ `a${ {b: 1}.b }}c` }",
			want:   &Expression{Text: " `a${ {b: 1}.b }}c` ", Start: 0, End: 22},
		},
		{
			name:   "regex holding the closer",
			source: `{ /}/.test(a) }`,
			want:   &Expression{Text: " /}/.test(a) ", Start: 0, End: 15},
		},
		{
			name:   "regex after a keyword",
			source: `{ return /}/ }`,
			want:   &Expression{Text: " return /}/ ", Start: 0, End: 14},
		},
		{
			name:   "division",
			source: `{ a / b / c }`,
			want:   &Expression{Text: " a / b / c ", Start: 0, End: 13},
		},
		{
			name:   "regex after increment",
			source: `{ a-++/}/i.lastIndex }`,
			want:   &Expression{Text: " a-++/}/i.lastIndex ", Start: 0, End: 22},
		},
		{
			name:   "prefix",
			source: `{ ^ a }`,
			want:   &Expression{Text: " ^ a ", Start: 0, End: 7, Prefix: "^"},
		},
		{
			name:     "nested custom brackets",
			source:   `[a[1]]`,
			brackets: [2]string{"[", "]"},
			want:     &Expression{Text: "a[1]", Start: 0, End: 6},
		},
		{
			name:     "double brackets",
			source:   `{{ a }}`,
			brackets: [2]string{"{{", "}}"},
			want:     &Expression{Text: " a ", Start: 0, End: 7},
		},
		{
			name:     "double brackets around an object",
			source:   `{{ {a:1}}}`,
			brackets: [2]string{"{{", "}}"},
			want:     &Expression{Text: " {a:1}", Start: 0, End: 10},
		},
		{
			name:   "no closer",
			source: `{ a`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []ParseOption{}
			if tt.brackets[0] != "" {
				opts = append(opts, WithBrackets(tt.brackets[0], tt.brackets[1]))
			}
			p, err := NewParser(opts...)
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.extractExpression(tt.source, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := test_utils.ANSIDiff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractExpressionErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   loc.DiagnosticCode
		offset int
	}{
		{"unclosed", `{ (a`, loc.ERROR_UNCLOSED_EXPRESSION, 0},
		{"mismatch", `{ (a] }`, loc.ERROR_UNEXPECTED_CHARACTER, 4},
		{"unclosed template", "{ `a }", loc.ERROR_UNCLOSED_TEMPLATE_LITERAL, 2},
		{"unclosed substitution", "{ `${ (a", loc.ERROR_UNCLOSED_EXPRESSION, 0},
		{"unclosed template after substitution", "{ `${ a }", loc.ERROR_UNCLOSED_TEMPLATE_LITERAL, 8},
	}

	p, err := NewParser()
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.extractExpression(tt.source, 0)
			var rangedErr *loc.ErrorWithRange
			if !errors.As(err, &rangedErr) {
				t.Fatalf("expected a ranged error, got %v", err)
			}
			if rangedErr.Code != tt.code {
				t.Errorf("code = %d, want %d", rangedErr.Code, tt.code)
			}
			if rangedErr.Range.Loc.Start != tt.offset {
				t.Errorf("offset = %d, want %d", rangedErr.Range.Loc.Start, tt.offset)
			}
		})
	}
}

func TestSkipTemplateLiteral(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		want      int
		wantStack []string
	}{
		{"plain", "`abc` rest", 5, []string{}},
		{"escaped backtick", "`a\\`b`", 6, []string{}},
		{"substitution", "`a${b}`", 4, []string{templateSentinel, "}"}},
		{"lone dollar", "`$a`", 4, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := []string{}
			got, err := skipTemplateLiteral(tt.source, 1, &stack)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("end = %d, want %d", got, tt.want)
			}
			if diff := test_utils.ANSIDiff(tt.wantStack, stack); diff != "" {
				t.Errorf("stack mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("unclosed", func(t *testing.T) {
		stack := []string{}
		_, err := skipTemplateLiteral("`abc", 1, &stack)
		var rangedErr *loc.ErrorWithRange
		if !errors.As(err, &rangedErr) || rangedErr.Code != loc.ERROR_UNCLOSED_TEMPLATE_LITERAL {
			t.Fatalf("expected an unclosed template error, got %v", err)
		}
		if rangedErr.Range.Loc.Start != 0 {
			t.Errorf("offset = %d, want 0", rangedErr.Range.Loc.Start)
		}
	})
}

func TestSkipRegex(t *testing.T) {
	tests := []struct {
		name   string
		source string
		slash  int
		want   int
	}{
		{"start of buffer", "/a/g", 0, 4},
		{"after assignment", "x = /a/g", 4, 8},
		{"division", "a / b / c", 2, 3},
		{"postfix increment", "a++ /b/", 4, 5},
		{"prefix increment", "a- ++/}/i", 5, 9},
		{"binary minus", "a - /b/", 4, 7},
		{"after keyword", "typeof /x/", 7, 10},
		{"after identifier ending like a keyword", "undo /x/", 5, 6},
		{"after spread", "x.../a/", 4, 7},
		{"after member access", "a./b/", 2, 3},
		{"comment", "/*c*/", 0, 1},
		{"class holding a slash", "  /[/]/i", 2, 8},
		{"confined to one line", "/a\n/", 0, 1},
		{"multibyte body", "/é/g", 0, 5},
		{"invalid utf-8 in body", "x = /\xff/ }", 4, 7},
		{"invalid utf-8 inside expression", "<p>{ a = /\xff/ }</p>", 9, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipRegex(tt.source, tt.slash); got != tt.want {
				t.Errorf("skipRegex(%q, %d) = %d, want %d", tt.source, tt.slash, got, tt.want)
			}
		})
	}
}
