package riot

import (
	"testing"

	"github.com/riot/parser/internal/test_utils"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		start       int
		expressions []Expression
		unescape    string
		pack        bool
		want        []string
	}{
		{
			name:   "literal only",
			source: "a  b",
			want:   []string{"a  b"},
		},
		{
			name:   "literal packed",
			source: "a \r\n b",
			pack:   true,
			want:   []string{"a b"},
		},
		{
			name:        "offset expressions",
			source:      "x { a } y",
			start:       10,
			expressions: []Expression{{Text: " a ", Start: 12, End: 17}},
			want:        []string{"x ", "a", " y"},
		},
		{
			name:        "code with line breaks",
			source:      "{ a\r\nb }",
			expressions: []Expression{{Text: " a\r\nb ", Start: 0, End: 8}},
			want:        []string{"", `a\r\nb`},
		},
		{
			name:        "prefixed code",
			source:      "{= a }",
			expressions: []Expression{{Text: "= a ", Start: 0, End: 6, Prefix: "="}},
			want:        []string{"", "a"},
		},
		{
			name:     "unescaped custom bracket",
			source:   `\[a]`,
			unescape: "[",
			want:     []string{"[a]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := split(tt.source, tt.start, tt.expressions, tt.unescape, tt.pack)
			if diff := test_utils.ANSIDiff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
