package riot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/riot/parser/internal/loc"
	"github.com/riot/parser/internal/logging"
)

var fixtures = []string{
	`<p>{ 0 }</p>`,
	`<a>{ a-++/}/i.lastIndex }</a>`,
	`<a href="x" b c={d}>t</a>`,
	`<div><style></style><style></style></div>`,
	`<div>One <b>Two </div>Three </b>`,
	"<my-tag>\n  <p if={ show }>{ `${ a }` }</p>\n  <script>export default {}</script>\n</my-tag>",
	`<div><svg><circle/><foreignObject><p/></foreignObject></svg></div>`,
	`<div><pre>  { x }  </pre><textarea>{ y }</textarea></div>`,
	`<div><!-- c --><![CDATA[x]]></div>`,
	`hello`,
	`<`,
}

func FuzzParse(f *testing.F) {
	for _, fixture := range fixtures {
		f.Add(fixture)
	}
	f.Fuzz(func(t *testing.T, source string) {
		result, err := Parse(source, WithComments(true))
		if err != nil {
			var msg *loc.DiagnosticMessage
			if !errors.As(err, &msg) {
				t.Fatalf("error without position: %v", err)
			}
			if msg.Location.Offset < 0 || msg.Location.Offset > len(source) {
				t.Fatalf("offset %d out of range", msg.Location.Offset)
			}
			return
		}
		if result.Output.Template == nil && result.Output.CSS == nil && result.Output.JavaScript == nil {
			t.Fatal("successful parse without a root")
		}
	})
}

func TestParseLogsAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")

	_, err := Parse(`<p>{ a }</p>`, WithLogger(logger), WithFilename("p.riot"))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "root=p") {
		t.Errorf("expected the root tag in the debug output, got %q", out)
	}
	if !strings.Contains(out, "file=p.riot") {
		t.Errorf("expected the file name in the debug output, got %q", out)
	}
}

func TestParseNilLogger(t *testing.T) {
	if _, err := Parse(`<p></p>`, WithLogger(nil)); err != nil {
		t.Fatal(err)
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse("<div>\n  { (a }\n</div>", WithFilename("x.riot"))
	var msg *loc.DiagnosticMessage
	if !errors.As(err, &msg) {
		t.Fatalf("expected a diagnostic, got %v", err)
	}
	if msg.Location.File != "x.riot" {
		t.Errorf("file = %q", msg.Location.File)
	}
	if msg.Location.Line != 2 || msg.Location.Column != 7 {
		t.Errorf("position = %d,%d", msg.Location.Line, msg.Location.Column)
	}
	if msg.Code != int(loc.ERROR_UNEXPECTED_CHARACTER) {
		t.Errorf("code = %d", msg.Code)
	}
}
