package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	riot "github.com/riot/parser/internal"
	"github.com/riot/parser/internal/cli"
	"github.com/riot/parser/internal/printer"
	"github.com/riot/parser/internal/test_utils"
)

func newCommand(args ...string) (*bytes.Buffer, *bytes.Buffer, func(stdin string) error) {
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	return &stdout, &stderr, func(stdin string) error {
		cmd.SetIn(strings.NewReader(stdin))
		return cmd.Execute()
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	if cmd.Use != "riot-parser [file]" {
		t.Errorf("unexpected Use %q", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("expected descriptions to be set")
	}

	for _, name := range []string{"brackets", "comments", "compact", "positions", "debug"} {
		if cmd.Flags().Lookup(name) == nil && cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected flag %q to exist", name)
		}
	}

	if sub, _, err := cmd.Find([]string{"version"}); err != nil || sub.Name() != "version" {
		t.Errorf("expected version subcommand, got %v", err)
	}
}

func TestParseStdin(t *testing.T) {
	t.Parallel()

	stdout, _, run := newCommand()
	if err := run(`<p class={ a }>hi</p>`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{`"name": "p"`, `"kind": "unquoted"`, `"template"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"position"`) {
		t.Error("positions should be off by default")
	}
}

func TestParseFileWithFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.riot")
	source := "<app>\n  <!-- c -->\n  <p>[[ a ]]</p>\n</app>"
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, _, run := newCommand("--brackets", "[[,]]", "--comments", "--positions", path)
	if err := run(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{`"type": 8`, `"position"`, `"a"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s, got:\n%s", want, out)
		}
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	stdout, stderr, run := newCommand("-")
	err := run(`<div>`)
	if !errors.Is(err, cli.ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
	got := stderr.String()
	if !strings.HasPrefix(got, "<stdin>[1,5]: Unexpected end of file\n") {
		t.Errorf("unexpected diagnostic %q", got)
	}
	if !strings.Contains(got, "<div>") {
		t.Errorf("expected the source line in %q", got)
	}
}

func TestBracketsFlagNeedsTwoValues(t *testing.T) {
	t.Parallel()

	_, _, run := newCommand("--brackets", "{")
	err := run(`<div></div>`)
	if err == nil || errors.Is(err, cli.ErrParseFailed) {
		t.Fatalf("expected a flag error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, _, run := newCommand("version")
	if err := run(""); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); !strings.HasPrefix(got, "riot-parser test") {
		t.Errorf("unexpected version output %q", got)
	}
}

func TestOutputMatchesPrinter(t *testing.T) {
	t.Parallel()

	source := test_utils.Dedent(`
		<todo>
		  <h3>{ props.title }</h3>
		  <ul>
		    <li each={ item in state.items }>{ item.title }</li>
		  </ul>
		  <input name="todo" disabled>
		</todo>`)

	result, err := riot.Parse(source, riot.WithFilename("<stdin>"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := printer.PrintToJSON(source, result.Output, printer.PrintOptions{})
	if err != nil {
		t.Fatal(err)
	}

	stdout, _, run := newCommand()
	if err := run(source); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := test_utils.TextDiff(string(want.Output)+"\n", stdout.String()); diff != "" {
		t.Errorf("output mismatch:\n%s", diff)
	}
}
