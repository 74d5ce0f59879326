package test_utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
	"github.com/pkg/diff"
)

func Dedent(input string) string {
	return dedent.Dedent( // removes any leading whitespace
		strings.ReplaceAll( // compress linebreaks to 1 or 2 lines max
			strings.TrimLeft(
				strings.TrimRight(input, " \n\r"), // remove any trailing whitespace
				" \t\r\n"),                        // remove leading whitespace
			"\n\n\n", "\n\n"),
	)
}

func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	escapeCode := func(code int) string {
		return fmt.Sprintf("\x1b[%dm", code)
	}
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	ss := strings.Split(diff, "\n")
	for i, s := range ss {
		switch {
		case strings.HasPrefix(s, "-"):
			ss[i] = escapeCode(31) + s + escapeCode(0)
		case strings.HasPrefix(s, "+"):
			ss[i] = escapeCode(32) + s + escapeCode(0)
		}
	}
	return strings.Join(ss, "\n")
}

// TextDiff returns a unified diff of two multi-line strings, or "" when
// they are equal.
func TextDiff(want, got string) string {
	if want == got {
		return ""
	}
	var b strings.Builder
	if err := diff.Text("want", "got", want, got, &b); err != nil {
		return err.Error()
	}
	return b.String()
}

// Removes unsupported characters from the test case name, because it will be used as name for the snapshot
func RedactTestName(testCaseName string) string {
	return strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_", ":", "_",
		" ", "_", "'", "_", "\"", "_", "@", "_", "`", "_", "+", "_",
		"/", "_", "{", "_", "}", "_",
	).Replace(testCaseName)
}

type SnapshotOptions struct {
	Testing      *testing.T
	TestCaseName string
	Input        string
	Output       string
	FolderName   string
}

// It creates a snapshot for the given test case, the snapshot will include the input and the JSON output of the test case
func MakeSnapshot(options *SnapshotOptions) {
	t := options.Testing

	folderName := "__snapshots__"
	if options.FolderName != "" {
		folderName = options.FolderName
	}

	s := snaps.WithConfig(
		snaps.Filename(RedactTestName(options.TestCaseName)),
		snaps.Dir(folderName),
	)

	snapshot := "## Input\n\n```\n"
	snapshot += Dedent(options.Input)
	snapshot += "\n```\n\n## Output\n\n"
	snapshot += "```json\n"
	snapshot += Dedent(options.Output)
	snapshot += "\n```"

	s.MatchSnapshot(t, snapshot)
}
