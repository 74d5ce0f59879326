// Package cli provides the Cobra command structure for riot-parser.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	riot "github.com/riot/parser/internal"
	"github.com/riot/parser/internal/loc"
	"github.com/riot/parser/internal/logging"
	"github.com/riot/parser/internal/printer"
)

// ErrParseFailed is returned when the input could not be parsed. The
// diagnostic has already been written to stderr.
var ErrParseFailed = errors.New("parse failed")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type parseFlags struct {
	brackets  []string
	comments  bool
	compact   bool
	positions bool
}

// NewRootCommand creates the riot-parser command. It parses one template
// and prints its tree as JSON.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	flags := &parseFlags{}

	rootCmd := &cobra.Command{
		Use:   "riot-parser [file]",
		Short: "Parse a riot template into a JSON syntax tree",
		Long: `riot-parser reads a riot component template from a file, or from stdin
when no file or "-" is given, and prints its syntax tree as JSON: the
template, its inline style and its inline script.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetDefaultLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringSliceVar(&flags.brackets, "brackets", nil,
		`expression brackets as "open,close"`)
	rootCmd.Flags().BoolVar(&flags.comments, "comments", false, "keep comments in the tree")
	rootCmd.Flags().BoolVar(&flags.compact, "compact", true,
		"drop whitespace-only text and collapse whitespace outside raw tags")
	rootCmd.Flags().BoolVar(&flags.positions, "positions", false,
		"add line and column positions to every node")

	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "riot-parser %s (commit %s, built %s)\n",
				info.Version, info.Commit, info.Date)
			return err
		},
	}
}

func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return "<stdin>", data, err
	}
	data, err := os.ReadFile(args[0])
	return args[0], data, err
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := logging.Default()

	filename, data, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := []riot.ParseOption{
		riot.WithComments(flags.comments),
		riot.WithCompact(flags.compact),
		riot.WithFilename(filename),
		riot.WithLogger(logger),
	}
	if flags.brackets != nil {
		if len(flags.brackets) != 2 {
			return fmt.Errorf("--brackets needs exactly two values, got %d", len(flags.brackets))
		}
		opts = append(opts, riot.WithBrackets(flags.brackets[0], flags.brackets[1]))
	}

	source := string(data)
	result, err := riot.Parse(source, opts...)
	if err != nil {
		printDiagnostic(cmd.ErrOrStderr(), filename, err)
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	printed, err := printer.PrintToJSON(source, result.Output, printer.PrintOptions{Positions: flags.positions})
	if err != nil {
		return fmt.Errorf("printing %s: %w", filename, err)
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(printed.Output); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func printDiagnostic(w io.Writer, filename string, err error) {
	var msg *loc.DiagnosticMessage
	if !errors.As(err, &msg) || msg.Location == nil {
		fmt.Fprintf(w, "%s: %v\n", filename, err)
		return
	}
	fmt.Fprintf(w, "%s%s\n", filename, msg.Error())
	if msg.Location.LineText != "" {
		fmt.Fprintln(w, msg.Location.LineText)
	}
}
