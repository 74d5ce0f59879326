package handler

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/riot/parser/internal/loc"
	"github.com/tdewolff/parse/v2"
)

// Handler resolves byte offsets of a single source text into line and column
// pairs and turns ranged errors into diagnostics.
type Handler struct {
	sourcetext string
	filename   string
	// lineStarts[i] is the byte offset where line i+1 begins.
	lineStarts []int
}

func NewHandler(sourcetext string, filename string) *Handler {
	return &Handler{
		sourcetext: sourcetext,
		filename:   filename,
		lineStarts: generateLineOffsetTable(sourcetext),
	}
}

// generateLineOffsetTable records where every line starts. "\r\n", "\r" and
// "\n" each terminate a line.
func generateLineOffsetTable(source string) []int {
	starts := make([]int, 1, strings.Count(source, "\n")+1)
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\n':
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (h *Handler) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(h.sourcetext) {
		return len(h.sourcetext)
	}
	return offset
}

// GetLineAndColumnForLocation returns the 1-based line and the 0-based column
// (counted in runes) of l.
func (h *Handler) GetLineAndColumnForLocation(l loc.Loc) []int {
	offset := h.clamp(l.Start)
	// A "\r\n" pair belongs to the line it terminates.
	line := sort.Search(len(h.lineStarts), func(i int) bool {
		return h.lineStarts[i] > offset
	})
	start := h.lineStarts[line-1]
	return []int{line, utf8.RuneCountInString(h.sourcetext[start:offset])}
}

// LineText returns the source line around offset, marked with a caret.
func (h *Handler) LineText(offset int) string {
	_, _, context := parse.Position(strings.NewReader(h.sourcetext), h.clamp(offset))
	return context
}

// Error returns err as a positioned diagnostic. Errors that
// carry no range are returned unchanged.
func (h *Handler) Error(err error) error {
	if err == nil {
		return nil
	}
	var rangedError *loc.ErrorWithRange
	if !errors.As(err, &rangedError) {
		return err
	}
	msg := ErrorToMessage(h, loc.ErrorType, err)
	return &msg
}

func ErrorToMessage(h *Handler, severity loc.DiagnosticSeverity, err error) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	switch {
	case errors.As(err, &rangedError):
		pos := h.GetLineAndColumnForLocation(rangedError.Range.Loc)
		location := &loc.DiagnosticLocation{
			File:     h.filename,
			Line:     pos[0],
			Column:   pos[1],
			Offset:   h.clamp(rangedError.Range.Loc.Start),
			Length:   rangedError.Range.Len,
			LineText: h.LineText(rangedError.Range.Loc.Start),
		}
		message := rangedError.ToMessage(location)
		message.Severity = int(severity)
		return message
	default:
		return loc.DiagnosticMessage{Text: err.Error(), Severity: int(severity)}
	}
}
