// Package diagnostics renders human-readable, position-accurate error reports
// for the command parser. Reports carry the offending token's span and can
// embed a colorized source snippet reconstructed from the stream hook's
// recorded buffer, so they work even over non-seekable input.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/lexer"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

// ANSI escape codes for terminal display.
const (
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Reset   = "\033[0m"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// UnexpectedToken: the actual token does not match what the grammar
	// position required; Expected names the required token or construct.
	UnexpectedToken Kind = iota
	// UnexpectedTokenNoExpected: the grammar position simply forbids this
	// token.
	UnexpectedTokenNoExpected
	// MismatchedToken: a bracket closer with no matching opener, or an
	// opener where one is already open.
	MismatchedToken
	// UnknownToken: the lexer classified the input as Unknown.
	UnknownToken
)

// Error is a structured parse diagnostic. It is fatal to the statement being
// parsed; the offending token has already been consumed when it is raised.
type Error struct {
	Kind     Kind
	Token    lexer.Token
	Expected string // required token name or description; empty when none

	report string
}

func (e *Error) Error() string {
	return e.report
}

// Reporter composes diagnostics against the stream hook's recorded buffer.
type Reporter struct {
	hook       *stream.Hook
	color      bool // emit ANSI escape codes around highlighted text
	showSource bool // append the source snippet block to every report
}

// NewReporter creates a reporter reading snippets from hook.
func NewReporter(hook *stream.Hook, color, showSource bool) *Reporter {
	return &Reporter{hook: hook, color: color, showSource: showSource}
}

// ExpectedToken reports an actual token where a specific token type was
// required.
func (r *Reporter) ExpectedToken(expected lexer.TokenType, actual lexer.Token) *Error {
	return r.expected(expected.String(), actual)
}

// ExpectedDescription reports an actual token where a described construct
// ("number", "identifier", ...) was required.
func (r *Reporter) ExpectedDescription(expected string, actual lexer.Token) *Error {
	return r.expected(expected, actual)
}

func (r *Reporter) expected(expected string, actual lexer.Token) *Error {
	report := r.colorString("Error: ", Red) +
		"expected " + expected +
		" at position " + fmt.Sprint(actual.Begin) +
		" but got " + actual.Type.String() +
		quotedValue(actual)
	if r.showSource {
		report += "\n" + r.sourceSnippet(actual.Begin, actual.End)
	}
	return &Error{Kind: UnexpectedToken, Token: actual, Expected: expected, report: report}
}

// Unexpected reports a token the grammar position forbids outright.
func (r *Reporter) Unexpected(tok lexer.Token) *Error {
	report := r.colorString("Error: ", Red) +
		"unexpected " + tok.Type.String() +
		" at position " + fmt.Sprint(tok.Begin) +
		quotedValue(tok)
	if r.showSource {
		report += "\n" + r.sourceSnippet(tok.Begin, tok.End)
	}
	return &Error{Kind: UnexpectedTokenNoExpected, Token: tok, report: report}
}

// Mismatched reports an unbalanced '()', '[]' or '{}' token.
func (r *Reporter) Mismatched(tok lexer.Token) *Error {
	report := r.colorString("Error: ", Red) +
		"mismatched " + tok.Type.String() +
		" at position " + fmt.Sprint(tok.Begin) +
		quotedValue(tok)
	if r.showSource {
		report += "\n" + r.sourceSnippet(tok.Begin, tok.End)
	}
	return &Error{Kind: MismatchedToken, Token: tok, report: report}
}

// Unknown reports a token the lexer could not classify.
func (r *Reporter) Unknown(tok lexer.Token) *Error {
	report := r.colorString("Error: ", Red) +
		"unknown token at position " + fmt.Sprint(tok.Begin) +
		" '" + tok.Value + "'"
	if r.showSource {
		report += "\n" + r.sourceSnippet(tok.Begin, tok.End)
	}
	return &Error{Kind: UnknownToken, Token: tok, report: report}
}

// quotedValue renders the token text for the message line. End-of-line tokens
// carry no printable text.
func quotedValue(tok lexer.Token) string {
	if tok.Type == lexer.EndOfLine {
		return ""
	}
	return " '" + tok.Value + "'"
}

// sourceSnippet renders the hook's recorded buffer with [begin, end] mapped
// into buffer-relative coordinates and highlighted, prefixed with a line
// number gutter anchored at the checkpoint line. Both bounds are inclusive
// here; an inverted range yields no snippet rather than a secondary error.
func (r *Reporter) sourceSnippet(begin, end int64) string {
	source := r.hook.Consumed()
	checkpoint := r.hook.Position()

	highlightBegin := begin - checkpoint
	if highlightBegin < 0 {
		highlightBegin = 0
	}
	highlightEnd := end - checkpoint + 1
	if highlightEnd > int64(len(source)) {
		highlightEnd = int64(len(source))
	}
	if highlightBegin > highlightEnd {
		return ""
	}

	report := source[:highlightBegin] +
		r.colorString(source[highlightBegin:highlightEnd], Red) +
		source[highlightEnd:]

	gutter := "  " + fmt.Sprint(r.hook.LineNumber()) + " "
	prefix := strings.Repeat(" ", len(gutter))
	return gutter + "| " + addPrefix(prefix+"| ", report)
}

// colorString wraps every line of str in the given color so highlights
// survive line breaks in terminal output.
func (r *Reporter) colorString(str, color string) string {
	if !r.color {
		return str
	}
	var result strings.Builder
	pos := 0
	for pos < len(str) {
		newline := strings.IndexByte(str[pos:], '\n')
		if newline < 0 {
			result.WriteString(color + str[pos:] + Reset)
			break
		}
		result.WriteString(color + str[pos:pos+newline] + Reset + "\n")
		pos += newline + 1
	}
	return result.String()
}

// addPrefix inserts prefix after every line break in str.
func addPrefix(prefix, str string) string {
	var result strings.Builder
	for i := 0; i < len(str); i++ {
		result.WriteByte(str[i])
		if str[i] == '\n' {
			result.WriteString(prefix)
		}
	}
	return result.String()
}
