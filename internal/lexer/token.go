// Package lexer implements the command-language tokenizer. It consumes bytes
// through a stream.Hook and produces typed tokens with absolute stream spans,
// with exactly one token of lookahead.
package lexer

import "fmt"

// TokenType represents the type of a token.
type TokenType int

const (
	Identifier TokenType = iota
	String
	Integer
	Float
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftCurly
	RightCurly
	Comma
	EndOfLine
	Comment
	EndOfFile
	Unknown
)

// tokenNames provides the human-readable names used in diagnostics.
var tokenNames = map[TokenType]string{
	Identifier:   "identifier",
	String:       "string",
	Integer:      "integer",
	Float:        "float",
	LeftParen:    "left paren",
	RightParen:   "right paren",
	LeftBracket:  "left bracket",
	RightBracket: "right bracket",
	LeftCurly:    "left curly",
	RightCurly:   "right curly",
	Comma:        "comma",
	EndOfLine:    "end of line",
	Comment:      "comment",
	EndOfFile:    "end of file",
	Unknown:      "unknown",
}

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(tt))
}

// Token represents a classified unit of lexical input. Begin and End are
// absolute stream offsets of the lexeme span, Begin inclusive and End
// exclusive (for strings the span covers both quotes). Value is empty for
// EndOfFile; for Integer and Float it holds the canonicalized parsed value,
// not the raw input text.
type Token struct {
	Type  TokenType
	Value string
	Begin int64
	End   int64
}

// String returns a string representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Value: %q, Span: [%d, %d)}", t.Type, t.Value, t.Begin, t.End)
}
