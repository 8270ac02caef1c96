package lexer

import (
	"strconv"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

// Lexer scans a character stream into tokens.
type Lexer struct {
	stream *stream.Hook
	peeked *Token // single lookahead slot
}

// New creates a lexer reading through the given stream hook.
func New(s *stream.Hook) *Lexer {
	return &Lexer{stream: s}
}

// HasMoreTokens reports whether the stream has unconsumed input. It does not
// account for a primed lookahead token.
func (l *Lexer) HasMoreTokens() bool {
	_, ok := l.stream.Peek()
	return ok
}

// NextToken consumes and returns the next token, draining the lookahead slot
// if one was primed by PeekToken.
func (l *Lexer) NextToken() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.readNextToken()
}

// PeekToken returns the next token without consuming it, priming the
// lookahead slot if necessary.
func (l *Lexer) PeekToken() Token {
	if l.peeked == nil {
		tok := l.readNextToken()
		l.peeked = &tok
	}
	return *l.peeked
}

func (l *Lexer) readNextToken() Token {
	for {
		c, ok := l.stream.Get()
		if !ok {
			break
		}
		begin := l.stream.Tell() - 1
		switch {
		case isAlpha(c) || c == '_':
			l.stream.Unget()
			return l.readIdentifier()
		case c == '"':
			return l.readString()
		case isDigit(c) || c == '-' || c == '+' || c == '.':
			l.stream.Unget()
			return l.readNumber()
		case c == '(':
			return Token{LeftParen, "(", begin, begin + 1}
		case c == ')':
			return Token{RightParen, ")", begin, begin + 1}
		case c == '[':
			return Token{LeftBracket, "[", begin, begin + 1}
		case c == ']':
			return Token{RightBracket, "]", begin, begin + 1}
		case c == '{':
			return Token{LeftCurly, "{", begin, begin + 1}
		case c == '}':
			return Token{RightCurly, "}", begin, begin + 1}
		case c == ',':
			return Token{Comma, ",", begin, begin + 1}
		case c == '\n':
			return Token{EndOfLine, "\n", begin, begin + 1}
		case c == '#':
			l.stream.Unget()
			return l.readComment()
		case c == ' ' || c == '\t' || c == '\r':
			continue
		default:
			return Token{Unknown, string(c), begin, begin + 1}
		}
	}

	position := l.stream.Tell()
	return Token{EndOfFile, "", position, position}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// readIdentifier greedily consumes letters, digits and underscores.
func (l *Lexer) readIdentifier() Token {
	begin := l.stream.Tell()
	end := begin
	var value []byte

	for {
		c, ok := l.stream.Peek()
		if !ok || !(isAlpha(c) || isDigit(c) || c == '_') {
			break
		}
		l.stream.Get()
		end++
		value = append(value, c)
	}

	return Token{Identifier, string(value), begin, end}
}

// readString consumes until an unescaped closing quote. Backslash escapes the
// next character; an escaped line break (\n or \r\n) is a line continuation
// and contributes nothing to the value. The opening quote has already been
// consumed; the returned span includes it.
func (l *Lexer) readString() Token {
	begin := l.stream.Tell()
	end := begin
	var value []byte
	escape := false

	for {
		c, ok := l.stream.Get()
		if !ok {
			break
		}
		end++
		if escape {
			if c == '\r' {
				continue
			}
			if c == '\n' {
				escape = false
				continue
			}
			value = append(value, c)
			escape = false
		} else if c == '\\' {
			escape = true
		} else if c == '"' {
			break
		} else {
			value = append(value, c)
		}
	}

	return Token{String, string(value), begin - 1, end}
}

// readNumber greedily consumes a number-like lexeme, then classifies it as
// Integer, Float or Unknown. A trailing f/F suffix is legal on floats only.
// The returned value is the canonical textual form of the parsed number.
func (l *Lexer) readNumber() Token {
	begin := l.stream.Tell()
	end := begin
	var raw []byte

	for {
		c, ok := l.stream.Peek()
		if !ok || !(isDigit(c) || isAlpha(c) || c == '_' || c == '.' || c == '-' || c == '+') {
			break
		}
		l.stream.Get()
		end++
		raw = append(raw, c)
	}

	value := string(raw)
	hasSuffix := len(value) > 0 && (value[len(value)-1] == 'f' || value[len(value)-1] == 'F')
	candidate := value
	if hasSuffix {
		candidate = value[:len(value)-1]
	}

	// strconv alone is too permissive here: it accepts digit separators, hex
	// floats and inf/nan spellings the grammar does not, so candidates are
	// checked against the plain decimal forms first.
	if isDecimalInteger(candidate) {
		if integer, err := strconv.ParseInt(candidate, 10, 64); err == nil {
			if hasSuffix {
				return Token{Unknown, value, begin, end}
			}
			return Token{Integer, strconv.FormatInt(integer, 10), begin, end}
		}
		// Out of int64 range; classify as a float below.
	}

	if isDecimalFloat(candidate) {
		if floating, err := strconv.ParseFloat(candidate, 64); err == nil {
			return Token{Float, strconv.FormatFloat(floating, 'g', -1, 64), begin, end}
		}
	}

	return Token{Unknown, value, begin, end}
}

// isDecimalInteger reports whether s is an optionally signed run of digits.
func isDecimalInteger(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimalFloat reports whether s is a plain decimal floating-point form:
// optional sign, digits with an optional fraction ("1.", ".5" included), and
// an optional e/E exponent.
func isDecimalFloat(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s)
}

// readComment consumes through (not including) the next line break or end of
// input. The leading '#' has already been pushed back and is part of the value.
func (l *Lexer) readComment() Token {
	begin := l.stream.Tell()
	end := begin
	var value []byte

	for {
		c, ok := l.stream.Peek()
		if !ok || c == '\n' {
			break
		}
		l.stream.Get()
		end++
		value = append(value, c)
	}

	return Token{Comment, string(value), begin, end}
}
