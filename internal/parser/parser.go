package parser

import (
	"strconv"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/diagnostics"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/lexer"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

/*
Grammar:

<command>
    : <identifier> <argument_list> <end_of_line>
    ;

<argument_list>
    : <arguments>
    | <argument_list> <arguments>
    ;

<arguments>
    : <single_line_arguments>
    | { }
    | { <end_of_lines> }
    | { <multi_line_arguments> }
    | { <end_of_lines> <multi_line_arguments> <end_of_lines> }
    ;

<multi_line_arguments>
    : <single_line_arguments>
    | <multi_line_arguments> <end_of_lines> <single_line_arguments>
    ;

<single_line_arguments>
    : <argument>
    | <single_line_arguments> <argument>
    ;

<argument>
    : <identifier>
    | <string>
    | <number>
    | <vector>
    ;

<vector>
    : <number_list>
    | ( <number_list> )
    | [ <number_list> ]
    ;

<number_list>
    : <number>
    | <number_list> , <number>
    ;

<number>
    : <integer>
    | <float>
    ;
*/

// Parser assembles Commands from a token stream. It owns its stream hook,
// lexer and reporter for its lifetime; the wrapped raw stream is borrowed and
// must outlive the parser.
type Parser struct {
	hook     *stream.Hook
	reporter *diagnostics.Reporter
	lexer    *lexer.Lexer
}

// New creates a parser over s with colorized reports and source snippets
// enabled.
func New(s stream.RawStream) *Parser {
	return NewWithOptions(s, true, true)
}

// NewWithOptions creates a parser over s. color and showSource configure the
// diagnostics reporter.
func NewWithOptions(s stream.RawStream, color, showSource bool) *Parser {
	hook := stream.NewHook(s)
	return &Parser{
		hook:     hook,
		reporter: diagnostics.NewReporter(hook, color, showSource),
		lexer:    lexer.New(hook),
	}
}

// HasMoreCommands reports whether unconsumed input remains.
func (p *Parser) HasMoreCommands() bool {
	return p.lexer.HasMoreTokens()
}

// ParseCommand parses and returns the next command. At end of input it
// returns the empty sentinel Command without error. On a grammar violation
// the partially built command is discarded and a *diagnostics.Error is
// returned; the offending token has been consumed, so the caller may skip to
// the next line and retry.
//
// The stream hook's checkpoint is cleared exactly once per statement, on
// every exit path, so diagnostics never reference an earlier statement's
// text and buffer growth stays bounded by one statement.
func (p *Parser) ParseCommand() (Command, error) {
	var command Command

	for {
		switch tok := p.lexer.PeekToken(); tok.Type {
		case lexer.Identifier:
			if command.Name == "" {
				command.Name = p.lexer.NextToken().Value
				continue
			}
			return p.finishArguments(command)
		case lexer.String, lexer.Integer, lexer.Float,
			lexer.LeftParen, lexer.RightParen,
			lexer.LeftBracket, lexer.RightBracket,
			lexer.LeftCurly, lexer.RightCurly,
			lexer.Comma:
			if command.Name == "" {
				got := p.lexer.NextToken()
				return p.fail(p.reporter.ExpectedToken(lexer.Identifier, got))
			}
			return p.finishArguments(command)
		case lexer.EndOfLine:
			if command.Name == "" {
				// Blank line between statements.
				p.lexer.NextToken()
				p.hook.ClearConsumed()
				continue
			}
			return p.finishArguments(command)
		case lexer.Comment:
			p.lexer.NextToken()
		case lexer.EndOfFile:
			p.hook.ClearConsumed()
			return command, nil
		default:
			got := p.lexer.NextToken()
			return p.fail(p.reporter.Unknown(got))
		}
	}
}

// finishArguments parses the argument list of the statement and clears the
// statement checkpoint.
func (p *Parser) finishArguments(command Command) (Command, error) {
	arguments, err := p.parseArgumentList()
	p.hook.ClearConsumed()
	if err != nil {
		return Command{}, err
	}
	command.Arguments = arguments
	return command, nil
}

// fail discards the statement and clears the checkpoint. The report has
// already captured its snippet from the buffer.
func (p *Parser) fail(err error) (Command, error) {
	p.hook.ClearConsumed()
	return Command{}, err
}

// parseArgumentList accumulates arguments until an end of line outside a
// block, or the matching '}' closes a block. Line breaks inside '{ ... }' are
// argument separators. Blocks do not nest; a '{' inside a block or a stray
// '}' outside one is a mismatched token.
func (p *Parser) parseArgumentList() ([]Argument, error) {
	var arguments []Argument
	multiline := false

	for {
		switch tok := p.lexer.PeekToken(); tok.Type {
		case lexer.Identifier, lexer.String, lexer.Integer, lexer.Float,
			lexer.LeftParen, lexer.RightParen,
			lexer.LeftBracket, lexer.RightBracket:
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
		case lexer.LeftCurly:
			if multiline {
				got := p.lexer.NextToken()
				return nil, p.reporter.Mismatched(got)
			}
			p.lexer.NextToken()
			multiline = true
		case lexer.RightCurly:
			if !multiline {
				got := p.lexer.NextToken()
				return nil, p.reporter.Mismatched(got)
			}
			p.lexer.NextToken()
			multiline = false
		case lexer.Comma:
			got := p.lexer.NextToken()
			return nil, p.reporter.Unexpected(got)
		case lexer.EndOfLine:
			p.lexer.NextToken()
			if !multiline {
				return arguments, nil
			}
		case lexer.Comment:
			p.lexer.NextToken()
		case lexer.EndOfFile:
			if multiline {
				got := p.lexer.NextToken()
				return nil, p.reporter.ExpectedToken(lexer.RightCurly, got)
			}
			return arguments, nil
		default:
			got := p.lexer.NextToken()
			return nil, p.reporter.Unknown(got)
		}
	}
}

// parseArgument parses one argument. A bare number followed by a comma
// transitions into vector parsing with the number as the leading element; the
// vector promotes to floats as soon as any element is a float.
func (p *Parser) parseArgument() (Argument, error) {
	switch tok := p.lexer.PeekToken(); tok.Type {
	case lexer.Identifier:
		t := p.lexer.NextToken()
		return Argument{Type: ArgIdentifier, Text: t.Value}, nil

	case lexer.String:
		t := p.lexer.NextToken()
		return Argument{Type: ArgString, Text: t.Value}, nil

	case lexer.Integer:
		t := p.lexer.NextToken()
		lead := mustParseInt(t.Value)
		if p.lexer.PeekToken().Type != lexer.Comma {
			return Argument{Type: ArgInteger, Integer: lead}, nil
		}
		p.lexer.NextToken() // discard comma
		arg, err := p.parseNumberList()
		if err != nil {
			return Argument{}, err
		}
		// An integer leading element fits either vector kind.
		if arg.Type == ArgIntegerVector {
			arg.IntegerVector = append([]int64{lead}, arg.IntegerVector...)
		} else {
			arg.FloatVector = append([]float64{float64(lead)}, arg.FloatVector...)
		}
		return arg, nil

	case lexer.Float:
		t := p.lexer.NextToken()
		lead := mustParseFloat(t.Value)
		if p.lexer.PeekToken().Type != lexer.Comma {
			return Argument{Type: ArgFloat, Float: lead}, nil
		}
		p.lexer.NextToken() // discard comma
		arg, err := p.parseNumberList()
		if err != nil {
			return Argument{}, err
		}
		if arg.Type == ArgFloatVector {
			arg.FloatVector = append([]float64{lead}, arg.FloatVector...)
		} else {
			// A float leading element promotes the whole vector.
			floats := make([]float64, 0, len(arg.IntegerVector)+1)
			floats = append(floats, lead)
			for _, v := range arg.IntegerVector {
				floats = append(floats, float64(v))
			}
			arg = Argument{Type: ArgFloatVector, FloatVector: floats}
		}
		return arg, nil

	case lexer.LeftParen, lexer.LeftBracket:
		return p.parseVector()

	case lexer.RightParen, lexer.RightBracket:
		got := p.lexer.NextToken()
		return Argument{}, p.reporter.Unexpected(got)
	}

	panic("parser: parseArgument on non-argument token")
}

// parseVector parses a delimited vector and requires the matching closer.
func (p *Parser) parseVector() (Argument, error) {
	switch tok := p.lexer.PeekToken(); tok.Type {
	case lexer.Integer, lexer.Float:
		return p.parseNumberList()
	case lexer.LeftParen:
		p.lexer.NextToken()
		arg, err := p.parseNumberList()
		if err != nil {
			return Argument{}, err
		}
		if closing := p.lexer.NextToken(); closing.Type != lexer.RightParen {
			return Argument{}, p.reporter.ExpectedToken(lexer.RightParen, closing)
		}
		return arg, nil
	case lexer.LeftBracket:
		p.lexer.NextToken()
		arg, err := p.parseNumberList()
		if err != nil {
			return Argument{}, err
		}
		if closing := p.lexer.NextToken(); closing.Type != lexer.RightBracket {
			return Argument{}, p.reporter.ExpectedToken(lexer.RightBracket, closing)
		}
		return arg, nil
	}

	panic("parser: parseVector on non-vector token")
}

// parseNumberList parses numbers alternating with commas. A number where a
// comma was due ends the list when two or more local elements have been
// collected (the number starts the next argument) and is an error when
// exactly one has; this asymmetry is observable behavior and is kept.
func (p *Parser) parseNumberList() (Argument, error) {
	numberDue := true // disallow a leading comma
	firstNumber := true
	integerVector := true // holds until a float element appears
	var tokens []lexer.Token

	materialize := func() Argument {
		if integerVector {
			values := make([]int64, 0, len(tokens))
			for _, t := range tokens {
				values = append(values, mustParseInt(t.Value))
			}
			return Argument{Type: ArgIntegerVector, IntegerVector: values}
		}
		values := make([]float64, 0, len(tokens))
		for _, t := range tokens {
			values = append(values, mustParseFloat(t.Value))
		}
		return Argument{Type: ArgFloatVector, FloatVector: values}
	}

	for {
		switch tok := p.lexer.PeekToken(); tok.Type {
		case lexer.Integer, lexer.Float:
			if !numberDue {
				if len(tokens) == 1 {
					got := p.lexer.NextToken()
					return Argument{}, p.reporter.ExpectedToken(lexer.Comma, got)
				}
				return materialize(), nil
			}
			numberDue = false
			firstNumber = false
			t := p.lexer.NextToken()
			tokens = append(tokens, t)
			if t.Type == lexer.Float {
				integerVector = false
			}
		case lexer.Comma:
			if numberDue {
				got := p.lexer.NextToken()
				return Argument{}, p.reporter.ExpectedDescription("number", got)
			}
			p.lexer.NextToken()
			numberDue = true
		default:
			if firstNumber || numberDue {
				got := p.lexer.NextToken()
				return Argument{}, p.reporter.ExpectedDescription("number", got)
			}
			return materialize(), nil
		}
	}
}

// The lexer canonicalizes Integer and Float lexemes, so re-parsing them
// cannot fail.

func mustParseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic("parser: malformed integer lexeme " + strconv.Quote(s))
	}
	return v
}

func mustParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("parser: malformed float lexeme " + strconv.Quote(s))
	}
	return v
}
