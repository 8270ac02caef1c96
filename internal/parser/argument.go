// Package parser implements the recursive descent parser for the command
// language: a command name followed by typed arguments, terminated by a line
// break or spanning a single-level '{ ... }' block.
package parser

import "fmt"

// ArgumentType selects the active payload of an Argument.
type ArgumentType int

const (
	ArgIdentifier ArgumentType = iota
	ArgString
	ArgInteger
	ArgFloat
	ArgIntegerVector
	ArgFloatVector
)

// String returns a string representation of the argument type.
func (at ArgumentType) String() string {
	switch at {
	case ArgIdentifier:
		return "identifier"
	case ArgString:
		return "string"
	case ArgInteger:
		return "integer"
	case ArgFloat:
		return "float"
	case ArgIntegerVector:
		return "integer vector"
	case ArgFloatVector:
		return "float vector"
	}
	return fmt.Sprintf("unknown(%d)", int(at))
}

// Argument is a tagged union over six payload kinds. Exactly one payload
// field is meaningful, selected by Type. Vectors preserve insertion order and
// always hold at least one element.
type Argument struct {
	Type          ArgumentType
	Text          string    // ArgIdentifier, ArgString
	Integer       int64     // ArgInteger
	Float         float64   // ArgFloat
	IntegerVector []int64   // ArgIntegerVector
	FloatVector   []float64 // ArgFloatVector
}

// Command is one parsed statement: a name plus its arguments in source order.
// An empty Name with no Arguments is the end-of-input sentinel, not a real
// statement.
type Command struct {
	Name      string
	Arguments []Argument
}

// IsEmpty reports whether the command is the end-of-input sentinel.
func (c Command) IsEmpty() bool {
	return c.Name == "" && len(c.Arguments) == 0
}
