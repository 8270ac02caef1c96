package script

import (
	"fmt"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/parser"
)

// Argument accessors for handlers. Each checks arity and argument type and
// returns an error phrased for script authors.

func argAt(cmd parser.Command, i int) (parser.Argument, error) {
	if i >= len(cmd.Arguments) {
		return parser.Argument{}, fmt.Errorf("missing argument %d", i+1)
	}
	return cmd.Arguments[i], nil
}

// StringAt returns argument i, which must be a string.
func StringAt(cmd parser.Command, i int) (string, error) {
	arg, err := argAt(cmd, i)
	if err != nil {
		return "", err
	}
	if arg.Type != parser.ArgString {
		return "", fmt.Errorf("argument %d: expected string, got %s", i+1, arg.Type)
	}
	return arg.Text, nil
}

// WordAt returns argument i, which may be a string or a bare identifier.
func WordAt(cmd parser.Command, i int) (string, error) {
	arg, err := argAt(cmd, i)
	if err != nil {
		return "", err
	}
	if arg.Type != parser.ArgString && arg.Type != parser.ArgIdentifier {
		return "", fmt.Errorf("argument %d: expected string, got %s", i+1, arg.Type)
	}
	return arg.Text, nil
}

// IntAt returns argument i, which must be an integer.
func IntAt(cmd parser.Command, i int) (int64, error) {
	arg, err := argAt(cmd, i)
	if err != nil {
		return 0, err
	}
	if arg.Type != parser.ArgInteger {
		return 0, fmt.Errorf("argument %d: expected integer, got %s", i+1, arg.Type)
	}
	return arg.Integer, nil
}

// FloatAt returns argument i as a float; integers widen.
func FloatAt(cmd parser.Command, i int) (float64, error) {
	arg, err := argAt(cmd, i)
	if err != nil {
		return 0, err
	}
	switch arg.Type {
	case parser.ArgFloat:
		return arg.Float, nil
	case parser.ArgInteger:
		return float64(arg.Integer), nil
	}
	return 0, fmt.Errorf("argument %d: expected number, got %s", i+1, arg.Type)
}

// BoolAt returns argument i, an identifier spelled on/off or true/false.
func BoolAt(cmd parser.Command, i int) (bool, error) {
	arg, err := argAt(cmd, i)
	if err != nil {
		return false, err
	}
	if arg.Type == parser.ArgIdentifier {
		switch arg.Text {
		case "on", "true":
			return true, nil
		case "off", "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("argument %d: expected on/off, got %s", i+1, arg.Type)
}

func exactly(cmd parser.Command, n int) error {
	if len(cmd.Arguments) != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, len(cmd.Arguments))
	}
	return nil
}

// OneString returns the single string argument of cmd.
func OneString(cmd parser.Command) (string, error) {
	if err := exactly(cmd, 1); err != nil {
		return "", err
	}
	return StringAt(cmd, 0)
}

// OneWord returns the single string-or-identifier argument of cmd.
func OneWord(cmd parser.Command) (string, error) {
	if err := exactly(cmd, 1); err != nil {
		return "", err
	}
	return WordAt(cmd, 0)
}

// OneInt returns the single integer argument of cmd.
func OneInt(cmd parser.Command) (int64, error) {
	if err := exactly(cmd, 1); err != nil {
		return 0, err
	}
	return IntAt(cmd, 0)
}

// OneBool returns the single on/off argument of cmd.
func OneBool(cmd parser.Command) (bool, error) {
	if err := exactly(cmd, 1); err != nil {
		return false, err
	}
	return BoolAt(cmd, 0)
}
