// Package script executes roulette command scripts: it pulls commands from
// the parser and dispatches them to registered handlers by name. The engine
// knows nothing about what the handlers do; the one built-in command is
// require_version, which aborts the script when the running version does not
// satisfy the given constraint.
package script

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/parser"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

// Handler executes one command. The returned error aborts the script.
type Handler func(cmd parser.Command) error

// Engine dispatches parsed commands to handlers.
type Engine struct {
	version  *semver.Version
	handlers map[string]Handler
}

// NewEngine creates an engine identifying itself as version, which
// require_version constraints are checked against.
func NewEngine(version string) (*Engine, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("script: invalid engine version %q: %w", version, err)
	}
	return &Engine{
		version:  v,
		handlers: make(map[string]Handler),
	}, nil
}

// Register binds a handler to a command name, replacing any previous one.
func (e *Engine) Register(name string, h Handler) {
	e.handlers[name] = h
}

// Run parses and executes commands from s until end of input. The first
// parse error, unknown command or handler error stops the script.
func (e *Engine) Run(s stream.RawStream, color, showSource bool) error {
	p := parser.NewWithOptions(s, color, showSource)

	for {
		cmd, err := p.ParseCommand()
		if err != nil {
			return err
		}
		if cmd.IsEmpty() {
			return nil
		}
		if err := e.dispatch(cmd); err != nil {
			return err
		}
	}
}

func (e *Engine) dispatch(cmd parser.Command) error {
	if cmd.Name == "require_version" {
		return e.requireVersion(cmd)
	}
	h, ok := e.handlers[cmd.Name]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd.Name)
	}
	if err := h(cmd); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// requireVersion checks a semver constraint (">= 1.2.0", "~1.x", ...) against
// the engine version.
func (e *Engine) requireVersion(cmd parser.Command) error {
	constraint, err := OneString(cmd)
	if err != nil {
		return fmt.Errorf("require_version: %w", err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("require_version: invalid constraint %q: %w", constraint, err)
	}
	if !c.Check(e.version) {
		return fmt.Errorf("require_version: version %s does not satisfy %q", e.version, constraint)
	}
	return nil
}
