package argparse

import (
	"errors"
	"fmt"
	"slices"
)

// Parser holds an ordered registry of arguments and fills them in from an argument vector.
type Parser struct {
	args  []*Argument
	index map[string]*Argument
	opts  *Options

	// unknown holds the names seen during the last parse that matched no registered argument and
	// were not stored.
	unknown []string
}

// New creates a parser. The options may be nil, in which case defaults are used. See [Options].
func New(options *Options) *Parser {
	return &Parser{
		index: make(map[string]*Argument),
		opts:  checkAndSetOptions(options),
	}
}

// Prefixes returns the recognized token prefixes, in the order they are tried.
func (p *Parser) Prefixes() []string {
	return slices.Clone(p.opts.Prefixes)
}

// StoreAll reports whether unregistered arguments are stored during parsing.
func (p *Parser) StoreAll() bool {
	return p.opts.StoreAll
}

// Args returns the registered arguments in registration order. Arguments created while parsing
// with StoreAll enabled come after the ones registered up front.
func (p *Parser) Args() []*Argument {
	return slices.Clone(p.args)
}

// Lookup returns the argument with the given name, or nil if there is none.
func (p *Parser) Lookup(name string) *Argument {
	return p.index[name]
}

// AddArgument registers an argument. Registering a nil argument, an argument with an empty name,
// or a name that is already registered returns an [*Error] and leaves the registry unchanged.
func (p *Parser) AddArgument(arg *Argument) error {
	if arg == nil {
		return NewError(ErrInvalidArgument, errors.New("cannot add a nil argument"))
	}
	if arg.name == "" {
		return NewError(ErrInvalidArgument, errors.New("argument has no name"))
	}
	if p.Lookup(arg.name) != nil {
		return NewError(ErrDuplicateArgument,
			fmt.Errorf("cannot specify the same argument (%s) twice", arg.name))
	}
	p.add(arg)
	return nil
}

// MustAdd registers the given arguments in order and panics if any of them cannot be added.
// Registration mistakes are programming errors, caught as early as possible.
func (p *Parser) MustAdd(args ...*Argument) *Parser {
	for _, arg := range args {
		if err := p.AddArgument(arg); err != nil {
			panic(err)
		}
	}
	return p
}

func (p *Parser) add(arg *Argument) {
	p.args = append(p.args, arg)
	p.index[arg.name] = arg
}
