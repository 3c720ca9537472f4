package argparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mfridman/xflag"

	"github.com/mfridman/argparse/pkg/suggest"
)

// Parse fills in the registered arguments from args, an argument vector in the shape of [os.Args]:
// the first element is the program name and is skipped.
//
// If the first argument after the program name is exactly "-h" or "--help", the help text is
// written to Stdout and an [*Error] with code [ErrShowHelp] is returned; it wraps [flag.ErrHelp].
// Nothing else is parsed in that case.
//
// Every other token is split into a name and a value (see [Options.Prefixes]). Tokens without a
// recognized prefix are discarded. A token naming a registered argument overwrites its value. A
// token naming an unknown argument is appended to the registry when StoreAll is set, and discarded
// otherwise. Once all tokens are consumed, every required argument that was not named by a token
// is reported in a single [*Error] with code [ErrMissingRequired].
func (p *Parser) Parse(args []string) error {
	if len(args) > 1 && isHelpToken(args[1]) {
		return p.showHelp()
	}
	p.unknown = p.unknown[:0]

	provided := make(map[string]bool)
	for _, token := range tail(args) {
		name, value := splitToken(p.opts.Prefixes, token)
		if name == "" {
			p.opts.Logger.Debug("invalid command-line argument", slog.String("token", token))
			continue
		}
		if arg := p.Lookup(name); arg != nil {
			arg.value = value
			provided[name] = true
			continue
		}
		if p.opts.StoreAll {
			p.add(NewArgument(name).SetValue(value))
			continue
		}
		p.opts.Logger.Debug("unknown command-line argument", slog.String("name", name))
		if !slices.Contains(p.unknown, name) {
			p.unknown = append(p.unknown, name)
		}
	}
	return p.checkRequired(provided)
}

// ParseFlags is a stricter alternative to [Parser.Parse] that reads args using the Go flag syntax:
// "-name value", "-name=value" and "--name=value" are all accepted, and words that are not flags
// may be interleaved with flags. Arguments whose value is "true" or "false" are treated as boolean
// flags and take no separate value; give them a boolean default with [Argument.SetValue] to allow a
// bare "-name". Every other argument consumes the next word as its value. Unknown flags are
// reported as an [*Error] with code [ErrInvalidFlag] instead of being discarded, and StoreAll has
// no effect.
//
// As with Parse, the first element of args is the program name, help requests return
// [ErrShowHelp] and missing required arguments return [ErrMissingRequired].
func (p *Parser) ParseFlags(args []string) error {
	if len(args) > 1 && isHelpToken(args[1]) {
		return p.showHelp()
	}
	p.unknown = p.unknown[:0]

	fset := p.flagSet()
	if err := xflag.ParseToEnd(fset, tail(args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return p.showHelp()
		}
		return NewError(ErrInvalidFlag, fmt.Errorf("failed to parse flags: %w", err))
	}
	if rest := fset.Args(); len(rest) > 0 {
		p.opts.Logger.Debug("ignoring non-flag arguments", slog.Any("args", rest))
	}

	provided := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) {
		provided[f.Name] = true
	})
	return p.checkRequired(provided)
}

func (p *Parser) checkRequired(provided map[string]bool) error {
	var missing []string
	for _, arg := range p.args {
		if arg.required && !provided[arg.name] {
			missing = append(missing, arg.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	merr := &MissingArgumentsError{Names: missing}
	for _, name := range missing {
		similar := suggest.FindSimilar(name, p.unknown, 3)
		if len(similar) == 0 {
			continue
		}
		if merr.Suggestions == nil {
			merr.Suggestions = make(map[string][]string)
		}
		merr.Suggestions[name] = similar
	}
	return NewError(ErrMissingRequired, merr)
}

func isHelpToken(s string) bool {
	return s == "-h" || s == "--help"
}

// tail drops the program name.
func tail(args []string) []string {
	if len(args) < 2 {
		return nil
	}
	return args[1:]
}
