package argparse

import (
	"flag"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// requiredAnnotation is the pflag annotation cobra uses to mark a flag as required.
const requiredAnnotation = "cobra_annotation_bash_completion_one_required_flag"

// flagValue exposes an argument as a [flag.Getter] and a [pflag.Value]. Values written through it
// are stored verbatim.
type flagValue struct {
	arg *Argument
}

var (
	_ flag.Getter = flagValue{}
	_ pflag.Value = flagValue{}
)

func (v flagValue) String() string {
	if v.arg == nil {
		return ""
	}
	return v.arg.value
}

func (v flagValue) Set(s string) error {
	v.arg.value = s
	return nil
}

func (v flagValue) Get() any {
	return v.arg.value
}

// IsBoolFlag reports whether the argument holds "true" or "false". An empty value is not enough:
// the argument may be waiting for a value, so it keeps taking one.
func (v flagValue) IsBoolFlag() bool {
	if v.arg == nil {
		return false
	}
	return v.arg.value == "true" || v.arg.value == "false"
}

func (v flagValue) Type() string {
	if v.IsBoolFlag() {
		return "bool"
	}
	return "string"
}

// flagName reports whether the argument name can be expressed as a flag; the flag packages reject
// names that begin with "-" or contain "=".
func flagName(name string) bool {
	return !strings.HasPrefix(name, "-") && !strings.Contains(name, "=")
}

func (p *Parser) flagSet() *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Usage = func() {}
	for _, arg := range p.args {
		if !flagName(arg.name) {
			p.opts.Logger.Debug("argument cannot be used as a flag", slog.String("name", arg.name))
			continue
		}
		fset.Var(flagValue{arg: arg}, arg.name, arg.help)
	}
	return fset
}

// PFlags returns a [pflag.FlagSet] backed by the registered arguments, for use with programs built
// on pflag or cobra. Values parsed by the flag set are written to the arguments. Arguments holding
// "true" or "false" may be given without a value, and required arguments carry the annotation cobra
// uses for required flags, so a cobra command validates them on its own.
//
// Arguments whose names begin with "-" or contain "=" are left out.
func (p *Parser) PFlags(name string) *pflag.FlagSet {
	fset := pflag.NewFlagSet(name, pflag.ContinueOnError)
	for _, arg := range p.args {
		if !flagName(arg.name) {
			continue
		}
		value := flagValue{arg: arg}
		f := fset.VarPF(value, arg.name, "", arg.help)
		if value.IsBoolFlag() {
			f.NoOptDefVal = "true"
		}
		if arg.required {
			if err := fset.SetAnnotation(arg.name, requiredAnnotation, []string{"true"}); err != nil {
				p.opts.Logger.Debug("failed to mark flag as required",
					slog.String("name", arg.name), slog.Any("error", err))
			}
		}
	}
	return fset
}
