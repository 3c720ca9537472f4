package argparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

// ParseOrExit parses args with [Parser.Parse] and terminates the process when parsing does not
// succeed: with status 0 after the help text was shown, and with status 1 after writing the error
// to Stderr otherwise. It returns normally only on success.
func (p *Parser) ParseOrExit(args []string) {
	p.exitOnError(p.Parse(args))
}

// ParseFlagsOrExit is like [Parser.ParseOrExit] but parses with [Parser.ParseFlags].
func (p *Parser) ParseFlagsOrExit(args []string) {
	p.exitOnError(p.ParseFlags(args))
}

func (p *Parser) exitOnError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		p.opts.Exit(0)
		return
	}
	fmt.Fprintf(p.opts.Stderr, "%s %v\n", errorPrefix(p.opts.Stderr), err)
	p.opts.Exit(1)
}

// errorPrefix returns "error:", in red when w is a terminal and NO_COLOR is unset.
func errorPrefix(w io.Writer) string {
	c := color.New(color.FgRed)
	if f, ok := w.(*os.File); ok && os.Getenv("NO_COLOR") == "" && isTerminal(int(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint("error:")
}
