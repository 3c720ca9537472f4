package argparse

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/argparse/pkg/textutil"
)

// Usage returns the help text: the result of Options.UsageFunc if set, otherwise the summary line
// of every argument (see [Argument.String]) in registration order.
func (p *Parser) Usage() string {
	if p.opts.UsageFunc != nil {
		return p.opts.UsageFunc(p)
	}
	var b strings.Builder
	for _, arg := range p.args {
		b.WriteString(arg.String())
	}
	return b.String()
}

func (p *Parser) showHelp() error {
	_, _ = io.WriteString(p.opts.Stdout, p.Usage())
	return NewError(ErrShowHelp, flag.ErrHelp)
}

// FormatUsage renders the arguments as an aligned table with help text wrapped at 80 columns. It
// can be used as Options.UsageFunc:
//
//	Arguments:
//	  --abs-tol       Absolute residual norm tolerance (default: 1e-06)
//	  --n-iter-max    Max no. iterations (required) (default: 10)
func FormatUsage(p *Parser) string {
	if p == nil || len(p.args) == 0 {
		return ""
	}
	maxLen := 0
	for _, arg := range p.args {
		maxLen = max(maxLen, len(arg.name)+2)
	}
	nameWidth := maxLen + 4
	wrapWidth := 80 - nameWidth

	var b strings.Builder
	b.WriteString("Arguments:\n")
	for _, arg := range p.args {
		name := "--" + arg.name
		description := arg.help
		if arg.required {
			description += " (required)"
		}
		if arg.value != "" {
			description += fmt.Sprintf(" (default: %s)", arg.value)
		}
		lines := textutil.Wrap(description, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(&b, "  %s\n", name)
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(name)+4)
		fmt.Fprintf(&b, "  %s%s%s\n", name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
		}
	}
	return b.String()
}
