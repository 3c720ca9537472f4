package argparse

import (
	"io"
	"log/slog"
	"os"
	"slices"
)

// Options configures a [Parser]. The zero value, or a nil *Options, gives the defaults.
type Options struct {
	// Prefixes are the strings that may introduce an argument token. Empty strings are ignored. If
	// no prefixes are given, "--" and "-" are used.
	Prefixes []string

	// StoreAll makes the parser keep tokens that name an unregistered argument, appending a new
	// optional argument to the registry. Otherwise such tokens are discarded.
	StoreAll bool

	// Stdout receives the help text and Stderr receives error messages from [Parser.ParseOrExit].
	// They default to [os.Stdout] and [os.Stderr].
	Stdout, Stderr io.Writer

	// Logger receives debug records about discarded tokens. Defaults to a logger that discards
	// everything.
	Logger *slog.Logger

	// UsageFunc, if set, generates the help text instead of the concatenated argument summaries.
	// See [FormatUsage] for an aligned alternative.
	UsageFunc func(*Parser) string

	// Exit terminates the process in [Parser.ParseOrExit]. Defaults to [os.Exit].
	Exit func(code int)
}

var defaultPrefixes = []string{"--", "-"}

func checkAndSetOptions(opt *Options) *Options {
	if opt == nil {
		opt = &Options{}
	} else {
		c := *opt
		opt = &c
	}
	var prefixes []string
	for _, p := range opt.Prefixes {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	if len(prefixes) == 0 {
		prefixes = slices.Clone(defaultPrefixes)
	}
	// Descending lexicographic order, so "--" is always tried before "-".
	slices.Sort(prefixes)
	slices.Reverse(prefixes)
	opt.Prefixes = prefixes

	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Exit == nil {
		opt.Exit = os.Exit
	}
	return opt
}
