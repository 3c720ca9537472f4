// Package argparse provides a small command-line argument parser. Arguments are registered by name
// with optional help text, a default value and a required flag, and are then filled in from an
// argument vector such as [os.Args].
//
// Tokens take the form <prefix><name> or <prefix><name>=<value>, where the prefix is one of the
// parser's configured prefixes ("--" and "-" by default). Values are always stored as strings and
// decoded on demand with [Value], so type errors surface at the point of the typed read rather
// than during parsing. A token without "=" reads as true when decoded as a bool, which gives the
// usual flag semantics:
//
//	p := argparse.New(nil)
//	p.MustAdd(
//		argparse.NewArgument("print-output").SetHelp("Whether to print the output"),
//		argparse.RequiredArgument("n-iter-max").SetHelp("Max no. iterations").SetValue(10),
//	)
//	p.ParseOrExit(os.Args)
//	n := argparse.MustValue[int](p.Lookup("n-iter-max"))
//
// [Parser.Parse] reports help requests and missing required arguments as errors; [Parser.ParseOrExit]
// turns them into the conventional process exit codes.
package argparse
