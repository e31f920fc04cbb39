package main

import (
	"errors"
	"flag"
)

func cmdFmt(args []string) error {
	flags := flag.NewFlagSet("fmt", flag.ContinueOnError)
	var (
		out  = flags.String("o", "", "write result here instead of rewriting in place")
		diff = flags.Bool("diff", false, "print a diff preview instead of writing")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) != 1 {
		return errors.New("usage: vcxedit fmt [flags] FILE")
	}
	return rewrite(rest[0], *out, *diff, nil)
}
