package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

func cmdGet(args []string) error {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) < 2 {
		return errors.New("usage: vcxedit get NAME FILE...")
	}
	name, files := rest[0], rest[1:]

	for _, path := range files {
		pr := &contentPrinter{name: name, out: os.Stdout}
		if len(files) > 1 {
			pr.label = path
		}
		if err := vcxml.CheckFile(path, pr); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !pr.hit {
			return fmt.Errorf("%s: no <%s> element with content", path, name)
		}
	}
	return nil
}

// contentPrinter is a checker that prints the text content of every element
// with a given name, at any nesting level.
type contentPrinter struct {
	name  string
	label string
	out   io.Writer

	pend bool // the last open tag matched name
	hit  bool
}

func (pr *contentPrinter) Handle(ev vcxml.Event) error {
	switch ev.Type {
	case vcxml.StartElem:
		pr.pend = ev.Name == pr.name
		return nil
	case vcxml.CharData:
		if !pr.pend {
			return nil
		}
		pr.pend = false
		pr.hit = true
		if pr.label != "" {
			_, err := fmt.Fprintf(pr.out, "%s: %s\n", pr.label, ev.Content)
			return err
		}
		_, err := fmt.Fprintln(pr.out, ev.Content)
		return err
	default:
		pr.pend = false
		return nil
	}
}
