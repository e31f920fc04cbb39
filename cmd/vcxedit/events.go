package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oatssss/vcxproj-stream-editor/internal/textio"
	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

func cmdEvents(args []string) error {
	flags := flag.NewFlagSet("events", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) != 1 {
		return errors.New("usage: vcxedit events FILE")
	}

	out := &textio.ErrWriter{Writer: os.Stdout}
	if err := vcxml.CheckFile(rest[0], &eventDump{out: out}); err != nil {
		return err
	}
	return out.Err
}

// eventDump is a checker that prints the normalized event stream, indented
// by nesting depth.
type eventDump struct {
	out    io.Writer
	indent int
}

func (d *eventDump) Handle(ev vcxml.Event) error {
	if ev.Type == vcxml.EndElem {
		d.indent--
	}
	_, err := fmt.Fprintf(d.out, "%s%v\n", strings.Repeat("  ", d.indent), ev)
	if ev.Type == vcxml.StartElem {
		d.indent++
	}
	return err
}
