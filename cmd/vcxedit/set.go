package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

func cmdSet(args []string) error {
	flags := flag.NewFlagSet("set", flag.ContinueOnError)
	var (
		group = flags.String("in", "PropertyGroup", "group element to edit within")
		where = flags.String("where", "", "attribute predicate expression for the group element")
		out   = flags.String("o", "", "write result here instead of rewriting in place")
		diff  = flags.Bool("diff", false, "print a diff preview instead of writing")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) != 3 {
		return errors.New("usage: vcxedit set [flags] NAME VALUE FILE")
	}
	name, value, path := rest[0], rest[1], rest[2]

	match, err := compileWhere(*where)
	if err != nil {
		return fmt.Errorf("bad -where expression: %w", err)
	}
	return rewrite(path, *out, *diff, setChildContent(*group, match, name, value))
}

// setChildContent builds the edit filter: scan the document element for its
// first child named group accepted by match, upsert name=value within it,
// and pass everything else through untouched.
func setChildContent(group string, match func(vcxml.Attrs) bool, name, value string) vcxml.Filter {
	return func(downstream vcxml.Handler) vcxml.Handler {
		return &setFilter{out: downstream, group: group, match: match, name: name, value: value}
	}
}

type setFilter struct {
	out   vcxml.Handler
	group string
	match func(vcxml.Attrs) bool
	name  string
	value string

	state setState
	scan  vcxml.Scan
	ups   vcxml.Upsert
}

type setState uint8

const (
	setAwaitRoot setState = iota // before the document element's open tag
	setSeekGroup                 // scanning the document element's children
	setEditing                   // inside the claimed group element
	setRest                      // edit done, passing the remainder through
)

func (sf *setFilter) Handle(ev vcxml.Event) error {
	switch sf.state {
	case setAwaitRoot:
		if ev.Type == vcxml.StartElem {
			sf.scan = vcxml.Scan{Target: sf.out, Name: sf.group, Match: sf.match}
			sf.state = setSeekGroup
		}
		return sf.out.Handle(ev)

	case setSeekGroup:
		done, err := sf.scan.Feed(ev)
		if err != nil || !done {
			return err
		}
		if !sf.scan.Found {
			return fmt.Errorf("no matching <%s> element", sf.group)
		}
		// The scan claimed the group's open tag; forward it and edit the
		// group's children.
		sf.ups = vcxml.Upsert{Target: sf.out, Name: sf.name, Content: sf.value}
		sf.state = setEditing
		return sf.out.Handle(sf.scan.Last)

	case setEditing:
		done, err := sf.ups.Feed(ev)
		if err != nil || !done {
			return err
		}
		sf.state = setRest
		return sf.out.Handle(sf.ups.Last)

	default:
		return sf.out.Handle(ev)
	}
}
