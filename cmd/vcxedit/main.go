// Command vcxedit inspects and rewrites Visual Studio project XML while
// preserving the layout of everything it does not touch.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/oatssss/vcxproj-stream-editor/internal/textio"
)

func main() {
	logOut := textio.PrefixWriter("vcxedit: ", os.Stderr)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	if err := run(os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "vcxedit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errors.New("missing command")
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "get":
		return cmdGet(rest)
	case "set":
		return cmdSet(rest)
	case "fmt":
		return cmdFmt(rest)
	case "events":
		return cmdEvents(rest)
	case "help", "-h", "-help", "--help":
		printUsage(os.Stdout)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage(w io.Writer) {
	io.WriteString(w, `Usage: vcxedit COMMAND [flags] ARGS...

Commands:
  get NAME FILE...                print the content of every <NAME> element
  set [flags] NAME VALUE FILE     set <NAME>VALUE</NAME> within a group element
      -in GROUP      group element to edit within (default PropertyGroup)
      -where EXPR    attribute predicate for the group, e.g.
                     'attrs.Condition contains "Debug"'
      -o OUT         write result to OUT instead of rewriting in place
      -diff          print a diff preview instead of writing
  fmt [-o OUT] [-diff] FILE       rewrite unmodified, renormalizing layout
  events FILE                     dump the normalized event stream
`)
}
