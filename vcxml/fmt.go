package vcxml

import (
	"fmt"
	"io"
)

func (t EventType) String() string {
	switch t {
	case StartElem:
		return "start"
	case EndElem:
		return "end"
	case CharData:
		return "chars"
	case NoOp:
		return "noop"
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display: "start[Name] attr="value"", "end[Name]", a quoted
// "chars" form, or "noop".
func (ev Event) Format(f fmt.State, _ rune) {
	switch ev.Type {
	case StartElem:
		fmt.Fprintf(f, "start[%s]", ev.Name)
		for _, a := range ev.Attrs {
			fmt.Fprintf(f, " %s=%q", a.Name, a.Value)
		}
	case EndElem:
		fmt.Fprintf(f, "end[%s]", ev.Name)
	case CharData:
		fmt.Fprintf(f, "chars %q", ev.Content)
	case NoOp:
		io.WriteString(f, "noop")
	default:
		io.WriteString(f, "-- no event --")
	}
}

func (t LineType) String() string {
	switch t {
	case StartLine:
		return "open"
	case EmptyLine:
		return "empty"
	case ContentLine:
		return "content"
	case EndLine:
		return "close"
	}
	return fmt.Sprintf("LineType(%d)", uint8(t))
}

// Format writes a textual representation of the receiver line record.
func (ln Line) Format(f fmt.State, _ rune) {
	switch ln.Type {
	case StartLine, EmptyLine:
		fmt.Fprintf(f, "%v[%s]", ln.Type, ln.Name)
		for _, a := range ln.Attrs {
			fmt.Fprintf(f, " %s=%q", a.Name, a.Value)
		}
	case ContentLine:
		fmt.Fprintf(f, "%v[%s]", ln.Type, ln.Name)
		for _, a := range ln.Attrs {
			fmt.Fprintf(f, " %s=%q", a.Name, a.Value)
		}
		fmt.Fprintf(f, " %q", ln.Content)
	case EndLine:
		fmt.Fprintf(f, "%v[%s]", ln.Type, ln.Name)
	default:
		io.WriteString(f, "-- no line --")
	}
}
