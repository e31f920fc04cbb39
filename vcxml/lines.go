package vcxml

import (
	"fmt"
	"strings"
)

// LineType enumerates the kinds of output line record.
type LineType uint8

const (
	noLine LineType = iota

	// StartLine is an open tag on a line of its own.
	StartLine

	// EmptyLine is a self-closing tag.
	EmptyLine

	// ContentLine is an open tag, text content, and close tag rendered as
	// one run; embedded line breaks in the content expand it to multiple
	// literal output lines.
	ContentLine

	// EndLine is a close tag on a line of its own.
	EndLine
)

// Line is one line-oriented output record.
type Line struct {
	Type    LineType
	Name    string
	Attrs   Attrs
	Content string
}

type lineHandler interface {
	line(ln Line) error
}

// reconstruct returns the stage that converts a normalized event stream into
// line records, deciding per element whether it renders self-closing, as an
// inline open-content-close run, or as an open tag followed by nested lines.
//
// The shape of an element cannot be decided until its first following event
// is seen, so the stage holds one pending open tag as lookahead state; any
// event not consumed by a shape decision is replayed as the very next input.
func reconstruct(out lineHandler) Handler {
	return &liner{out: out}
}

type liner struct {
	out   lineHandler
	state linerState
	pend  Event           // open tag awaiting its shape decision
	text  strings.Builder // accumulated body of the pending element
}

type linerState uint8

const (
	linerIdle    linerState = iota
	linerPending            // saw an open tag, awaiting the shape decision
	linerText               // accumulating character data after an open tag
)

func (l *liner) Handle(ev Event) error {
	for {
		replay, err := l.step(ev)
		if err != nil || !replay {
			return err
		}
	}
}

// step consumes ev in the current state, reporting whether ev must be
// re-delivered in the state it transitioned to.
func (l *liner) step(ev Event) (bool, error) {
	switch l.state {
	case linerPending:
		switch ev.Type {
		case EndElem:
			if ev.Name != l.pend.Name {
				return false, fmt.Errorf("%w: close tag </%s> for open tag <%s>", ErrStructure, ev.Name, l.pend.Name)
			}
			l.state = linerIdle
			return false, l.out.line(Line{Type: EmptyLine, Name: l.pend.Name, Attrs: l.pend.Attrs})
		case CharData:
			l.text.Reset()
			l.text.WriteString(ev.Content)
			l.state = linerText
			return false, nil
		default:
			// A nested element or whitespace-body marker follows: the
			// pending element takes an open tag line of its own.
			l.state = linerIdle
			err := l.out.line(Line{Type: StartLine, Name: l.pend.Name, Attrs: l.pend.Attrs})
			return err == nil, err
		}

	case linerText:
		switch ev.Type {
		case CharData:
			l.text.WriteString(ev.Content)
			return false, nil
		case EndElem:
			if ev.Name != l.pend.Name {
				return false, fmt.Errorf("%w: close tag </%s> for open tag <%s>", ErrStructure, ev.Name, l.pend.Name)
			}
			l.state = linerIdle
			return false, l.out.line(Line{
				Type:    ContentLine,
				Name:    l.pend.Name,
				Attrs:   l.pend.Attrs,
				Content: l.text.String(),
			})
		default:
			// Mixed content: only layout whitespace may precede a nested
			// element, and it is discarded.
			if strings.TrimSpace(l.text.String()) != "" {
				return false, fmt.Errorf("%w: mixed content inside <%s>", ErrStructure, l.pend.Name)
			}
			l.state = linerIdle
			err := l.out.line(Line{Type: StartLine, Name: l.pend.Name, Attrs: l.pend.Attrs})
			return err == nil, err
		}

	default: // linerIdle
		switch ev.Type {
		case StartElem:
			l.pend = ev
			l.state = linerPending
		case EndElem:
			return false, l.out.line(Line{Type: EndLine, Name: ev.Name})
		case CharData:
			return false, fmt.Errorf("%w: character data with no element open", ErrUsage)
		case NoOp:
			// Already served as lookahead forcing the open tag onto its
			// own line; nothing renders for it.
		}
		return false, nil
	}
}
