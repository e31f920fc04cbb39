package vcxml

import "strings"

// Normalize returns a stage that consolidates character data and classifies
// element bodies, forwarding all other events to downstream unchanged and in
// order. It never alters nesting.
//
// Character data accumulates from an element's open tag up to the next
// structural event. At the close tag the accumulated body becomes one of:
// nothing (a genuinely empty element), a single NoOp (a body of pure
// whitespace containing at least one line break, kept so the element
// re-renders as an explicit open/close pair instead of self-closing), or a
// single consolidated CharData event. Character data outside an active
// accumulation, such as the layout whitespace between sibling elements, is
// dropped.
func Normalize(downstream Handler) Handler {
	return &normalizer{downstream: downstream}
}

type normalizer struct {
	downstream Handler
	content    strings.Builder
	active     bool // accumulating since the last open tag
	hasContent bool // at least one CharData piece arrived
}

func (n *normalizer) Handle(ev Event) error {
	switch ev.Type {
	case CharData:
		if n.active {
			n.content.WriteString(ev.Content)
			n.hasContent = true
		}
		return nil

	case StartElem:
		n.content.Reset()
		n.active = true
		n.hasContent = false

	case EndElem:
		if n.active && n.hasContent {
			body := n.content.String()
			out := Event{Type: CharData, Content: body}
			if strings.ContainsRune(body, '\n') && strings.TrimSpace(body) == "" {
				out = Event{Type: NoOp}
			}
			if err := n.downstream.Handle(out); err != nil {
				return err
			}
		}
		n.content.Reset()
		n.active = false
		n.hasContent = false
	}
	return n.downstream.Handle(ev)
}
