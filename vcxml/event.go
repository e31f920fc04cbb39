// Package vcxml implements a streaming, layout-preserving transformer for
// Visual Studio project XML.
//
// A document flows through a single forward pass as a stream of events:
// tokenizer adapter, text normalizer, an optional caller-supplied filter built
// from the Scan/Upsert editing primitives, and a line-oriented re-serializer
// that reconstructs the original formatting conventions (two-space
// indentation, attribute order, self-closing vs. open/close tag shape, CRLF
// line joins) for everything the filter did not touch.
//
// Stages are wired by sink reference: each implements Handler, consuming one
// event at a time and forwarding zero or more events downstream. There is no
// parallelism and no buffering between stages; the only accumulator is the
// renderer's output buffer, held in full until the pass succeeds so that
// in-place rewrites can be committed atomically.
package vcxml

import "errors"

// Errors reported by pipeline stages. All of them abort the whole pass:
// neither a malformed document nor a buggy filter is recoverable mid-stream.
var (
	// ErrTokenize wraps a malformed byte stream failure from the underlying
	// tokenizer, including mismatched or unclosed tags it does not check.
	ErrTokenize = errors.New("malformed markup")

	// ErrStructure means a stage received an event sequence violating its
	// precondition, such as a close tag not matching the pending open tag.
	ErrStructure = errors.New("malformed element structure")

	// ErrDuplicate means an Upsert found more than one sibling with its
	// target name, making the edit target ambiguous.
	ErrDuplicate = errors.New("duplicate element")

	// ErrUsage means a filter or checker malformed its own emitted event
	// sequence, such as character data with no element open.
	ErrUsage = errors.New("invalid event sequence")
)

// EventType enumerates the kinds of Event flowing through a pipeline.
type EventType uint8

const (
	noEvent EventType = iota

	// StartElem opens an element; carries Name and Attrs.
	StartElem

	// EndElem closes an element; carries Name.
	EndElem

	// CharData is a run of character data; carries Content. The tokenizer
	// may deliver one contiguous run in several pieces.
	CharData

	// NoOp marks an element whose body was pure formatting whitespace, so
	// that it re-renders as an explicit open/close tag pair rather than
	// collapsing to self-closing form.
	NoOp
)

// Event is one parsed item of a document stream. Restricted to
// StartElem/EndElem, any stream delivered by the tokenizer is properly
// nested; stages trust this and fail closed if a filter breaks it.
type Event struct {
	Type    EventType
	Name    string
	Attrs   Attrs
	Content string
}

// Attr is a single name="value" attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an attribute list in source order; the order is preserved through
// the whole pipeline and on re-emission.
type Attrs []Attr

// Get returns the value of the named attribute and whether it is present.
func (as Attrs) Get(name string) (string, bool) {
	for _, a := range as {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Handler is the interface implemented by pipeline stages: consume one
// event, optionally producing events to a downstream sink.
type Handler interface {
	Handle(ev Event) error
}

// HandlerFunc is a functional adaptor for Handler.
type HandlerFunc func(ev Event) error

// Handle calls the receiver function pointer.
func (f HandlerFunc) Handle(ev Event) error { return f(ev) }

// Discard is a Handler that drops every event.
var Discard Handler = HandlerFunc(func(Event) error { return nil })

// Filter wraps a downstream handler with a transforming stage. The returned
// stage receives normalized events and forwards possibly different events to
// downstream.
type Filter func(downstream Handler) Handler

// Identity is the no-op Filter: every event passes through unchanged.
func Identity(downstream Handler) Handler { return downstream }

// EmitElement sends a complete element to h: a start tag, one CharData per
// content piece given, and the close tag. A nil h discards.
func EmitElement(h Handler, name string, attrs Attrs, content ...string) error {
	if h == nil {
		h = Discard
	}
	if err := h.Handle(Event{Type: StartElem, Name: name, Attrs: attrs}); err != nil {
		return err
	}
	for _, c := range content {
		if err := h.Handle(Event{Type: CharData, Content: c}); err != nil {
			return err
		}
	}
	return h.Handle(Event{Type: EndElem, Name: name})
}
