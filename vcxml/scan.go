package vcxml

import "fmt"

// Scan is the sibling-scanning primitive that document filters and checkers
// are built from. Fed one event at a time, it forwards everything to Target
// until it claims the next direct child of the currently open element that
// matches Name and Match, or reaches the enclosing close tag.
//
// Matching considers only elements at the entry nesting level: an element
// nested inside a non-matching sibling is never matched, and the sibling's
// whole subtree is forwarded verbatim. The zero criteria (empty Name, nil
// Match) match nothing, degenerating the scan to "forward everything up to
// the enclosing close tag".
type Scan struct {
	// Target receives every event the scan does not claim; nil discards.
	Target Handler

	// Name, when non-empty, must equal a candidate's element name.
	Name string

	// Match, when non-nil, must accept a candidate's attributes.
	Match func(attrs Attrs) bool

	// Found reports whether the finished scan claimed a matching start tag.
	Found bool

	// Last holds the claiming event once the scan is done: the matched
	// start tag (Found), or the enclosing close tag (not Found). It has not
	// been forwarded to Target; the caller owns it.
	Last Event

	depth int
	done  bool
}

// Feed advances the scan by one event, forwarding it to Target unless
// claimed. It reports true once the scan is done, with the claiming event
// recorded in Last and withheld from Target.
func (s *Scan) Feed(ev Event) (bool, error) {
	if s.done {
		return true, fmt.Errorf("%w: feed to finished scan", ErrUsage)
	}
	switch ev.Type {
	case StartElem:
		if s.depth == 0 && s.matches(ev) {
			s.done, s.Found, s.Last = true, true, ev
			return true, nil
		}
		s.depth++
	case EndElem:
		if s.depth == 0 {
			s.done, s.Found, s.Last = true, false, ev
			return true, nil
		}
		s.depth--
	}
	if s.Target == nil {
		return false, nil
	}
	return false, s.Target.Handle(ev)
}

func (s *Scan) matches(ev Event) bool {
	if s.Name == "" && s.Match == nil {
		return false
	}
	if s.Name != "" && ev.Name != s.Name {
		return false
	}
	return s.Match == nil || s.Match(ev.Attrs)
}

// Upsert sets the text content of the direct child element Name of the
// currently open element. An existing child keeps its attributes and has its
// content replaced; a missing child is synthesized, attribute-less, as the
// last child before the enclosing close tag. A second sibling with the same
// name is an ambiguous edit target and fails with ErrDuplicate.
//
// The operation is idempotent with respect to final document content:
// upserting the same content twice, in two independent passes, yields the
// same child subtree as doing it once.
type Upsert struct {
	// Target receives all forwarded events; nil discards.
	Target Handler

	// Name is the child element to update or insert.
	Name string

	// Content is the replacement text content.
	Content string

	// Last holds the enclosing close tag once the upsert is done. It has
	// not been forwarded to Target, so the caller can chain further edits
	// at the same nesting level before forwarding it.
	Last Event

	phase   upsertPhase
	started bool
	attrs   Attrs
	scan    Scan
}

type upsertPhase uint8

const (
	upsertSeek  upsertPhase = iota // scanning siblings for the target child
	upsertBody                     // inside the found child, expecting its body
	upsertDrain                    // inside the found child, after its body
	upsertDup                      // scanning onward for a duplicate sibling
	upsertDone
)

// Feed advances the upsert by one event. It reports true once the enclosing
// close tag is reached and recorded in Last.
func (u *Upsert) Feed(ev Event) (bool, error) {
	switch u.phase {
	case upsertSeek:
		if !u.started {
			u.started = true
			u.scan = Scan{Target: u.Target, Name: u.Name}
		}
		done, err := u.scan.Feed(ev)
		if err != nil || !done {
			return false, err
		}
		if u.scan.Found {
			// Claimed the existing child; its start tag stays unforwarded
			// and a fresh element is emitted in its place below.
			u.attrs = u.scan.Last.Attrs
			u.phase = upsertBody
			return false, nil
		}
		if err := EmitElement(u.Target, u.Name, nil, u.Content); err != nil {
			return false, err
		}
		u.phase, u.Last = upsertDone, u.scan.Last
		return true, nil

	case upsertBody:
		switch ev.Type {
		case CharData, NoOp:
			// Discard the previous content-bearing unit.
			u.scan = Scan{Target: u.Target}
			u.phase = upsertDrain
			return false, nil
		case EndElem:
			// The child was genuinely empty.
			return false, u.replace()
		default:
			return false, fmt.Errorf("%w: unexpected <%s> inside <%s>", ErrUsage, ev.Name, u.Name)
		}

	case upsertDrain:
		done, err := u.scan.Feed(ev)
		if err != nil || !done {
			return false, err
		}
		// The drain scan matches nothing, so done means the child's own
		// close tag was reached (and withheld).
		return false, u.replace()

	case upsertDup:
		done, err := u.scan.Feed(ev)
		if err != nil || !done {
			return false, err
		}
		if u.scan.Found {
			return false, fmt.Errorf("%w: <%s>", ErrDuplicate, u.Name)
		}
		u.phase, u.Last = upsertDone, u.scan.Last
		return true, nil
	}
	return true, fmt.Errorf("%w: feed to finished upsert", ErrUsage)
}

func (u *Upsert) replace() error {
	if err := EmitElement(u.Target, u.Name, u.attrs, u.Content); err != nil {
		return err
	}
	u.scan = Scan{Target: u.Target, Name: u.Name}
	u.phase = upsertDup
	return nil
}
