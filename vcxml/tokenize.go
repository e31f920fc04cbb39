package vcxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Tokenize parses markup from r, delivering events to h in document order:
// one StartElem per open tag with attributes in source order, CharData for
// every character data token (a contiguous run may arrive in pieces), and
// one EndElem per close tag. A self-closing tag arrives as a start tag
// immediately followed by its close tag. The XML declaration, comments,
// processing instructions, and directives are dropped; the renderer emits a
// fixed declaration of its own.
//
// Input may be any Unicode transformation format, with or without a leading
// byte-order mark. The underlying decoder is non-validating and keeps
// namespace prefixes intact, but Tokenize does report mismatched or orphan
// close tags and truncated documents, which the decoder lets through.
func Tokenize(r io.Reader, h Handler) error {
	dec := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	var open []string
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			if n := len(open); n > 0 {
				return fmt.Errorf("%w: unexpected EOF inside <%s>", ErrTokenize, open[n-1])
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTokenize, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := rawName(t.Name)
			var attrs Attrs
			if len(t.Attr) > 0 {
				attrs = make(Attrs, 0, len(t.Attr))
				for _, a := range t.Attr {
					attrs = append(attrs, Attr{Name: rawName(a.Name), Value: a.Value})
				}
			}
			open = append(open, name)
			if err := h.Handle(Event{Type: StartElem, Name: name, Attrs: attrs}); err != nil {
				return err
			}

		case xml.EndElement:
			name := rawName(t.Name)
			n := len(open)
			if n == 0 {
				return fmt.Errorf("%w: close tag </%s> without open tag", ErrTokenize, name)
			}
			if top := open[n-1]; top != name {
				return fmt.Errorf("%w: close tag </%s> inside <%s>", ErrTokenize, name, top)
			}
			open = open[:n-1]
			if err := h.Handle(Event{Type: EndElem, Name: name}); err != nil {
				return err
			}

		case xml.CharData:
			if err := h.Handle(Event{Type: CharData, Content: string(t)}); err != nil {
				return err
			}
		}
	}
}

// rawName rejoins a prefixed name split by the decoder; with raw tokens the
// Space holds the verbatim prefix, not a resolved namespace.
func rawName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}
