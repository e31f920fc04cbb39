package vcxml

import (
	"fmt"
	"io"
	"strings"

	"github.com/oatssss/vcxproj-stream-editor/internal/textio"
)

const (
	declLine   = `<?xml version="1.0" encoding="utf-8"?>`
	newline    = "\r\n"
	indentStep = "  "
)

type depthLineHandler interface {
	line(depth int, ln Line) error
}

// indenter annotates line records with nesting depth: depth falls before a
// close tag line and rises after an open tag line. A filter that emits an
// unmatched close tag underflows the depth and fails the pass.
type indenter struct {
	out   depthLineHandler
	depth int
}

func (in *indenter) line(ln Line) error {
	if ln.Type == EndLine {
		if in.depth--; in.depth < 0 {
			return fmt.Errorf("%w: close tag </%s> without open tag", ErrStructure, ln.Name)
		}
	}
	err := in.out.line(in.depth, ln)
	if ln.Type == StartLine {
		in.depth++
	}
	return err
}

// renderer turns depth-annotated line records into literal text: a fixed
// declaration line first, two spaces of indent per depth, CRLF between lines
// and none trailing. The whole document accumulates in a held buffer; nothing
// reaches the destination writer until flush, so a failed pass leaves it
// untouched.
type renderer struct {
	buf textio.WriteBuffer
}

func newRenderer(to io.Writer) *renderer {
	r := &renderer{}
	r.buf.To = to
	r.buf.FlushPolicy = textio.FlushPolicyFunc(textio.FlushHold)
	r.buf.WriteString(declLine)
	return r
}

func (r *renderer) line(depth int, ln Line) error {
	switch ln.Type {
	case StartLine:
		r.text(indentString(depth) + openTag(ln.Name, ln.Attrs))
	case EmptyLine:
		r.text(indentString(depth) + emptyTag(ln.Name, ln.Attrs))
	case ContentLine:
		run := indentString(depth) + openTag(ln.Name, ln.Attrs) +
			escapeText(ln.Content) + closeTag(ln.Name)
		// content may contain newlines, in either line ending convention;
		// every break re-renders as this serializer's own line join
		run = strings.ReplaceAll(run, "\r\n", "\n")
		for _, part := range strings.Split(run, "\n") {
			r.text(part)
		}
	case EndLine:
		r.text(indentString(depth) + closeTag(ln.Name))
	}
	return r.buf.MaybeFlush()
}

func (r *renderer) text(line string) {
	r.buf.WriteString(newline)
	r.buf.WriteString(line)
}

func (r *renderer) flush() error { return r.buf.Flush() }

func indentString(depth int) string { return strings.Repeat(indentStep, depth) }

func openTag(name string, attrs Attrs) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)
	writeAttrs(&sb, attrs)
	sb.WriteByte('>')
	return sb.String()
}

func emptyTag(name string, attrs Attrs) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)
	writeAttrs(&sb, attrs)
	sb.WriteString(" />")
	return sb.String()
}

func closeTag(name string) string { return "</" + name + ">" }

func writeAttrs(sb *strings.Builder, attrs Attrs) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(a.Value))
		sb.WriteByte('"')
	}
}

// attrEscaper quotes attribute values so they re-parse to identical strings;
// literal whitespace controls become character references since a parser
// would otherwise normalize them to spaces.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }
