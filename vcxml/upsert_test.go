package vcxml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

// upsertRoot applies one Upsert to the document element's direct children.
func upsertRoot(name, content string) vcxml.Filter {
	return func(downstream vcxml.Handler) vcxml.Handler {
		return &upsertRootFilter{out: downstream, name: name, content: content}
	}
}

type upsertRootFilter struct {
	out     vcxml.Handler
	name    string
	content string
	ups     *vcxml.Upsert
	done    bool
}

func (uf *upsertRootFilter) Handle(ev vcxml.Event) error {
	if uf.ups == nil && !uf.done {
		if err := uf.out.Handle(ev); err != nil {
			return err
		}
		if ev.Type == vcxml.StartElem {
			uf.ups = &vcxml.Upsert{Target: uf.out, Name: uf.name, Content: uf.content}
		}
		return nil
	}
	if uf.ups != nil {
		done, err := uf.ups.Feed(ev)
		if err != nil || !done {
			return err
		}
		last := uf.ups.Last
		uf.ups, uf.done = nil, true
		return uf.out.Handle(last)
	}
	return uf.out.Handle(ev)
}

func TestUpsert(t *testing.T) {
	for _, tc := range []struct {
		name         string
		in           string
		child, value string
		out          string
	}{
		{"missing child appended last",
			`<Root><A /></Root>`, "B", "v",
			doc(declLine, `<Root>`, `  <A />`, `  <B>v</B>`, `</Root>`)},
		{"missing child in empty root",
			`<Root></Root>`, "B", "v",
			doc(declLine, `<Root>`, `  <B>v</B>`, `</Root>`)},
		{"existing child replaced keeping attrs",
			`<Root><B keep="yes">old</B><A /></Root>`, "B", "new",
			doc(declLine, `<Root>`, `  <B keep="yes">new</B>`, `  <A />`, `</Root>`)},
		{"empty existing child gains content",
			`<Root><B /></Root>`, "B", "new",
			doc(declLine, `<Root>`, `  <B>new</B>`, `</Root>`)},
		{"whitespace body child replaced",
			"<Root><B>\n  </B></Root>", "B", "new",
			doc(declLine, `<Root>`, `  <B>new</B>`, `</Root>`)},
		{"nested same-named element is not a target",
			`<Root><Y><B>x</B></Y></Root>`, "B", "v",
			doc(declLine, `<Root>`, `  <Y>`, `    <B>x</B>`, `  </Y>`, `  <B>v</B>`, `</Root>`)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, transformString(t, tc.in, upsertRoot(tc.child, tc.value)))
		})
	}
}

func TestUpsert_idempotent(t *testing.T) {
	once := transformString(t, `<Root><A /><B old="1">old</B></Root>`, upsertRoot("B", "v"))
	twice := transformString(t, once, upsertRoot("B", "v"))
	assert.Equal(t, once, twice, "a second independent upsert pass must change nothing")
}

func TestUpsert_duplicateTarget(t *testing.T) {
	var buf bytes.Buffer
	err := vcxml.Transform(strings.NewReader(`<Root><B>1</B><B>2</B></Root>`), upsertRoot("B", "v"), &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, vcxml.ErrDuplicate)
	assert.Zero(t, buf.Len(), "duplicate detection must produce no output")
}

func TestUpsert_childWithNestedElement(t *testing.T) {
	var buf bytes.Buffer
	err := vcxml.Transform(strings.NewReader(`<Root><B><C /></B></Root>`), upsertRoot("B", "v"), &buf)
	assert.ErrorIs(t, err, vcxml.ErrUsage)
	assert.Zero(t, buf.Len())
}
