package vcxml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

// feedAll feeds events until the scan reports done, returning how many were
// consumed.
func feedAll(t *testing.T, s *vcxml.Scan, evs []vcxml.Event) int {
	t.Helper()
	for i, ev := range evs {
		done, err := s.Feed(ev)
		require.NoError(t, err)
		if done {
			return i + 1
		}
	}
	return len(evs)
}

func TestScan(t *testing.T) {
	start := func(name string, attrs ...vcxml.Attr) vcxml.Event {
		return vcxml.Event{Type: vcxml.StartElem, Name: name, Attrs: attrs}
	}
	end := func(name string) vcxml.Event { return vcxml.Event{Type: vcxml.EndElem, Name: name} }

	// the direct children of some element currently open: a sibling subtree
	// hiding a nested X, then a genuine sibling X
	siblings := []vcxml.Event{
		start("Y"),
		start("X", vcxml.Attr{Name: "nested", Value: "yes"}),
		end("X"),
		end("Y"),
		start("X", vcxml.Attr{Name: "nested", Value: "no"}),
		end("X"),
		end("Enclosing"),
	}

	t.Run("matches only direct siblings", func(t *testing.T) {
		var forwarded eventList
		s := &vcxml.Scan{Target: &forwarded, Name: "X"}
		n := feedAll(t, s, siblings)
		assert.Equal(t, 5, n, "should claim the sibling X, not the nested one")
		assert.True(t, s.Found)
		assert.Equal(t, "X", s.Last.Name)
		v, _ := s.Last.Attrs.Get("nested")
		assert.Equal(t, "no", v)
		assert.Equal(t, eventList(siblings[:4]), forwarded, "the non-matching subtree is forwarded verbatim")
	})

	t.Run("attribute predicate", func(t *testing.T) {
		var forwarded eventList
		s := &vcxml.Scan{Target: &forwarded, Match: func(attrs vcxml.Attrs) bool {
			v, _ := attrs.Get("nested")
			return v == "no"
		}}
		n := feedAll(t, s, siblings)
		assert.Equal(t, 5, n)
		assert.True(t, s.Found)
	})

	t.Run("name and predicate must both hold", func(t *testing.T) {
		s := &vcxml.Scan{Name: "X", Match: func(vcxml.Attrs) bool { return false }}
		feedAll(t, s, siblings)
		assert.False(t, s.Found)
		assert.Equal(t, end("Enclosing"), s.Last)
	})

	t.Run("no criteria forwards to the enclosing close", func(t *testing.T) {
		var forwarded eventList
		s := &vcxml.Scan{Target: &forwarded}
		n := feedAll(t, s, siblings)
		assert.Equal(t, len(siblings), n)
		assert.False(t, s.Found)
		assert.Equal(t, end("Enclosing"), s.Last)
		assert.Equal(t, eventList(siblings[:len(siblings)-1]), forwarded,
			"everything but the enclosing close tag is forwarded")
	})

	t.Run("nil target discards", func(t *testing.T) {
		s := &vcxml.Scan{Name: "X"}
		n := feedAll(t, s, siblings)
		assert.Equal(t, 5, n)
		assert.True(t, s.Found)
	})

	t.Run("feeding a finished scan is a usage error", func(t *testing.T) {
		s := &vcxml.Scan{}
		done, err := s.Feed(end("Enclosing"))
		require.NoError(t, err)
		require.True(t, done)
		_, err = s.Feed(start("X"))
		assert.ErrorIs(t, err, vcxml.ErrUsage)
	})
}
