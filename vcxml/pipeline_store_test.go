package vcxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oatssss/vcxproj-stream-editor/internal/store"
)

func TestTransformStore(t *testing.T) {
	const bom = "\uFEFF"
	input := strings.Join([]string{
		declLine,
		`<Project>`,
		`<Import   Project="a.props"/>`,
		`</Project>`,
	}, "\n")
	formatted := bom + strings.Join([]string{
		declLine,
		`<Project>`,
		`  <Import Project="a.props" />`,
		`</Project>`,
	}, "\r\n")

	t.Run("success replaces content", func(t *testing.T) {
		src := store.NewMem(input)
		dst := store.NewMem("prior")
		require.NoError(t, transformStore(src, dst, nil))
		assert.Equal(t, formatted, dst.String())
		assert.Equal(t, input, src.String())
	})

	t.Run("failed pass leaves prior content", func(t *testing.T) {
		src := store.NewMem("<Project><Broken></Project>")
		dst := store.NewMem("prior")
		err := transformStore(src, dst, nil)
		require.ErrorIs(t, err, ErrTokenize)
		assert.Equal(t, "prior", dst.String())
	})

	t.Run("missing source", func(t *testing.T) {
		var src store.Mem
		err := transformStore(&src, store.NewMem(""), nil)
		assert.ErrorIs(t, err, store.ErrNotExists)
	})
}

func TestCheckStore(t *testing.T) {
	var evs []Event
	collect := HandlerFunc(func(ev Event) error {
		evs = append(evs, ev)
		return nil
	})
	require.NoError(t, checkStore(store.NewMem("<A><B /></A>"), collect))
	require.Len(t, evs, 4)
	assert.Equal(t, "A", evs[0].Name)

	var src store.Mem
	assert.ErrorIs(t, checkStore(&src, nil), store.ErrNotExists)
}
