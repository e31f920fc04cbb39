package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

func TestCompileWhere(t *testing.T) {
	t.Run("empty matches anything", func(t *testing.T) {
		match, err := compileWhere("")
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("attribute equality", func(t *testing.T) {
		match, err := compileWhere(`attrs.Label == "Globals"`)
		require.NoError(t, err)
		assert.True(t, match(vcxml.Attrs{{Name: "Label", Value: "Globals"}}))
		assert.False(t, match(vcxml.Attrs{{Name: "Label", Value: "UserMacros"}}))
		assert.False(t, match(nil))
	})

	t.Run("substring predicate", func(t *testing.T) {
		match, err := compileWhere(`attrs.Condition contains "Debug"`)
		require.NoError(t, err)
		assert.True(t, match(vcxml.Attrs{
			{Name: "Condition", Value: "'$(Configuration)|$(Platform)'=='Debug|Win32'"},
		}))
		assert.False(t, match(vcxml.Attrs{
			{Name: "Condition", Value: "'$(Configuration)|$(Platform)'=='Release|Win32'"},
		}))
	})

	t.Run("compile error", func(t *testing.T) {
		_, err := compileWhere(`attrs.Label ==`)
		assert.Error(t, err)
	})

	t.Run("non-boolean expression rejected", func(t *testing.T) {
		_, err := compileWhere(`attrs.Label`)
		assert.Error(t, err)
	})
}
