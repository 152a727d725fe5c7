package pingen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	g := NewCryptoGenerator()

	t.Run("Exact length, digits only", func(t *testing.T) {
		for _, length := range []int{4, 6, 10} {
			code, err := g.Generate(length)
			require.NoError(t, err)
			require.Len(t, code, length)
			for _, c := range code {
				assert.True(t, c >= '0' && c <= '9', "unexpected character %q", c)
			}
		}
	})

	t.Run("Non-positive length fails", func(t *testing.T) {
		for _, length := range []int{0, -1} {
			code, err := g.Generate(length)
			assert.Error(t, err)
			assert.Empty(t, code)
		}
	})

	t.Run("Consecutive codes are not all identical", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			code, err := g.Generate(8)
			require.NoError(t, err)
			seen[code] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}
