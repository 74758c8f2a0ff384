package mixamo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoneDefs(t *testing.T) {
	t.Run("Should define the full reference skeleton", func(t *testing.T) {
		assert.Len(t, BoneDefs, 65)
	})
	t.Run("Should have unique names", func(t *testing.T) {
		seen := map[string]bool{}
		for _, d := range BoneDefs {
			assert.False(t, seen[d.Name], "duplicate %s", d.Name)
			seen[d.Name] = true
		}
	})
	t.Run("Should declare parents before children", func(t *testing.T) {
		seen := map[string]bool{}
		for _, d := range BoneDefs {
			if d.Parent != "" {
				assert.True(t, seen[d.Parent], "%s declared before its parent %s", d.Name, d.Parent)
			}
			seen[d.Name] = true
		}
	})
	t.Run("Should have exactly one root", func(t *testing.T) {
		roots := 0
		for _, d := range BoneDefs {
			if d.Parent == "" {
				roots++
			}
		}
		assert.Equal(t, 1, roots)
	})
}

func TestBodySubsets(t *testing.T) {
	names := map[string]bool{}
	for _, d := range BoneDefs {
		names[d.Name] = true
	}

	t.Run("Should only reference defined bones", func(t *testing.T) {
		for _, n := range append(append([]string{}, LowerBodyBones...), UpperBodyBones...) {
			assert.True(t, names[n], "unknown bone %s", n)
		}
	})
	t.Run("Should be disjoint", func(t *testing.T) {
		lower := map[string]bool{}
		for _, n := range LowerBodyBones {
			lower[n] = true
		}
		for _, n := range UpperBodyBones {
			assert.False(t, lower[n], "%s in both subsets", n)
		}
	})
	t.Run("Should keep the expected subset sizes", func(t *testing.T) {
		require.Len(t, LowerBodyBones, 10)
		require.Len(t, UpperBodyBones, 42)
	})
}
