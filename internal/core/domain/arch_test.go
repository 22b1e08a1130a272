package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/Debian/apt/internal/core/domain"
)

func TestArchSet(t *testing.T) {
	t.Run("deduplicates", func(t *testing.T) {
		s := domain.NewArchSet("amd64", "arm64", "amd64")
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has("amd64"))
		assert.False(t, s.Has("armhf"))
	})

	t.Run("parses release field", func(t *testing.T) {
		s := domain.ParseArchSet(" amd64  arm64\tarmhf ")
		assert.Equal(t, []string{"amd64", "arm64", "armhf"}, s.Sorted())
	})

	t.Run("equality ignores order", func(t *testing.T) {
		a := domain.NewArchSet("arm64", "amd64")
		b := domain.NewArchSet("amd64", "arm64")
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(domain.NewArchSet("amd64")))
		assert.False(t, a.Equal(domain.NewArchSet("amd64", "armhf")))
	})

	t.Run("minus", func(t *testing.T) {
		universe := domain.NewArchSet("amd64", "arm64", "armhf")
		present := domain.NewArchSet("amd64", "arm64")
		assert.Equal(t, []string{"armhf"}, universe.Minus(present).Sorted())
		assert.Equal(t, 0, present.Minus(universe).Len())
	})

	t.Run("clone is independent", func(t *testing.T) {
		a := domain.NewArchSet("amd64")
		b := a.Clone()
		b.Add("arm64")
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 2, b.Len())

		var nilSet domain.ArchSet
		assert.NotNil(t, nilSet.Clone())
	})

	t.Run("string is sorted", func(t *testing.T) {
		assert.Equal(t, "amd64 arm64 s390x", domain.NewArchSet("s390x", "amd64", "arm64").String())
	})
}
