package domain

import (
	"maps"
	"slices"
	"strings"
)

// ArchSet is an unordered, deduplicated set of short architecture identifiers (e.g. "amd64").
type ArchSet map[string]struct{}

// NewArchSet creates a set holding the given architectures.
func NewArchSet(archs ...string) ArchSet {
	s := make(ArchSet, len(archs))
	for _, a := range archs {
		s.Add(a)
	}
	return s
}

// ParseArchSet creates a set from a whitespace separated list, as found in Release files.
func ParseArchSet(field string) ArchSet {
	return NewArchSet(strings.Fields(field)...)
}

// Add inserts an architecture into the set.
func (s ArchSet) Add(arch string) {
	s[arch] = struct{}{}
}

// Has reports whether the architecture is in the set.
func (s ArchSet) Has(arch string) bool {
	_, ok := s[arch]
	return ok
}

// Len returns the number of architectures.
func (s ArchSet) Len() int {
	return len(s)
}

// Equal reports whether both sets hold exactly the same architectures.
func (s ArchSet) Equal(other ArchSet) bool {
	if len(s) != len(other) {
		return false
	}
	for a := range s {
		if !other.Has(a) {
			return false
		}
	}
	return true
}

// Minus returns the architectures of s that are not in other.
func (s ArchSet) Minus(other ArchSet) ArchSet {
	res := make(ArchSet)
	for a := range s {
		if !other.Has(a) {
			res.Add(a)
		}
	}
	return res
}

// Clone returns an independent copy of the set.
func (s ArchSet) Clone() ArchSet {
	if s == nil {
		return make(ArchSet)
	}
	return maps.Clone(s)
}

// Sorted returns the architectures in lexical order.
func (s ArchSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// String renders the set as a sorted, space separated list.
func (s ArchSet) String() string {
	return strings.Join(s.Sorted(), " ")
}
