package merger

import "github.com/Debian/apt/internal/core/domain"

// Entry is the accumulated state of one symbol.
type Entry struct {
	Key      domain.SymbolKey
	Version  string
	Presence domain.ArchSet
}

type state struct {
	version   string
	committed domain.ArchSet
	current   domain.ArchSet
}

// Accumulator folds observations of many packages and runs into one catalog.
//
// The minimum version of a symbol only ever decreases. Presence is a snapshot:
// EndRun replaces it with what the finished run observed, so the last run decides
// which architectures export a symbol and which symbols survive Finalize.
type Accumulator struct {
	order   []domain.SymbolKey
	entries map[domain.SymbolKey]*state
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		entries: make(map[domain.SymbolKey]*state),
	}
}

// Seed registers a symbol of the existing catalog with no presence.
func (a *Accumulator) Seed(key domain.SymbolKey, version string) {
	a.lower(key, version)
}

// Fold records that arch exports key at version in the current run.
func (a *Accumulator) Fold(key domain.SymbolKey, version, arch string) {
	st := a.lower(key, version)
	st.current.Add(arch)
}

// FoldAll folds a batch of observations.
func (a *Accumulator) FoldAll(observations []Observation) {
	for _, o := range observations {
		a.Fold(o.Key, o.Version, o.Arch)
	}
}

// EndRun commits the presence observed in the current run, replacing the previous one.
func (a *Accumulator) EndRun() {
	for _, st := range a.entries {
		st.committed = st.current
		st.current = make(domain.ArchSet)
	}
}

// Finalize drops every symbol the last run did not observe.
func (a *Accumulator) Finalize() {
	kept := a.order[:0]
	for _, key := range a.order {
		if a.entries[key].committed.Len() == 0 {
			delete(a.entries, key)
			continue
		}
		kept = append(kept, key)
	}
	a.order = kept
}

// Len returns the number of tracked symbols.
func (a *Accumulator) Len() int {
	return len(a.order)
}

// Lookup returns the state of a single symbol.
func (a *Accumulator) Lookup(key domain.SymbolKey) (Entry, bool) {
	st, ok := a.entries[key]
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: key, Version: st.version, Presence: st.committed.Clone()}, true
}

// Entries returns all symbols in insertion order.
func (a *Accumulator) Entries() []Entry {
	entries := make([]Entry, 0, len(a.order))
	for _, key := range a.order {
		st := a.entries[key]
		entries = append(entries, Entry{Key: key, Version: st.version, Presence: st.committed})
	}
	return entries
}

// lower registers key if needed and lowers its minimum version to version.
func (a *Accumulator) lower(key domain.SymbolKey, version string) *state {
	st, ok := a.entries[key]
	if !ok {
		st = &state{
			version:   version,
			committed: make(domain.ArchSet),
			current:   make(domain.ArchSet),
		}
		a.entries[key] = st
		a.order = append(a.order, key)
		return st
	}
	if domain.CompareVersions(version, st.version) < 0 {
		st.version = version
	}
	return st
}
