package domain

import "regexp"

// Tag classifies a symbol for ABI purposes.
type Tag int

const (
	// TagPlain marks a C symbol (or any name demangling leaves untouched).
	TagPlain Tag = iota
	// TagCxx marks a C++ symbol owned by the library.
	TagCxx
	// TagCxxOptionalStd marks a C++ symbol originating from the standard library or compiler runtime.
	// It is tracked, but not binding for the library's ABI.
	TagCxxOptionalStd
)

// Symbols file tag items.
const (
	CxxTagItem         = "c++"
	OptionalStdTagItem = "optional=std"
	ArchTagPrefix      = "arch="
)

// String returns the tag items as they appear in a symbols file.
func (t Tag) String() string {
	switch t {
	case TagCxx:
		return CxxTagItem
	case TagCxxOptionalStd:
		return CxxTagItem + "|" + OptionalStdTagItem
	default:
		return "plain"
	}
}

// IsCxx reports whether the tag marks a C++ symbol.
func (t Tag) IsCxx() bool {
	return t == TagCxx || t == TagCxxOptionalStd
}

// IsOptional reports whether the tag marks a non-binding symbol.
func (t Tag) IsOptional() bool {
	return t == TagCxxOptionalStd
}

// SymbolKey identifies a catalog entry. Two keys are equal iff tag and name match.
type SymbolKey struct {
	Tag Tag

	// Name is the symbol name as written in the catalog.
	// For C++ tags it holds the demangled spelling, not the mangled linker name.
	Name string
}

// PlainKey creates the key of an untagged symbol.
func PlainKey(name string) SymbolKey {
	return SymbolKey{Tag: TagPlain, Name: name}
}

// stdlibPattern matches demangled names of standard library and compiler runtime entities.
var stdlibPattern = regexp.MustCompile(
	`^typeinfo for std::` +
		`|^vtable for std::` +
		`|^typeinfo name for std::` +
		`|^guard variable for std::` +
		`|^std::` +
		`|^[a-z]* std::` +
		`|^typeinfo for __gnu_cxx::` +
		`|^vtable for __gnu_cxx::` +
		`|^typeinfo name for __gnu_cxx::` +
		`|^guard variable for __gnu_cxx::` +
		`|^__gnu_cxx::` +
		`|^[a-z]* __gnu_cxx::`,
)

// Classify decides the tag of a symbol from its raw exported name and its demangled form.
func Classify(raw, demangled string) Tag {
	if raw == demangled {
		return TagPlain
	}
	if stdlibPattern.MatchString(demangled) {
		return TagCxxOptionalStd
	}
	return TagCxx
}
