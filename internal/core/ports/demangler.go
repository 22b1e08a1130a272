package ports

import "context"

// Demangler defines the interface for turning mangled C++ names into source spelling.
//
//go:generate mockgen -source=demangler.go -destination=mocks/mock_demangler.go -package=mocks
type Demangler interface {
	// Demangle returns the text with every mangled name replaced by its demangled form.
	// The output has the same number of lines as the input.
	Demangle(ctx context.Context, text string) (string, error)
}
