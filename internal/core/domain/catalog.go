package domain

// SeedEntry is one symbol line of an existing symbols file.
type SeedEntry struct {
	Key     SymbolKey
	Version string
}

// SeedCatalog is the parsed content of an existing symbols file.
type SeedCatalog struct {
	// Prelude holds the lines before the first symbol line, verbatim.
	Prelude []string

	// Entries holds the symbol lines in file order.
	Entries []SeedEntry
}
