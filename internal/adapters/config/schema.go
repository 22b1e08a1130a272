package config

// File represents the structure of the symbol-merge.yaml configuration file.
type File struct {
	Catalog   string       `yaml:"catalog"`
	Provides  string       `yaml:"provides"`
	Component string       `yaml:"component"`
	Demangler []string     `yaml:"demangler"`
	CacheDir  string       `yaml:"cache_dir"`
	Archives  []ArchiveDTO `yaml:"archives"`
}

// ArchiveDTO represents an archive definition in the configuration.
type ArchiveDTO struct {
	Name      string   `yaml:"name"`
	URL       string   `yaml:"url"`
	Suites    []string `yaml:"suites"`
	Codenames []string `yaml:"codenames"`
	Keyring   string   `yaml:"keyring"`
}
