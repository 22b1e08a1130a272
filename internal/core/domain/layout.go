package domain

const (
	// StateDirName is the name of the local state directory.
	StateDirName = ".symbol-merge"

	// CacheDirName is the name of the download cache directory.
	CacheDirName = "cache"

	// StoreDirName is the name of the content addressable store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "symbol-merge.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
