package domain

// Log attribute keys locating a record within a merge run.
const (
	LogKeyDist    = "dist"
	LogKeyArch    = "arch"
	LogKeyPackage = "package"
)
