package domain

import "go.trai.ch/zerr"

var (
	// ErrMetadataUnavailable is returned when the release metadata of a distribution cannot be read
	// or does not declare its architectures.
	ErrMetadataUnavailable = zerr.New("release metadata unavailable")

	// ErrPackageReadFailure is returned when a package's symbol table is missing or malformed.
	ErrPackageReadFailure = zerr.New("failed to read package symbol table")

	// ErrDemangleMismatch is returned when the raw and demangled symbol tables disagree in line count.
	ErrDemangleMismatch = zerr.New("raw and demangled symbol tables differ in length")

	// ErrSeedCatalogCorrupt is returned when the existing symbols file cannot be parsed.
	ErrSeedCatalogCorrupt = zerr.New("seed catalog is corrupt")

	// ErrCatalogNotFound is returned when no symbols file matches the configured pattern.
	ErrCatalogNotFound = zerr.New("could not find symbols file")

	// ErrCatalogWriteFailed is returned when the merged symbols file cannot be persisted.
	ErrCatalogWriteFailed = zerr.New("failed to write symbols file")

	// ErrNoDistributions is returned when a merge is requested without any distribution.
	ErrNoDistributions = zerr.New("no distributions specified")

	// ErrPackageFetchFailed is returned when the packages of a distribution cannot be retrieved.
	ErrPackageFetchFailed = zerr.New("failed to fetch packages")

	// ErrNoProviders is returned when no package provides the library on an architecture.
	ErrNoProviders = zerr.New("no package provides the library")

	// ErrChecksumMismatch is returned when a downloaded file does not match its expected digest.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrDemanglerFailed is returned when the external demangler cannot be run.
	ErrDemanglerFailed = zerr.New("demangler failed")

	// ErrUnknownArchive is returned when no configured archive serves a distribution.
	ErrUnknownArchive = zerr.New("no archive configured for distribution")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file parses but describes an unusable setup.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCacheCreateFailed is returned when the download cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create download cache directory")

	// ErrCacheWriteFailed is returned when a blob cannot be stored in the download cache.
	ErrCacheWriteFailed = zerr.New("failed to write to download cache")

	// ErrUnexpectedStatus is returned when an archive answers with a non-success HTTP status.
	ErrUnexpectedStatus = zerr.New("unexpected HTTP status")

	// ErrIndexParseFailed is returned when a package index or release file is malformed.
	ErrIndexParseFailed = zerr.New("failed to parse archive index")
)
