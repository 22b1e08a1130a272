package ports

// Logger defines the interface for logging.
//
// Args are slog style key/value pairs. The domain.LogKey* keys place a record
// within a merge run.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
}
