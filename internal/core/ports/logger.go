package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Debug logs a diagnostic message with optional key/value attributes.
	// It is only emitted when verbose output is enabled.
	Debug(msg string, args ...any)
	// Error logs an error together with its cause chain.
	Error(err error)
}
