package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedExtension is returned when a file does not carry a .sysml or .kerml extension.
	ErrUnsupportedExtension = zerr.New("unsupported file extension")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read source file")

	// ErrUnterminatedComment is returned when a block comment is not closed before end of file.
	ErrUnterminatedComment = zerr.New("unterminated comment")

	// ErrUnterminatedString is returned when a quoted name or string literal is not closed.
	ErrUnterminatedString = zerr.New("unterminated string")

	// ErrUnbalancedBraces is returned when braces do not pair up.
	ErrUnbalancedBraces = zerr.New("unbalanced braces")

	// ErrUnexpectedCharacter is returned when the lexer meets a character outside the notation.
	ErrUnexpectedCharacter = zerr.New("unexpected character")

	// ErrDirectoryWalkFailed is returned when file discovery cannot enumerate a directory.
	ErrDirectoryWalkFailed = zerr.New("failed to walk directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidWorkers is returned when the configured parse worker count is negative.
	ErrInvalidWorkers = zerr.New("stdlib workers must not be negative")

	// ErrStdlibEmpty is returned by the CLI when no stdlib file could be parsed.
	ErrStdlibEmpty = zerr.New("no standard library files found")
)
