package ports

// FileCollector enumerates model source files below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type FileCollector interface {
	// CollectFilePaths returns every source file under dir in discovery order.
	// The directory is assumed to exist; any enumeration failure is returned as an error.
	CollectFilePaths(dir string) ([]string, error)
}
