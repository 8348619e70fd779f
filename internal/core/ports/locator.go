package ports

// StdlibLocator determines where the standard library corpus lives.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type StdlibLocator interface {
	// Resolve returns the corpus directory. It never fails; the returned
	// path may not exist.
	Resolve() string
}
