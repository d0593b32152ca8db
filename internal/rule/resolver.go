package rule

// Resolver resolves an atom name to a boolean fact.
type Resolver interface {
	Resolve(name string) (bool, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (bool, error)

func (f ResolverFunc) Resolve(name string) (bool, error) {
	return f(name)
}

// OracleError carries a failure returned by a Resolver. Its message is the
// resolver's message unchanged and Unwrap returns the resolver's error.
type OracleError struct {
	Atom string
	Err  error
}

func (e *OracleError) Error() string {
	return e.Err.Error()
}

func (e *OracleError) Unwrap() error {
	return e.Err
}
