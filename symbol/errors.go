package symbol

import "fmt"

// DomainError reports a spatial operator, concatenation, or arithmetic
// combination applied to expressions with incompatible subdomains.
// Expression constructors panic with a *DomainError; model assembly
// recovers it at the construction boundary.
type DomainError struct {
	Op     string // operation that failed, e.g. "grad" or "concatenation"
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("symbol: %s: %s", e.Op, e.Reason)
}

// failDomain panics with a *DomainError for the given operation.
func failDomain(op, format string, args ...any) {
	panic(&DomainError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// RecoverDomainError converts a panicking *DomainError into an ordinary
// error assigned to *err, re-panicking on anything else. Intended for use
// in a deferred call at a model-assembly boundary:
//
//	defer symbol.RecoverDomainError(&err)
func RecoverDomainError(err *error) {
	switch r := recover().(type) {
	case nil:
	case *DomainError:
		*err = r
	default:
		panic(r)
	}
}
