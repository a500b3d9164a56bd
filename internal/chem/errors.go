package chem

import "fmt"

// NotFoundError is returned when PubChem has no compound matching the
// searched name. This failure is user-correctable, so callers may want to
// attempt a name correction before surfacing it.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("molecule %q not found in PubChem database", e.Query)
}

// TransportError is returned for any PubChem failure other than a missing
// compound: network errors, unexpected status codes, or malformed payloads.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pubchem %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
