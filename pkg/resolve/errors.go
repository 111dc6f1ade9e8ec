package resolve

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPackage indicates the package name is unusable
	ErrInvalidPackage = errors.New("invalid package")

	// ErrInstallRootNotFound indicates no install root candidate is an existing directory
	ErrInstallRootNotFound = errors.New("vcpkg install root not found")

	// ErrTripletNotDetermined indicates no triplet source is set
	ErrTripletNotDetermined = errors.New("vcpkg triplet not determined")
)

// Candidate is one step of a fallback chain
type Candidate struct {
	Source string // Where the value came from (e.g., "$VCPKG_ROOT")
	Value  string // Path or triplet; empty when the source is not set
	Reason string // Why the candidate was rejected; empty if selected
}

func (c Candidate) String() string {
	if c.Value == "" {
		return fmt.Sprintf("%s: %s", c.Source, c.Reason)
	}
	return fmt.Sprintf("%s %s: %s", c.Source, c.Value, c.Reason)
}

// CandidateError reports an exhausted fallback chain together with every
// candidate that was considered.
type CandidateError struct {
	Err        error       // ErrInstallRootNotFound or ErrTripletNotDetermined
	Candidates []Candidate // In priority order
	Hint       string      // Optional suggestion for the user
}

func (e *CandidateError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())

	if len(e.Candidates) > 0 {
		tried := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			tried[i] = c.String()
		}
		b.WriteString(" (tried ")
		b.WriteString(strings.Join(tried, "; "))
		b.WriteString(")")
	}

	if e.Hint != "" {
		b.WriteString(": ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
