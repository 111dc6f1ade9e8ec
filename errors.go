package vcpkg

import (
	"errors"
	"fmt"

	"github.com/arc-language/vcpkg-locate/pkg/directive"
	"github.com/arc-language/vcpkg-locate/pkg/resolve"
)

var (
	// ErrInvalidPackage indicates the package name is empty
	ErrInvalidPackage = resolve.ErrInvalidPackage

	// ErrInstallRootNotFound indicates no install root candidate exists as a directory
	ErrInstallRootNotFound = resolve.ErrInstallRootNotFound

	// ErrTripletNotDetermined indicates no triplet was configured or found in the environment
	ErrTripletNotDetermined = resolve.ErrTripletNotDetermined

	// ErrUnknownFormat indicates an unsupported directive format
	ErrUnknownFormat = directive.ErrUnknownFormat

	// ErrConfigConsumed indicates Resolve or Locate was called twice on one Config
	ErrConfigConsumed = errors.New("config already consumed")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
