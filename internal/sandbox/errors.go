package sandbox

import (
	"errors"
	"fmt"
)

// ErrSandboxViolation is matched by every ViolationError via errors.Is
var ErrSandboxViolation = errors.New("path escapes sandbox root")

// ViolationError reports a request path that resolved outside its root.
type ViolationError struct {
	// Root is the canonical root directory
	Root string
	// Requested is the root-relative path that was resolved
	Requested string
	// Resolved is the canonical result that failed the containment check
	Resolved string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("sandbox violation: %q resolves to %q outside root %q",
		e.Requested, e.Resolved, e.Root)
}

func (e *ViolationError) Is(target error) bool {
	return target == ErrSandboxViolation
}
