package ecss

import (
	"errors"
	"fmt"
)

// Sentinel errors for scene-graph and registry operations.
var (
	// ErrUnknownEntity is returned when an operation references an entity
	// that was never registered.
	ErrUnknownEntity = errors.New("ecss: entity not registered")

	// ErrDuplicateRegistration is returned when the same entity instance is
	// registered twice.
	ErrDuplicateRegistration = errors.New("ecss: entity already registered")

	// ErrInvalidHierarchy is returned when a link would create a cycle,
	// target a leaf node, or attach an already-parented child.
	ErrInvalidHierarchy = errors.New("ecss: invalid hierarchy")

	// ErrOutOfRange is returned when a child index lies outside the bounds
	// of the child list.
	ErrOutOfRange = errors.New("ecss: child index out of range")
)

// UnknownEntityError reports an operation on an entity the registry has
// never seen.
type UnknownEntityError struct {
	Name string
	ID   uint64
}

// Error returns the error string.
func (e *UnknownEntityError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("ecss: entity %q not registered (id=%d)", e.Name, e.ID)
	}
	return fmt.Sprintf("ecss: entity %q not registered", e.Name)
}

// Is reports whether the target error matches UnknownEntityError.
// This allows errors.Is(err, ErrUnknownEntity) to return true.
func (e *UnknownEntityError) Is(err error) bool {
	return err == ErrUnknownEntity
}

// IsUnknownEntity returns true if the error is an UnknownEntityError.
func IsUnknownEntity(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownEntityError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownEntity)
}

// DuplicateRegistrationError reports a second registration of an entity
// instance the registry already tracks.
type DuplicateRegistrationError struct {
	Name string
	ID   uint64
}

// Error returns the error string.
func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("ecss: entity %q already registered (id=%d)", e.Name, e.ID)
}

// Is reports whether the target error matches DuplicateRegistrationError.
// This allows errors.Is(err, ErrDuplicateRegistration) to return true.
func (e *DuplicateRegistrationError) Is(err error) bool {
	return err == ErrDuplicateRegistration
}

// IsDuplicateRegistration returns true if the error is a DuplicateRegistrationError.
func IsDuplicateRegistration(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateRegistrationError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateRegistration)
}

// InvalidHierarchyError reports a link operation the scene tree rejects.
type InvalidHierarchyError struct {
	Op     string // Operation that was attempted (e.g. "add")
	Parent string // Name of the node the operation targeted
	Child  string // Name of the node being linked
	Reason string
}

// Error returns the error string.
func (e *InvalidHierarchyError) Error() string {
	return fmt.Sprintf("ecss: cannot %s %q under %q: %s", e.Op, e.Child, e.Parent, e.Reason)
}

// Is reports whether the target error matches InvalidHierarchyError.
// This allows errors.Is(err, ErrInvalidHierarchy) to return true.
func (e *InvalidHierarchyError) Is(err error) bool {
	return err == ErrInvalidHierarchy
}

// IsInvalidHierarchy returns true if the error is an InvalidHierarchyError.
func IsInvalidHierarchy(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidHierarchyError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidHierarchy)
}

// OutOfRangeError reports a child lookup outside the bounds of the child list.
type OutOfRangeError struct {
	Index int
	Len   int
}

// Error returns the error string.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("ecss: child index %d out of range with length %d", e.Index, e.Len)
}

// Is reports whether the target error matches OutOfRangeError.
// This allows errors.Is(err, ErrOutOfRange) to return true.
func (e *OutOfRangeError) Is(err error) bool {
	return err == ErrOutOfRange
}

// IsOutOfRange returns true if the error is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	if err == nil {
		return false
	}
	var e *OutOfRangeError
	return errors.As(err, &e) || errors.Is(err, ErrOutOfRange)
}
