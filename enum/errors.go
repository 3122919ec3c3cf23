package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownName indicates a name lookup miss; alias names are
	// consulted before this is reported.
	ErrUnknownName = errors.New("unknown member name")
	// ErrUnknownValue indicates a value lookup miss.
	ErrUnknownValue = errors.New("unknown member value")
	// ErrImmutable indicates a modification attempt on a finalized type
	// or one of its members.
	ErrImmutable = errors.New("finalized type prohibits modification")
	// ErrSubclassExtension indicates an attempt to derive a type that
	// adds members to an already finalized member-bearing base.
	ErrSubclassExtension = errors.New("finalized type cannot gain new members")
)

// ContractError reports a constructor that violates the build-time
// calling contract. It aborts the whole type construction; no members
// of a failed build are ever observable.
type ContractError struct {
	Type   string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("enum %s: constructor contract: %s", e.Type, e.Reason)
}
