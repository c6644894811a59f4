package Maps

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCorrupt         = errors.New("corrupt map")
)

// InvalidArgumentError is returned when Op is called with an argument it can't accept.
type InvalidArgumentError struct {
	Op     string
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument builds an *InvalidArgumentError carrying a stack trace.
func InvalidArgument(op, arg, format string, args ...any) error {
	return errors.WithStack(&InvalidArgumentError{Op: op, Arg: arg, Reason: fmt.Sprintf(format, args...)})
}

// CorruptError describes the first structural violation Verify found. Slot is the arena slot involved, or -1.
type CorruptError struct {
	Slot   int
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Slot < 0 {
		return "corrupt map: " + e.Reason
	}
	return fmt.Sprintf("corrupt map: slot %d: %s", e.Slot, e.Reason)
}

func (e *CorruptError) Is(target error) bool {
	return target == ErrCorrupt
}

func Corrupt(slot int, format string, args ...any) error {
	return errors.WithStack(&CorruptError{Slot: slot, Reason: fmt.Sprintf(format, args...)})
}
