// internal/app/system/boundary/fault.go
package boundary

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultMessage is shown when a fault carries no user-facing message.
const DefaultMessage = "An unexpected error occurred."

// Fault is a render-time failure caught by a boundary. Message is safe to
// show to visitors; Digest is an opaque identifier shown on the fallback
// page and written to the log so the two can be matched up.
type Fault struct {
	Message string
	Digest  string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Err.Error()
}

func (f *Fault) Unwrap() error { return f.Err }

// NewFault wraps err in a Fault with a fresh digest. The message comes from
// WithMessage if err carries one.
func NewFault(err error) *Fault {
	var existing *Fault
	if errors.As(err, &existing) {
		return existing
	}
	msg := DefaultMessage
	var me *messageError
	if errors.As(err, &me) {
		msg = me.msg
	}
	return &Fault{Message: msg, Digest: uuid.NewString(), Err: err}
}

func faultFromPanic(v any) *Fault {
	switch x := v.(type) {
	case *Fault:
		return x
	case error:
		return NewFault(fmt.Errorf("panic: %w", x))
	default:
		return NewFault(fmt.Errorf("panic: %v", x))
	}
}

type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string { return e.err.Error() }
func (e *messageError) Unwrap() error { return e.err }

// WithMessage attaches a visitor-facing message to err.
func WithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &messageError{msg: msg, err: err}
}
