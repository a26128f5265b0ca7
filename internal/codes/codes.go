package codes

import (
	errs "github.com/bdlm/errors"
	std "github.com/bdlm/std/error"
)

const (
	// ErrUnspecified - 1000: The error code was unspecified
	ErrUnspecified std.Code = iota + 1000
	// ErrOutOfRange - 1001: A position did not address an element
	ErrOutOfRange
	// ErrKindMismatch - 1002: The element type does not match the declared kind
	ErrKindMismatch
	// ErrDestroyed - 1003: The list was already destroyed
	ErrDestroyed
	// ErrExhausted - 1004: The cursor has no current element
	ErrExhausted
	// ErrCursorInvalidated - 1005: The list was structurally modified under the cursor
	ErrCursorInvalidated
	// ErrCursorReleased - 1006: The cursor was already released
	ErrCursorReleased
)

func init() {
	errs.Codes[ErrUnspecified] = errs.ErrCode{Ext: "An unknown error occurred", Int: "An unknown error occurred", HTTP: 500}
	errs.Codes[ErrOutOfRange] = errs.ErrCode{Ext: "position out of range", Int: "position does not address an element of the list", HTTP: 400}
	errs.Codes[ErrKindMismatch] = errs.ErrCode{Ext: "element kind mismatch", Int: "element type does not match the declared kind", HTTP: 400}
	errs.Codes[ErrDestroyed] = errs.ErrCode{Ext: "list destroyed", Int: "operation on a destroyed list", HTTP: 410}
	errs.Codes[ErrExhausted] = errs.ErrCode{Ext: "cursor exhausted", Int: "cursor has no current element", HTTP: 404}
	errs.Codes[ErrCursorInvalidated] = errs.ErrCode{Ext: "cursor invalidated", Int: "list was modified since the cursor last advanced", HTTP: 409}
	errs.Codes[ErrCursorReleased] = errs.ErrCode{Ext: "cursor released", Int: "operation on a released cursor", HTTP: 410}
}
