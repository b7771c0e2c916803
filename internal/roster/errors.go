package roster

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a store failure. Callers surface kinds to the user as
// notifications; no kind is retried automatically.
type Kind string

const (
	KindStoreUnavailable Kind = "store_unavailable"
	KindPermissionDenied Kind = "permission_denied"
	KindWriteRejected    Kind = "write_rejected"
	KindNotFound         Kind = "not_found"
	KindNotInitialized   Kind = "not_initialized"
	KindFailed           Kind = "failed"
)

// StoreError wraps a failure with its classification and the operation
// that produced it.
type StoreError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or KindFailed for anything
// the store did not produce.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindFailed
}

func storeErr(op string, kind Kind, err error) error {
	return &StoreError{Kind: kind, Op: op, Err: err}
}

// classifyWrite maps a driver error from a write to a kind. SQLite reports
// CHECK violations and permission failures as constraint/authorization
// errors in the message text; the libsql driver does not expose typed
// errors for them.
func classifyWrite(op string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint"):
		return storeErr(op, KindWriteRejected, err)
	case strings.Contains(msg, "not authorized"), strings.Contains(msg, "permission"):
		return storeErr(op, KindPermissionDenied, err)
	case strings.Contains(msg, "no such table"):
		return storeErr(op, KindNotInitialized, err)
	case strings.Contains(msg, "connection"), strings.Contains(msg, "timeout"), strings.Contains(msg, "unreachable"):
		return storeErr(op, KindStoreUnavailable, err)
	}
	return storeErr(op, KindFailed, err)
}

// classifyRead is classifyWrite without the write-rejection case.
func classifyRead(op string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not authorized"), strings.Contains(msg, "permission"):
		return storeErr(op, KindPermissionDenied, err)
	case strings.Contains(msg, "no such table"):
		return storeErr(op, KindNotInitialized, err)
	}
	return storeErr(op, KindStoreUnavailable, err)
}
