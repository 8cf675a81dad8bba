package types

import (
	"errors"
	"fmt"
)

// ErrorCode is the stable, machine-readable part of a DealError
type ErrorCode string

const (
	// Dealing errors
	ErrNoPlayers   ErrorCode = "NO_PLAYERS"
	ErrInvalidCard ErrorCode = "INVALID_CARD"

	// Round history errors
	ErrRoundNotFound ErrorCode = "ROUND_NOT_FOUND"

	// Setup errors
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// DealError carries a code, a message for the table, and an optional cause.
// It renders as "CODE: message" or "CODE: message (cause)".
type DealError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DealError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *DealError) Unwrap() error {
	return e.Err
}

// NewDealError builds a DealError with no cause
func NewDealError(code ErrorCode, message string) *DealError {
	return &DealError{
		Code:    code,
		Message: message,
	}
}

// WrapError attaches code and message to a lower-level failure
func WrapError(code ErrorCode, message string, err error) *DealError {
	return &DealError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsDealError reports whether any DealError in err's chain has the given code
func IsDealError(err error, code ErrorCode) bool {
	var dealErr *DealError
	if !As(err, &dealErr) {
		return false
	}
	return dealErr.Code == code
}

// As finds the first DealError in err's chain. Nil err or target reports false.
func As(err error, target **DealError) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.As(err, target)
}
