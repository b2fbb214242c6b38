package core

import (
	"errors"
	"fmt"
)

type ErrorCode string

// Error codes
const (
	CodeInvalidFormat         ErrorCode = "INVALID_FORMAT"
	CodeInvalidColumn         ErrorCode = "INVALID_COLUMN"
	CodeInvalidRow            ErrorCode = "INVALID_ROW"
	CodeMissingIndex          ErrorCode = "MISSING_INDEX"
	CodeEmptySquare           ErrorCode = "EMPTY_SQUARE"
	CodeWrongOwner            ErrorCode = "WRONG_OWNER"
	CodeOccupiedDestination   ErrorCode = "OCCUPIED_DESTINATION"
	CodeIllegalBackwardMove   ErrorCode = "ILLEGAL_BACKWARD_MOVE"
	CodeIllegalShape          ErrorCode = "ILLEGAL_SHAPE"
	CodeNoCaptureTarget       ErrorCode = "NO_CAPTURE_TARGET"
	CodeCannotCaptureOwnPiece ErrorCode = "CANNOT_CAPTURE_OWN_PIECE"
	CodeAlreadyDouble         ErrorCode = "ALREADY_DOUBLE"
	CodeNotOnPromotionRow     ErrorCode = "NOT_ON_PROMOTION_ROW"
)

// Error is a rule or input violation. Two errors match under errors.Is when
// their codes are equal, so the sentinels below work with wrapped messages.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Errorf builds an Error with a formatted message
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidFormat         = &Error{Code: CodeInvalidFormat, Message: "index must be two characters"}
	ErrInvalidColumn         = &Error{Code: CodeInvalidColumn, Message: "incorrect column letter"}
	ErrInvalidRow            = &Error{Code: CodeInvalidRow, Message: "incorrect row digit"}
	ErrMissingIndex          = &Error{Code: CodeMissingIndex, Message: "missing index"}
	ErrEmptySquare           = &Error{Code: CodeEmptySquare, Message: "no piece in this square"}
	ErrWrongOwner            = &Error{Code: CodeWrongOwner, Message: "piece belongs to the other player"}
	ErrOccupiedDestination   = &Error{Code: CodeOccupiedDestination, Message: "final square is not empty"}
	ErrIllegalBackwardMove   = &Error{Code: CodeIllegalBackwardMove, Message: "single pieces cannot move backwards"}
	ErrIllegalShape          = &Error{Code: CodeIllegalShape, Message: "not a step or hop"}
	ErrNoCaptureTarget       = &Error{Code: CodeNoCaptureTarget, Message: "nothing to hop over"}
	ErrCannotCaptureOwnPiece = &Error{Code: CodeCannotCaptureOwnPiece, Message: "cannot hop over own piece"}
	ErrAlreadyDouble         = &Error{Code: CodeAlreadyDouble, Message: "unable to double a double"}
	ErrNotOnPromotionRow     = &Error{Code: CodeNotOnPromotionRow, Message: "piece is not on its promotion row"}
)

// IsParseError reports whether err comes from reading command text rather
// than from a rule violation
func IsParseError(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeInvalidFormat, CodeInvalidColumn, CodeInvalidRow, CodeMissingIndex:
		return true
	}
	return false
}
