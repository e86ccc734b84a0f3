// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the conditions under which a move or position is rejected and
// structured error types that preserve context while allowing error inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates malformed square or promotion text.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrNoPieceAtSource indicates the source square of a move is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongSideToMove indicates a move of a piece whose colour is not to move.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameAlreadyOver indicates a move attempted after the game ended.
	ErrGameAlreadyOver = errors.New("game already over")

	// ErrInvariantViolation indicates an internally inconsistent board,
	// such as a colour with no king or more than one. It is a defect, not user error.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSession indicates a session id with no game attached.
	ErrUnknownSession = errors.New("unknown session")

	// ErrSessionExists indicates a session id that is already in use.
	ErrSessionExists = errors.New("session already exists")
)

// MoveError wraps a rejected move with its context. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err       error  // The underlying error
	From      string // Source square text as supplied
	To        string // Destination square text as supplied
	Promotion string // Promotion text as supplied (empty if none)
	Ply       int    // Ply number the move would have been (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	move := e.From + e.To
	if e.Promotion != "" {
		move += "=" + e.Promotion
	}
	if move != "" {
		parts = append(parts, fmt.Sprintf("move %q", move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PositionError represents a position notation error with field context.
type PositionError struct {
	Err   error  // The underlying error
	Field string // FEN field name (e.g. "placement", "castling")
	Got   string // The offending text
}

// Error returns a formatted error message with field context.
func (e *PositionError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
