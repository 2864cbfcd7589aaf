// Package apperrors provides sentinel errors and error types for the
// chess-pgn-replay pipeline. It defines the four failure classes named in
// the design (lexical, grammar, interpretation, board) and a structured
// error type that preserves stage/position context while still allowing
// inspection with errors.Is() and errors.As().
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline's four failure classes.
// Use these with errors.Is() to check which stage produced an error.
var (
	// ErrLex indicates a lexical scanner error: an unrecognized character,
	// an invalid escape, or an unterminated string.
	ErrLex = errors.New("lexical error")

	// ErrGrammar indicates the grammar driver received an atom with no
	// matching transition from its current state.
	ErrGrammar = errors.New("grammar error")

	// ErrInterpret indicates malformed SAN move text: extra trailing
	// characters, an unknown piece letter, or a missing destination.
	ErrInterpret = errors.New("move interpretation error")

	// ErrBoard indicates the board engine found zero or multiple legal
	// resolutions for a move, an out-of-range coordinate, or a castle
	// onto an occupied intermediate square.
	ErrBoard = errors.New("board error")
)

// Stage identifies which pipeline component raised a ReplayError.
type Stage int

const (
	StageLex Stage = iota
	StageGrammar
	StageInterpret
	StageBoard
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageGrammar:
		return "grammar"
	case StageInterpret:
		return "interpret"
	case StageBoard:
		return "board"
	default:
		return "unknown"
	}
}

// ReplayError wraps a pipeline failure with the stage that produced it and,
// where known, the source line/column and the offending move text.
type ReplayError struct {
	Stage Stage
	Line  uint
	Col   uint
	Move  string // SAN text in play when the error occurred, if any
	Err   error
}

// Error returns a formatted message including all available context.
func (e *ReplayError) Error() string {
	loc := fmt.Sprintf("%s", e.Stage)
	if e.Line > 0 {
		if e.Col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", loc, e.Line, e.Col)
		} else {
			loc = fmt.Sprintf("%s:%d", loc, e.Line)
		}
	}
	if e.Move != "" {
		loc = fmt.Sprintf("%s move %q", loc, e.Move)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying sentinel, enabling errors.Is()/errors.As()
// to work through the ReplayError wrapper.
func (e *ReplayError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Assert panics if cond is false. It marks an internal invariant that
// should never fail on well-formed input (spec section 7): a violation is
// a programming error, not a reportable session failure.
func Assert(cond bool, msg string) {
	if !cond {
		panic("internal assertion failed: " + msg)
	}
}
