// Package pgn implements the grammar driver and move interpreter stages of
// the pipeline (spec sections 4.2 and 4.3): an explicit finite-state
// machine over the lexer's atom stream, and a right-to-left SAN decoder.
// Grounded on _examples/original_source/parser.h's PGNParser and
// MoveFactory, not the teacher's internal/parser (a two-pass,
// header-collecting parser built for a much richer Game model this spec
// does not carry).
package pgn

import (
	"io"

	"github.com/mgark/chess-pgn-replay/internal/apperrors"
	"github.com/mgark/chess-pgn-replay/internal/chess"
	"github.com/mgark/chess-pgn-replay/internal/lexer"
)

// state is the grammar driver's finite-automaton state (spec section 4.2).
type state int

const (
	stateInit state = iota
	stateHeaderOpen
	stateHeaderName
	stateHeaderValue
	stateHeaderClose
	stateNumberIndication
	statePeriod
	stateMove
	stateFinished
)

// Driver consumes atoms from a Lexer and emits move descriptors, one per
// half-move or game-termination marker. It owns the white-turn flag and
// parenthesis depth counter; both are private mutable state never exposed
// to the board engine (spec section 5).
type Driver struct {
	lex       *lexer.Lexer
	state     state
	whiteTurn bool // the color of the most recently *emitted* NextMove
	parenDepth int
}

// NewDriver returns a Driver reading atoms from lex.
func NewDriver(lex *lexer.Lexer) *Driver {
	return &Driver{lex: lex, state: stateInit}
}

// Next returns the next move descriptor, or io.EOF once the atom stream is
// exhausted without a further descriptor to emit.
func (d *Driver) Next() (*chess.Move, error) {
	for {
		atom, err := d.lex.Next()
		if err != nil {
			return nil, err
		}
		if atom.Kind == lexer.EOF {
			return nil, io.EOF
		}

		switch atom.Kind {
		case lexer.BraceComment, lexer.LineComment, lexer.EscapeLine, lexer.NumericAnnotation:
			continue
		case lexer.LParen:
			d.parenDepth++
			continue
		case lexer.RParen:
			if d.parenDepth == 0 {
				return nil, d.errf("unbalanced ) with no matching (")
			}
			d.parenDepth--
			continue
		}

		mv, err := d.step(atom)
		if err != nil {
			return nil, err
		}
		if mv != nil {
			return mv, nil
		}
	}
}

// step feeds one atom through the transition table and returns a
// descriptor when (and only when) the atom caused entry into Move or
// Finished at parenthesis depth zero.
func (d *Driver) step(atom lexer.Atom) (*chess.Move, error) {
	// "Any state on STAR -> Finished" is an unconditional rule layered on
	// top of the per-state table (spec section 4.2).
	if atom.Kind == lexer.Star {
		return d.enterFinished()
	}

	switch d.state {
	case stateInit:
		switch atom.Kind {
		case lexer.LBracket:
			d.state = stateHeaderOpen
			return nil, nil
		case lexer.Integer:
			d.state = stateNumberIndication
			return nil, nil
		case lexer.Symbol:
			return d.enterMove(atom)
		}
	case stateHeaderOpen:
		if atom.Kind == lexer.Symbol {
			d.state = stateHeaderName
			return nil, nil
		}
	case stateHeaderName:
		if atom.Kind == lexer.String {
			d.state = stateHeaderValue
			return nil, nil
		}
	case stateHeaderValue:
		if atom.Kind == lexer.RBracket {
			d.state = stateHeaderClose
			return nil, nil
		}
	case stateHeaderClose:
		switch atom.Kind {
		case lexer.LBracket:
			d.state = stateHeaderOpen
			return nil, nil
		case lexer.Integer:
			d.state = stateNumberIndication
			return nil, nil
		case lexer.Symbol:
			return d.enterMove(atom)
		}
	case stateNumberIndication:
		switch atom.Kind {
		case lexer.Period:
			d.state = statePeriod
			return nil, nil
		case lexer.Symbol:
			return d.enterMove(atom)
		}
	case statePeriod:
		switch atom.Kind {
		case lexer.Period:
			return nil, nil
		case lexer.Symbol:
			return d.enterMove(atom)
		}
	case stateMove:
		switch atom.Kind {
		case lexer.Symbol:
			return d.enterMove(atom)
		case lexer.Integer:
			d.state = stateNumberIndication
			return nil, nil
		case lexer.Period:
			return nil, nil
		}
	}

	return nil, d.errf("atom %s has no transition from state %d", atom.Kind, d.state)
}

// enterMove implements the shared "entering Move from any state" rule: it
// interprets the symbol text under the tentative side-to-move color, and
// commits that color as the new white-turn flag only for an emitted
// NextMove (REDESIGN FLAG: castling descriptors carry their own color but
// do not toggle the flag, matching spec section 8's documented contract
// rather than section 4.2's literal "toggles on every entry" wording).
func (d *Driver) enterMove(atom lexer.Atom) (*chess.Move, error) {
	d.state = stateMove
	candidateWhite := !d.whiteTurn

	mv, err := interpret(atom.Value, candidateWhite)
	if err != nil {
		return nil, apperrors.Wrapf(err, "move %q", atom.Value)
	}

	if d.parenDepth > 0 {
		return nil, nil
	}
	if mv.Kind == chess.KindNextMove {
		d.whiteTurn = candidateWhite
	}
	return mv, nil
}

func (d *Driver) enterFinished() (*chess.Move, error) {
	d.state = stateFinished
	if d.parenDepth > 0 {
		return nil, nil
	}
	return &chess.Move{Kind: chess.KindFinish, Marker: chess.ManualTermination, OrigText: "*"}, nil
}

func (d *Driver) errf(format string, args ...interface{}) error {
	return &apperrors.ReplayError{
		Stage: apperrors.StageGrammar,
		Err:   apperrors.Wrapf(apperrors.ErrGrammar, format, args...),
	}
}
