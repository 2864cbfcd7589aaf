package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/mgark/chess-pgn-replay/internal/apperrors"
)

// Lexer scans a byte stream into lexical atoms, one Next() call at a time.
// It borrows the underlying reader for its own lifetime and never reads
// past the one byte needed to decide an atom's end (spec section 4.1's
// ordering guarantee).
type Lexer struct {
	r    *bufio.Reader
	line uint
	col  uint
	// prevLine/prevCol hold position just before the most recent readByte
	// call, so a single unreadByte can restore it. bufio.Reader itself
	// only guarantees unreading the single most recently read byte, and
	// the accept automata below never need more than that.
	prevLine, prevCol uint
}

// New returns a Lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), line: 1, col: 0}
}

func (l *Lexer) readByte() (byte, error) {
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, err
	}
	l.prevLine, l.prevCol = l.line, l.col
	if b == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return b, nil
}

func (l *Lexer) unreadByte() {
	if err := l.r.UnreadByte(); err != nil {
		apperrors.Assert(false, "unreadByte called without a prior readByte")
	}
	l.line, l.col = l.prevLine, l.prevCol
}

func isHSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool  { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isPrintable(b byte) bool { return b >= 0x20 && b < 0x7f }

func isSymbolChar(b byte) bool {
	switch {
	case isAlpha(b), isDigit(b):
		return true
	}
	switch b {
	case ':', '_', '+', '#', '/', '=', '-':
		return true
	}
	return false
}

// Next returns the next atom in the stream, or a Kind-EOF atom when the
// stream is exhausted. It is the sole error-returning entry point for the
// lexical stage; any returned error is wrapped in apperrors.ErrLex.
func (l *Lexer) Next() (Atom, error) {
	for {
		b, err := l.readByte()
		if err == io.EOF {
			return Atom{Kind: EOF, Line: l.line, Col: l.col}, nil
		}
		if err != nil {
			return Atom{}, l.wrapf(err, "reading input")
		}
		if isHSpace(b) {
			continue
		}

		line, col := l.line, l.col
		atom, err := l.dispatch(b)
		if err != nil {
			return Atom{}, err
		}
		atom.Line, atom.Col = line, col
		return atom, nil
	}
}

func (l *Lexer) dispatch(first byte) (Atom, error) {
	switch first {
	case '[':
		return Atom{Kind: LBracket}, nil
	case ']':
		return Atom{Kind: RBracket}, nil
	case '(':
		return Atom{Kind: LParen}, nil
	case ')':
		return Atom{Kind: RParen}, nil
	case '.':
		return Atom{Kind: Period}, nil
	case '*':
		return Atom{Kind: Star}, nil
	case '"':
		return l.scanString()
	case '{':
		return l.scanBraceComment()
	case ';':
		return l.scanLineComment()
	case '%':
		return l.scanEscapeLine()
	case '$':
		return l.scanNumericGlyph()
	default:
		if isDigit(first) || isAlpha(first) {
			return l.scanSymbolOrInteger(first)
		}
		return Atom{}, l.errf("unrecognized character %q", first)
	}
}

// acceptStringByte is the STRING accept automaton outside of escapes: the
// closing quote terminates (consumed), any other printable byte extends the
// atom, anything else is invalid.
func acceptStringByte(b byte) outcome {
	switch {
	case b == '"':
		return terminatedConsumed
	case isPrintable(b):
		return consumed
	default:
		return invalid
	}
}

// scanString implements the STRING accept automaton: opens and closes on
// '"', storing neither quote; '\' escapes the following character,
// accepting it literally regardless of acceptStringByte.
func (l *Lexer) scanString() (Atom, error) {
	var buf []byte
	for {
		b, err := l.readByte()
		if err == io.EOF {
			return Atom{}, l.errf("unterminated string at end of input")
		}
		if err != nil {
			return Atom{}, l.wrapf(err, "reading string")
		}
		if b == '\\' {
			esc, err := l.readByte()
			if err == io.EOF {
				return Atom{}, l.errf("unterminated string escape at end of input")
			}
			if err != nil {
				return Atom{}, l.wrapf(err, "reading string escape")
			}
			buf = append(buf, esc)
			continue
		}
		switch acceptStringByte(b) {
		case terminatedConsumed:
			return Atom{Kind: String, Value: string(buf)}, nil
		case consumed:
			buf = append(buf, b)
		default:
			return Atom{}, l.errf("non-printable character %q inside string", b)
		}
	}
}

// acceptBraceCommentByte: the closing brace terminates (consumed), every
// other byte extends the comment.
func acceptBraceCommentByte(b byte) outcome {
	if b == '}' {
		return terminatedConsumed
	}
	return consumed
}

// scanBraceComment consumes until the matching '}'. The atom carries no
// value of interest to downstream stages.
func (l *Lexer) scanBraceComment() (Atom, error) {
	for {
		b, err := l.readByte()
		if err == io.EOF {
			return Atom{}, l.errf("unterminated comment at end of input")
		}
		if err != nil {
			return Atom{}, l.wrapf(err, "reading comment")
		}
		if acceptBraceCommentByte(b) == terminatedConsumed {
			return Atom{Kind: BraceComment}, nil
		}
	}
}

// acceptEOLByte: newline terminates (consumed, it belongs to the line being
// swallowed), every other byte extends the run.
func acceptEOLByte(b byte) outcome {
	if b == '\n' {
		return terminatedConsumed
	}
	return consumed
}

// scanLineComment and scanEscapeLine both consume through end of line (or
// end of input); neither atom carries a value.
func (l *Lexer) scanLineComment() (Atom, error) { return l.consumeToEOL(LineComment) }
func (l *Lexer) scanEscapeLine() (Atom, error)  { return l.consumeToEOL(EscapeLine) }

func (l *Lexer) consumeToEOL(kind Kind) (Atom, error) {
	for {
		b, err := l.readByte()
		if err == io.EOF {
			return Atom{Kind: kind}, nil
		}
		if err != nil {
			return Atom{}, l.wrapf(err, "reading line")
		}
		if acceptEOLByte(b) == terminatedConsumed {
			return Atom{Kind: kind}, nil
		}
	}
}

// acceptNumericGlyphByte: a digit extends the run (consumed); anything else
// ends the glyph and belongs to the next atom (terminated non-consumed).
func acceptNumericGlyphByte(b byte) outcome {
	if isDigit(b) {
		return consumed
	}
	return terminatedNonconsumed
}

// scanNumericGlyph implements the NUMERIC-GLYPH automaton: the leading '$'
// was already consumed by dispatch, so this reads the digit run and
// terminates non-consumed on the first non-digit, emitting a discarded
// NUMERIC-ANNOTATION atom.
func (l *Lexer) scanNumericGlyph() (Atom, error) {
	for {
		b, err := l.readByte()
		if err == io.EOF {
			return Atom{Kind: NumericAnnotation}, nil
		}
		if err != nil {
			return Atom{}, l.wrapf(err, "reading numeric annotation")
		}
		if acceptNumericGlyphByte(b) == terminatedNonconsumed {
			l.unreadByte()
			return Atom{Kind: NumericAnnotation}, nil
		}
	}
}

// acceptSymbolByte: a symbol character extends the run (consumed); anything
// else ends it and belongs to the next atom (terminated non-consumed).
func acceptSymbolByte(b byte) outcome {
	if isSymbolChar(b) {
		return consumed
	}
	return terminatedNonconsumed
}

// scanSymbolOrInteger implements the SYMBOL automaton, reclassifying to
// INTEGER if every accepted character was a digit.
func (l *Lexer) scanSymbolOrInteger(first byte) (Atom, error) {
	buf := []byte{first}
	allDigits := isDigit(first)
	for {
		b, err := l.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Atom{}, l.wrapf(err, "reading symbol")
		}
		if acceptSymbolByte(b) == terminatedNonconsumed {
			l.unreadByte()
			break
		}
		buf = append(buf, b)
		allDigits = allDigits && isDigit(b)
	}
	kind := Symbol
	if allDigits {
		kind = Integer
	}
	return Atom{Kind: kind, Value: string(buf)}, nil
}

func (l *Lexer) errf(format string, args ...interface{}) error {
	return &apperrors.ReplayError{
		Stage: apperrors.StageLex,
		Line:  l.line,
		Col:   l.col,
		Err:   apperrors.Wrapf(apperrors.ErrLex, format, args...),
	}
}

func (l *Lexer) wrapf(err error, context string) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &apperrors.ReplayError{
		Stage: apperrors.StageLex,
		Line:  l.line,
		Col:   l.col,
		Err:   fmt.Errorf("%s: %w: %w", context, apperrors.ErrLex, err),
	}
}
