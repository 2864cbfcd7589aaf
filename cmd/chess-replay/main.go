// chess-replay replays the mainline of a PGN game and prints the resulting
// board position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mgark/chess-pgn-replay/internal/board"
	"github.com/mgark/chess-pgn-replay/internal/chess"
	"github.com/mgark/chess-pgn-replay/internal/config"
	"github.com/mgark/chess-pgn-replay/internal/lexer"
	"github.com/mgark/chess-pgn-replay/internal/pgn"
)

func main() {
	verbosity := flag.Int("v", 0, "verbosity (0 = errors only, 1 = per-move trace)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	cfg := config.New()
	cfg.Verbosity = *verbosity
	if f, ok := cfg.LogFile.(*os.File); ok {
		cfg.Colorize = term.IsTerminal(int(f.Fd()))
	}

	path := flag.Arg(0)
	f, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		reportErr(cfg, err)
		os.Exit(1)
	}
	defer f.Close() //nolint:errcheck,gosec // G104: cleanup on exit

	b, err := replay(cfg, f)
	if err != nil {
		reportErr(cfg, err)
		os.Exit(1)
	}

	fmt.Print(b.String())
}

// replay drives the lexer/grammar/board pipeline to completion and returns
// the final position. It stops at the first Finish descriptor or at input
// exhaustion, whichever comes first. At cfg.Verbosity > 0 it traces each
// applied move to cfg.LogFile.
func replay(cfg *config.Config, r io.Reader) (*board.Board, error) {
	lex := lexer.New(r)
	driver := pgn.NewDriver(lex)
	b := board.New()

	for {
		mv, err := driver.Next()
		if err == io.EOF {
			return b, nil
		}
		if err != nil {
			return nil, err
		}
		if mv.Kind == chess.KindFinish {
			return b, nil
		}
		if err := b.Apply(mv); err != nil {
			return nil, err
		}
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "chess-replay: applied %q\n", mv.OrigText) //nolint:errcheck,gosec // G104: best-effort trace output
		}
	}
}

// reportErr writes err to cfg.LogFile, the diagnostics sink, colorizing it
// when cfg.Colorize is set.
func reportErr(cfg *config.Config, err error) {
	msg := fmt.Sprintf("chess-replay: %v\n", err)
	if cfg.Colorize {
		color.New(color.FgRed).Fprint(cfg.LogFile, msg) //nolint:errcheck,gosec // G104: best-effort diagnostic output
		return
	}
	fmt.Fprint(cfg.LogFile, msg)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay <file.pgn>\n\n")
	fmt.Fprintf(os.Stderr, "Replays a PGN game's mainline and prints the final board position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
