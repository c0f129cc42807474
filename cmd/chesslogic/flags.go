// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesslogic-go/internal/config"
)

// options holds the raw command-line values.
type options struct {
	// Players
	white string
	black string

	// Search
	depth   int
	workers int
	seed    int64

	// Game setup
	startFEN string
	moves    string
	maxPlies int

	// Output and logging
	outputFile string
	logFile    string
	verbosity  int
	quiet      bool

	help    bool
	version bool
}

// newFlagSet binds the options to a flag set named after the program.
func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chesslogic", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.white, "white", "m", "White player: r (random) or m (minmax)")
	fs.StringVar(&opts.black, "black", "r", "Black player: r (random) or m (minmax)")

	fs.IntVar(&opts.depth, "depth", 1, "Minimax search depth in plies")
	fs.IntVar(&opts.workers, "workers", 1, "Goroutines used to search root moves")
	fs.Int64Var(&opts.seed, "seed", 1, "Seed for the random player")

	fs.StringVar(&opts.startFEN, "fen", "", "Starting piece placement (default: standard position)")
	fs.StringVar(&opts.moves, "moves", "", "Opening moves played before the players take over, e.g. \"e2e4 e7e5\"")
	fs.IntVar(&opts.maxPlies, "plies", 200, "Stop after N plies (0 = play to the end)")

	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to log file")
	fs.IntVar(&opts.verbosity, "v", 1, "Verbosity: 0 silent, 1 summary, 2 every ply")
	fs.BoolVar(&opts.quiet, "s", false, "Silent mode (same as -v 0)")

	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")
	return fs
}

// applyFlags applies command-line options to the configuration.
func applyFlags(cfg *config.Config, opts *options) error {
	if err := applyPlayerFlags(cfg, opts); err != nil {
		return err
	}
	applySearchFlags(cfg, opts)
	applyGameFlags(cfg, opts)

	cfg.Verbosity = opts.verbosity
	if opts.quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyPlayerFlags selects who plays each side.
func applyPlayerFlags(cfg *config.Config, opts *options) error {
	white, err := config.ParsePlayerKind(opts.white)
	if err != nil {
		return fmt.Errorf("-white: %w", err)
	}
	black, err := config.ParsePlayerKind(opts.black)
	if err != nil {
		return fmt.Errorf("-black: %w", err)
	}
	cfg.White, cfg.Black = white, black
	return nil
}

// applySearchFlags configures the computer players.
func applySearchFlags(cfg *config.Config, opts *options) {
	cfg.Search.Depth = opts.depth
	cfg.Search.Workers = opts.workers
	cfg.Search.Seed = opts.seed
}

// applyGameFlags configures the starting position and game length.
func applyGameFlags(cfg *config.Config, opts *options) {
	cfg.StartFEN = opts.startFEN
	cfg.MaxPlies = opts.maxPlies
	cfg.OpeningMoves = splitMoves(opts.moves)
}

// splitMoves splits an opening line into moves. Moves may be separated by
// commas or spaces; "a7 a8 Q" style moves must use the compact "a7a8q" form.
func splitMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
