// chesslogic plays a game of chess between two computer players and prints
// the moves and the final position.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chesslogic-go/internal/ai"
	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/config"
	"github.com/lgbarn/chesslogic-go/internal/engine"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK = iota
	exitError
	exitFatal
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	fs.Usage = func() { usage(fs.Output(), fs.PrintDefaults) }
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if opts.help {
		fs.Usage()
		return exitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "chesslogic version %s\n", programVersion)
		return exitOK
	}

	cfg := config.NewConfig()
	cfg.OutputFile = stdout
	cfg.LogFile = stderr
	if err := applyFlags(cfg, &opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	closeFiles, err := setupFiles(cfg, &opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closeFiles()

	result, err := runGame(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.IsFatal(err) {
			return exitFatal
		}
		return exitError
	}

	writeResult(cfg.OutputFile, result)
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d ply(s) played: %s\n", result.Plies(), result.Outcome())
	}
	return exitOK
}

// setupFiles opens the output and log files named on the command line and
// returns a function that closes them.
func setupFiles(cfg *config.Config, opts *options) (func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}

	if opts.outputFile != "" {
		file, err := os.Create(opts.outputFile)
		if err != nil {
			return closeAll, fmt.Errorf("creating output file %s: %w", opts.outputFile, err)
		}
		files = append(files, file)
		cfg.OutputFile = file
	}
	if opts.logFile != "" {
		file, err := os.Create(opts.logFile)
		if err != nil {
			closeAll()
			return func() {}, fmt.Errorf("creating log file %s: %w", opts.logFile, err)
		}
		files = append(files, file)
		cfg.LogFile = file
	}
	return closeAll, nil
}

// gameResult is the record of a finished (or abandoned) game.
type gameResult struct {
	Moves  []chess.Move
	Status chess.GameStatus // status of the side to move at the end
	ToMove chess.Colour
	Final  chess.Snapshot
}

// Plies returns the number of plies played.
func (r gameResult) Plies() int {
	return len(r.Moves)
}

// Outcome describes how the game ended.
func (r gameResult) Outcome() string {
	switch r.Status {
	case chess.Checkmate:
		return fmt.Sprintf("checkmate, %s wins", r.ToMove.Opposite())
	case chess.Stalemate:
		return "stalemate, draw"
	}
	return fmt.Sprintf("unfinished, %s to move", r.ToMove)
}

// runGame sets up the game and players described by cfg and plays it.
func runGame(cfg *config.Config) (gameResult, error) {
	game, err := newGame(cfg)
	if err != nil {
		return gameResult{}, err
	}

	var players [chess.NumColours]ai.Player
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if players[colour], err = ai.NewPlayer(colour, cfg); err != nil {
			return gameResult{}, err
		}
		cfg.Logf(2, "%s: %s\n", colour, players[colour].Name())
	}
	return playGame(game, players, cfg)
}

func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewGame(cfg), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN, cfg)
}

// playGame plays the opening moves and then lets the players alternate
// until the game ends or MaxPlies is reached.
func playGame(game *engine.Game, players [chess.NumColours]ai.Player, cfg *config.Config) (gameResult, error) {
	var result gameResult
	finish := func(status chess.GameStatus) (gameResult, error) {
		result.Status = status
		result.ToMove = game.ToMove()
		result.Final = game.Snapshot()
		return result, nil
	}

	status, err := game.Status(game.ToMove())
	if err != nil {
		return result, err
	}

	for _, text := range cfg.OpeningMoves {
		if status.IsOver() {
			return finish(status)
		}
		m, err := engine.ParseMove(text)
		if err != nil {
			return result, fmt.Errorf("opening move %q: %w", text, err)
		}
		if status, err = game.Play(m); err != nil {
			return result, fmt.Errorf("opening move %q: %w", text, err)
		}
		result.Moves = append(result.Moves, m)
	}

	for !status.IsOver() && (cfg.MaxPlies == 0 || game.Plies() < cfg.MaxPlies) {
		m, err := players[game.ToMove()].ChooseMove(game.Board())
		if err != nil {
			return result, err
		}
		if status, err = game.Play(m); err != nil {
			return result, err
		}
		result.Moves = append(result.Moves, m)
		cfg.Logf(2, "%s", renderBoard(game.Snapshot()))
	}
	return finish(status)
}

// writeResult prints the move list, the final position and the outcome.
func writeResult(w io.Writer, result gameResult) {
	var sb strings.Builder
	for i, m := range result.Moves {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d.", i/2+1)
		}
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	if sb.Len() > 0 {
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprint(w, renderBoard(result.Final))
	fmt.Fprintln(w, result.Outcome())
}

func usage(w io.Writer, printDefaults func()) {
	fmt.Fprintf(w, "Usage: chesslogic [options]\n\n")
	fmt.Fprintf(w, "Plays a game of chess between two computer players.\n\n")
	fmt.Fprintf(w, "Options:\n")
	printDefaults()
	fmt.Fprintf(w, "\nPlayers (-white, -black):\n")
	fmt.Fprintf(w, "  r, random  Random legal moves\n")
	fmt.Fprintf(w, "  m, minmax  Minimax search to -depth plies, material evaluation\n")
}
