package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"mailbox-chess/engine"
	"mailbox-chess/mailbox"
)

const (
	engineName   = "Mailbox 0.1"
	engineAuthor = "mailbox-chess authors"
)

func main() {
	depth := flag.Int("depth", engine.DefaultOptions().Depth, "default search depth in plies")
	algo := flag.String("algo", engine.DefaultOptions().Algorithm.String(), "search algorithm: alphabeta or negamax")
	flag.Parse()

	logger := log.New(os.Stderr, "mailbox: ", log.LstdFlags)

	a, err := engine.ParseAlgorithm(*algo)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	opts := engine.Options{Depth: *depth, Algorithm: a}
	if err := opts.Validate(); err != nil {
		logger.Fatalf("%v", err)
	}

	if err := uciLoop(os.Stdin, os.Stdout, logger, opts); err != nil {
		logger.Fatalf("reading commands: %v", err)
	}
}

// uciLoop reads commands from in until quit or end of input. Nothing a
// controller sends ends the loop early: bad commands are reported as
// "info string" lines and the previous state is kept.
func uciLoop(in io.Reader, out io.Writer, logger *log.Logger, opts engine.Options) error {
	scanner := bufio.NewScanner(in)
	game := engine.NewGame(opts)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name", engineName)
			fmt.Fprintln(out, "id author", engineAuthor)
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			game.Reset()
			logger.Printf("new game %s", game.ID)
		case "quit":
			return nil
		case "stop":
			// Searches run to completion before the next command is read.
		case "setoption":
			// Accepted for compatibility; nothing is configurable at run time.
		case "position":
			if err := setPosition(game, tokens[1:]); err != nil {
				fmt.Fprintln(out, "info string", err)
				logger.Printf("position: %v", err)
			}
		case "go":
			depth, err := parseGo(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				logger.Printf("go: %v", err)
				continue
			}
			if depth == 0 {
				depth = game.Options().Depth
			}
			reportSearch(out, game.BestMove(depth), depth)
		case "d":
			pos := game.Position()
			fmt.Fprint(out, pos.Render(mailbox.White, false))
			fmt.Fprintln(out, "Fen:", pos.ToFEN())
			fmt.Fprintln(out, "Game:", game.ID)
		case "perft":
			if len(tokens) < 2 {
				fmt.Fprintln(out, "info string Malformed perft command")
				continue
			}
			depth, err := strconv.Atoi(tokens[1])
			if err != nil || depth < 1 {
				fmt.Fprintln(out, "info string Malformed perft depth", tokens[1])
				continue
			}
			pos := game.Position()
			divide := mailbox.PerftDivide(&pos, depth)
			keys := maps.Keys(divide)
			slices.Sort(keys)
			var total uint64
			for _, k := range keys {
				fmt.Fprintf(out, "%s: %d\n", k, divide[k])
				total += divide[k]
			}
			fmt.Fprintf(out, "\nTotal: %d\n", total)
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
	return scanner.Err()
}

// setPosition handles the arguments of "position startpos|fen ... [moves ...]".
// The game is only changed when the whole command is valid.
func setPosition(game *engine.Game, args []string) error {
	if len(args) == 0 {
		return errors.New("malformed position command")
	}
	movesAt := len(args)
	for i, a := range args {
		if strings.ToLower(a) == "moves" {
			movesAt = i
			break
		}
	}

	prev := game.Position()
	switch strings.ToLower(args[0]) {
	case "startpos":
		game.SetStartPosition()
	case "fen":
		if err := game.SetFEN(strings.Join(args[1:movesAt], " ")); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid position subcommand %s", args[0])
	}

	if movesAt < len(args) {
		if err := game.PlayMoves(args[movesAt+1:]); err != nil {
			game.SetPosition(prev)
			return err
		}
	}
	return nil
}

// parseGo reads the options of a go command. Only depth changes anything;
// clock options are accepted and skipped. A zero depth means the default.
func parseGo(args []string) (int, error) {
	depth := 0
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				return 0, errors.New("malformed go command option depth")
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 1 || d > engine.MaxDepth {
				return 0, fmt.Errorf("malformed go command option; could not convert depth %q", args[i])
			}
			depth = d
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			i++
		case "infinite", "ponder":
		default:
			return 0, fmt.Errorf("unknown go subcommand %s", args[i])
		}
	}
	return depth, nil
}

func reportSearch(out io.Writer, res engine.Result, depth int) {
	if res.Move == "" {
		fmt.Fprintln(out, "info string", res.Outcome)
		fmt.Fprintln(out, "bestmove 0000")
		return
	}

	score := fmt.Sprintf("cp %d", res.Score)
	if engine.IsMate(res.Score) {
		score = fmt.Sprintf("mate %d", engine.MateIn(res.Score, depth))
	}
	ms := res.Elapsed.Milliseconds()
	nps := uint64(0)
	if secs := res.Elapsed.Seconds(); secs > 0 {
		nps = uint64(float64(res.Nodes) / secs)
	}
	fmt.Fprintf(out, "info depth %d score %s nodes %d time %d nps %d pv %s\n",
		depth, score, res.Nodes, ms, nps, res.Move)
	fmt.Fprintln(out, "bestmove", res.Move)
}
