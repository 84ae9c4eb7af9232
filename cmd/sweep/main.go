package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

var (
	log = logrus.New()

	paramsFlag string
	seedFlag   uint64
	debugFlag  bool
)

func init() {
	const paramsUsage = "game params as rows:cols:mines:lives[:flood]"
	flag.StringVar(&paramsFlag, "params", "9:9:10:1", paramsUsage)
	flag.StringVar(&paramsFlag, "p", "9:9:10:1", paramsUsage+" (shorthand)")
	flag.Uint64Var(&seedFlag, "seed", 0, "random seed, 0 picks one")
	flag.BoolVar(&debugFlag, "debug", false, "log engine events")
}

func parseParams(s string) (*mines.GameParams, error) {
	if params, err := mines.ParseSeed(s); err == nil {
		return params, nil
	}
	var p mines.GameParams
	if _, err := fmt.Sscanf(s, "%d:%d:%d:%d", &p.Rows, &p.Cols, &p.MineCount, &p.Lives); err != nil {
		return nil, fmt.Errorf("invalid params %q: %w", s, err)
	}
	return &p, nil
}

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func draw(w io.Writer, surface *render.TextSurface, game *mines.Game) {
	render.Draw(surface, game)
	if _, err := surface.WriteTo(w); err != nil {
		log.WithError(err).Fatal("unable to draw board")
	}
}

// play reads "row col" lines from in until the game is over or in runs dry.
func play(in io.Reader, out io.Writer, game *mines.Game) error {
	surface := render.NewTextSurface()
	draw(out, surface, game)

	scanner := bufio.NewScanner(in)
	for !game.State().Terminal() && scanner.Scan() {
		var row, col int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &row, &col); err != nil {
			fmt.Fprintln(out, "expected: row col")
			continue
		}
		result := game.Reveal(row, col)
		log.WithFields(logrus.Fields{"row": row, "col": col, "result": result}).Debug("reveal")
		draw(out, surface, game)
	}
	return scanner.Err()
}

func main() {
	flag.Parse()
	mines.Log = log
	if debugFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	params, err := parseParams(paramsFlag)
	if err != nil {
		log.WithError(err).Fatal("bad -params")
	}

	game, err := mines.NewGame(params, createRand(seedFlag))
	if err != nil {
		log.WithError(err).Fatal("unable to start game")
	}

	if err := play(os.Stdin, os.Stdout, game); err != nil {
		log.WithError(err).Fatal("unable to read input")
	}
	if game.State() == mines.Exploded {
		os.Exit(1)
	}
}
