// Command analyze prints quick, human-readable analysis of the puzzle engine
// and preset files. It benchmarks heuristic estimates on random scrambles,
// compares the A* and IDA* solvers, and summarizes the presets in the
// configs directory.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/puzzle/heuristic"
	"github.com/tilelabs/slider/puzzle/shuffle"
	"github.com/tilelabs/slider/puzzle/solver"
	"github.com/tilelabs/slider/puzzle/state"
)

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "inspect heuristics, solvers, and presets",
		Commands: []*cli.Command{
			{
				Name:  "heuristics",
				Usage: "show heuristic estimates on random scrambles",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: 4, Usage: "board size"},
					&cli.IntFlag{Name: "runs", Value: 5, Usage: "number of scrambles"},
					&cli.IntFlag{Name: "seed", Value: 1, Usage: "shuffle seed"},
					&cli.StringFlag{Name: "difficulty", Value: "medium", Usage: "shuffle difficulty (easy, medium, hard)"},
				},
				Action: runHeuristics,
			},
			{
				Name:  "solve",
				Usage: "compare A* and IDA* on random scrambles",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: 3, Usage: "board size"},
					&cli.IntFlag{Name: "runs", Value: 5, Usage: "number of scrambles"},
					&cli.IntFlag{Name: "seed", Value: 1, Usage: "shuffle seed"},
					&cli.StringFlag{Name: "difficulty", Value: "medium", Usage: "shuffle difficulty (easy, medium, hard)"},
					&cli.StringFlag{Name: "heuristic", Value: "linear_conflict", Usage: "heuristic kind"},
				},
				Action: runSolve,
			},
			{
				Name:  "presets",
				Usage: "summarize preset files in a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Value: "configs", Usage: "preset directory"},
				},
				Action: runPresets,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// scrambledBoards produces deterministic scrambles for the given flags.
func scrambledBoards(cmd *cli.Command) ([]*state.State, error) {
	size := int(cmd.Int("size"))
	runs := int(cmd.Int("runs"))
	seed := cmd.Int("seed")

	difficulty, err := shuffle.Parse(cmd.String("difficulty"))
	if err != nil {
		return nil, err
	}

	shuffler := shuffle.New(int64(seed))
	boards := make([]*state.State, 0, runs)
	for i := 0; i < runs; i++ {
		board, err := state.New(size)
		if err != nil {
			return nil, err
		}
		if _, err := shuffler.Shuffle(board, difficulty); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, nil
}

func runHeuristics(ctx context.Context, cmd *cli.Command) error {
	boards, err := scrambledBoards(cmd)
	if err != nil {
		return err
	}

	kinds := heuristic.Kinds()
	estimators := make([]heuristic.Estimator, 0, len(kinds))
	for _, kind := range kinds {
		est, err := heuristic.New(kind)
		if err != nil {
			return err
		}
		estimators = append(estimators, est)
	}

	fmt.Printf("Heuristic estimates (%dx%d, %d scrambles):\n\n", boards[0].Size(), boards[0].Size(), len(boards))
	fmt.Printf("%-10s", "scramble")
	for _, kind := range kinds {
		fmt.Printf(" %16s", kind)
	}
	fmt.Println()

	for i, board := range boards {
		fmt.Printf("%-10d", i+1)
		for _, est := range estimators {
			fmt.Printf(" %16d", est.Estimate(board))
		}
		fmt.Println()
	}

	return nil
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	boards, err := scrambledBoards(cmd)
	if err != nil {
		return err
	}

	opts := solver.Options{Heuristic: heuristic.Kind(cmd.String("heuristic"))}
	astar, err := solver.New(opts)
	if err != nil {
		return err
	}
	idastar, err := solver.NewIDAStar(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Solver comparison (%dx%d, %d scrambles, heuristic %s):\n\n",
		boards[0].Size(), boards[0].Size(), len(boards), cmd.String("heuristic"))
	fmt.Printf("%-10s %10s %14s %12s %10s %14s %12s\n",
		"scramble", "A* len", "A* expanded", "A* time", "IDA* len", "IDA* visited", "IDA* time")

	for i, board := range boards {
		aSol, err := astar.Solve(ctx, board)
		if err != nil {
			return fmt.Errorf("scramble %d: A*: %w", i+1, err)
		}
		iSol, err := idastar.Solve(ctx, board)
		if err != nil {
			return fmt.Errorf("scramble %d: IDA*: %w", i+1, err)
		}

		fmt.Printf("%-10d %10d %14d %12s %10d %14d %12s\n",
			i+1,
			len(aSol.Moves), aSol.Stats.NodesExpanded, aSol.Stats.Duration,
			len(iSol.Moves), iSol.Stats.NodesExpanded, iSol.Stats.Duration)

		if len(aSol.Moves) != len(iSol.Moves) {
			fmt.Printf("           !! length mismatch: A*=%d IDA*=%d\n", len(aSol.Moves), len(iSol.Moves))
		}
	}

	return nil
}

func runPresets(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("dir"))
	if err != nil {
		return err
	}

	infos, err := manager.ListPresets()
	if err != nil {
		return err
	}

	fmt.Printf("Presets in %s (%d):\n\n", cmd.String("dir"), len(infos))
	for _, info := range infos {
		fmt.Printf("=== %s ===\n", info.Filename)
		fmt.Printf("Name: %s\n", info.Name)
		fmt.Printf("Grid: %dx%d\n", info.GridSize, info.GridSize)
		fmt.Printf("Difficulty: %s\n", info.Difficulty)
		fmt.Printf("Heuristic: %s\n", info.Heuristic)
		if info.Description != "" {
			fmt.Printf("Description: %s\n", info.Description)
		}
		fmt.Println()
	}

	return nil
}
