// Learn an approximate Nash equilibrium of a two-player zero-sum matrix game.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/timpalpant/zerosum/appconfig"
	"github.com/timpalpant/zerosum/matrixgame"
)

type runOptions struct {
	RunID        string  `json:"run_id"`
	Solver       string  `json:"solver"`
	LearningRate float64 `json:"lr,omitempty"`
	Iterations   int     `json:"iterations"`
	LogInterval  int     `json:"log_interval,omitempty"`
	Seed         int64   `json:"seed"`
	Mixing       float64 `json:"mixing,omitempty"`
	Progress     bool    `json:"-"`
}

type runOutput struct {
	runOptions
	Payoffs        [][]float64               `json:"payoffs"`
	Result         *matrixgame.Result        `json:"result"`
	Exploitability matrixgame.Exploitability `json:"exploitability"`
}

func main() {
	// Config supplies the flag defaults, so it is loaded before glog's
	// flags are parsed and must not log through glog.
	cfg, err := appconfig.LoadAppConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	matrixFile := flag.String("matrix", "", "File with payoff matrix for player 1, one row per line (- for stdin)")
	preset := flag.String("preset", cfg.Preset, "Preset game used when -matrix is empty: "+strings.Join(matrixgame.PresetNames(), ", "))
	solver := flag.String("solver", cfg.Solver, "Solver to run: hedge or fictitious")
	lr := flag.Float64("lr", cfg.LearningRate, "Learning rate (hedge only)")
	iterations := flag.Int("iterations", cfg.Iterations, "Number of iterations")
	logInterval := flag.Int("log_interval", cfg.LogInterval, "Iterations between checkpoints (hedge only)")
	seed := flag.Int64("seed", cfg.Seed, "Random seed")
	mixing := flag.Float64("mixing", cfg.Mixing, "Probability of a uniformly random action (fictitious only)")
	progress := flag.Bool("progress", false, "Show a progress bar")
	output := flag.String("output", "", "Write the result as JSON to this file")
	flag.Set("logtostderr", "true")
	flag.Parse()

	payoffs, err := loadPayoffs(*matrixFile, *preset)
	if err != nil {
		glog.Exitf("Error: %v", err)
	}

	opts := runOptions{
		RunID:        uuid.New().String(),
		Solver:       *solver,
		LearningRate: *lr,
		Iterations:   *iterations,
		LogInterval:  *logInterval,
		Seed:         *seed,
		Mixing:       *mixing,
		Progress:     *progress,
	}

	glog.Infof("Run %s: solving %dx%d game with %s", opts.RunID, len(payoffs), len(payoffs[0]), opts.Solver)
	out, err := solve(payoffs, opts)
	if err != nil {
		glog.Exitf("Run %s failed: %v", opts.RunID, err)
	}

	printResult(os.Stdout, out)

	if *output != "" {
		if err := writeJSON(*output, out); err != nil {
			glog.Exitf("Error writing result: %v", err)
		}
		glog.Infof("Wrote result to %s", *output)
	}
}

func loadPayoffs(matrixFile, preset string) ([][]float64, error) {
	switch matrixFile {
	case "":
		payoffs, ok := matrixgame.Presets[preset]
		if !ok {
			return nil, errors.Errorf("unknown preset %q", preset)
		}
		return payoffs, nil
	case "-":
		return matrixgame.ParseMatrix(os.Stdin)
	}

	f, err := os.Open(matrixFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	payoffs, err := matrixgame.ParseMatrix(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", matrixFile)
	}
	return payoffs, nil
}

func solve(payoffs [][]float64, opts runOptions) (*runOutput, error) {
	game, err := matrixgame.NewGame(payoffs)
	if err != nil {
		return nil, err
	}

	var result *matrixgame.Result
	switch opts.Solver {
	case "hedge":
		params := matrixgame.Params{
			LearningRate: opts.LearningRate,
			Iterations:   opts.Iterations,
			LogInterval:  opts.LogInterval,
			Seed:         opts.Seed,
		}
		if opts.Progress {
			bar := progressbar.Default(int64(opts.Iterations), "hedge")
			params.OnCheckpoint = func(cp matrixgame.Checkpoint) {
				if err := bar.Set(cp.Iteration); err != nil {
					glog.Warningf("Error updating progress bar: %v", err)
				}
			}
			defer func() {
				if err := bar.Finish(); err != nil {
					glog.Warningf("Error finishing progress bar: %v", err)
				}
			}()
		}

		result, err = matrixgame.HedgeGame(game, params)
		if err != nil {
			return nil, err
		}
	case "fictitious":
		rng := rand.New(rand.NewSource(opts.Seed))
		p, q, err := matrixgame.FictitiousPlay(game, opts.Iterations, opts.Mixing, rng)
		if err != nil {
			return nil, err
		}
		result = &matrixgame.Result{P1: p, P2: q}
	default:
		return nil, errors.Errorf("unknown solver %q", opts.Solver)
	}

	e, err := game.Evaluate(result.P1, result.P2)
	if err != nil {
		return nil, err
	}

	return &runOutput{
		runOptions:     opts,
		Payoffs:        payoffs,
		Result:         result,
		Exploitability: e,
	}, nil
}

func printResult(w io.Writer, out *runOutput) {
	fmt.Fprintf(w, "Matrix shape: %d x %d\n\n", len(out.Payoffs), len(out.Payoffs[0]))

	fmt.Fprintln(w, "Player 1 (row) strategy p:")
	for i, prob := range out.Result.P1 {
		fmt.Fprintf(w, "  Action %d: %.4f\n", i, prob)
	}
	fmt.Fprintln(w, "Player 2 (column) strategy q:")
	for j, prob := range out.Result.P2 {
		fmt.Fprintf(w, "  Action %d: %.4f\n", j, prob)
	}

	fmt.Fprintf(w, "\nEstimated game value for player 1: %.4f\n", out.Exploitability.Value)
	fmt.Fprintf(w, "Exploitability of averaged strategies: p1=%.6f p2=%.6f max=%.6f\n",
		out.Exploitability.P1, out.Exploitability.P2, out.Exploitability.Max)

	if len(out.Result.History) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%10s %12s %12s %12s %12s\n", "iter", "value", "expl_p1", "expl_p2", "expl_max")
	for _, cp := range out.Result.History {
		fmt.Fprintf(w, "%10d %12.6f %12.6f %12.6f %12.6f\n",
			cp.Iteration, cp.GameValue, cp.ExplP1, cp.ExplP2, cp.ExplMax)
	}
}

func writeJSON(filename string, out *runOutput) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
