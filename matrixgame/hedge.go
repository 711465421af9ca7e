package matrixgame

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Params configures a Hedge run.
//
// LearningRate must be small enough relative to the magnitude of the payoffs
// that exp(LearningRate * payoff spread) stays finite. It is not clamped:
// a run that overflows fails with ErrNumericRange.
type Params struct {
	LearningRate float64
	// Total number of updates to run.
	Iterations int
	// A checkpoint is recorded every LogInterval iterations and after
	// the final iteration.
	LogInterval int
	// Seed is recorded for reproducibility. Hedge is deterministic and
	// does not draw from it.
	Seed int64
	// OnCheckpoint, if set, is called with each checkpoint as it is
	// appended to the history.
	OnCheckpoint func(Checkpoint)
}

func (p Params) validate() error {
	if !(p.LearningRate > 0) || math.IsInf(p.LearningRate, 0) {
		return errors.Wrapf(ErrInvalidParam, "learning rate must be positive, got %v", p.LearningRate)
	}
	if p.Iterations <= 0 {
		return errors.Wrapf(ErrInvalidParam, "iterations must be positive, got %d", p.Iterations)
	}
	if p.LogInterval <= 0 {
		return errors.Wrapf(ErrInvalidParam, "log interval must be positive, got %d", p.LogInterval)
	}
	return nil
}

// Checkpoint records convergence diagnostics of the current (not averaged)
// strategies at one iteration.
type Checkpoint struct {
	Iteration int     `json:"iteration"`
	GameValue float64 `json:"game_value"`
	ExplP1    float64 `json:"expl_p1"`
	ExplP2    float64 `json:"expl_p2"`
	ExplMax   float64 `json:"expl_max"`
}

// Result is the outcome of a Hedge run.
type Result struct {
	// Time-averaged strategies of player 1 and player 2.
	P1 []float64 `json:"p1"`
	P2 []float64 `json:"p2"`
	// Checkpoints in iteration order.
	History []Checkpoint `json:"history"`
}

// Hedge runs multiplicative-weights dynamics for both players of the
// zero-sum game with the given payoff matrix and returns the time-averaged
// strategies, which approximate a Nash equilibrium.
func Hedge(payoffs [][]float64, params Params) (*Result, error) {
	game, err := NewGame(payoffs)
	if err != nil {
		return nil, err
	}

	return HedgeGame(game, params)
}

// HedgeGame is like Hedge for an already validated Game.
func HedgeGame(game *Game, params Params) (*Result, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	learner, err := NewLearner(game, params.LearningRate)
	if err != nil {
		return nil, err
	}

	n1, n2 := game.Dims()
	glog.V(1).Infof("Running Hedge on %dx%d game: lr=%v, T=%d, log interval=%d, seed=%d (unused)",
		n1, n2, params.LearningRate, params.Iterations, params.LogInterval, params.Seed)

	nCheckpoints := params.Iterations / params.LogInterval
	if params.Iterations%params.LogInterval != 0 {
		nCheckpoints++
	}
	history := make([]Checkpoint, 0, nCheckpoints)

	for t := 1; t <= params.Iterations; t++ {
		if err := learner.Step(); err != nil {
			return nil, errors.Wrapf(err, "iteration %d", t)
		}

		if t%params.LogInterval == 0 || t == params.Iterations {
			cp := learner.Checkpoint()
			history = append(history, cp)
			glog.V(1).Infof("After %d iterations: value=%.6f, exploitability p1=%.6g p2=%.6g max=%.6g",
				t, cp.GameValue, cp.ExplP1, cp.ExplP2, cp.ExplMax)
			if params.OnCheckpoint != nil {
				params.OnCheckpoint(cp)
			}
		}
	}

	p, q := learner.AverageStrategies()
	return &Result{P1: p, P2: q, History: history}, nil
}

// Learner holds the state of one Hedge run. A Learner is not safe for
// concurrent use, but independent Learners share nothing.
type Learner struct {
	game *Game
	lr   float64
	iter int

	// Current strategies.
	p, q []float64
	// Unnormalized sums of every strategy played so far.
	pSum, qSum []float64

	// Scratch space for the expected payoff of each action.
	u, v []float64
	// Candidate strategies, swapped in only when both updates succeed.
	pNext, qNext []float64
}

// NewLearner returns a Learner with both players at the uniform strategy.
func NewLearner(game *Game, lr float64) (*Learner, error) {
	if !(lr > 0) || math.IsInf(lr, 0) {
		return nil, errors.Wrapf(ErrInvalidParam, "learning rate must be positive, got %v", lr)
	}

	n1, n2 := game.Dims()
	return &Learner{
		game:  game,
		lr:    lr,
		p:     uniformDist(n1),
		q:     uniformDist(n2),
		pSum:  make([]float64, n1),
		qSum:  make([]float64, n2),
		u:     make([]float64, n1),
		v:     make([]float64, n2),
		pNext: make([]float64, n1),
		qNext: make([]float64, n2),
	}, nil
}

// Iteration returns the number of completed updates.
func (l *Learner) Iteration() int {
	return l.iter
}

// Strategies returns copies of the current strategies.
func (l *Learner) Strategies() (p, q []float64) {
	return append([]float64(nil), l.p...), append([]float64(nil), l.q...)
}

// Step performs one simultaneous multiplicative-weights update of both
// players and adds the new strategies to the running sums. If either
// update leaves the representable range, Step returns ErrNumericRange and
// the Learner is left as it was before the call.
func (l *Learner) Step() error {
	uVec := mat.NewVecDense(len(l.u), l.u)
	uVec.MulVec(l.game.payoffs, mat.NewVecDense(len(l.q), l.q))
	vVec := mat.NewVecDense(len(l.v), l.v)
	vVec.MulVec(l.game.payoffs.T(), mat.NewVecDense(len(l.p), l.p))

	// Centering keeps the exponents small; the shift cancels on renormalization.
	center(l.u)
	center(l.v)

	if err := reweight(l.pNext, l.p, l.u, l.lr); err != nil {
		return errors.Wrap(err, "player 1 update")
	}
	// Player 2 minimizes player 1's payoff.
	if err := reweight(l.qNext, l.q, l.v, -l.lr); err != nil {
		return errors.Wrap(err, "player 2 update")
	}
	l.p, l.pNext = l.pNext, l.p
	l.q, l.qNext = l.qNext, l.q

	floats.Add(l.pSum, l.p)
	floats.Add(l.qSum, l.q)
	l.iter++
	return nil
}

// Checkpoint measures the current strategies.
func (l *Learner) Checkpoint() Checkpoint {
	e := l.game.evaluate(l.p, l.q, l.u, l.v)
	return Checkpoint{
		Iteration: l.iter,
		GameValue: e.Value,
		ExplP1:    e.P1,
		ExplP2:    e.P2,
		ExplMax:   e.Max,
	}
}

// AverageStrategies returns the time-averaged strategies over all completed
// iterations, or the uniform strategies if no update has run yet.
func (l *Learner) AverageStrategies() (p, q []float64) {
	if l.iter == 0 {
		return uniformDist(len(l.p)), uniformDist(len(l.q))
	}

	p = append([]float64(nil), l.pSum...)
	q = append([]float64(nil), l.qSum...)
	vecDiv(p, float64(l.iter))
	vecDiv(q, float64(l.iter))
	return p, q
}

func center(x []float64) {
	mean := floats.Sum(x) / float64(len(x))
	floats.AddConst(-mean, x)
}

// reweight sets dst[i] = strat[i] * exp(lr * payoffs[i]), renormalized.
// strat is not modified.
func reweight(dst, strat, payoffs []float64, lr float64) error {
	for i, x := range payoffs {
		dst[i] = strat[i] * math.Exp(lr*x)
	}

	total := floats.Sum(dst)
	if !(total > 0) || math.IsInf(total, 0) {
		return errors.Wrapf(ErrNumericRange, "cannot normalize strategy with total weight %v", total)
	}

	vecDiv(dst, total)
	for i, x := range dst {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Wrapf(ErrNumericRange, "action %d has weight %v", i, x)
		}
	}

	return nil
}

func vecDiv(v []float64, c float64) {
	for i := range v {
		v[i] /= c
	}
}

func uniformDist(n int) []float64 {
	result := make([]float64, n)
	floats.AddConst(1.0/float64(n), result)
	return result
}
