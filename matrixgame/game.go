package matrixgame

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Game is a two-player zero-sum normal-form game. Rows are the actions of
// player 1 and columns the actions of player 2. Entries are player 1's
// payoff; player 2 receives the negation.
type Game struct {
	payoffs *mat.Dense
}

// NewGame validates a rectangular payoff matrix and copies it into a Game.
func NewGame(payoffs [][]float64) (*Game, error) {
	if len(payoffs) == 0 {
		return nil, errors.Wrap(ErrBadShape, "matrix has no rows")
	}

	nCols := len(payoffs[0])
	if nCols == 0 {
		return nil, errors.Wrap(ErrBadShape, "matrix has no columns")
	}

	data := make([]float64, 0, len(payoffs)*nCols)
	for i, row := range payoffs {
		if len(row) != nCols {
			return nil, errors.Wrapf(ErrBadShape,
				"row %d has %d columns, expected %d", i, len(row), nCols)
		}

		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, errors.Wrapf(ErrNaNInf, "entry (%d, %d) is %v", i, j, x)
			}
		}

		data = append(data, row...)
	}

	return &Game{payoffs: mat.NewDense(len(payoffs), nCols, data)}, nil
}

// Dims returns the number of actions for player 1 and player 2.
func (g *Game) Dims() (n1, n2 int) {
	return g.payoffs.Dims()
}

// At returns player 1's payoff when player 1 plays i and player 2 plays j.
func (g *Game) At(i, j int) float64 {
	return g.payoffs.At(i, j)
}

// Value returns player 1's expected payoff p·M·q.
func (g *Game) Value(p, q []float64) (float64, error) {
	if err := g.checkStrategies(p, q); err != nil {
		return 0, err
	}

	return mat.Inner(mat.NewVecDense(len(p), p), g.payoffs, mat.NewVecDense(len(q), q)), nil
}

// Exploitability measures how far a strategy pair is from equilibrium.
type Exploitability struct {
	// Player 1's expected payoff under the strategy pair.
	Value float64 `json:"value"`
	// Gain available to player 1 by switching to a best response.
	P1 float64 `json:"p1"`
	// Gain available to player 2 by switching to a best response.
	P2 float64 `json:"p2"`
	// max(P1, P2). Zero exactly at a Nash equilibrium.
	Max float64 `json:"max"`
}

// Evaluate computes the exploitability of the strategy pair (p, q).
func (g *Game) Evaluate(p, q []float64) (Exploitability, error) {
	if err := g.checkStrategies(p, q); err != nil {
		return Exploitability{}, err
	}

	n1, n2 := g.Dims()
	rowPayoffs := make([]float64, n1)
	colPayoffs := make([]float64, n2)
	return g.evaluate(p, q, rowPayoffs, colPayoffs), nil
}

// evaluate uses rowPayoffs and colPayoffs as scratch space of length n1 and n2.
func (g *Game) evaluate(p, q, rowPayoffs, colPayoffs []float64) Exploitability {
	rowVec := mat.NewVecDense(len(rowPayoffs), rowPayoffs)
	rowVec.MulVec(g.payoffs, mat.NewVecDense(len(q), q))
	colVec := mat.NewVecDense(len(colPayoffs), colPayoffs)
	colVec.MulVec(g.payoffs.T(), mat.NewVecDense(len(p), p))

	value := floats.Dot(p, rowPayoffs)
	explP1 := floats.Max(rowPayoffs) - value
	// Player 2's payoffs are the negated column payoffs.
	br2 := -floats.Min(colPayoffs)
	explP2 := br2 - (-value)

	return Exploitability{
		Value: value,
		P1:    explP1,
		P2:    explP2,
		Max:   math.Max(explP1, explP2),
	}
}

func (g *Game) checkStrategies(p, q []float64) error {
	n1, n2 := g.Dims()
	if len(p) != n1 {
		return errors.Wrapf(ErrDimensionMismatch,
			"player 1 strategy has %d entries, game has %d rows", len(p), n1)
	}
	if len(q) != n2 {
		return errors.Wrapf(ErrDimensionMismatch,
			"player 2 strategy has %d entries, game has %d columns", len(q), n2)
	}
	return nil
}
