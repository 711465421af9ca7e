package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FictitiousPlay runs nIter rounds in which each player best-responds to the
// empirical play counts of its opponent, and returns the normalized counts.
// With probability mixingLambda a player instead picks a uniformly random
// action. Ties between best responses are broken at random, so the result
// depends on rng.
func FictitiousPlay(game *Game, nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64, error) {
	if nIter <= 0 {
		return nil, nil, errors.Wrapf(ErrInvalidParam, "iterations must be positive, got %d", nIter)
	}
	if !(mixingLambda >= 0 && mixingLambda <= 1) {
		return nil, nil, errors.Wrapf(ErrInvalidParam, "mixing lambda must be in [0, 1], got %v", mixingLambda)
	}

	n1, n2 := game.Dims()
	p0PlayCounts := make([]int, n1)
	p1PlayCounts := make([]int, n2)
	utilities0 := make([]float64, n1)
	utilities1 := make([]float64, n2)
	logEvery := nIter / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(n1)
		} else {
			p0Selected = getP0BestResponse(game, p1PlayCounts, utilities0, rng)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(n2)
		} else {
			p1Selected = getP1BestResponse(game, p0PlayCounts, utilities1, rng)
		}
		p0PlayCounts[p0Selected]++
		p1PlayCounts[p1Selected]++

		if i%logEvery == 0 {
			glog.Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts), nil
}

func getP0BestResponse(game *Game, p1PlayCounts []int, utilities []float64, rng *rand.Rand) int {
	for i := range utilities {
		utilities[i] = 0
	}
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * game.At(i, j)
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func getP1BestResponse(game *Game, p0PlayCounts []int, utilities []float64, rng *rand.Rand) int {
	for j := range utilities {
		utilities[j] = 0
	}
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * game.At(i, j)
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax picks uniformly among all maximal entries.
func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := math.Inf(-1)
	bestIdx := 0
	nTied := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
			nTied = 1
		} else if v == best {
			nTied++
			if rng.Intn(nTied) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}
