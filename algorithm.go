package fsrs

import "math"

// decay is the fixed forgetting-curve exponent. Unlike later FSRS
// revisions this model does not train it as a weight.
const decay = -0.5

// factor is derived from decay at load time so the relationship between
// the two is never duplicated as an independent literal.
var factor = math.Pow(0.9, 1.0/decay) - 1.0

// initStabilityTable and initDifficultyTable are the hard-coded initial
// memory state for a card's first rating. They happen to equal w[0..3]
// and a function of w[4..5] for the published default weight vector, but
// the reference implementation this package tracks uses these literals
// unconditionally — a custom parameter vector does not change a card's
// first-review stability or difficulty. See DESIGN.md.
var (
	initStabilityTable = map[Rating]float64{
		Again: 0.40255,
		Hard:  1.18385,
		Good:  3.173,
		Easy:  15.69105,
	}
	initDifficultyTable = map[Rating]float64{
		Again: 7.1949,
		Hard:  6.488305268471453,
		Good:  5.282434422319005,
		Easy:  3.2245015893713678,
	}
)

// dInitEasy is the mean-reversion target used by nextDifficulty; it is the
// same literal as initDifficultyTable[Easy].
const dInitEasy = 3.2245015893713678

// algo holds the 19 model weights and implements the memory model formulas
// over them. decay and factor are package-level constants, not per-weight.
type algo struct {
	w [NumParameters]float64
}

func newAlgo(p [NumParameters]float64) algo {
	return algo{w: p}
}

// initStability returns the initial stability S0(G) for a card's first
// rating, from the hard-coded table.
func (a *algo) initStability(r Rating) float64 {
	return initStabilityTable[r]
}

// initDifficulty returns the initial difficulty D0(G) for a card's first
// rating, from the hard-coded table, clamped to [1, 10].
func (a *algo) initDifficulty(r Rating) float64 {
	return clampD(initDifficultyTable[r])
}

// retrievability computes R(e, S) = (1 + FACTOR*e/S) ^ DECAY for elapsed
// days e >= 0 and stability S > 0.
func (a *algo) retrievability(elapsedDays, stability float64) float64 {
	return math.Pow(1+factor*elapsedDays/stability, decay)
}

// nextDifficulty computes the updated difficulty after a review, applying
// linear damping toward the rating's pull on difficulty and then mean
// reversion toward the easy-rating initial difficulty.
func (a *algo) nextDifficulty(d float64, r Rating) float64 {
	delta := -a.w[6] * (float64(r) - 3)
	damped := (10 - d) * delta / 9
	dPrime := d + damped
	meanReverted := a.w[7]*dInitEasy + (1-a.w[7])*dPrime
	return clampD(meanReverted)
}

// shortTermStability computes stability for a review occurring less than
// one day after the previous review.
func (a *algo) shortTermStability(s float64, r Rating) float64 {
	return clampS(s * math.Exp(a.w[17]*((float64(r)-3)+a.w[18])))
}

// nextStability dispatches to the recall or forget branch of the stability
// update depending on the rating.
func (a *algo) nextStability(d, s, r float64, rating Rating) float64 {
	if rating == Again {
		return a.nextForgetStability(d, s, r)
	}
	return a.nextRecallStability(d, s, r, rating)
}

// nextRecallStability computes stability after a successful recall
// (Hard, Good, or Easy), with a hard penalty and an easy bonus.
func (a *algo) nextRecallStability(d, s, r float64, rating Rating) float64 {
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = a.w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = a.w[16]
	}
	return clampS(s * (1 + math.Exp(a.w[8])*
		(11-d)*
		math.Pow(s, -a.w[9])*
		(math.Exp((1-r)*a.w[10])-1)*
		hardPenalty*easyBonus))
}

// nextForgetStability computes stability after an Again rating, as the
// minimum of a long-term forgetting curve and a short-term decay.
func (a *algo) nextForgetStability(d, s, r float64) float64 {
	long := a.w[11] *
		math.Pow(d, -a.w[12]) *
		(math.Pow(s+1, a.w[13]) - 1) *
		math.Exp((1-r)*a.w[14])
	short := s / math.Exp(a.w[17]*a.w[18])
	return clampS(math.Min(long, short))
}

// intervalForStability returns the raw next review interval in whole
// days, targeting desiredRetention, clamped to [1, maxInterval].
func (a *algo) intervalForStability(s, desiredRetention float64, maxInterval int) int {
	days := s / factor * (math.Pow(desiredRetention, 1.0/decay) - 1)
	rounded := int(math.Round(days))
	if rounded < 1 {
		rounded = 1
	}
	if rounded > maxInterval {
		rounded = maxInterval
	}
	return rounded
}

// clampS clamps stability to a minimum of 0.001, keeping it strictly
// positive regardless of formula output.
func clampS(s float64) float64 {
	return math.Max(s, 0.001)
}

// clampD clamps difficulty to [1, 10].
func clampD(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
