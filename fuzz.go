package fsrs

import "math"

// fuzzCap bounds the fuzzed interval ceiling independently of the
// scheduler's configured maximum interval; the result is still capped by
// the scheduler's maximum interval afterward.
const fuzzCap = 36500

// randSource is the minimal uniform-random surface fuzzing needs. It is
// satisfied by *rand.Rand, letting callers inject a seeded source for
// deterministic tests and own the PRNG lifetime themselves.
type randSource interface {
	Float64() float64
}

type fuzzBand struct {
	min, max float64 // interval range in days, max exclusive (+Inf for the last band)
	pct      float64
}

// fuzzBands is a partition, not a cumulative schedule: an interval falls
// into exactly one band and that band's percentage is the only one applied.
var fuzzBands = []fuzzBand{
	{2.5, 7.0, 0.15},
	{7.0, 20.0, 0.10},
	{20.0, math.Inf(1), 0.05},
}

// applyFuzz randomizes a review-state interval to desynchronize bulk-due
// dates. Intervals under 2.5 days are returned unchanged. The result is a
// uniform real drawn from the band's [min, max] range and rounded to the
// nearest integer day, capped by maxInterval.
func applyFuzz(interval, maxInterval int, rng randSource) int {
	ivl := float64(interval)
	if ivl < 2.5 {
		return interval
	}

	var pct float64
	for _, b := range fuzzBands {
		if ivl >= b.min && ivl < b.max {
			pct = b.pct
			break
		}
	}

	delta := math.Round(pct * ivl)
	lo := math.Max(2, ivl-delta)
	hi := math.Min(ivl+delta, fuzzCap)
	if hi < lo {
		hi = lo
	}

	fuzzed := lo + rng.Float64()*(hi-lo)
	rounded := int(math.Round(fuzzed))
	if rounded > maxInterval {
		rounded = maxInterval
	}
	return rounded
}
