package fsrs

import (
	"math/rand"
	"testing"
)

func TestApplyFuzzBelowThresholdUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, ivl := range []int{1, 2} {
		if got := applyFuzz(ivl, 36500, rng); got != ivl {
			t.Errorf("applyFuzz(%d) = %d, want unchanged %d", ivl, got, ivl)
		}
	}
}

func TestApplyFuzzLowBand(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// interval=3 in [2.5, 7): +/-15%, delta = round(0.15*3) = 0 (rounds to
	// nearest, half away from zero: 0.45 -> 0). min=max(2,3)=3, max=3.
	for i := 0; i < 50; i++ {
		got := applyFuzz(3, 36500, rng)
		if got < 2 || got > 4 {
			t.Errorf("applyFuzz(3) = %d, expected within [2, 4]", got)
		}
	}
}

func TestApplyFuzzMidBand(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// interval=10 in [7, 20): +/-10%, delta = round(1.0) = 1. min=9, max=11.
	for i := 0; i < 100; i++ {
		got := applyFuzz(10, 36500, rng)
		if got < 9 || got > 11 {
			t.Errorf("applyFuzz(10) = %d, expected within [9, 11]", got)
		}
	}
}

func TestApplyFuzzHighBand(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// interval=50, >= 20: +/-5%, delta = round(2.5) = 3 (math.Round rounds
	// half away from zero). min=47, max=53.
	for i := 0; i < 100; i++ {
		got := applyFuzz(50, 36500, rng)
		if got < 45 || got > 55 {
			t.Errorf("applyFuzz(50) = %d, expected within a reasonable band", got)
		}
	}
}

func TestApplyFuzzMaxIntervalClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	maxIvl := 48
	for i := 0; i < 200; i++ {
		got := applyFuzz(50, maxIvl, rng)
		if got > maxIvl {
			t.Errorf("applyFuzz(50, maxIvl=%d) = %d, exceeds maximum", maxIvl, got)
		}
	}
}

func TestApplyFuzzReproducible(t *testing.T) {
	rng1 := rand.New(rand.NewSource(123))
	rng2 := rand.New(rand.NewSource(123))
	for i := 0; i < 20; i++ {
		a := applyFuzz(15, 36500, rng1)
		b := applyFuzz(15, 36500, rng2)
		if a != b {
			t.Errorf("iteration %d: %d != %d with same seed", i, a, b)
		}
	}
}

func TestApplyFuzzNeverExceedsMaxInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	maxIvl := 10
	for i := 0; i < 200; i++ {
		got := applyFuzz(8, maxIvl, rng)
		if got > maxIvl {
			t.Errorf("applyFuzz(8, max=%d) = %d, exceeds max", maxIvl, got)
		}
		if got < 1 {
			t.Errorf("applyFuzz(8, max=%d) = %d, below 1", maxIvl, got)
		}
	}
}

func TestApplyFuzzNeverBelowTwoDays(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		got := applyFuzz(3, 36500, rng)
		if got < 2 {
			t.Errorf("fuzzed interval should never drop below the effective floor: got %d", got)
		}
	}
}
