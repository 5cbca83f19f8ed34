package fsrs

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

// SchedulerConfig configures a Scheduler. Zero values produce the
// published defaults; see each field's comment.
//
// LearningSteps and RelearningSteps distinguish nil (use the default step
// table) from an explicitly empty slice (no steps at all, graduating on
// the first rating in that state).
type SchedulerConfig struct {
	Parameters       []float64 // nil -> DefaultParameters
	DesiredRetention float64   // zero -> 0.9
	LearningSteps    []float64 // minutes; nil -> [1.0, 10.0]
	RelearningSteps  []float64 // minutes; nil -> [10.0]
	MaximumInterval  int       // days; zero -> 36500
	DisableFuzzing   bool      // zero false -> fuzzing enabled
	RNG              *rand.Rand
}

// Scheduler computes FSRS review updates. It is immutable and safe for
// concurrent use: ReviewCard never mutates the Scheduler, and Card is
// passed and returned by value.
type Scheduler struct {
	algo             algo
	desiredRetention float64
	learningSteps    []time.Duration
	relearningSteps  []time.Duration
	maximumInterval  int
	disableFuzzing   bool
	rng              randSource
}

// NewScheduler creates a Scheduler from cfg. Zero-valued fields are filled
// with defaults; invalid combinations return an error wrapping
// ErrContractViolation.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	params := cfg.Parameters
	if params == nil {
		params = DefaultParameters[:]
	}
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	var w [NumParameters]float64
	copy(w[:], params)

	dr := cfg.DesiredRetention
	if dr == 0 {
		dr = 0.9
	}
	if dr <= 0 || dr >= 1 {
		return nil, fmt.Errorf("%w: desired retention %v must be in (0, 1)", ErrContractViolation, dr)
	}

	maxIvl := cfg.MaximumInterval
	if maxIvl == 0 {
		maxIvl = 36500
	}
	if maxIvl < 1 {
		return nil, fmt.Errorf("%w: maximum interval %d must be positive", ErrContractViolation, maxIvl)
	}

	learningMin := cfg.LearningSteps
	if learningMin == nil {
		learningMin = []float64{1.0, 10.0}
	}
	if err := ValidateSteps(learningMin); err != nil {
		return nil, err
	}

	relearningMin := cfg.RelearningSteps
	if relearningMin == nil {
		relearningMin = []float64{10.0}
	}
	if err := ValidateSteps(relearningMin); err != nil {
		return nil, err
	}

	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Scheduler{
		algo:             newAlgo(w),
		desiredRetention: dr,
		learningSteps:    minutesToDurations(learningMin),
		relearningSteps:  minutesToDurations(relearningMin),
		maximumInterval:  maxIvl,
		disableFuzzing:   cfg.DisableFuzzing,
		rng:              rng,
	}, nil
}

// ReviewOption configures a single call to ReviewCard.
type ReviewOption func(*reviewOptions)

type reviewOptions struct {
	duration *int
}

// WithReviewDuration records how long the reviewer spent on this review,
// in milliseconds.
func WithReviewDuration(ms int) ReviewOption {
	return func(o *reviewOptions) { o.duration = &ms }
}

// ReviewCard processes a review of card at the given time and returns the
// updated card and a log of the review. The input card is not mutated.
//
// Reviews must be applied to a card in ascending review time; ReviewCard
// does not detect or reject out-of-order input.
func (s *Scheduler) ReviewCard(card Card, rating Rating, now time.Time, opts ...ReviewOption) (Card, ReviewLog) {
	var ro reviewOptions
	for _, opt := range opts {
		opt(&ro)
	}

	c := card.clone()
	stability, difficulty := s.updateMemory(c, rating, now)
	c.setStability(stability)
	c.setDifficulty(difficulty)

	var interval time.Duration
	switch c.State {
	case Learning:
		interval = s.transitionSteps(&c, rating, s.learningSteps, Learning, stability)
	case Relearning:
		interval = s.transitionSteps(&c, rating, s.relearningSteps, Relearning, stability)
	default: // Review
		interval = s.transitionReview(&c, rating, stability)
	}

	if !s.disableFuzzing && c.State == Review {
		days := int(interval / (24 * time.Hour))
		fuzzedDays := applyFuzz(days, s.maximumInterval, s.rng)
		interval = time.Duration(fuzzedDays) * 24 * time.Hour
	}

	c.Due = now.Add(interval)
	c.LastReview = &now

	log := ReviewLog{
		Card:           c,
		Rating:         rating,
		ReviewDatetime: now,
		ReviewDuration: ro.duration,
	}
	return c, log
}

// updateMemory computes the next stability and difficulty for card being
// reviewed at now, per the shared step of the review state machine. It
// does not mutate card.
func (s *Scheduler) updateMemory(c Card, rating Rating, now time.Time) (stability, difficulty float64) {
	firstReview := c.Stability == nil && c.Difficulty == nil
	if firstReview {
		return s.algo.initStability(rating), s.algo.initDifficulty(rating)
	}

	var elapsedDays float64
	if c.LastReview != nil {
		elapsedDays = now.Sub(*c.LastReview).Hours() / 24.0
	}

	difficulty = s.algo.nextDifficulty(*c.Difficulty, rating)
	if elapsedDays < 1 {
		stability = s.algo.shortTermStability(*c.Stability, rating)
		return stability, difficulty
	}
	r := s.algo.retrievability(elapsedDays, *c.Stability)
	stability = s.algo.nextStability(*c.Difficulty, *c.Stability, r, rating)
	return stability, difficulty
}

// graduate transitions c to Review and computes the stability-targeted
// interval.
func (s *Scheduler) graduate(c *Card, stability float64) time.Duration {
	c.State = Review
	c.clearStep()
	days := s.algo.intervalForStability(stability, s.desiredRetention, s.maximumInterval)
	return time.Duration(days) * 24 * time.Hour
}

// transitionSteps implements the shared Learning/Relearning step-table
// traversal: stayState is the state a card remains in on Again/Hard/Good
// (Learning or Relearning, matching the table passed in). Again resets to
// step 0 in both states, but only Learning graduates when that reset would
// run off the end of the table (k+1==n); Relearning's Again always loops
// back to step 0 instead, even with a single-entry table.
func (s *Scheduler) transitionSteps(c *Card, rating Rating, steps []time.Duration, stayState State, stability float64) time.Duration {
	n := len(steps)
	if n == 0 {
		return s.graduate(c, stability)
	}

	k := 0
	if c.Step != nil {
		k = *c.Step
	}

	switch rating {
	case Again:
		if stayState == Relearning {
			c.State = stayState
			c.setStep(0)
			return steps[0]
		}
		if k+1 == n {
			return s.graduate(c, stability)
		}
		c.State = stayState
		c.setStep(0)
		return steps[0]

	case Hard:
		c.State = stayState
		return hardStepInterval(steps, k)

	case Good:
		if k+1 == n {
			return s.graduate(c, stability)
		}
		c.State = stayState
		c.setStep(k + 1)
		return steps[k+1]

	default: // Easy
		return s.graduate(c, stability)
	}
}

// hardStepInterval computes the Hard-rating interval within a step table:
// at step 0 it splits the difference with (or stretches toward) the next
// step, otherwise it repeats the current step.
func hardStepInterval(steps []time.Duration, k int) time.Duration {
	switch {
	case k == 0 && len(steps) == 1:
		return time.Duration(float64(steps[0]) * 1.5)
	case k == 0 && len(steps) >= 2:
		return (steps[0] + steps[1]) / 2
	default:
		return steps[k]
	}
}

// transitionReview implements the Review-state transition: Again enters
// Relearning (or stays in Review if there are no relearning steps), and
// every other rating recomputes the stability-targeted interval.
func (s *Scheduler) transitionReview(c *Card, rating Rating, stability float64) time.Duration {
	if rating == Again && len(s.relearningSteps) > 0 {
		c.State = Relearning
		c.setStep(0)
		return s.relearningSteps[0]
	}
	return s.graduate(c, stability)
}

// PreviewCard returns the result of reviewing card with each of the four
// ratings, without committing to any of them.
func (s *Scheduler) PreviewCard(card Card, now time.Time) map[Rating]Card {
	result := make(map[Rating]Card, 4)
	for _, r := range []Rating{Again, Hard, Good, Easy} {
		c, _ := s.ReviewCard(card, r, now)
		result[r] = c
	}
	return result
}

// RescheduleCard replays logs against card in order, returning the card's
// rebuilt state. It returns an error wrapping ErrCardIDMismatch if any
// log's CardID does not match.
func (s *Scheduler) RescheduleCard(card Card, logs []ReviewLog) (Card, error) {
	c := card.clone()
	for _, log := range logs {
		if log.Card.CardID != c.CardID {
			return Card{}, fmt.Errorf("%w: card %d, log %d", ErrCardIDMismatch, c.CardID, log.Card.CardID)
		}
		c, _ = s.ReviewCard(c, log.Rating, log.ReviewDatetime)
	}
	return c, nil
}

// Retrievability returns the estimated probability of recall for card at
// now. It returns 0 if the card has never been reviewed.
func (s *Scheduler) Retrievability(card Card, now time.Time) float64 {
	if card.LastReview == nil || card.Stability == nil {
		return 0
	}
	elapsed := now.Sub(*card.LastReview).Hours() / 24.0
	return s.algo.retrievability(elapsed, *card.Stability)
}

// schedulerJSON is the serialized form of a Scheduler's configuration.
type schedulerJSON struct {
	Parameters       [NumParameters]float64 `json:"parameters"`
	DesiredRetention float64                `json:"desired_retention"`
	LearningSteps    []int64                `json:"learning_steps"`   // nanoseconds
	RelearningSteps  []int64                `json:"relearning_steps"` // nanoseconds
	MaximumInterval  int                     `json:"maximum_interval"`
	DisableFuzzing   bool                    `json:"disable_fuzzing"`
}

// MarshalJSON implements json.Marshaler, serializing the Scheduler's
// configuration (not its PRNG state).
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	j := schedulerJSON{
		Parameters:       s.algo.w,
		DesiredRetention: s.desiredRetention,
		LearningSteps:    durationsToNanos(s.learningSteps),
		RelearningSteps:  durationsToNanos(s.relearningSteps),
		MaximumInterval:  s.maximumInterval,
		DisableFuzzing:   s.disableFuzzing,
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler, rebuilding the Scheduler's
// precomputed state from serialized configuration. Its PRNG is freshly
// seeded from the wall clock.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	var j schedulerJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(SchedulerConfig{
		Parameters:       j.Parameters[:],
		DesiredRetention: j.DesiredRetention,
		LearningSteps:    nanosToMinutes(j.LearningSteps),
		RelearningSteps:  nanosToMinutes(j.RelearningSteps),
		MaximumInterval:  j.MaximumInterval,
		DisableFuzzing:   j.DisableFuzzing,
	})
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

func minutesToDurations(mins []float64) []time.Duration {
	ds := make([]time.Duration, len(mins))
	for i, m := range mins {
		ds[i] = time.Duration(m * float64(time.Minute))
	}
	return ds
}

func durationsToNanos(ds []time.Duration) []int64 {
	ns := make([]int64, len(ds))
	for i, d := range ds {
		ns[i] = int64(d)
	}
	return ns
}

func nanosToMinutes(ns []int64) []float64 {
	if ns == nil {
		return nil
	}
	mins := make([]float64, len(ns))
	for i, n := range ns {
		mins[i] = float64(n) / float64(time.Minute)
	}
	return mins
}
