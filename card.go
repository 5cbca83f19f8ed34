package fsrs

import "time"

// Card represents a flashcard's memory and schedule state.
//
// Step is absent (nil) if and only if State is Review. Stability and
// Difficulty are absent only before the card's first review.
type Card struct {
	CardID     int64      `json:"card_id"`
	State      State      `json:"state"`
	Step       *int       `json:"step"`        // nil iff State == Review.
	Stability  *float64   `json:"stability"`   // nil before the first review.
	Difficulty *float64   `json:"difficulty"`  // nil before the first review.
	Due        time.Time  `json:"due"`
	LastReview *time.Time `json:"last_review"` // nil before the first review.
}

// CardOption configures a new Card. See NewCard.
type CardOption func(*cardOptions)

type cardOptions struct {
	id    *int64
	due   *time.Time
	clock func() time.Time
}

// WithCardID sets the card's identity explicitly. Without this option the
// card ID defaults to the construction time in Unix milliseconds.
func WithCardID(id int64) CardOption {
	return func(o *cardOptions) { o.id = &id }
}

// WithDue sets the card's initial due time explicitly. Without this option
// the due time defaults to now, making the card immediately reviewable.
func WithDue(due time.Time) CardOption {
	return func(o *cardOptions) { o.due = &due }
}

// WithClock overrides the clock used to compute defaults (card ID and due
// time) when they are not given explicitly. Production callers never need
// this; tests use it for deterministic card IDs.
func WithClock(clock func() time.Time) CardOption {
	return func(o *cardOptions) { o.clock = clock }
}

// NewCard creates a new card in the Learning state, at step 0, with
// Stability, Difficulty, and LastReview absent.
//
// By default the card ID is the construction time in Unix milliseconds and
// Due is now; both can be overridden with WithCardID and WithDue.
func NewCard(opts ...CardOption) Card {
	o := cardOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	now := o.clock()
	id := now.UnixMilli()
	if o.id != nil {
		id = *o.id
	}
	due := now
	if o.due != nil {
		due = *o.due
	}

	step := 0
	return Card{
		CardID: id,
		State:  Learning,
		Step:   &step,
		Due:    due,
	}
}

// clone returns a deep copy of the card; pointer fields are copied by value
// so the clone and the original never alias mutable state.
func (c Card) clone() Card {
	out := c
	if c.Step != nil {
		v := *c.Step
		out.Step = &v
	}
	if c.Stability != nil {
		v := *c.Stability
		out.Stability = &v
	}
	if c.Difficulty != nil {
		v := *c.Difficulty
		out.Difficulty = &v
	}
	if c.LastReview != nil {
		v := *c.LastReview
		out.LastReview = &v
	}
	return out
}

func (c *Card) setStability(s float64) {
	c.Stability = &s
}

func (c *Card) setDifficulty(d float64) {
	c.Difficulty = &d
}

func (c *Card) setStep(step int) {
	c.Step = &step
}

func (c *Card) clearStep() {
	c.Step = nil
}
