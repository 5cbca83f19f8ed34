package fsrs

import "time"

// timeLayout is the ISO-8601 layout used for all canonical encodings.
const timeLayout = time.RFC3339Nano

// Encode produces the canonical map representation of a card: string
// keys, a lowercase rating/state name, and ISO-8601 UTC timestamps.
// Absent fields encode as nil.
func (c Card) Encode() map[string]any {
	m := map[string]any{
		"card_id": c.CardID,
		"state":   c.State.String(),
		"due":     c.Due.UTC().Format(timeLayout),
	}
	if c.Step != nil {
		m["step"] = *c.Step
	} else {
		m["step"] = nil
	}
	if c.Stability != nil {
		m["stability"] = *c.Stability
	} else {
		m["stability"] = nil
	}
	if c.Difficulty != nil {
		m["difficulty"] = *c.Difficulty
	} else {
		m["difficulty"] = nil
	}
	if c.LastReview != nil {
		m["last_review"] = c.LastReview.UTC().Format(timeLayout)
	} else {
		m["last_review"] = nil
	}
	return m
}

// Encode produces the canonical map representation of a review log,
// nesting the card's own canonical encoding under "card".
func (l ReviewLog) Encode() map[string]any {
	m := map[string]any{
		"card":            l.Card.Encode(),
		"rating":          l.Rating.String(),
		"review_datetime": l.ReviewDatetime.UTC().Format(timeLayout),
	}
	if l.ReviewDuration != nil {
		m["review_duration"] = *l.ReviewDuration
	} else {
		m["review_duration"] = nil
	}
	return m
}
