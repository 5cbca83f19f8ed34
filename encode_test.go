package fsrs

import (
	"testing"
	"time"
)

func TestCardEncodeCanonicalKeys(t *testing.T) {
	s, d, step := 3.5, 5.0, 1
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	c := Card{
		CardID:     42,
		State:      Review,
		Step:       &step,
		Stability:  &s,
		Difficulty: &d,
		Due:        now,
		LastReview: &now,
	}

	m := c.Encode()

	if m["card_id"] != int64(42) {
		t.Errorf("card_id = %v, want 42", m["card_id"])
	}
	if m["state"] != "review" {
		t.Errorf("state = %v, want \"review\"", m["state"])
	}
	if m["step"] != 1 {
		t.Errorf("step = %v, want 1", m["step"])
	}
	if m["stability"] != 3.5 {
		t.Errorf("stability = %v, want 3.5", m["stability"])
	}
	if m["difficulty"] != 5.0 {
		t.Errorf("difficulty = %v, want 5.0", m["difficulty"])
	}
	if m["due"] != now.UTC().Format(timeLayout) {
		t.Errorf("due = %v, want %v", m["due"], now.UTC().Format(timeLayout))
	}
	if m["last_review"] != now.UTC().Format(timeLayout) {
		t.Errorf("last_review = %v, want %v", m["last_review"], now.UTC().Format(timeLayout))
	}
}

func TestCardEncodeAbsentFieldsAreNil(t *testing.T) {
	c := NewCard(WithCardID(1), WithDue(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	m := c.Encode()
	if m["stability"] != nil {
		t.Errorf("stability = %v, want nil", m["stability"])
	}
	if m["difficulty"] != nil {
		t.Errorf("difficulty = %v, want nil", m["difficulty"])
	}
	if m["last_review"] != nil {
		t.Errorf("last_review = %v, want nil", m["last_review"])
	}
	if m["step"] != 0 {
		t.Errorf("step = %v, want 0 (new card starts at step 0)", m["step"])
	}
}

func TestReviewLogEncode(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	dur := 1500
	log := ReviewLog{
		Card:           NewCard(WithCardID(7), WithDue(now)),
		Rating:         Good,
		ReviewDatetime: now,
		ReviewDuration: &dur,
	}

	m := log.Encode()

	card, ok := m["card"].(map[string]any)
	if !ok {
		t.Fatalf("card should encode as a nested map, got %T", m["card"])
	}
	if card["card_id"] != int64(7) {
		t.Errorf("card.card_id = %v, want 7", card["card_id"])
	}
	if m["rating"] != "good" {
		t.Errorf("rating = %v, want \"good\"", m["rating"])
	}
	if m["review_datetime"] != now.UTC().Format(timeLayout) {
		t.Errorf("review_datetime = %v, want %v", m["review_datetime"], now.UTC().Format(timeLayout))
	}
	if m["review_duration"] != 1500 {
		t.Errorf("review_duration = %v, want 1500", m["review_duration"])
	}
}

func TestReviewLogEncodeNilDuration(t *testing.T) {
	log := ReviewLog{
		Card:           NewCard(WithCardID(1)),
		Rating:         Again,
		ReviewDatetime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	m := log.Encode()
	if m["review_duration"] != nil {
		t.Errorf("review_duration = %v, want nil", m["review_duration"])
	}
}
