// Package fsrs implements the core FSRS (Free Spaced Repetition Scheduler)
// memory model and review state machine.
//
// fsrs is a pure, deterministic-modulo-fuzzing computation: given a card's
// memory state and a reviewer's rating, it produces an updated memory state
// and the next due time. It does not perform I/O, does not read the system
// clock on its own, and does not persist anything — callers own the clock,
// the PRNG, and storage.
//
// Basic usage:
//
//	s, err := fsrs.NewScheduler(fsrs.SchedulerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	card := fsrs.NewCard()
//	card, log := s.ReviewCard(card, fsrs.Good, time.Now())
package fsrs
