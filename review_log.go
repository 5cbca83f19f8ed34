package fsrs

import "time"

// ReviewLog is an append-only record of one review. Logs are produced by
// ReviewCard, never mutated afterward.
type ReviewLog struct {
	Card           Card      `json:"card"`
	Rating         Rating    `json:"rating"`
	ReviewDatetime time.Time `json:"review_datetime"`
	ReviewDuration *int      `json:"review_duration,omitempty"` // milliseconds, optional.
}
