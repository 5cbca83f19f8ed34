package fsrs

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decoding is tolerant of two key forms for the same field: the canonical
// wire key ("card_id") and the native Go field name ("CardID"), matched
// case-insensitively. Two decode passes run over the same input map, one
// per key form, and results are merged with the canonical pass taking
// priority.

type cardCanonicalShape struct {
	CardID     *int64   `mapstructure:"card_id"`
	State      *string  `mapstructure:"state"`
	Step       *int     `mapstructure:"step"`
	Stability  *float64 `mapstructure:"stability"`
	Difficulty *float64 `mapstructure:"difficulty"`
	Due        *string  `mapstructure:"due"`
	LastReview *string  `mapstructure:"last_review"`
}

type cardNativeShape struct {
	CardID     *int64
	State      *string
	Step       *int
	Stability  *float64
	Difficulty *float64
	Due        *string
	LastReview *string
}

func decodeInto(m map[string]any, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}

func decodeCardShape(m map[string]any) (cardCanonicalShape, error) {
	var canon cardCanonicalShape
	if err := decodeInto(m, &canon); err != nil {
		return cardCanonicalShape{}, err
	}
	var native cardNativeShape
	if err := decodeInto(m, &native); err != nil {
		return cardCanonicalShape{}, err
	}

	if canon.CardID == nil {
		canon.CardID = native.CardID
	}
	if canon.State == nil {
		canon.State = native.State
	}
	if canon.Step == nil {
		canon.Step = native.Step
	}
	if canon.Stability == nil {
		canon.Stability = native.Stability
	}
	if canon.Difficulty == nil {
		canon.Difficulty = native.Difficulty
	}
	if canon.Due == nil {
		canon.Due = native.Due
	}
	if canon.LastReview == nil {
		canon.LastReview = native.LastReview
	}
	return canon, nil
}

// DecodeCard parses a keyed-map representation of a card. It accepts
// either canonical-string or native keys for each field (see the note at
// the top of this file). It fails with an error wrapping ErrInvalidFormat on an
// unparseable timestamp or a state string outside its closed vocabulary.
func DecodeCard(m map[string]any) (Card, error) {
	shape, err := decodeCardShape(m)
	if err != nil {
		return Card{}, fmt.Errorf("%w: card: %v", ErrInvalidFormat, err)
	}

	var c Card
	if shape.CardID != nil {
		c.CardID = *shape.CardID
	}
	if shape.State != nil {
		if err := c.State.UnmarshalText([]byte(*shape.State)); err != nil {
			return Card{}, err
		}
	}
	c.Step = shape.Step
	c.Stability = shape.Stability
	c.Difficulty = shape.Difficulty

	if shape.Due != nil {
		t, err := time.Parse(timeLayout, *shape.Due)
		if err != nil {
			return Card{}, fmt.Errorf("%w: due %q: %v", ErrInvalidFormat, *shape.Due, err)
		}
		c.Due = t
	}
	if shape.LastReview != nil {
		t, err := time.Parse(timeLayout, *shape.LastReview)
		if err != nil {
			return Card{}, fmt.Errorf("%w: last_review %q: %v", ErrInvalidFormat, *shape.LastReview, err)
		}
		c.LastReview = &t
	}
	return c, nil
}

type reviewLogCanonicalShape struct {
	Card           map[string]any `mapstructure:"card"`
	Rating         *string        `mapstructure:"rating"`
	ReviewDatetime *string        `mapstructure:"review_datetime"`
	ReviewDuration *int           `mapstructure:"review_duration"`
}

type reviewLogNativeShape struct {
	Card           map[string]any
	Rating         *string
	ReviewDatetime *string
	ReviewDuration *int
}

func decodeReviewLogShape(m map[string]any) (reviewLogCanonicalShape, error) {
	var canon reviewLogCanonicalShape
	if err := decodeInto(m, &canon); err != nil {
		return reviewLogCanonicalShape{}, err
	}
	var native reviewLogNativeShape
	if err := decodeInto(m, &native); err != nil {
		return reviewLogCanonicalShape{}, err
	}

	if canon.Card == nil {
		canon.Card = native.Card
	}
	if canon.Rating == nil {
		canon.Rating = native.Rating
	}
	if canon.ReviewDatetime == nil {
		canon.ReviewDatetime = native.ReviewDatetime
	}
	if canon.ReviewDuration == nil {
		canon.ReviewDuration = native.ReviewDuration
	}
	return canon, nil
}

// DecodeReviewLog parses a keyed-map representation of a review log,
// tolerant of canonical-string or native keys the same way DecodeCard is.
func DecodeReviewLog(m map[string]any) (ReviewLog, error) {
	shape, err := decodeReviewLogShape(m)
	if err != nil {
		return ReviewLog{}, fmt.Errorf("%w: review log: %v", ErrInvalidFormat, err)
	}

	var log ReviewLog
	if shape.Card != nil {
		c, err := DecodeCard(shape.Card)
		if err != nil {
			return ReviewLog{}, err
		}
		log.Card = c
	}
	if shape.Rating != nil {
		if err := log.Rating.UnmarshalText([]byte(*shape.Rating)); err != nil {
			return ReviewLog{}, err
		}
	}
	if shape.ReviewDatetime != nil {
		t, err := time.Parse(timeLayout, *shape.ReviewDatetime)
		if err != nil {
			return ReviewLog{}, fmt.Errorf("%w: review_datetime %q: %v", ErrInvalidFormat, *shape.ReviewDatetime, err)
		}
		log.ReviewDatetime = t
	}
	log.ReviewDuration = shape.ReviewDuration
	return log, nil
}
