package poker

import "errors"

var (
	// ErrInvalidRank is returned when constructing a card outside 2..14.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidCard is returned when card notation cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
	// ErrMaxHandExceeded is returned when adding a card to a full hand.
	ErrMaxHandExceeded = errors.New("hand already holds five cards")
	// ErrWrongCardCount is returned when classifying a hand without exactly five cards.
	ErrWrongCardCount = errors.New("hand must hold exactly five cards")
	// ErrNoCategory is returned when a hand cannot be ordered because it has no category.
	ErrNoCategory = errors.New("hand has no category")
)
