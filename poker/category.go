package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the poker hand categories. Lower values are stronger;
// the zero value means the hand has not been classified.
type Category uint8

const (
	NoCategory Category = iota
	RoyalFlush
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	return c >= RoyalFlush && c <= HighCard
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory parses a category name such as "Full House", "full-house"
// or "FULL_HOUSE".
func ParseCategory(s string) (Category, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
	for _, c := range Categories {
		if strings.ReplaceAll(strings.ToLower(c.String()), " ", "") == key {
			return c, nil
		}
	}
	return NoCategory, fmt.Errorf("unknown category %q", s)
}
