package poker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Suit represents a card suit. Suits are not ranked against each other.
type Suit uint8

const (
	Hearts Suit = iota
	Clubs
	Spades
	Diamonds
)

// Suits lists every suit in declaration order.
var Suits = [...]Suit{Hearts, Clubs, Spades, Diamonds}

// String returns the suit name
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// Symbol returns the unicode suit symbol (e.g. "♥")
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Letter returns the single lowercase letter used in card notation
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s <= Diamonds
}

// Rank is the numeric strength of a card, 2 through 14 with the Ace high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Valid reports whether r is a playable rank
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns "2".."10", "J", "Q", "K" or "A". Formatting an invalid rank
// panics; NewCard never produces one.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return strconv.Itoa(int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		panic(fmt.Sprintf("poker: rank %d is not a valid card rank", r))
	}
}

// Card is an immutable playing card. Two cards compare equal when their ranks
// match, regardless of suit.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card, returning ErrInvalidRank when rank is outside 2..14.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d (must be 2-14)", ErrInvalidRank, rank)
	}
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: unknown suit %d", ErrInvalidCard, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on error
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank { return c.rank }
func (c Card) Suit() Suit { return c.suit }

// Equal compares ranks only.
func (c Card) Equal(other Card) bool {
	return c.rank == other.rank
}

// Compare orders cards by descending rank: it returns -1 when c has the
// higher rank, +1 when it has the lower rank and 0 when ranks match. Sorting
// ascending with Compare therefore yields the highest card first.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank > other.rank:
		return -1
	case c.rank < other.rank:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before other, i.e. has the higher rank.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// String returns compact notation such as "As" or "10h".
func (c Card) String() string {
	return c.rank.String() + c.suit.Letter()
}

// Pretty returns the card with its suit symbol, e.g. "A♠".
func (c Card) Pretty() string {
	return c.rank.String() + c.suit.Symbol()
}

// SortCards stable-sorts cards highest rank first.
func SortCards(cards []Card) {
	slices.SortStableFunc(cards, Card.Compare)
}

// FormatCards joins cards in compact notation separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// MarshalText implements encoding.TextMarshaler using compact notation.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
