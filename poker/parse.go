package poker

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCard parses a single card such as "As", "Th", "10h" or "Q♦".
// Ranks and suit letters are case-insensitive.
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := parseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return NewCard(rank, suit)
}

// MustParseCard is like ParseCard but panics on error
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas, or written back to back ("AsKsQsJsTs").
func ParseCards(s string) ([]Card, error) {
	runes := []rune(s)
	cards := []Card{}

	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) || runes[i] == ',' {
			i++
			continue
		}

		// A rank is one character, or two for "10".
		width := 2
		if runes[i] == '1' && i+1 < len(runes) && runes[i+1] == '0' {
			width = 3
		}
		if i+width > len(runes) {
			return nil, fmt.Errorf("%w: incomplete card at position %d", ErrInvalidCard, i)
		}

		card, err := ParseCard(string(runes[i : i+width]))
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
		}
		cards = append(cards, card)
		i += width
	}

	return cards, nil
}

// MustParseCards is like ParseCards but panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch unicode.ToLower(r) {
	case 'h', '♥':
		return Hearts, nil
	case 'c', '♣':
		return Clubs, nil
	case 's', '♠':
		return Spades, nil
	case 'd', '♦':
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", r)
	}
}
