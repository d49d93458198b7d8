package poker

import (
	"cmp"
	"fmt"
	"slices"
)

// HandSize is the number of cards in a complete hand.
const HandSize = 5

// RankCount is one entry of a rank histogram.
type RankCount struct {
	Rank  Rank
	Count int
}

// Hand is an append-only sequence of up to five cards together with its
// cached category. A Hand is not safe for concurrent use.
type Hand struct {
	cards    []Card
	category Category
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...Card) (*Hand, error) {
	h := &Hand{cards: make([]Card, 0, HandSize)}
	for _, c := range cards {
		if err := h.AddCard(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// AddCard appends a card. It fails with ErrMaxHandExceeded, leaving the hand
// untouched, when the hand is already full.
func (h *Hand) AddCard(c Card) error {
	if len(h.cards) >= HandSize {
		return fmt.Errorf("adding %s: %w", c, ErrMaxHandExceeded)
	}
	h.cards = append(h.cards, c)
	h.category = NoCategory
	return nil
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in their current order.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Category returns the cached category and whether one has been computed
// since the last mutation.
func (h *Hand) Category() (Category, bool) {
	return h.category, h.category != NoCategory
}

// RankHistogram counts cards per rank. Entries are ordered by count
// descending, then rank descending, so [0] is always the dominant rank.
func (h *Hand) RankHistogram() []RankCount {
	counts := make(map[Rank]int, len(h.cards))
	for _, c := range h.cards {
		counts[c.rank]++
	}

	hist := make([]RankCount, 0, len(counts))
	for r, n := range counts {
		hist = append(hist, RankCount{Rank: r, Count: n})
	}
	slices.SortFunc(hist, func(a, b RankCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(b.Rank, a.Rank)
	})
	return hist
}

// HasFlush reports whether every card shares the first card's suit. The hand
// must hold at least one card.
func (h *Hand) HasFlush() bool {
	if len(h.cards) == 0 {
		panic("poker: HasFlush called on an empty hand")
	}
	suit := h.cards[0].suit
	for _, c := range h.cards[1:] {
		if c.suit != suit {
			return false
		}
	}
	return true
}

// HasStraight reports whether the five ranks are consecutive, counting the
// Ace as low in A-2-3-4-5.
func (h *Hand) HasStraight() bool {
	if len(h.cards) != HandSize {
		return false
	}
	ranks := h.sortedRanks()
	if isWheel(ranks) {
		return true
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

// Classify determines and caches the hand's category.
func (h *Hand) Classify() (Category, error) {
	if len(h.cards) != HandSize {
		return NoCategory, fmt.Errorf("%w: got %d", ErrWrongCardCount, len(h.cards))
	}

	hist := h.RankHistogram()
	h.category = h.classify(hist)
	if h.category == NoCategory {
		return NoCategory, fmt.Errorf("%w: %d cards of rank %s", ErrNoCategory, hist[0].Count, hist[0].Rank)
	}
	return h.category, nil
}

func (h *Hand) classify(hist []RankCount) Category {
	top := hist[0].Count
	if top == 4 {
		return FourOfAKind
	}

	// Five of one rank fits no category.
	if len(hist) < 2 {
		return NoCategory
	}

	second := hist[1].Count
	switch {
	case top == 3 && second == 2:
		return FullHouse
	case top == 3 && second == 1:
		return ThreeOfAKind
	case top == 2 && second == 2:
		return TwoPair
	case top == 2 && second == 1:
		return Pair
	}

	straight, flush := h.HasStraight(), h.HasFlush()
	switch {
	case straight && flush:
		if h.sortedRanks()[0] == Ten {
			return RoyalFlush
		}
		return StraightFlush
	case straight:
		return Straight
	case flush:
		return Flush
	default:
		return HighCard
	}
}

// SortCanonical classifies the hand and reorders its cards into the
// presentation order for its category:
//
//   - pair, trips and quads: the matched cards, then kickers high to low
//   - full house and two pair: the higher-count (then higher) group first
//   - everything else: high to low, with a wheel shown as 5-4-3-2-A
func (h *Hand) SortCanonical() error {
	category, err := h.Classify()
	if err != nil {
		return fmt.Errorf("sorting hand: %w", err)
	}

	hist := h.RankHistogram()
	switch category {
	case Pair, ThreeOfAKind, FourOfAKind:
		sortByGroups(h.cards, hist[0].Rank)
	case FullHouse, TwoPair:
		sortByGroups(h.cards, hist[0].Rank, hist[1].Rank)
	case RoyalFlush, StraightFlush, Flush, Straight, HighCard:
		SortCards(h.cards)
		if (category == StraightFlush || category == Straight) &&
			h.cards[0].rank == Ace && h.cards[1].rank == Five {
			ace := h.cards[0]
			copy(h.cards, h.cards[1:])
			h.cards[len(h.cards)-1] = ace
		}
	default:
		return fmt.Errorf("sorting hand: %w", ErrNoCategory)
	}
	return nil
}

// String renders the cards in their current order.
func (h *Hand) String() string {
	return FormatCards(h.cards)
}

func (h *Hand) sortedRanks() []Rank {
	ranks := make([]Rank, len(h.cards))
	for i, c := range h.cards {
		ranks[i] = c.rank
	}
	slices.Sort(ranks)
	return ranks
}

func isWheel(ranks []Rank) bool {
	return slices.Equal(ranks, []Rank{Two, Three, Four, Five, Ace})
}

// sortByGroups moves cards of the priority ranks to the front, in the order
// given, and leaves the rest sorted high to low after them.
func sortByGroups(cards []Card, priority ...Rank) {
	group := func(c Card) int {
		if i := slices.Index(priority, c.rank); i >= 0 {
			return i
		}
		return len(priority)
	}
	slices.SortStableFunc(cards, func(a, b Card) int {
		if c := cmp.Compare(group(a), group(b)); c != 0 {
			return c
		}
		return a.Compare(b)
	})
}

// Result is the outcome of evaluating five cards.
type Result struct {
	Category Category `json:"category"`
	Cards    []Card   `json:"cards"`
}

// Evaluate classifies five cards and returns them in canonical order.
func Evaluate(cards ...Card) (Result, error) {
	if len(cards) != HandSize {
		return Result{}, fmt.Errorf("%w: got %d", ErrWrongCardCount, len(cards))
	}
	h, err := NewHand(cards...)
	if err != nil {
		return Result{}, err
	}
	if err := h.SortCanonical(); err != nil {
		return Result{}, err
	}
	category, _ := h.Category()
	return Result{Category: category, Cards: h.Cards()}, nil
}
