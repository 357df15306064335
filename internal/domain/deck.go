package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in one canonical deck.
const DeckSize = 52

// ErrNoCardsAvailable is returned when a deal is attempted against an
// empty deck.
var ErrNoCardsAvailable = errors.New("no more cards available in the deck")

// NewDeck builds one canonical 52-card deck. The order is fixed: ranks
// ascending from Ace to King, and within each rank the suits in the order
// Hearts, Spades, Diamonds, Clubs. Callers that need randomness shuffle
// afterwards; tests rely on this exact order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for r := Ace; r <= King; r++ {
		for _, s := range dealOrderSuits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// NewDecks concatenates n canonical decks. n must be at least 1.
func NewDecks(n int) ([]Card, error) {
	if n < 1 {
		return nil, fmt.Errorf("number of decks must be at least 1, got %d", n)
	}
	deck := make([]Card, 0, n*DeckSize)
	for i := 0; i < n; i++ {
		deck = append(deck, NewDeck()...)
	}
	return deck, nil
}

// Shuffle permutes cards in place using an unbiased Fisher-Yates walk from
// the last index down. math/rand/v2's generator is seeded from OS entropy,
// so the resulting order is not predictable by players. Empty and nil
// inputs are no-ops.
func Shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// AddDecks appends n freshly built canonical decks to the end of deck.
func AddDecks(deck []Card, n int) ([]Card, error) {
	extra, err := NewDecks(n)
	if err != nil {
		return nil, err
	}
	return append(deck, extra...), nil
}

// Deal removes and returns the top card (index 0). The remaining cards
// keep their relative order.
func Deal(deck []Card) (Card, []Card, error) {
	if len(deck) == 0 {
		return Card{}, deck, ErrNoCardsAvailable
	}
	return deck[0], deck[1:], nil
}
