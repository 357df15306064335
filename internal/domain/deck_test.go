package domain

import (
	"errors"
	"testing"
)

func TestNewDeck_CanonicalOrder(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}
	// Rank ascending, suits cycling Hearts, Spades, Diamonds, Clubs.
	want := []string{"ACE_HEARTS", "ACE_SPADES", "ACE_DIAMONDS", "ACE_CLUBS", "TWO_HEARTS"}
	for i, code := range want {
		if deck[i].Code() != code {
			t.Fatalf("card %d: expected %s, got %s", i, code, deck[i].Code())
		}
	}
	if last := deck[len(deck)-1].Code(); last != "KING_CLUBS" {
		t.Fatalf("expected last card KING_CLUBS, got %s", last)
	}
}

func TestNewDecks_ExactMultiples(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		deck, err := NewDecks(n)
		if err != nil {
			t.Fatalf("NewDecks(%d): %v", n, err)
		}
		if len(deck) != n*DeckSize {
			t.Fatalf("NewDecks(%d): expected %d cards, got %d", n, n*DeckSize, len(deck))
		}
		counts := map[Card]int{}
		for _, c := range deck {
			counts[c]++
		}
		if len(counts) != DeckSize {
			t.Fatalf("NewDecks(%d): expected %d distinct cards, got %d", n, DeckSize, len(counts))
		}
		for c, got := range counts {
			if got != n {
				t.Fatalf("NewDecks(%d): expected %d copies of %s, got %d", n, n, c.Code(), got)
			}
		}
	}
}

func TestNewDecks_RejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewDecks(n); err == nil {
			t.Fatalf("expected error for NewDecks(%d)", n)
		}
	}
}

func TestShuffle_KeepsMultiset(t *testing.T) {
	deck, err := NewDecks(2)
	if err != nil {
		t.Fatal(err)
	}
	before := map[Card]int{}
	for _, c := range deck {
		before[c]++
	}
	Shuffle(deck)
	after := map[Card]int{}
	for _, c := range deck {
		after[c]++
	}
	if len(after) != len(before) {
		t.Fatalf("shuffle changed distinct card count: %d != %d", len(after), len(before))
	}
	for c, n := range before {
		if after[c] != n {
			t.Fatalf("shuffle changed count of %s: %d != %d", c.Code(), after[c], n)
		}
	}
}

func TestShuffle_EmptyAndNilAreNoops(t *testing.T) {
	Shuffle(nil)
	Shuffle([]Card{})
	one := []Card{{Rank: Ace, Suit: Hearts}}
	Shuffle(one)
	if one[0].Code() != "ACE_HEARTS" {
		t.Fatalf("single-card shuffle changed the card: %s", one[0].Code())
	}
}

func TestShuffle_TopCardRoughlyUniform(t *testing.T) {
	// The original top card should land back at index 0 about 1/52 of the
	// time. Loose bounds keep the test deterministic enough to trust.
	const trials = 5200
	top := NewDeck()[0]
	hits := 0
	moved := false
	for i := 0; i < trials; i++ {
		deck := NewDeck()
		Shuffle(deck)
		if deck[0] == top {
			hits++
		}
		if deck[0] != top || deck[1] != NewDeck()[1] {
			moved = true
		}
	}
	if !moved {
		t.Fatal("shuffle never changed the deck order")
	}
	// Expected ~100 hits; a fair shuffle stays far inside these bounds.
	if hits < 30 || hits > 250 {
		t.Fatalf("top card at index 0 in %d/%d shuffles, outside plausible range", hits, trials)
	}
}

func TestAddDecks_AppendsToExisting(t *testing.T) {
	deck := []Card{{Rank: Five, Suit: Clubs}}
	grown, err := AddDecks(deck, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(grown) != 1+2*DeckSize {
		t.Fatalf("expected %d cards, got %d", 1+2*DeckSize, len(grown))
	}
	if grown[0].Code() != "FIVE_CLUBS" {
		t.Fatalf("expected existing card kept at front, got %s", grown[0].Code())
	}
	if grown[1].Code() != "ACE_HEARTS" {
		t.Fatalf("expected fresh deck appended after existing cards, got %s", grown[1].Code())
	}
	if _, err := AddDecks(grown, 0); err == nil {
		t.Fatal("expected error for zero decks")
	}
}

func TestDeal_TakesTopCardAndPreservesRest(t *testing.T) {
	deck := NewDeck()
	wantTop := deck[0]
	wantNext := deck[1]

	card, rest, err := Deal(deck)
	if err != nil {
		t.Fatal(err)
	}
	if card != wantTop {
		t.Fatalf("expected dealt card %s, got %s", wantTop.Code(), card.Code())
	}
	if len(rest) != DeckSize-1 {
		t.Fatalf("expected %d cards remaining, got %d", DeckSize-1, len(rest))
	}
	if rest[0] != wantNext {
		t.Fatalf("expected next card %s after deal, got %s", wantNext.Code(), rest[0].Code())
	}
}

func TestDeal_EmptyDeckFails(t *testing.T) {
	if _, _, err := Deal(nil); !errors.Is(err, ErrNoCardsAvailable) {
		t.Fatalf("expected ErrNoCardsAvailable, got %v", err)
	}
}
