package domain

// Suit is one of the four french suits. The string values double as the
// wire representation.
type Suit string

const (
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
	Hearts   Suit = "HEARTS"
	Spades   Suit = "SPADES"
)

// dealOrderSuits is the suit order used when building a canonical deck.
var dealOrderSuits = []Suit{Hearts, Spades, Diamonds, Clubs}

// Rank is a card face value. Its numeric value is the rank strength used
// for player totals: Ace=1 up to King=13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

var rankNames = [...]string{
	Ace: "ACE", Two: "TWO", Three: "THREE", Four: "FOUR", Five: "FIVE",
	Six: "SIX", Seven: "SEVEN", Eight: "EIGHT", Nine: "NINE", Ten: "TEN",
	Jack: "JACK", Queen: "QUEEN", King: "KING",
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "UNKNOWN"
	}
	return rankNames[r]
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Code returns the stable identifier for a card, e.g. "ACE_HEARTS".
// Identical cards from different decks share a code.
func (c Card) Code() string {
	return c.Rank.String() + "_" + string(c.Suit)
}

// Value is the rank strength of the card (Ace=1 ... King=13).
func (c Card) Value() int {
	return int(c.Rank)
}
