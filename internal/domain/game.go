package domain

import (
	"errors"
	"strings"
)

// ErrPlayerNotFound is returned when an operation names a player the game
// does not have.
var ErrPlayerNotFound = errors.New("player not found in game")

// Player holds the cards dealt to one participant, in deal order.
type Player struct {
	Name string `json:"name"`
	Hand []Card `json:"onHandCards"`
}

// Game is the aggregate root: one shared deck of undealt cards plus the
// players holding dealt cards. The deck is ordered; index 0 is the next
// card to deal. Cards only ever move between the deck and a hand, never
// get copied.
type Game struct {
	ID      string   `json:"id"`
	Deck    []Card   `json:"gameCards"`
	Players []Player `json:"players"`
}

// NewGame builds a game with numberOfDecks canonical decks and one
// empty-handed player per name. The ID is assigned by the store on save.
func NewGame(playerNames []string, numberOfDecks int) (*Game, error) {
	deck, err := NewDecks(numberOfDecks)
	if err != nil {
		return nil, err
	}
	players := make([]Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, Player{Name: name})
	}
	return &Game{Deck: deck, Players: players}, nil
}

// Player looks up a player by case-insensitive name.
func (g *Game) Player(name string) (*Player, bool) {
	for i := range g.Players {
		if strings.EqualFold(g.Players[i].Name, name) {
			return &g.Players[i], true
		}
	}
	return nil, false
}

// HasPlayer reports whether the game has a player with the given name,
// case-insensitively.
func (g *Game) HasPlayer(name string) bool {
	_, ok := g.Player(name)
	return ok
}

// DealTo transfers the top deck card to the named player's hand.
func (g *Game) DealTo(playerName string) (Card, error) {
	p, ok := g.Player(playerName)
	if !ok {
		return Card{}, ErrPlayerNotFound
	}
	card, rest, err := Deal(g.Deck)
	if err != nil {
		return Card{}, err
	}
	g.Deck = rest
	p.Hand = append(p.Hand, card)
	return card, nil
}

// RemovePlayers drops every player matching the name case-insensitively
// and returns how many were removed. Their cards leave the game with them.
func (g *Game) RemovePlayers(name string) int {
	kept := g.Players[:0]
	removed := 0
	for _, p := range g.Players {
		if strings.EqualFold(p.Name, name) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	g.Players = kept
	return removed
}
