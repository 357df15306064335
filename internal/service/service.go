// Package service implements the game operations exposed to the transport
// layer: lifecycle, deck mutations and the aggregation queries. Every
// operation validates its inputs, talks to the GameStore and returns
// either a result or a typed *Error.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/barbosa-jorge/game-deck/internal/domain"
	"github.com/barbosa-jorge/game-deck/internal/store"
)

// GameService runs game operations against a GameStore. Every mutation of
// an existing game takes that game's lock: DealCard replaces the whole
// document from an earlier read, so even single-call mutations like
// AddDeck and DeleteGame must not land inside that window.
type GameService struct {
	store store.GameStore
	locks *lockTable
}

func New(s store.GameStore) *GameService {
	return &GameService{store: s, locks: newLockTable()}
}

// CreateGame builds a game with the given players and deck count and
// persists it. The store assigns the id.
func (s *GameService) CreateGame(ctx context.Context, playerNames []string, numberOfDecks int) (*domain.Game, error) {
	if len(playerNames) == 0 {
		return nil, invalidArgumentf("at least one player is required")
	}
	for _, name := range playerNames {
		if strings.TrimSpace(name) == "" {
			return nil, invalidArgumentf("player name cannot be empty")
		}
	}
	if numberOfDecks < 1 {
		return nil, invalidArgumentf("number of decks must be at least 1, got %d", numberOfDecks)
	}

	game, err := domain.NewGame(playerNames, numberOfDecks)
	if err != nil {
		return nil, invalidArgumentf("%v", err)
	}
	return s.store.Save(ctx, game)
}

// ListGames returns every game in the store.
func (s *GameService) ListGames(ctx context.Context) ([]*domain.Game, error) {
	return s.store.FindAll(ctx)
}

// DeleteGame removes a game permanently.
func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return err
	}

	release := s.locks.acquire(gameID)
	defer release()

	if _, err := s.store.Delete(ctx, gameID); err != nil {
		return gameNotFound(err)
	}
	return nil
}

// AddPlayer appends a new empty-handed player. Names are unique within a
// game, compared case-insensitively.
func (s *GameService) AddPlayer(ctx context.Context, gameID, playerName string) (*domain.Game, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(playerName, "player name"); err != nil {
		return nil, err
	}

	release := s.locks.acquire(gameID)
	defer release()

	exists, err := s.store.PlayerExists(ctx, gameID, playerName)
	if err != nil {
		return nil, gameNotFound(err)
	}
	if exists {
		return nil, alreadyExistsf("player %s already exists in the game", playerName)
	}
	game, err := s.store.AddPlayer(ctx, gameID, playerName)
	if err != nil {
		return nil, gameNotFound(err)
	}
	return game, nil
}

// RemovePlayer removes every player matching the name case-insensitively.
// Removing an unknown player fails with NotFound.
func (s *GameService) RemovePlayer(ctx context.Context, gameID, playerName string) (*domain.Game, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(playerName, "player name"); err != nil {
		return nil, err
	}

	release := s.locks.acquire(gameID)
	defer release()

	exists, err := s.store.PlayerExists(ctx, gameID, playerName)
	if err != nil {
		return nil, gameNotFound(err)
	}
	if !exists {
		return nil, notFoundf("player %s not found in the game", playerName)
	}
	game, err := s.store.RemovePlayer(ctx, gameID, playerName)
	if err != nil {
		return nil, gameNotFound(err)
	}
	return game, nil
}

// DealCard moves the top deck card into the named player's hand.
func (s *GameService) DealCard(ctx context.Context, gameID, playerName string) (*domain.Game, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(playerName, "player name"); err != nil {
		return nil, err
	}

	release := s.locks.acquire(gameID)
	defer release()

	game, err := s.store.FindByID(ctx, gameID)
	if err != nil {
		return nil, gameNotFound(err)
	}
	if _, err := game.DealTo(playerName); err != nil {
		switch {
		case errors.Is(err, domain.ErrPlayerNotFound):
			return nil, notFoundf("player %s not found in the game", playerName)
		case errors.Is(err, domain.ErrNoCardsAvailable):
			return nil, noCardsAvailable()
		default:
			return nil, err
		}
	}
	return s.store.Save(ctx, game)
}

// AddDeck appends one fresh canonical deck to the game's deck.
func (s *GameService) AddDeck(ctx context.Context, gameID string) (*domain.Game, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}

	release := s.locks.acquire(gameID)
	defer release()

	game, err := s.store.AppendDeck(ctx, gameID, domain.NewDeck())
	if err != nil {
		return nil, gameNotFound(err)
	}
	return game, nil
}

// ShuffleDeck randomizes the order of the undealt cards.
func (s *GameService) ShuffleDeck(ctx context.Context, gameID string) (*domain.Game, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}

	release := s.locks.acquire(gameID)
	defer release()

	deck, err := s.store.FindDeck(ctx, gameID)
	if err != nil {
		return nil, gameNotFound(err)
	}
	domain.Shuffle(deck)
	game, err := s.store.UpdateDeck(ctx, gameID, deck)
	if err != nil {
		return nil, gameNotFound(err)
	}
	return game, nil
}

// GetPlayerHand returns the named player's cards in deal order.
func (s *GameService) GetPlayerHand(ctx context.Context, gameID, playerName string) ([]domain.Card, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(playerName, "player name"); err != nil {
		return nil, err
	}
	player, err := s.store.FindPlayer(ctx, gameID, playerName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundf("player %s not found in the game", playerName)
		}
		return nil, err
	}
	return player.Hand, nil
}

// PlayerTotals returns each player's rank-strength total, highest first.
// Ties keep the order players joined the game.
func (s *GameService) PlayerTotals(ctx context.Context, gameID string) ([]domain.PlayerTotal, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	players, err := s.store.FindPlayers(ctx, gameID)
	if err != nil {
		return nil, gameNotFound(err)
	}
	g := domain.Game{Players: players}
	return g.Totals(), nil
}

// RemainingCountsBySuit counts the undealt cards per suit. Suits with no
// cards left are absent from the map.
func (s *GameService) RemainingCountsBySuit(ctx context.Context, gameID string) (map[domain.Suit]int, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	deck, err := s.store.FindDeck(ctx, gameID)
	if err != nil {
		return nil, gameNotFound(err)
	}
	return domain.CountBySuit(deck), nil
}

// RemainingCountsBySuitAndRank counts the undealt cards per distinct
// card, ordered by suit ascending and rank strength descending.
func (s *GameService) RemainingCountsBySuitAndRank(ctx context.Context, gameID string) ([]domain.CardCount, error) {
	if err := requireNonEmpty(gameID, "game id"); err != nil {
		return nil, err
	}
	deck, err := s.store.FindDeck(ctx, gameID)
	if err != nil {
		return nil, gameNotFound(err)
	}
	return domain.CountBySuitAndRank(deck), nil
}

func requireNonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return invalidArgumentf("%s cannot be empty", field)
	}
	return nil
}

// gameNotFound translates the store's not-found sentinel into the typed
// service error; anything else passes through untouched.
func gameNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFoundf("game not found")
	}
	return err
}
