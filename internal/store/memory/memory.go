// Package memory is the in-memory GameStore used by tests and dev mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/barbosa-jorge/game-deck/internal/domain"
	"github.com/barbosa-jorge/game-deck/internal/store"
)

// Store keeps game documents in a map guarded by a RWMutex. Every game
// crossing the boundary is deep-copied, so callers can mutate loaded
// aggregates freely and persisted state only changes through store calls.
type Store struct {
	mu    sync.RWMutex
	games map[string]*domain.Game
}

func New() *Store {
	return &Store{games: map[string]*domain.Game{}}
}

func (s *Store) Save(_ context.Context, game *domain.Game) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := clone(game)
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	s.games[saved.ID] = saved
	return clone(saved), nil
}

func (s *Store) Delete(_ context.Context, gameID string) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	delete(s.games, gameID)
	return g, nil
}

func (s *Store) FindByID(_ context.Context, gameID string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clone(g), nil
}

func (s *Store) FindAll(_ context.Context) ([]*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*domain.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, clone(g))
	}
	// Map iteration order is random; list by id like the sqlite store does.
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *Store) FindDeck(_ context.Context, gameID string) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	deck := make([]domain.Card, len(g.Deck))
	copy(deck, g.Deck)
	return deck, nil
}

func (s *Store) FindPlayers(_ context.Context, gameID string) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clone(g).Players, nil
}

func (s *Store) FindPlayer(_ context.Context, gameID, playerName string) (domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameID]
	if !ok {
		return domain.Player{}, store.ErrNotFound
	}
	p, ok := g.Player(playerName)
	if !ok {
		return domain.Player{}, store.ErrNotFound
	}
	hand := make([]domain.Card, len(p.Hand))
	copy(hand, p.Hand)
	return domain.Player{Name: p.Name, Hand: hand}, nil
}

func (s *Store) PlayerExists(_ context.Context, gameID, playerName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameID]
	if !ok {
		return false, store.ErrNotFound
	}
	return g.HasPlayer(playerName), nil
}

func (s *Store) UpdateDeck(_ context.Context, gameID string, deck []domain.Card) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	g.Deck = make([]domain.Card, len(deck))
	copy(g.Deck, deck)
	return clone(g), nil
}

func (s *Store) AddPlayer(_ context.Context, gameID, playerName string) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	g.Players = append(g.Players, domain.Player{Name: playerName})
	return clone(g), nil
}

func (s *Store) RemovePlayer(_ context.Context, gameID, playerName string) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if g.RemovePlayers(playerName) == 0 {
		return nil, store.ErrNotFound
	}
	return clone(g), nil
}

func (s *Store) AppendDeck(_ context.Context, gameID string, cards []domain.Card) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, store.ErrNotFound
	}
	g.Deck = append(g.Deck, cards...)
	return clone(g), nil
}

func clone(g *domain.Game) *domain.Game {
	out := &domain.Game{ID: g.ID}
	out.Deck = make([]domain.Card, len(g.Deck))
	copy(out.Deck, g.Deck)
	out.Players = make([]domain.Player, len(g.Players))
	for i, p := range g.Players {
		hand := make([]domain.Card, len(p.Hand))
		copy(hand, p.Hand)
		out.Players[i] = domain.Player{Name: p.Name, Hand: hand}
	}
	return out
}
