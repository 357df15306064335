// Package store defines the persistence boundary for game aggregates.
// Implementations live in the memory and sqlite subpackages.
package store

import (
	"context"
	"errors"

	"github.com/barbosa-jorge/game-deck/internal/domain"
)

// ErrNotFound indicates a requested game (or a filtered match inside one)
// is missing.
var ErrNotFound = errors.New("record not found")

// GameStore persists game aggregates keyed by id.
//
// Save assigns an id on first save and replaces the whole document on
// later saves. Each call — Save and the single-field operations
// (UpdateDeck, AddPlayer, RemovePlayer, AppendDeck) — is individually
// atomic, but a Save built from an earlier read still overwrites any
// update that landed in between; callers composing a read with a later
// write must serialize per game id themselves (the service's lock table
// does this). Player-name matching is case-insensitive everywhere,
// matching the aggregate's rules. All lookups and updates return
// ErrNotFound when no game has the id; RemovePlayer also returns it when
// the game holds no matching player.
type GameStore interface {
	Save(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, gameID string) (*domain.Game, error)
	FindByID(ctx context.Context, gameID string) (*domain.Game, error)
	FindAll(ctx context.Context) ([]*domain.Game, error)

	// Partial reads, projecting a single field of the document.
	FindDeck(ctx context.Context, gameID string) ([]domain.Card, error)
	FindPlayers(ctx context.Context, gameID string) ([]domain.Player, error)
	FindPlayer(ctx context.Context, gameID, playerName string) (domain.Player, error)
	PlayerExists(ctx context.Context, gameID, playerName string) (bool, error)

	// Atomic single-field updates, returning the updated game.
	UpdateDeck(ctx context.Context, gameID string, deck []domain.Card) (*domain.Game, error)
	AddPlayer(ctx context.Context, gameID, playerName string) (*domain.Game, error)
	RemovePlayer(ctx context.Context, gameID, playerName string) (*domain.Game, error)
	AppendDeck(ctx context.Context, gameID string, cards []domain.Card) (*domain.Game, error)
}
