// Package sqlite is the durable GameStore. Each game is one row; the deck
// and player list are stored as JSON documents, mirroring the
// one-document-per-game shape of the aggregate.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/barbosa-jorge/game-deck/internal/domain"
	"github.com/barbosa-jorge/game-deck/internal/store"
)

// Store persists games in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the database at path and creates the schema if needed.
// A single connection is used so field updates serialize at the driver,
// which keeps every GameStore operation atomic.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS games (
		id      TEXT PRIMARY KEY,
		cards   TEXT NOT NULL,
		players TEXT NOT NULL
	);`)
	return err
}

func (s *Store) Save(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	saved := *game
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	cards, players, err := encode(&saved)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, cards, players) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET cards = excluded.cards, players = excluded.players`,
		saved.ID, cards, players)
	if err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	return &saved, nil
}

func (s *Store) Delete(ctx context.Context, gameID string) (*domain.Game, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	g, err := load(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, gameID); err != nil {
		return nil, fmt.Errorf("delete game: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete: %w", err)
	}
	return g, nil
}

func (s *Store) FindByID(ctx context.Context, gameID string) (*domain.Game, error) {
	return load(ctx, s.db, gameID)
}

func (s *Store) FindAll(ctx context.Context) ([]*domain.Game, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, cards, players FROM games ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []*domain.Game
	for rows.Next() {
		var id, cards, players string
		if err := rows.Scan(&id, &cards, &players); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g, err := decode(id, cards, players)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *Store) FindDeck(ctx context.Context, gameID string) ([]domain.Card, error) {
	g, err := load(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	return g.Deck, nil
}

func (s *Store) FindPlayers(ctx context.Context, gameID string) ([]domain.Player, error) {
	g, err := load(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	return g.Players, nil
}

func (s *Store) FindPlayer(ctx context.Context, gameID, playerName string) (domain.Player, error) {
	g, err := load(ctx, s.db, gameID)
	if err != nil {
		return domain.Player{}, err
	}
	p, ok := g.Player(playerName)
	if !ok {
		return domain.Player{}, store.ErrNotFound
	}
	return *p, nil
}

func (s *Store) PlayerExists(ctx context.Context, gameID, playerName string) (bool, error) {
	g, err := load(ctx, s.db, gameID)
	if err != nil {
		return false, err
	}
	return g.HasPlayer(playerName), nil
}

func (s *Store) UpdateDeck(ctx context.Context, gameID string, deck []domain.Card) (*domain.Game, error) {
	return s.update(ctx, gameID, func(g *domain.Game) error {
		g.Deck = deck
		return nil
	})
}

func (s *Store) AddPlayer(ctx context.Context, gameID, playerName string) (*domain.Game, error) {
	return s.update(ctx, gameID, func(g *domain.Game) error {
		g.Players = append(g.Players, domain.Player{Name: playerName})
		return nil
	})
}

func (s *Store) RemovePlayer(ctx context.Context, gameID, playerName string) (*domain.Game, error) {
	return s.update(ctx, gameID, func(g *domain.Game) error {
		if g.RemovePlayers(playerName) == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

func (s *Store) AppendDeck(ctx context.Context, gameID string, cards []domain.Card) (*domain.Game, error) {
	return s.update(ctx, gameID, func(g *domain.Game) error {
		g.Deck = append(g.Deck, cards...)
		return nil
	})
}

// update applies a single-field mutation inside one transaction: the row
// is read, mutated and written back before anything else can touch it.
func (s *Store) update(ctx context.Context, gameID string, mutate func(*domain.Game) error) (*domain.Game, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	g, err := load(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if err := mutate(g); err != nil {
		return nil, err
	}
	cards, players, err := encode(g)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE games SET cards = ?, players = ? WHERE id = ?`,
		cards, players, gameID); err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return g, nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func load(ctx context.Context, q querier, gameID string) (*domain.Game, error) {
	var cards, players string
	err := q.QueryRowContext(ctx, `SELECT cards, players FROM games WHERE id = ?`, gameID).
		Scan(&cards, &players)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	return decode(gameID, cards, players)
}

func encode(g *domain.Game) (cards, players string, err error) {
	deck := g.Deck
	if deck == nil {
		deck = []domain.Card{}
	}
	cardsJSON, err := json.Marshal(deck)
	if err != nil {
		return "", "", fmt.Errorf("encode cards: %w", err)
	}
	ps := g.Players
	if ps == nil {
		ps = []domain.Player{}
	}
	playersJSON, err := json.Marshal(ps)
	if err != nil {
		return "", "", fmt.Errorf("encode players: %w", err)
	}
	return string(cardsJSON), string(playersJSON), nil
}

func decode(id, cards, players string) (*domain.Game, error) {
	g := &domain.Game{ID: id}
	if err := json.Unmarshal([]byte(cards), &g.Deck); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	if err := json.Unmarshal([]byte(players), &g.Players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	return g, nil
}
