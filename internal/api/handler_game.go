package api

import (
	"net/http"
	"strings"

	"github.com/barbosa-jorge/game-deck/internal/service"
)

// GameHandler serves the /api/games surface.
type GameHandler struct {
	Service *service.GameService
}

type createGameReq struct {
	Players       []string `json:"players"`
	NumberOfDecks int      `json:"numberOfDecks"`
}

type addPlayerReq struct {
	PlayerName string `json:"playerName"`
}

// Games handles the collection route: list and create.
func (h *GameHandler) Games(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		games, err := h.Service.ListGames(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, games)
	case http.MethodPost:
		var req createGameReq
		if err := readJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		game, err := h.Service.CreateGame(r.Context(), req.Players, req.NumberOfDecks)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, game)
	default:
		methodNotAllowed(w)
	}
}

// Game dispatches every /api/games/{id}... route from the path segments
// after the prefix.
func (h *GameHandler) Game(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/games/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	gameID := parts[0]

	switch {
	case len(parts) == 1:
		h.deleteGame(w, r, gameID)
	case parts[1] == "players":
		h.players(w, r, gameID, parts[2:])
	case parts[1] == "decks":
		h.decks(w, r, gameID, parts[2:])
	default:
		http.NotFound(w, r)
	}
}

func (h *GameHandler) deleteGame(w http.ResponseWriter, r *http.Request, gameID string) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := h.Service.DeleteGame(r.Context(), gameID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) players(w http.ResponseWriter, r *http.Request, gameID string, rest []string) {
	switch {
	case len(rest) == 0:
		// POST /api/games/{id}/players
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		var req addPlayerReq
		if err := readJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		game, err := h.Service.AddPlayer(r.Context(), gameID, req.PlayerName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, game)

	case len(rest) == 1 && rest[0] == "totals":
		// GET /api/games/{id}/players/totals
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		totals, err := h.Service.PlayerTotals(r.Context(), gameID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)

	case len(rest) == 1:
		// DELETE /api/games/{id}/players/{name}
		if r.Method != http.MethodDelete {
			methodNotAllowed(w)
			return
		}
		game, err := h.Service.RemovePlayer(r.Context(), gameID, rest[0])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, game)

	case len(rest) == 2 && rest[1] == "deal-cards":
		// PUT /api/games/{id}/players/{name}/deal-cards
		if r.Method != http.MethodPut {
			methodNotAllowed(w)
			return
		}
		game, err := h.Service.DealCard(r.Context(), gameID, rest[0])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, game)

	case len(rest) == 2 && rest[1] == "cards":
		// GET /api/games/{id}/players/{name}/cards
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		hand, err := h.Service.GetPlayerHand(r.Context(), gameID, rest[0])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, hand)

	default:
		http.NotFound(w, r)
	}
}

func (h *GameHandler) decks(w http.ResponseWriter, r *http.Request, gameID string, rest []string) {
	switch {
	case len(rest) == 0:
		// POST /api/games/{id}/decks
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		game, err := h.Service.AddDeck(r.Context(), gameID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, game)

	case len(rest) == 1 && rest[0] == "shuffle":
		// PUT /api/games/{id}/decks/shuffle
		if r.Method != http.MethodPut {
			methodNotAllowed(w)
			return
		}
		game, err := h.Service.ShuffleDeck(r.Context(), gameID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, game)

	case len(rest) == 1 && rest[0] == "cards-left-per-suit":
		// GET /api/games/{id}/decks/cards-left-per-suit
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		counts, err := h.Service.RemainingCountsBySuit(r.Context(), gameID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counts)

	case len(rest) == 1 && rest[0] == "count-cards-remaining":
		// GET /api/games/{id}/decks/count-cards-remaining
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		counts, err := h.Service.RemainingCountsBySuitAndRank(r.Context(), gameID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counts)

	default:
		http.NotFound(w, r)
	}
}
