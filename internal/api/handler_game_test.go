package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/barbosa-jorge/game-deck/internal/domain"
	"github.com/barbosa-jorge/game-deck/internal/service"
	"github.com/barbosa-jorge/game-deck/internal/store/memory"
)

func newHandler() *GameHandler {
	return &GameHandler{Service: service.New(memory.New())}
}

func createGame(t *testing.T, h *GameHandler, body string) domain.Game {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/games", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Games(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating game, got %d body=%s", w.Code, w.Body.String())
	}
	var g domain.Game
	if err := json.Unmarshal(w.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode game: %v", err)
	}
	return g
}

func TestGames_CreateAndList(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge"],"numberOfDecks":1}`)
	if g.ID == "" {
		t.Fatal("expected game id in response")
	}
	if len(g.Deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(g.Deck))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	w := httptest.NewRecorder()
	h.Games(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 listing games, got %d", w.Code)
	}
	var games []domain.Game
	if err := json.Unmarshal(w.Body.Bytes(), &games); err != nil {
		t.Fatalf("decode games: %v", err)
	}
	if len(games) != 1 || games[0].ID != g.ID {
		t.Fatalf("expected the created game in the list, got %v", games)
	}
}

func TestGames_CreateValidation(t *testing.T) {
	h := newHandler()
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"no players", `{"players":[],"numberOfDecks":1}`},
		{"zero decks", `{"players":["jorge"],"numberOfDecks":0}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/games", strings.NewReader(tc.body))
		w := httptest.NewRecorder()
		h.Games(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestGame_DealCardsFlow(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodPut, "/api/games/"+g.ID+"/players/jorge/deal-cards", nil)
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 dealing, got %d body=%s", w.Code, w.Body.String())
	}
	var updated domain.Game
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	if len(updated.Deck) != 51 {
		t.Fatalf("expected 51 cards left, got %d", len(updated.Deck))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/games/"+g.ID+"/players/jorge/cards", nil)
	w = httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 reading hand, got %d body=%s", w.Code, w.Body.String())
	}
	var hand []domain.Card
	if err := json.Unmarshal(w.Body.Bytes(), &hand); err != nil {
		t.Fatal(err)
	}
	if len(hand) != 1 || hand[0].Code() != "ACE_HEARTS" {
		t.Fatalf("expected hand [ACE_HEARTS], got %v", hand)
	}
}

func TestGame_AddDuplicatePlayerConflicts(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodPost, "/api/games/"+g.ID+"/players", strings.NewReader(`{"playerName":"JORGE"}`))
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate player, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"code":"ALREADY_EXISTS"`) {
		t.Fatalf("expected ALREADY_EXISTS code, body=%s", w.Body.String())
	}
}

func TestGame_RemovePlayerThenHandIs404(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge","maria"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+g.ID+"/players/jorge", nil)
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 removing player, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/games/"+g.ID+"/players/jorge/cards", nil)
	w = httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after removal, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestGame_QueriesAndStatuses(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge","maria"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodGet, "/api/games/"+g.ID+"/players/totals", nil)
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for totals, got %d", w.Code)
	}
	var totals []domain.PlayerTotal
	if err := json.Unmarshal(w.Body.Bytes(), &totals); err != nil {
		t.Fatal(err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/games/"+g.ID+"/decks/cards-left-per-suit", nil)
	w = httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for suit counts, got %d", w.Code)
	}
	var suitCounts map[domain.Suit]int
	if err := json.Unmarshal(w.Body.Bytes(), &suitCounts); err != nil {
		t.Fatal(err)
	}
	if suitCounts[domain.Hearts] != 13 {
		t.Fatalf("expected 13 hearts, got %d", suitCounts[domain.Hearts])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/games/"+g.ID+"/decks/count-cards-remaining", nil)
	w = httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for card counts, got %d", w.Code)
	}
	var counts []domain.CardCount
	if err := json.Unmarshal(w.Body.Bytes(), &counts); err != nil {
		t.Fatal(err)
	}
	if len(counts) != 52 || counts[0].Card != "KING_CLUBS" {
		t.Fatalf("expected 52 ordered entries starting with KING_CLUBS, got %d entries first=%v", len(counts), counts[0])
	}
}

func TestGame_ShuffleAndAddDeck(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodPut, "/api/games/"+g.ID+"/decks/shuffle", nil)
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 shuffling, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/games/"+g.ID+"/decks", nil)
	w = httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 adding deck, got %d body=%s", w.Code, w.Body.String())
	}
	var updated domain.Game
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	if len(updated.Deck) != 104 {
		t.Fatalf("expected 104 cards after add-deck, got %d", len(updated.Deck))
	}
}

func TestGame_DeleteAndNotFound(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+g.ID, nil)
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/games/"+g.ID, nil)
	w = httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing game, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"code":"NOT_FOUND"`) {
		t.Fatalf("expected NOT_FOUND code, body=%s", w.Body.String())
	}
}

func TestGame_MethodNotAllowed(t *testing.T) {
	h := newHandler()
	g := createGame(t, h, `{"players":["jorge"],"numberOfDecks":1}`)

	req := httptest.NewRequest(http.MethodGet, "/api/games/"+g.ID+"/decks/shuffle", nil)
	w := httptest.NewRecorder()
	h.Game(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
