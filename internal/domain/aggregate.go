package domain

import "sort"

// PlayerTotal is one row of the per-player score view.
type PlayerTotal struct {
	Player string `json:"player"`
	Total  int    `json:"total"`
}

// CardCount is one row of the remaining-cards view: a distinct card and
// how many copies of it are still undealt. With multiple decks counts
// exceed 1.
type CardCount struct {
	Card  string `json:"card"`
	Suit  Suit   `json:"suit"`
	Rank  Rank   `json:"value"`
	Count int    `json:"total"`
}

// Totals computes the rank-strength sum of every player's hand, ordered
// by descending total. Ties keep the players' insertion order.
func (g *Game) Totals() []PlayerTotal {
	totals := make([]PlayerTotal, 0, len(g.Players))
	for _, p := range g.Players {
		total := 0
		for _, c := range p.Hand {
			total += c.Value()
		}
		totals = append(totals, PlayerTotal{Player: p.Name, Total: total})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals
}

// CountBySuit groups cards by suit. Suits with no remaining cards are
// absent from the result.
func CountBySuit(cards []Card) map[Suit]int {
	counts := make(map[Suit]int)
	for _, c := range cards {
		counts[c.Suit]++
	}
	return counts
}

// CountBySuitAndRank groups cards by exact (suit, rank) pair. The result
// is ordered by suit ascending (lexicographic) and rank strength
// descending, and is stable across calls for the same input multiset.
func CountBySuitAndRank(cards []Card) []CardCount {
	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	result := make([]CardCount, 0, len(counts))
	for c, n := range counts {
		result = append(result, CardCount{Card: c.Code(), Suit: c.Suit, Rank: c.Rank, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Suit != result[j].Suit {
			return result[i].Suit < result[j].Suit
		}
		return result[i].Rank > result[j].Rank
	})
	return result
}
