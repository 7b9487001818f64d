package model

// Масти
const (
	Spades   = "♠"
	Hearts   = "♥"
	Diamonds = "♦"
	Clubs    = "♣"
)

var (
	Suits = []string{Spades, Hearts, Diamonds, Clubs}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Card - игральная карта
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// String возвращает карту в виде "♠A"
func (c Card) String() string {
	return c.Suit + c.Rank
}
