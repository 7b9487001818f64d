// Package cards - колода и подсчёт очков руки для блэкджека
package cards

import (
	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/model"
)

// DeckSize - число карт в полной колоде
const DeckSize = 52

// Deck - перемешанная колода, карты берутся с конца
type Deck struct {
	cards []model.Card
}

// NewDeck собирает 52 карты и перемешивает их Фишером-Йетсом
func NewDeck(src rng.Source) *Deck {
	cards := make([]model.Card, 0, DeckSize)
	for _, suit := range model.Suits {
		for _, rank := range model.Ranks {
			cards = append(cards, model.Card{Suit: suit, Rank: rank})
		}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(src, i+1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// FromCards восстанавливает колоду из сохранённого состояния
func FromCards(cards []model.Card) *Deck {
	return &Deck{cards: append([]model.Card(nil), cards...)}
}

// Draw снимает последнюю карту
func (d *Deck) Draw() (model.Card, error) {
	if len(d.cards) == 0 {
		return model.Card{}, model.ErrEmptyDeck
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards возвращает копию оставшихся карт
func (d *Deck) Cards() []model.Card {
	return append([]model.Card(nil), d.cards...)
}
