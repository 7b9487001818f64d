package cards

import "crypto_luck/internal/model"

// Blackjack - лучшая сумма очков
const Blackjack = 21

// CardValue - очки карты: туз 11, картинки 10, остальные по номиналу
func CardValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	case "7":
		return 7
	case "8":
		return 8
	case "9":
		return 9
	default:
		return 0
	}
}

// HandValue считает лучшую сумму руки, снижая тузы с 11 до 1 пока есть перебор
func HandValue(hand []model.Card) int {
	total, _ := count(hand)
	return total
}

// IsSoft сообщает, что в руке остался туз, который считается за 11
func IsSoft(hand []model.Card) bool {
	_, soft := count(hand)
	return soft > 0
}

func count(hand []model.Card) (int, int) {
	total := 0
	aces := 0
	for _, c := range hand {
		total += CardValue(c.Rank)
		if c.Rank == "A" {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}
