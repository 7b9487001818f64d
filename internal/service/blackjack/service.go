package blackjack

import (
	"crypto_luck/internal/engine/blackjack"
	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/repository"
	"crypto_luck/internal/service"
	"crypto_luck/internal/service/settlement"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	accounts  repository.AccountRepository
	states    repository.GameStateRepository
	settler   *settlement.Settler
	rng       rng.Factory
	opts      []blackjack.Option
	txManager trm.Manager
}

// NewBlackjackService Стол блэкджека, раунд хранится между запросами
func NewBlackjackService(
	accounts repository.AccountRepository,
	states repository.GameStateRepository,
	settler *settlement.Settler,
	rngFactory rng.Factory,
	dealerStand int,
	txManager trm.Manager,
) service.BlackjackService {
	return &serv{
		accounts:  accounts,
		states:    states,
		settler:   settler,
		rng:       rngFactory,
		opts:      []blackjack.Option{blackjack.WithDealerStand(dealerStand)},
		txManager: txManager,
	}
}
