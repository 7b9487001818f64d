package roulette

import (
	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/engine/roulette"
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
	wheel     *roulette.Wheel
	txManager trm.Manager
}

// NewRouletteService Европейская рулетка, купон ставок хранится до спина
func NewRouletteService(
	accounts repository.AccountRepository,
	states repository.GameStateRepository,
	settler *settlement.Settler,
	rngFactory rng.Factory,
	wheel *roulette.Wheel,
	txManager trm.Manager,
) service.RouletteService {
	return &serv{
		accounts:  accounts,
		states:    states,
		settler:   settler,
		rng:       rngFactory,
		wheel:     wheel,
		txManager: txManager,
	}
}
