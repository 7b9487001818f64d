package slot

import (
	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/engine/slot"
	"crypto_luck/internal/repository"
	"crypto_luck/internal/service"
	"crypto_luck/internal/service/settlement"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	accounts  repository.AccountRepository
	settler   *settlement.Settler
	rng       rng.Factory
	machine   *slot.Machine
	txManager trm.Manager
}

// NewSlotService Слот 3 барабана, одна линия
func NewSlotService(
	accounts repository.AccountRepository,
	settler *settlement.Settler,
	rngFactory rng.Factory,
	machine *slot.Machine,
	txManager trm.Manager,
) service.SlotService {
	return &serv{
		accounts:  accounts,
		settler:   settler,
		rng:       rngFactory,
		machine:   machine,
		txManager: txManager,
	}
}
