package memory_repo

import (
	"context"

	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"
)

type gameStateRepo struct {
	store *Store
}

func NewGameStateRepository(store *Store) repository.GameStateRepository {
	return &gameStateRepo{store: store}
}

func (r *gameStateRepo) GetBlackjack(_ context.Context, username string) (model.BlackjackRound, error) {
	r.store.mtx.RLock()
	defer r.store.mtx.RUnlock()

	round, ok := r.store.data.blackjack[username]
	if !ok {
		return model.BlackjackRound{Phase: model.PhaseBetting}, nil
	}
	return round, nil
}

func (r *gameStateRepo) SaveBlackjack(_ context.Context, username string, round model.BlackjackRound) error {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	r.store.data.blackjack[username] = round
	return nil
}

func (r *gameStateRepo) DeleteBlackjack(_ context.Context, username string) error {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	delete(r.store.data.blackjack, username)
	return nil
}

func (r *gameStateRepo) GetRouletteSlip(_ context.Context, username string) ([]model.Bet, error) {
	r.store.mtx.RLock()
	defer r.store.mtx.RUnlock()

	return append([]model.Bet{}, r.store.data.slips[username]...), nil
}

func (r *gameStateRepo) SaveRouletteSlip(_ context.Context, username string, slip []model.Bet) error {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	r.store.data.slips[username] = append([]model.Bet(nil), slip...)
	return nil
}
