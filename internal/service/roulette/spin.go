package roulette

import (
	"context"
	"fmt"

	"crypto_luck/internal/engine/roulette"
	"crypto_luck/internal/model"
)

// Spin Разыгрывает весь купон одним спином и очищает его
func (s *serv) Spin(ctx context.Context, username string) (model.RouletteSpinResult, error) {
	var (
		res model.RouletteSpinResult
		acc model.Account
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = s.accounts.GetForUpdate(txCtx, username)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		slip, err := s.states.GetRouletteSlip(txCtx, username)
		if err != nil {
			return fmt.Errorf("get slip: %w", err)
		}

		src := s.rng.SourceFor(username, model.GameRoulette, acc.GamesPlayed)
		res, err = s.wheel.Spin(slip, acc.Balance, src)
		if err != nil {
			return err
		}

		if acc, err = s.settler.Reserve(txCtx, acc, res.Staked); err != nil {
			return err
		}
		if acc, err = s.settler.Settle(txCtx, acc, res.Staked, res.NetDelta, model.GameRoulette); err != nil {
			return err
		}
		if err := s.states.SaveRouletteSlip(txCtx, username, roulette.ClearBets()); err != nil {
			return fmt.Errorf("save slip: %w", err)
		}

		res.Balance = acc.Balance
		return nil
	})
	if err != nil {
		return model.RouletteSpinResult{}, err
	}

	s.settler.Publish(ctx, acc, model.GameRoulette, outcome(res), res.Staked, res.TotalWin)
	return res, nil
}

func outcome(res model.RouletteSpinResult) string {
	switch {
	case res.NetDelta.IsPositive():
		return "win"
	case res.NetDelta.IsNegative():
		return "lose"
	default:
		return "push"
	}
}
